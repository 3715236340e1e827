package reports

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/utilityhub/UtilityHub/app/models"
)

// CategoryStats is one category's complaint volume and resolution rate.
type CategoryStats struct {
	Category       string  `json:"category"`
	Total          int64   `json:"total"`
	Resolved       int64   `json:"resolved"`
	ResolutionRate float64 `json:"resolutionRate"`
}

// StatusCount is the number of complaints currently in one status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ComplaintReport summarizes complaint volume, resolution rates and the
// average time to assignment for a date range.
type ComplaintReport struct {
	From                 time.Time       `json:"from"`
	To                   time.Time       `json:"to"`
	ComplaintsByCategory []CategoryStats `json:"complaintsByCategory"`
	ComplaintsByStatus   []StatusCount   `json:"complaintsByStatus"`
	AvgResolutionHours   float64         `json:"avgResolutionHours"`
}

// Complaints builds the complaint report for the given date range.
func (e *Engine) Complaints(from, to time.Time) ComplaintReport {
	report := ComplaintReport{
		From:                 from,
		To:                   to,
		ComplaintsByCategory: []CategoryStats{},
		ComplaintsByStatus:   []StatusCount{},
	}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		inRange := func() *gorm.DB {
			return tx.Model(&models.Complaint{}).Where("created_at BETWEEN ? AND ?", from, to)
		}

		var byCategory []CategoryStats
		err := inRange().
			Select("category, COUNT(*) AS total, " +
				"SUM(CASE WHEN LOWER(status) = 'resolved' THEN 1 ELSE 0 END) AS resolved").
			Group("category").Order("category ASC").Find(&byCategory).Error
		if err != nil {
			log.Printf("complaint report: category query failed: %v", err)
		} else if byCategory != nil {
			for i := range byCategory {
				if byCategory[i].Total > 0 {
					byCategory[i].ResolutionRate = 100.0 * float64(byCategory[i].Resolved) / float64(byCategory[i].Total)
				}
			}
			report.ComplaintsByCategory = byCategory
		}

		var byStatus []StatusCount
		err = inRange().
			Select("status, COUNT(*) AS count").
			Group("status").Order("status ASC").Find(&byStatus).Error
		if err != nil {
			log.Printf("complaint report: status query failed: %v", err)
		} else if byStatus != nil {
			report.ComplaintsByStatus = byStatus
		}

		// Average time from creation to assignment, resolved complaints only.
		// Complaints that were never assigned are excluded from the mean,
		// not counted as zero.
		var resolved []models.Complaint
		err = inRange().
			Where("LOWER(status) = LOWER(?) AND assigned_at IS NOT NULL", models.ComplaintStatusResolved).
			Find(&resolved).Error
		if err != nil {
			log.Printf("complaint report: resolution time query failed: %v", err)
			return nil
		}
		var totalHours float64
		var counted int
		for i := range resolved {
			if hours, ok := resolved[i].ResolutionHours(); ok {
				totalHours += hours
				counted++
			}
		}
		if counted > 0 {
			report.AvgResolutionHours = totalHours / float64(counted)
		}
		return nil
	})
	if err != nil {
		log.Printf("complaint report: transaction failed: %v", err)
	}

	return report
}

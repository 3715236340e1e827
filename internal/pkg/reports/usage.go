package reports

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/utilityhub/UtilityHub/app/models"
)

// UsageRow is one subscriber's aggregated consumption for a service.
type UsageRow struct {
	Subscriber     string  `json:"subscriber"`
	AvgConsumption float64 `json:"avgConsumption"`
	MaxReading     float64 `json:"maxReading"`
	ReadingCount   int64   `json:"readingCount"`
}

// UsageReport ranks subscribers of one service by average consumption,
// highest consumer first.
type UsageReport struct {
	Service string     `json:"service"`
	From    time.Time  `json:"from"`
	To      time.Time  `json:"to"`
	Rows    []UsageRow `json:"rows"`
}

// Usage builds the per-subscriber usage report for one service and date range.
func (e *Engine) Usage(service string, from, to time.Time) UsageReport {
	report := UsageReport{
		Service: service,
		From:    from,
		To:      to,
		Rows:    []UsageRow{},
	}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		var rows []UsageRow
		err := tx.Model(&models.MeterReading{}).
			Select("subscriber, AVG(consumption) AS avg_consumption, MAX(reading) AS max_reading, COUNT(*) AS reading_count").
			Where("service = ? AND date BETWEEN ? AND ?", service, from, to).
			Group("subscriber").Order("avg_consumption DESC").Find(&rows).Error
		if err != nil {
			log.Printf("usage report: aggregation query failed: %v", err)
			return nil
		}
		if rows != nil {
			report.Rows = rows
		}
		return nil
	})
	if err != nil {
		log.Printf("usage report: transaction failed: %v", err)
	}

	return report
}

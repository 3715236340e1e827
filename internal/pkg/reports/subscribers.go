package reports

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/utilityhub/UtilityHub/app/models"
)

// ServiceSubscribers is the number of distinct subscribers with readings
// for one service.
type ServiceSubscribers struct {
	Service     string `json:"service"`
	Subscribers int64  `json:"subscribers"`
}

// SubscriberReport summarizes the subscriber base.
type SubscriberReport struct {
	TotalSubscribers int64                `json:"totalSubscribers"`
	NewThisMonth     int64                `json:"newThisMonth"`
	PerService       []ServiceSubscribers `json:"perService"`
}

// LedgerRow is one bill with its payment standing derived from the join,
// not from the bill's own status column. The two can disagree; both are
// reported as stored/derived.
type LedgerRow struct {
	BillID            string    `json:"billId"`
	Subscriber        string    `json:"subscriber"`
	Services          string    `json:"services"`
	Amount            float64   `json:"amount"`
	IssueDate         time.Time `json:"issueDate"`
	DueDate           time.Time `json:"dueDate"`
	Status            string    `json:"status"`
	CompletedPayments int64     `json:"-"`
	PaymentStatus     string    `json:"paymentStatus"`
}

// Subscribers builds the subscriber summary as of now.
func (e *Engine) Subscribers() SubscriberReport {
	report := SubscriberReport{PerService: []ServiceSubscribers{}}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		var total int64
		err := tx.Model(&models.User{}).
			Where("LOWER(role) = LOWER(?)", models.RoleSubscriber).Count(&total).Error
		if err != nil {
			log.Printf("subscriber report: total count query failed: %v", err)
		} else {
			report.TotalSubscribers = total
		}

		now := time.Now()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		var newThisMonth int64
		err = tx.Model(&models.User{}).
			Where("LOWER(role) = LOWER(?) AND created_at >= ?", models.RoleSubscriber, monthStart).
			Count(&newThisMonth).Error
		if err != nil {
			log.Printf("subscriber report: new-this-month query failed: %v", err)
		} else {
			report.NewThisMonth = newThisMonth
		}

		var perService []ServiceSubscribers
		err = tx.Model(&models.MeterReading{}).
			Select("service, COUNT(DISTINCT subscriber) AS subscribers").
			Group("service").Order("service ASC").Find(&perService).Error
		if err != nil {
			log.Printf("subscriber report: per-service query failed: %v", err)
		} else if perService != nil {
			report.PerService = perService
		}
		return nil
	})
	if err != nil {
		log.Printf("subscriber report: transaction failed: %v", err)
	}

	return report
}

// BillingLedger joins bills to their completed payments for a date range
// of issue dates. PaymentStatus is "Paid" exactly when at least one
// completed payment exists for the bill.
func (e *Engine) BillingLedger(from, to time.Time) []LedgerRow {
	rows := []LedgerRow{}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		var result []LedgerRow
		err := tx.Model(&models.Bill{}).
			Select("bills.bill_id, bills.subscriber, bills.services, bills.amount, "+
				"bills.issue_date, bills.due_date, bills.status, "+
				"COUNT(payments.id) AS completed_payments").
			Joins("LEFT JOIN payments ON payments.bill_id = bills.bill_id AND LOWER(payments.status) = ?",
				"completed").
			Where("bills.issue_date BETWEEN ? AND ?", from, to).
			Group("bills.id").Order("bills.issue_date DESC, bills.id DESC").
			Find(&result).Error
		if err != nil {
			log.Printf("billing ledger: join query failed: %v", err)
			return nil
		}
		for i := range result {
			if result[i].CompletedPayments > 0 {
				result[i].PaymentStatus = "Paid"
			} else {
				result[i].PaymentStatus = "Unpaid"
			}
		}
		rows = result
		return nil
	})
	if err != nil {
		log.Printf("billing ledger: transaction failed: %v", err)
	}

	return rows
}

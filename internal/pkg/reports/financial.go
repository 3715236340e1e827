package reports

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/utilityhub/UtilityHub/app/models"
)

// MethodRevenue is completed-payment revenue attributed to one payment method.
type MethodRevenue struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
	Count  int64   `json:"count"`
}

// ServiceRevenue is completed-payment revenue attributed to a bill's
// service label via the payment→bill join.
type ServiceRevenue struct {
	Service string  `json:"service"`
	Amount  float64 `json:"amount"`
}

// FinancialReport summarizes completed-payment revenue for a date range.
// TotalRevenue always equals the sum over PaymentMethods for the same range.
type FinancialReport struct {
	From           time.Time        `json:"from"`
	To             time.Time        `json:"to"`
	TotalRevenue   float64          `json:"totalRevenue"`
	PaymentMethods []MethodRevenue  `json:"paymentMethods"`
	ServiceRevenue []ServiceRevenue `json:"serviceRevenue"`
}

// Financial builds the financial report for the given date range.
func (e *Engine) Financial(from, to time.Time) FinancialReport {
	report := FinancialReport{
		From:           from,
		To:             to,
		PaymentMethods: []MethodRevenue{},
		ServiceRevenue: []ServiceRevenue{},
	}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		// columns stay table-qualified so the scope survives the bills join
		completed := func() *gorm.DB {
			return tx.Model(&models.Payment{}).
				Where("LOWER(payments.status) = LOWER(?) AND payments.date BETWEEN ? AND ?",
					models.PaymentStatusCompleted, from, to)
		}

		var total float64
		if err := completed().Select("COALESCE(SUM(amount), 0)").Row().Scan(&total); err != nil {
			log.Printf("financial report: total revenue query failed: %v", err)
		} else {
			report.TotalRevenue = total
		}

		var byMethod []MethodRevenue
		err := completed().
			Select("method, COALESCE(SUM(amount), 0) AS amount, COUNT(*) AS count").
			Group("method").Order("amount DESC").Find(&byMethod).Error
		if err != nil {
			log.Printf("financial report: method breakdown query failed: %v", err)
		} else if byMethod != nil {
			report.PaymentMethods = byMethod
		}

		var byService []ServiceRevenue
		err = completed().
			Select("bills.services AS service, COALESCE(SUM(payments.amount), 0) AS amount").
			Joins("JOIN bills ON bills.bill_id = payments.bill_id").
			Group("bills.services").Order("amount DESC").Find(&byService).Error
		if err != nil {
			log.Printf("financial report: service breakdown query failed: %v", err)
		} else if byService != nil {
			report.ServiceRevenue = byService
		}

		return nil
	})
	if err != nil {
		log.Printf("financial report: transaction failed: %v", err)
	}

	return report
}

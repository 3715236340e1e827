package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/utilityhub/UtilityHub/internal/pkg/database"
	"github.com/utilityhub/UtilityHub/internal/pkg/reports"
	"github.com/utilityhub/UtilityHub/internal/pkg/statistics"
)

func reportEngine() *reports.Engine {
	return reports.NewEngine(database.GetDB())
}

// HandleFinancialReport returns revenue totals and breakdowns for a range
func HandleFinancialReport(c *fiber.Ctx) error {
	from, to := dateRange(c)
	return c.JSON(reportEngine().Financial(from, to))
}

// HandleUsageReport ranks subscribers of one service by average consumption
func HandleUsageReport(c *fiber.Ctx) error {
	service := c.Query("service")
	if service == "" {
		return badRequest(c, "service is required")
	}
	from, to := dateRange(c)
	return c.JSON(reportEngine().Usage(service, from, to))
}

// HandleComplaintReport returns complaint volume and resolution summaries
func HandleComplaintReport(c *fiber.Ctx) error {
	from, to := dateRange(c)
	return c.JSON(reportEngine().Complaints(from, to))
}

// HandleSubscriberReport returns subscriber-base counts
func HandleSubscriberReport(c *fiber.Ctx) error {
	return c.JSON(reportEngine().Subscribers())
}

// HandleBillingLedger returns bills with their join-derived payment standing
func HandleBillingLedger(c *fiber.Ctx) error {
	from, to := dateRange(c)
	return c.JSON(fiber.Map{"rows": reportEngine().BillingLedger(from, to)})
}

// HandleDashboard serves the cached dashboard counters
func HandleDashboard(c *fiber.Ctx) error {
	data := statistics.GetStatistics()
	return c.JSON(fiber.Map{
		"total_bills":       data.TotalBills,
		"pending_bills":     data.PendingBills,
		"today_revenue":     data.TodayRevenue,
		"open_complaints":   data.OpenComplaints,
		"total_subscribers": data.TotalSubscribers,
	})
}

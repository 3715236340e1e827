package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/utilityhub/UtilityHub/app/controllers"
)

// InstallRouter registers every API route on the app.
func InstallRouter(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/auth/login", controllers.HandleLogin)

	bills := api.Group("/bills")
	bills.Post("/", controllers.HandleCreateBill)
	bills.Get("/", controllers.HandleListBills)
	bills.Get("/overdue-candidates", controllers.HandleBillOverdueCandidates)
	bills.Get("/:billId", controllers.HandleGetBill)
	bills.Patch("/:billId/status", controllers.HandleUpdateBillStatus)

	payments := api.Group("/payments")
	payments.Post("/", controllers.HandleCreatePayment)
	payments.Get("/", controllers.HandleListPayments)
	payments.Get("/:paymentId", controllers.HandleGetPayment)
	payments.Post("/:paymentId/complete", controllers.HandleCompletePayment)
	payments.Post("/:paymentId/fail", controllers.HandleFailPayment)

	readings := api.Group("/meter-readings")
	readings.Post("/", controllers.HandleCreateMeterReading)
	readings.Get("/", controllers.HandleListMeterReadings)
	readings.Post("/:id/verify", controllers.HandleVerifyMeterReading)
	readings.Post("/:id/overdue", controllers.HandleMarkMeterReadingOverdue)

	complaints := api.Group("/complaints")
	complaints.Post("/", controllers.HandleCreateComplaint)
	complaints.Get("/", controllers.HandleListComplaints)
	complaints.Get("/:complaintId", controllers.HandleGetComplaint)
	complaints.Post("/:complaintId/assign", controllers.HandleAssignComplaint)
	complaints.Patch("/:complaintId/status", controllers.HandleUpdateComplaintStatus)
	complaints.Patch("/:complaintId/priority", controllers.HandleUpdateComplaintPriority)
	complaints.Post("/:complaintId/resolve", controllers.HandleResolveComplaint)

	services := api.Group("/services")
	services.Post("/", controllers.HandleCreateService)
	services.Get("/", controllers.HandleListServices)
	services.Get("/by-name/:name", controllers.HandleGetService)
	services.Post("/:id/deactivate", controllers.HandleDeactivateService)
	services.Patch("/:id/price", controllers.HandleUpdateServicePrice)

	reports := api.Group("/reports")
	reports.Get("/financial", controllers.HandleFinancialReport)
	reports.Get("/usage", controllers.HandleUsageReport)
	reports.Get("/complaints", controllers.HandleComplaintReport)
	reports.Get("/subscribers", controllers.HandleSubscriberReport)
	reports.Get("/billing-ledger", controllers.HandleBillingLedger)
	reports.Get("/dashboard", controllers.HandleDashboard)
}

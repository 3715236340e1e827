package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/utilityhub/UtilityHub/app/models"
	"github.com/utilityhub/UtilityHub/app/repository"
)

type billRequest struct {
	BillID     string  `json:"bill_id"`
	Subscriber string  `json:"subscriber"`
	Services   string  `json:"services"`
	Reference  string  `json:"reference"`
	Amount     float64 `json:"amount"`
	IssueDate  string  `json:"issue_date"`
	DueDate    string  `json:"due_date"`
	Status     string  `json:"status"`
}

// HandleCreateBill issues a new bill
func HandleCreateBill(c *fiber.Ctx) error {
	var req billRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	issueDate, err := parseOptionalDate(req.IssueDate)
	if err != nil {
		return badRequest(c, "issue_date is not a valid date")
	}
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return badRequest(c, "due_date is not a valid date")
	}
	bill := models.NewBill(models.BillParams{
		BillID:     req.BillID,
		Subscriber: req.Subscriber,
		Services:   req.Services,
		Reference:  req.Reference,
		Amount:     req.Amount,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Status:     req.Status,
	})

	repo := repository.GetGlobalFactory().GetBillRepository()
	if err := repo.Create(bill); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bill)
}

// HandleGetBill returns one bill by its billing reference
func HandleGetBill(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetBillRepository()
	bill, err := repo.GetByBillID(c.Params("billId"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{
		"bill":           bill,
		"is_due_soon":    bill.IsDueSoon(),
		"is_past_due":    bill.IsPastDue(),
		"days_until_due": bill.DaysUntilDue(),
	})
}

// HandleListBills lists bills, optionally filtered by subscriber, status
// or a search term
func HandleListBills(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetBillRepository()

	if q := c.Query("q"); q != "" {
		bills, err := repo.Search(q)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"bills": bills})
	}
	if subscriber := c.Query("subscriber"); subscriber != "" {
		bills, err := repo.GetBySubscriber(subscriber)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"bills": bills})
	}
	if status := c.Query("status"); status != "" {
		bills, err := repo.GetByStatus(status)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"bills": bills})
	}

	offset, limit := pagination(c)
	bills, err := repo.List(offset, limit)
	if err != nil {
		return storeError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"bills": bills, "total": total, "offset": offset, "limit": limit})
}

// HandleUpdateBillStatus sets a bill's status
func HandleUpdateBillStatus(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return badRequest(c, "status is required")
	}

	repo := repository.GetGlobalFactory().GetBillRepository()
	affected, err := repo.UpdateStatus(c.Params("billId"), req.Status)
	if err != nil {
		return storeError(c, err)
	}
	if affected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not_found", "message": "Bill not found",
		})
	}
	return c.JSON(fiber.Map{"bill_id": c.Params("billId"), "status": req.Status})
}

// HandleBillOverdueCandidates lists pending bills that are past due as of now
func HandleBillOverdueCandidates(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetBillRepository()
	bills, err := repo.GetOverdueCandidates(time.Now())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"bills": bills})
}

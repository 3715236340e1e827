package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/utilityhub/UtilityHub/app/models"
	"github.com/utilityhub/UtilityHub/app/repository"
)

type paymentRequest struct {
	PaymentID  string  `json:"payment_id"`
	BillID     string  `json:"bill_id"`
	Subscriber string  `json:"subscriber"`
	Method     string  `json:"method"`
	Reference  string  `json:"reference"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
}

// HandleCreatePayment records a payment against an existing bill
func HandleCreatePayment(c *fiber.Ctx) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	factory := repository.GetGlobalFactory()
	if _, err := factory.GetBillRepository().GetByBillID(req.BillID); err != nil {
		return storeError(c, err)
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return badRequest(c, "date is not a valid date")
	}
	payment := models.NewPayment(models.PaymentParams{
		PaymentID:  req.PaymentID,
		BillID:     req.BillID,
		Subscriber: req.Subscriber,
		Method:     req.Method,
		Reference:  req.Reference,
		Amount:     req.Amount,
		Date:       date,
		Status:     req.Status,
	})
	if err := factory.GetPaymentRepository().Create(payment); err != nil {
		return storeError(c, err)
	}

	// a completed payment settles the bill
	if payment.IsCompleted() {
		if err := factory.GetBillRepository().MarkPaid(payment.BillID); err != nil {
			return storeError(c, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

// HandleGetPayment returns one payment by its payment reference
func HandleGetPayment(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetPaymentRepository()
	payment, err := repo.GetByPaymentID(c.Params("paymentId"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(payment)
}

// HandleListPayments lists payments filtered by bill, subscriber, method,
// status or a search term
func HandleListPayments(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetPaymentRepository()

	if q := c.Query("q"); q != "" {
		payments, err := repo.Search(q)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"payments": payments})
	}
	if billID := c.Query("bill_id"); billID != "" {
		payments, err := repo.GetByBillID(billID)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"payments": payments})
	}
	if subscriber := c.Query("subscriber"); subscriber != "" {
		payments, err := repo.GetBySubscriber(subscriber)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"payments": payments})
	}
	if method := c.Query("method"); method != "" {
		payments, err := repo.GetByMethod(method)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"payments": payments})
	}
	if status := c.Query("status"); status != "" {
		payments, err := repo.GetByStatus(status)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"payments": payments})
	}

	offset, limit := pagination(c)
	payments, err := repo.List(offset, limit)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"payments": payments, "offset": offset, "limit": limit})
}

// HandleCompletePayment marks a payment Completed and settles its bill
func HandleCompletePayment(c *fiber.Ctx) error {
	factory := repository.GetGlobalFactory()
	repo := factory.GetPaymentRepository()
	paymentID := c.Params("paymentId")

	payment, err := repo.GetByPaymentID(paymentID)
	if err != nil {
		return storeError(c, err)
	}
	if err := repo.Complete(paymentID); err != nil {
		return storeError(c, err)
	}
	if err := factory.GetBillRepository().MarkPaid(payment.BillID); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"payment_id": paymentID, "status": models.PaymentStatusCompleted})
}

// HandleFailPayment marks a payment Failed
func HandleFailPayment(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetPaymentRepository()
	paymentID := c.Params("paymentId")

	if _, err := repo.GetByPaymentID(paymentID); err != nil {
		return storeError(c, err)
	}
	if err := repo.Fail(paymentID); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"payment_id": paymentID, "status": models.PaymentStatusFailed})
}

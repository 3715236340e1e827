package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
)

// Payment is a monetary transaction applied against a bill. Its status is
// set once at creation and only changed by an explicit Complete/Fail call,
// never retried automatically.
type Payment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PaymentID  string    `gorm:"type:varchar(50);uniqueIndex" json:"payment_id" validate:"required"`
	BillID     string    `gorm:"type:varchar(50);index" json:"bill_id" validate:"required"`
	Subscriber string    `gorm:"type:varchar(100);index" json:"subscriber" validate:"required"`
	Method     string    `gorm:"type:varchar(50)" json:"method" validate:"required"`
	Reference  string    `gorm:"type:varchar(100);uniqueIndex" json:"reference" validate:"required"`
	Amount     float64   `gorm:"type:decimal(12,2)" json:"amount" validate:"gt=0"`
	Date       time.Time `json:"date" validate:"required"`
	Status     string    `gorm:"type:varchar(20);default:'Pending';index" json:"status" validate:"required"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// PaymentParams holds the caller-supplied fields for a new payment.
type PaymentParams struct {
	PaymentID  string
	BillID     string
	Subscriber string
	Method     string
	Reference  string
	Amount     float64
	Date       time.Time
	Status     string
}

// NewPayment builds a payment from params. Status defaults to Pending and
// the reference to a fresh UUID when the caller leaves them empty.
func NewPayment(p PaymentParams) *Payment {
	status := p.Status
	if status == "" {
		status = PaymentStatusPending
	}
	reference := p.Reference
	if reference == "" {
		reference = uuid.NewString()
	}
	date := p.Date
	if date.IsZero() {
		date = time.Now()
	}
	return &Payment{
		PaymentID:  p.PaymentID,
		BillID:     p.BillID,
		Subscriber: p.Subscriber,
		Method:     p.Method,
		Reference:  reference,
		Amount:     p.Amount,
		Date:       date,
		Status:     status,
	}
}

var paymentRules = []rule{
	{"PaymentID", "required", "payment id is required"},
	{"BillID", "required", "bill id is required"},
	{"Subscriber", "required", "subscriber is required"},
	{"Method", "required", "method is required"},
	{"Reference", "required", "reference is required"},
	{"Status", "required", "status is required"},
	{"Amount", "gt", "amount must be greater than zero"},
	{"Date", "required", "date is required"},
}

// ValidationErrors lists every violated rule; empty means the payment is valid.
func (p *Payment) ValidationErrors() []string {
	return collectViolations(p, paymentRules)
}

func (p *Payment) IsValid() bool {
	return len(p.ValidationErrors()) == 0
}

func (p *Payment) Validate() error {
	if violations := p.ValidationErrors(); len(violations) > 0 {
		return &ValidationError{Entity: "payment", Violations: violations}
	}
	return nil
}

func (p *Payment) IsPending() bool {
	return statusEquals(p.Status, PaymentStatusPending)
}

func (p *Payment) IsCompleted() bool {
	return statusEquals(p.Status, PaymentStatusCompleted)
}

func (p *Payment) IsFailed() bool {
	return statusEquals(p.Status, PaymentStatusFailed)
}

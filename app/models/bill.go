package models

import (
	"time"
)

const (
	BillStatusPending = "Pending"
	BillStatusPaid    = "Paid"
	BillStatusOverdue = "Overdue"
)

// DueSoonWindow is how far ahead a bill counts as "due soon".
const DueSoonWindow = 7 * 24 * time.Hour

// Bill is a billing obligation issued to a subscriber for one or more services.
type Bill struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BillID     string    `gorm:"type:varchar(50);uniqueIndex" json:"bill_id" validate:"required"`
	Subscriber string    `gorm:"type:varchar(100);index" json:"subscriber" validate:"required"`
	Services   string    `gorm:"type:varchar(200)" json:"services" validate:"required"`
	Reference  string    `gorm:"type:varchar(100)" json:"reference" validate:"required"`
	Amount     float64   `gorm:"type:decimal(12,2)" json:"amount" validate:"gte=0"`
	IssueDate  time.Time `json:"issue_date" validate:"required"`
	DueDate    time.Time `json:"due_date" validate:"required,gtefield=IssueDate"`
	Status     string    `gorm:"type:varchar(20);default:'Pending';index" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BillParams holds the caller-supplied fields for a new bill.
type BillParams struct {
	BillID     string
	Subscriber string
	Services   string
	Reference  string
	Amount     float64
	IssueDate  time.Time
	DueDate    time.Time
	Status     string
}

// NewBill builds a bill from params, defaulting the status to Pending.
// Construction never fails; call Validate before persisting.
func NewBill(p BillParams) *Bill {
	status := p.Status
	if status == "" {
		status = BillStatusPending
	}
	return &Bill{
		BillID:     p.BillID,
		Subscriber: p.Subscriber,
		Services:   p.Services,
		Reference:  p.Reference,
		Amount:     p.Amount,
		IssueDate:  p.IssueDate,
		DueDate:    p.DueDate,
		Status:     status,
	}
}

var billRules = []rule{
	{"BillID", "required", "bill id is required"},
	{"Subscriber", "required", "subscriber is required"},
	{"Services", "required", "services is required"},
	{"Reference", "required", "reference is required"},
	{"Amount", "gte", "amount must not be negative"},
	{"IssueDate", "required", "issue date is required"},
	{"DueDate", "required", "due date is required"},
	{"DueDate", "gtefield", "due date must not be before issue date"},
}

// ValidationErrors lists every violated rule; empty means the bill is valid.
func (b *Bill) ValidationErrors() []string {
	return collectViolations(b, billRules)
}

func (b *Bill) IsValid() bool {
	return len(b.ValidationErrors()) == 0
}

func (b *Bill) Validate() error {
	if violations := b.ValidationErrors(); len(violations) > 0 {
		return &ValidationError{Entity: "bill", Violations: violations}
	}
	return nil
}

func (b *Bill) IsPending() bool {
	return statusEquals(b.Status, BillStatusPending)
}

func (b *Bill) IsPaid() bool {
	return statusEquals(b.Status, BillStatusPaid)
}

func (b *Bill) IsOverdue() bool {
	return statusEquals(b.Status, BillStatusOverdue)
}

// IsDueSoon reports whether the due date is strictly in the future and
// within the due-soon window.
func (b *Bill) IsDueSoon() bool {
	until := time.Until(b.DueDate)
	return until > 0 && until <= DueSoonWindow
}

// IsPastDue reports whether the due date has passed while the bill is
// still pending. Status stays Pending until the overdue sweeper or a
// caller marks it.
func (b *Bill) IsPastDue() bool {
	return time.Now().After(b.DueDate) && b.IsPending()
}

// DaysUntilDue is the whole number of days until the due date, truncated
// toward zero. Negative once the due date has passed.
func (b *Bill) DaysUntilDue() int {
	return int(time.Until(b.DueDate).Hours() / 24)
}

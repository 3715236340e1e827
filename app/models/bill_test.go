package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBill() *Bill {
	return NewBill(BillParams{
		BillID:     "B-100",
		Subscriber: "john_doe",
		Services:   "Water",
		Reference:  "REF1",
		Amount:     45.00,
		IssueDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
}

func TestNewBillDefaultsStatusPending(t *testing.T) {
	b := validBill()

	assert.Equal(t, BillStatusPending, b.Status)
	assert.True(t, b.IsPending())
	require.NoError(t, b.Validate())
	assert.True(t, b.IsValid())
	assert.Empty(t, b.ValidationErrors())
}

func TestBillValidationDueBeforeIssue(t *testing.T) {
	b := validBill()
	b.DueDate = b.IssueDate.AddDate(0, 0, -1)

	assert.False(t, b.IsValid())
	violations := b.ValidationErrors()
	require.Len(t, violations, 1)
	assert.Equal(t, "due date must not be before issue date", violations[0])
}

func TestBillValidationDueEqualsIssueIsValid(t *testing.T) {
	b := validBill()
	b.DueDate = b.IssueDate

	assert.True(t, b.IsValid())
}

func TestBillValidationEnumeratesAllViolationsInOrder(t *testing.T) {
	b := NewBill(BillParams{Amount: -1})

	violations := b.ValidationErrors()
	assert.Equal(t, []string{
		"bill id is required",
		"subscriber is required",
		"services is required",
		"reference is required",
		"amount must not be negative",
		"issue date is required",
		"due date is required",
	}, violations)
	assert.False(t, b.IsValid())

	err := b.Validate()
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, violations, vErr.Violations)
}

func TestBillStatusPredicatesIgnoreCase(t *testing.T) {
	b := validBill()
	b.Status = "paid"
	assert.True(t, b.IsPaid())

	b.Status = "OVERDUE"
	assert.True(t, b.IsOverdue())

	b.Status = " pending "
	assert.True(t, b.IsPending())
}

func TestBillIsDueSoon(t *testing.T) {
	b := validBill()

	b.DueDate = time.Now().Add(3 * 24 * time.Hour)
	assert.True(t, b.IsDueSoon())

	b.DueDate = time.Now().Add(10 * 24 * time.Hour)
	assert.False(t, b.IsDueSoon())

	b.DueDate = time.Now().Add(-time.Hour)
	assert.False(t, b.IsDueSoon())
}

func TestBillIsPastDue(t *testing.T) {
	b := validBill()
	b.DueDate = time.Now().Add(-24 * time.Hour)

	assert.True(t, b.IsPastDue())

	b.Status = BillStatusPaid
	assert.False(t, b.IsPastDue())

	b.Status = BillStatusPending
	b.DueDate = time.Now().Add(24 * time.Hour)
	assert.False(t, b.IsPastDue())
}

func TestBillDaysUntilDue(t *testing.T) {
	b := validBill()

	b.DueDate = time.Now().Add(5*24*time.Hour + time.Hour)
	assert.Equal(t, 5, b.DaysUntilDue())

	// Truncation toward zero, not flooring: -2.96 days reads as -2.
	b.DueDate = time.Now().Add(-71 * time.Hour)
	assert.Equal(t, -2, b.DaysUntilDue())

	b.DueDate = time.Now().Add(30 * time.Minute)
	assert.Equal(t, 0, b.DaysUntilDue())
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentDefaults(t *testing.T) {
	p := NewPayment(PaymentParams{
		PaymentID:  "P-1",
		BillID:     "B-100",
		Subscriber: "john_doe",
		Method:     "Card",
		Amount:     45.00,
	})

	assert.Equal(t, PaymentStatusPending, p.Status)
	assert.NotEmpty(t, p.Reference)
	assert.False(t, p.Date.IsZero())
	require.NoError(t, p.Validate())
}

func TestPaymentZeroAmountIsInvalid(t *testing.T) {
	p := NewPayment(PaymentParams{
		PaymentID:  "P-1",
		BillID:     "B-100",
		Subscriber: "john_doe",
		Method:     "Card",
		Reference:  "PAY1",
		Amount:     0,
		Date:       time.Now(),
	})

	assert.False(t, p.IsValid())
	assert.Contains(t, p.ValidationErrors(), "amount must be greater than zero")
}

func TestPaymentValidationEnumeratesAllViolations(t *testing.T) {
	p := &Payment{}

	violations := p.ValidationErrors()
	assert.Equal(t, []string{
		"payment id is required",
		"bill id is required",
		"subscriber is required",
		"method is required",
		"reference is required",
		"status is required",
		"amount must be greater than zero",
		"date is required",
	}, violations)
}

func TestPaymentStatusPredicatesIgnoreCase(t *testing.T) {
	p := &Payment{Status: "completed"}
	assert.True(t, p.IsCompleted())

	p.Status = "FAILED"
	assert.True(t, p.IsFailed())
}

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utilityhub/UtilityHub/app/models"
)

func seedPayment(t *testing.T, repo PaymentRepository, paymentID, billID, method string, amount float64, date time.Time, status string) {
	t.Helper()
	p := models.NewPayment(models.PaymentParams{
		PaymentID:  paymentID,
		BillID:     billID,
		Subscriber: "john_doe",
		Method:     method,
		Reference:  "PAY-" + paymentID,
		Amount:     amount,
		Date:       date,
		Status:     status,
	})
	require.NoError(t, repo.Create(p))
}

func TestPaymentRepositoryCreateRejectsInvalid(t *testing.T) {
	repo := NewPaymentRepository(newTestDB(t))

	err := repo.Create(&models.Payment{})
	require.Error(t, err)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPaymentRepositoryExplicitStatusTransitions(t *testing.T) {
	repo := NewPaymentRepository(newTestDB(t))
	seedPayment(t, repo, "P-1", "B-100", "Card", 45, time.Now(), "")

	p, err := repo.GetByPaymentID("P-1")
	require.NoError(t, err)
	assert.True(t, p.IsPending())

	require.NoError(t, repo.Complete("P-1"))
	p, err = repo.GetByPaymentID("P-1")
	require.NoError(t, err)
	assert.True(t, p.IsCompleted())

	require.NoError(t, repo.Fail("P-1"))
	p, err = repo.GetByPaymentID("P-1")
	require.NoError(t, err)
	assert.True(t, p.IsFailed())
}

func TestPaymentRepositoryTotalCompletedInRange(t *testing.T) {
	repo := NewPaymentRepository(newTestDB(t))
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	seedPayment(t, repo, "P-1", "B-1", "Card", 45, jan, models.PaymentStatusCompleted)
	seedPayment(t, repo, "P-2", "B-2", "Cash", 30, jan, models.PaymentStatusCompleted)
	seedPayment(t, repo, "P-3", "B-3", "Card", 99, jan, models.PaymentStatusFailed)
	seedPayment(t, repo, "P-4", "B-4", "Card", 12, feb, models.PaymentStatusCompleted)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	total, err := repo.TotalCompletedInRange(from, to)
	require.NoError(t, err)
	assert.InDelta(t, 75.0, total, 0.001)

	// empty range contributes zero, not an error
	total, err = repo.TotalCompletedInRange(from.AddDate(-1, 0, 0), to.AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestPaymentRepositoryLookupsAndDistinct(t *testing.T) {
	repo := NewPaymentRepository(newTestDB(t))
	now := time.Now()
	seedPayment(t, repo, "P-1", "B-100", "Card", 45, now, "")
	seedPayment(t, repo, "P-2", "B-100", "Cash", 5, now, "")

	byBill, err := repo.GetByBillID("B-100")
	require.NoError(t, err)
	assert.Len(t, byBill, 2)

	byMethod, err := repo.GetByMethod("card")
	require.NoError(t, err)
	require.Len(t, byMethod, 1)
	assert.Equal(t, "P-1", byMethod[0].PaymentID)

	byRef, err := repo.GetByReference("PAY-P-2")
	require.NoError(t, err)
	assert.Equal(t, "P-2", byRef.PaymentID)

	methods, err := repo.DistinctMethods()
	require.NoError(t, err)
	assert.Equal(t, []string{"Card", "Cash"}, methods)
}

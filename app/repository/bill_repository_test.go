package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/utilityhub/UtilityHub/app/models"
)

func TestBillRepositoryCreateRejectsInvalid(t *testing.T) {
	repo := NewBillRepository(newTestDB(t))

	invalid := models.NewBill(models.BillParams{Subscriber: "john_doe"})
	err := repo.Create(invalid)
	require.Error(t, err)

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Violations, "bill id is required")

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count, "invalid bill must not reach the store")
}

func TestBillRepositoryGetByBillID(t *testing.T) {
	repo := NewBillRepository(newTestDB(t))
	issue := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedBill(t, repo, "B-100", "john_doe", 45, issue, issue.AddDate(0, 0, 14))

	bill, err := repo.GetByBillID("B-100")
	require.NoError(t, err)
	assert.Equal(t, "john_doe", bill.Subscriber)
	assert.Equal(t, models.BillStatusPending, bill.Status)

	_, err = repo.GetByBillID("B-999")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestBillRepositoryPaginationPartitionsResultSet(t *testing.T) {
	repo := NewBillRepository(newTestDB(t))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		issue := base.AddDate(0, 0, i)
		seedBill(t, repo, "B-"+string(rune('A'+i)), "sub", 10, issue, issue.AddDate(0, 0, 10))
	}

	var seen []string
	for offset := 0; offset < 7; offset += 3 {
		page, err := repo.List(offset, 3)
		require.NoError(t, err)
		for _, b := range page {
			seen = append(seen, b.BillID)
		}
	}

	require.Len(t, seen, 7, "pages must cover the whole set without overlap or gap")
	unique := make(map[string]bool)
	for _, id := range seen {
		unique[id] = true
	}
	assert.Len(t, unique, 7)
	// most-recent-first ordering: first page starts with the newest issue date
	assert.Equal(t, "B-G", seen[0])
}

func TestBillRepositoryMarkOverdueIsIdempotent(t *testing.T) {
	repo := NewBillRepository(newTestDB(t))
	issue := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedBill(t, repo, "B-100", "john_doe", 45, issue, issue.AddDate(0, 0, 14))

	require.NoError(t, repo.MarkOverdue("B-100"))
	require.NoError(t, repo.MarkOverdue("B-100"))

	bill, err := repo.GetByBillID("B-100")
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusOverdue, bill.Status)
}

func TestBillRepositoryStatusAggregates(t *testing.T) {
	repo := NewBillRepository(newTestDB(t))
	issue := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	due := issue.AddDate(0, 0, 14)
	seedBill(t, repo, "B-1", "a", 10, issue, due)
	seedBill(t, repo, "B-2", "b", 20, issue, due)
	seedBill(t, repo, "B-3", "b", 40, issue, due)
	require.NoError(t, repo.MarkPaid("B-3"))

	pending, err := repo.CountByStatus("pending")
	require.NoError(t, err)
	assert.EqualValues(t, 2, pending)

	total, err := repo.SumAmountByStatus("Pending")
	require.NoError(t, err)
	assert.InDelta(t, 30.0, total, 0.001)

	subs, err := repo.DistinctSubscribers()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, subs)
}

func TestBillRepositoryOverdueCandidates(t *testing.T) {
	repo := NewBillRepository(newTestDB(t))
	issue := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedBill(t, repo, "B-PAST", "a", 10, issue, issue.AddDate(0, 0, 5))
	seedBill(t, repo, "B-FUTURE", "a", 10, issue, issue.AddDate(0, 1, 0))
	seedBill(t, repo, "B-PAID", "a", 10, issue, issue.AddDate(0, 0, 5))
	require.NoError(t, repo.MarkPaid("B-PAID"))

	candidates, err := repo.GetOverdueCandidates(issue.AddDate(0, 0, 10))
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "B-PAST", candidates[0].BillID)
}

func TestBillRepositorySearch(t *testing.T) {
	repo := NewBillRepository(newTestDB(t))
	issue := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedBill(t, repo, "B-100", "john_doe", 45, issue, issue.AddDate(0, 0, 14))
	seedBill(t, repo, "B-200", "jane_roe", 30, issue, issue.AddDate(0, 0, 14))

	matches, err := repo.Search("john")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "B-100", matches[0].BillID)

	matches, err = repo.Search("B-")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

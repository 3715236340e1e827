package overdue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/utilityhub/UtilityHub/app/models"
	"github.com/utilityhub/UtilityHub/app/repository"
)

func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Bill{}, &models.MeterReading{}))
	return repository.NewRepositories(db)
}

func TestSweepOnceMarksPastDueWork(t *testing.T) {
	repos := newTestRepos(t)
	issue := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	bill := func(id string, due time.Time) {
		require.NoError(t, repos.Bill.Create(models.NewBill(models.BillParams{
			BillID: id, Subscriber: "s", Services: "Water", Reference: "R-" + id,
			Amount: 10, IssueDate: issue, DueDate: due,
		})))
	}
	bill("B-PAST", issue.AddDate(0, 0, 5))
	bill("B-FUTURE", issue.AddDate(1, 0, 0))

	require.NoError(t, repos.MeterReading.Create(models.NewMeterReading(models.MeterReadingParams{
		Subscriber: "s", Service: "Water", Reading: 1, Date: issue,
	})))

	sweeper := NewSweeper(repos.Bill, repos.MeterReading, time.Minute, 30*24*time.Hour)
	asOf := issue.AddDate(0, 3, 0)

	bills, readings, err := sweeper.SweepOnce(asOf)
	require.NoError(t, err)
	assert.Equal(t, 1, bills)
	assert.EqualValues(t, 1, readings)

	past, err := repos.Bill.GetByBillID("B-PAST")
	require.NoError(t, err)
	assert.True(t, past.IsOverdue())

	future, err := repos.Bill.GetByBillID("B-FUTURE")
	require.NoError(t, err)
	assert.True(t, future.IsPending())

	// sweeping again finds nothing new
	bills, readings, err = sweeper.SweepOnce(asOf)
	require.NoError(t, err)
	assert.Zero(t, bills)
	assert.Zero(t, readings)
}

func TestSweeperStartStop(t *testing.T) {
	repos := newTestRepos(t)
	require.NoError(t, repos.Bill.Create(models.NewBill(models.BillParams{
		BillID: "B-1", Subscriber: "s", Services: "Water", Reference: "R1",
		Amount:    10,
		IssueDate: time.Now().AddDate(0, -1, 0),
		DueDate:   time.Now().AddDate(0, 0, -7),
	})))

	sweeper := NewSweeper(repos.Bill, repos.MeterReading, 10*time.Millisecond, time.Hour)
	sweeper.Start()

	assert.Eventually(t, func() bool {
		b, err := repos.Bill.GetByBillID("B-1")
		return err == nil && b.IsOverdue()
	}, time.Second, 10*time.Millisecond)

	sweeper.Stop()
	// Stop twice must not panic
	sweeper.Stop()
}

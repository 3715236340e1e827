package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/utilityhub/UtilityHub/app/models"
)

// newTestDB opens a fresh in-memory database with the core schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Bill{},
		&models.Payment{},
		&models.MeterReading{},
		&models.Complaint{},
		&models.Service{},
		&models.User{},
	))
	return db
}

func seedBill(t *testing.T, repo BillRepository, billID, subscriber string, amount float64, issue, due time.Time) *models.Bill {
	t.Helper()
	bill := models.NewBill(models.BillParams{
		BillID:     billID,
		Subscriber: subscriber,
		Services:   "Water",
		Reference:  "REF-" + billID,
		Amount:     amount,
		IssueDate:  issue,
		DueDate:    due,
	})
	require.NoError(t, repo.Create(bill))
	return bill
}

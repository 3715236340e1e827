package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/utilityhub/UtilityHub/app/models"
	"github.com/utilityhub/UtilityHub/app/repository"
)

// newTestApp wires the create handlers against a fresh in-memory store.
// The global factory is set once for the package; each call re-migrates
// nothing, so tests share one schema but use distinct business keys.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	if repository.GetGlobalFactory() == nil {
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
		repository.InitializeFactory(db)
	}

	app := fiber.New()
	app.Post("/bills", HandleCreateBill)
	app.Post("/payments", HandleCreatePayment)
	app.Post("/meter-readings", HandleCreateMeterReading)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCreateBillRejectsMalformedDates(t *testing.T) {
	app := newTestApp(t)

	status := postJSON(t, app, "/bills",
		`{"bill_id":"B-CTL-1","subscriber":"a","services":"Water","reference":"R1",
		  "amount":10,"issue_date":"not-a-date","due_date":"2024-01-15"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status = postJSON(t, app, "/bills",
		`{"bill_id":"B-CTL-1","subscriber":"a","services":"Water","reference":"R1",
		  "amount":10,"issue_date":"2024-01-01","due_date":"15.01.2024"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status = postJSON(t, app, "/bills",
		`{"bill_id":"B-CTL-1","subscriber":"a","services":"Water","reference":"R1",
		  "amount":10,"issue_date":"2024-01-01","due_date":"2024-01-15"}`)
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestCreatePaymentRejectsMalformedDate(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, repository.GetGlobalFactory().GetBillRepository().Create(
		models.NewBill(models.BillParams{
			BillID: "B-CTL-2", Subscriber: "a", Services: "Water", Reference: "R2",
			Amount: 20, IssueDate: time.Now(), DueDate: time.Now().AddDate(0, 0, 14),
		})))

	status := postJSON(t, app, "/payments",
		`{"payment_id":"P-CTL-1","bill_id":"B-CTL-2","subscriber":"a","method":"Card",
		  "reference":"PAY-CTL-1","amount":20,"date":"yesterday"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	// an absent date is still fine and defaults to now
	status = postJSON(t, app, "/payments",
		`{"payment_id":"P-CTL-1","bill_id":"B-CTL-2","subscriber":"a","method":"Card",
		  "reference":"PAY-CTL-1","amount":20}`)
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestCreateMeterReadingRejectsMalformedDate(t *testing.T) {
	app := newTestApp(t)

	status := postJSON(t, app, "/meter-readings",
		`{"subscriber":"a","service":"Water","unit":"m3","reading":10,"date":"soon"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

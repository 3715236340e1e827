package repository

import (
	"strings"
	"time"

	"github.com/utilityhub/UtilityHub/app/models"
	"gorm.io/gorm"
)

// paymentRepository implements the PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create validates the payment and inserts it. Invalid payments are
// rejected before any store round-trip.
func (r *paymentRepository) Create(payment *models.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	return r.db.Create(payment).Error
}

// GetByID retrieves a payment by its primary key
func (r *paymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByPaymentID retrieves a payment by its external payment reference
func (r *paymentRepository) GetByPaymentID(paymentID string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.Where("payment_id = ?", paymentID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByReference retrieves a payment by its unique transaction reference
func (r *paymentRepository) GetByReference(reference string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.Where("reference = ?", reference).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByBillID retrieves every payment recorded against one bill
func (r *paymentRepository) GetByBillID(billID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("bill_id = ?", billID).Order("date DESC").Find(&payments).Error
	return payments, err
}

// GetBySubscriber retrieves all payments of one subscriber, most recent first
func (r *paymentRepository) GetBySubscriber(subscriber string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("subscriber = ?", subscriber).Order("date DESC").Find(&payments).Error
	return payments, err
}

// GetByMethod retrieves all payments made with one method
func (r *paymentRepository) GetByMethod(method string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("LOWER(method) = LOWER(?)", method).Order("date DESC").Find(&payments).Error
	return payments, err
}

// GetByStatus retrieves all payments in the given status, matched case-insensitively
func (r *paymentRepository) GetByStatus(status string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("LOWER(status) = LOWER(?)", status).Order("date DESC").Find(&payments).Error
	return payments, err
}

// List retrieves a paginated list of payments, most recent first
func (r *paymentRepository) List(offset, limit int) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Order("date DESC, id DESC").Offset(offset).Limit(limit).Find(&payments).Error
	return payments, err
}

// Search matches the term as a substring across the payment's text columns
func (r *paymentRepository) Search(query string) ([]models.Payment, error) {
	var payments []models.Payment
	pattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.Where("payment_id LIKE ? OR bill_id LIKE ? OR subscriber LIKE ? OR reference LIKE ?",
		pattern, pattern, pattern, pattern).Find(&payments).Error
	return payments, err
}

// Complete marks a payment Completed. Status is only ever changed by an
// explicit call like this one.
func (r *paymentRepository) Complete(paymentID string) error {
	return r.db.Model(&models.Payment{}).Where("payment_id = ?", paymentID).
		Update("status", models.PaymentStatusCompleted).Error
}

// Fail marks a payment Failed
func (r *paymentRepository) Fail(paymentID string) error {
	return r.db.Model(&models.Payment{}).Where("payment_id = ?", paymentID).
		Update("status", models.PaymentStatusFailed).Error
}

// Count returns the total number of payments
func (r *paymentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Payment{}).Count(&count).Error
	return count, err
}

// TotalCompletedInRange sums completed-payment revenue inside the date range
func (r *paymentRepository) TotalCompletedInRange(from, to time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.Payment{}).
		Where("LOWER(status) = LOWER(?) AND date BETWEEN ? AND ?", models.PaymentStatusCompleted, from, to).
		Select("COALESCE(SUM(amount), 0)").Row().Scan(&total)
	return total, err
}

// DistinctMethods lists every payment method seen so far
func (r *paymentRepository) DistinctMethods() ([]string, error) {
	var methods []string
	err := r.db.Model(&models.Payment{}).Distinct("method").Order("method ASC").
		Pluck("method", &methods).Error
	return methods, err
}

// Delete removes a payment by its primary key
func (r *paymentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Payment{}, id).Error
}

package repository

import (
	"strings"
	"time"

	"github.com/utilityhub/UtilityHub/app/models"
	"gorm.io/gorm"
)

// billRepository implements the BillRepository interface
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository instance
func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{db: db}
}

// Create validates the bill and inserts it. Invalid bills are rejected
// before any store round-trip.
func (r *billRepository) Create(bill *models.Bill) error {
	if err := bill.Validate(); err != nil {
		return err
	}
	return r.db.Create(bill).Error
}

// GetByID retrieves a bill by its primary key
func (r *billRepository) GetByID(id uint) (*models.Bill, error) {
	var bill models.Bill
	if err := r.db.First(&bill, id).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

// GetByBillID retrieves a bill by its external billing reference
func (r *billRepository) GetByBillID(billID string) (*models.Bill, error) {
	var bill models.Bill
	if err := r.db.Where("bill_id = ?", billID).First(&bill).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

// GetBySubscriber retrieves all bills of one subscriber, most recent first
func (r *billRepository) GetBySubscriber(subscriber string) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.Where("subscriber = ?", subscriber).Order("issue_date DESC").Find(&bills).Error
	return bills, err
}

// GetByStatus retrieves all bills in the given status, matched case-insensitively
func (r *billRepository) GetByStatus(status string) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.Where("LOWER(status) = LOWER(?)", status).Order("issue_date DESC").Find(&bills).Error
	return bills, err
}

// GetOverdueCandidates returns pending bills whose due date has passed
func (r *billRepository) GetOverdueCandidates(asOf time.Time) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.Where("LOWER(status) = LOWER(?) AND due_date < ?", models.BillStatusPending, asOf).
		Order("due_date ASC").Find(&bills).Error
	return bills, err
}

// List retrieves a paginated list of bills, most recent first
func (r *billRepository) List(offset, limit int) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.Order("issue_date DESC, id DESC").Offset(offset).Limit(limit).Find(&bills).Error
	return bills, err
}

// Search matches the term as a substring across the bill's text columns
func (r *billRepository) Search(query string) ([]models.Bill, error) {
	var bills []models.Bill
	pattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.Where("bill_id LIKE ? OR subscriber LIKE ? OR services LIKE ? OR reference LIKE ?",
		pattern, pattern, pattern, pattern).Find(&bills).Error
	return bills, err
}

// UpdateStatus sets the bill status; last writer wins. Returns the number
// of rows changed so callers can detect a missing bill.
func (r *billRepository) UpdateStatus(billID, status string) (int64, error) {
	result := r.db.Model(&models.Bill{}).Where("bill_id = ?", billID).Update("status", status)
	return result.RowsAffected, result.Error
}

// MarkPaid transitions a bill to Paid
func (r *billRepository) MarkPaid(billID string) error {
	_, err := r.UpdateStatus(billID, models.BillStatusPaid)
	return err
}

// MarkOverdue transitions a bill to Overdue. Calling it again leaves the
// status unchanged.
func (r *billRepository) MarkOverdue(billID string) error {
	_, err := r.UpdateStatus(billID, models.BillStatusOverdue)
	return err
}

// Count returns the total number of bills
func (r *billRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Bill{}).Count(&count).Error
	return count, err
}

// CountByStatus counts bills in the given status
func (r *billRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Bill{}).Where("LOWER(status) = LOWER(?)", status).Count(&count).Error
	return count, err
}

// SumAmountByStatus totals the billed amount over one status
func (r *billRepository) SumAmountByStatus(status string) (float64, error) {
	var total float64
	err := r.db.Model(&models.Bill{}).Where("LOWER(status) = LOWER(?)", status).
		Select("COALESCE(SUM(amount), 0)").Row().Scan(&total)
	return total, err
}

// DistinctSubscribers lists every subscriber that has at least one bill
func (r *billRepository) DistinctSubscribers() ([]string, error) {
	var subscribers []string
	err := r.db.Model(&models.Bill{}).Distinct("subscriber").Order("subscriber ASC").
		Pluck("subscriber", &subscribers).Error
	return subscribers, err
}

// Delete removes a bill by its primary key
func (r *billRepository) Delete(id uint) error {
	return r.db.Delete(&models.Bill{}, id).Error
}

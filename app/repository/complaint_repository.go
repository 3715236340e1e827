package repository

import (
	"strings"
	"time"

	"github.com/utilityhub/UtilityHub/app/models"
	"gorm.io/gorm"
)

// complaintRepository implements the ComplaintRepository interface
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository instance
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

// Create validates the complaint and inserts it
func (r *complaintRepository) Create(complaint *models.Complaint) error {
	if err := complaint.Validate(); err != nil {
		return err
	}
	return r.db.Create(complaint).Error
}

// GetByID retrieves a complaint by its primary key
func (r *complaintRepository) GetByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := r.db.First(&complaint, id).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

// GetByComplaintID retrieves a complaint by its ticket reference
func (r *complaintRepository) GetByComplaintID(complaintID string) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := r.db.Where("complaint_id = ?", complaintID).First(&complaint).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

// GetBySubscriber retrieves all complaints of one subscriber, newest first
func (r *complaintRepository) GetBySubscriber(subscriber string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.Where("subscriber = ?", subscriber).Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

// GetByStatus retrieves all complaints in the given status, matched case-insensitively
func (r *complaintRepository) GetByStatus(status string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.Where("LOWER(status) = LOWER(?)", status).Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

// GetByCategory retrieves all complaints in one category
func (r *complaintRepository) GetByCategory(category string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.Where("LOWER(category) = LOWER(?)", category).Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

// GetByPriority retrieves all complaints at one priority
func (r *complaintRepository) GetByPriority(priority string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.Where("LOWER(priority) = LOWER(?)", priority).Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

// List retrieves a paginated list of complaints, newest first
func (r *complaintRepository) List(offset, limit int) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&complaints).Error
	return complaints, err
}

// Search matches the term as a substring across the complaint's text columns
func (r *complaintRepository) Search(query string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	pattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.Where("complaint_id LIKE ? OR subscriber LIKE ? OR title LIKE ? OR category LIKE ?",
		pattern, pattern, pattern, pattern).Find(&complaints).Error
	return complaints, err
}

// UpdateStatus sets the complaint status; last writer wins
func (r *complaintRepository) UpdateStatus(complaintID, status string) error {
	return r.db.Model(&models.Complaint{}).Where("complaint_id = ?", complaintID).
		Update("status", status).Error
}

// UpdatePriority sets the complaint priority
func (r *complaintRepository) UpdatePriority(complaintID, priority string) error {
	return r.db.Model(&models.Complaint{}).Where("complaint_id = ?", complaintID).
		Update("priority", priority).Error
}

// Assign hands a complaint to an assignee and stamps the assignment time
func (r *complaintRepository) Assign(complaintID, assignee string) error {
	now := time.Now()
	return r.db.Model(&models.Complaint{}).Where("complaint_id = ?", complaintID).
		Updates(map[string]interface{}{"assigned_to": assignee, "assigned_at": now}).Error
}

// Resolve marks a complaint Resolved and stamps the resolution time
func (r *complaintRepository) Resolve(complaintID string) error {
	now := time.Now()
	return r.db.Model(&models.Complaint{}).Where("complaint_id = ?", complaintID).
		Updates(map[string]interface{}{"status": models.ComplaintStatusResolved, "resolved_at": now}).Error
}

// Count returns the total number of complaints
func (r *complaintRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Complaint{}).Count(&count).Error
	return count, err
}

// CountByStatus counts complaints in the given status
func (r *complaintRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Complaint{}).Where("LOWER(status) = LOWER(?)", status).Count(&count).Error
	return count, err
}

// DistinctCategories lists every complaint category seen so far
func (r *complaintRepository) DistinctCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Complaint{}).Distinct("category").Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// Delete removes a complaint by its primary key
func (r *complaintRepository) Delete(id uint) error {
	return r.db.Delete(&models.Complaint{}, id).Error
}

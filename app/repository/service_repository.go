package repository

import (
	"strings"

	"github.com/utilityhub/UtilityHub/app/models"
	"gorm.io/gorm"
)

// serviceRepository implements the ServiceRepository interface
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository instance
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

// Create validates the service and inserts it
func (r *serviceRepository) Create(service *models.Service) error {
	if err := service.Validate(); err != nil {
		return err
	}
	return r.db.Create(service).Error
}

// GetByID retrieves a service by its primary key
func (r *serviceRepository) GetByID(id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// GetByName retrieves a service by its unique name
func (r *serviceRepository) GetByName(name string) (*models.Service, error) {
	var service models.Service
	if err := r.db.Where("name = ?", name).First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// GetByCategory retrieves all services in one category, alphabetically
func (r *serviceRepository) GetByCategory(category string) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("LOWER(category) = LOWER(?)", category).Order("name ASC").Find(&services).Error
	return services, err
}

// GetActive retrieves every active service, alphabetically
func (r *serviceRepository) GetActive() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("LOWER(status) = LOWER(?)", models.ServiceStatusActive).
		Order("name ASC").Find(&services).Error
	return services, err
}

// List retrieves a paginated list of services in alphabetical order
func (r *serviceRepository) List(offset, limit int) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Order("name ASC").Offset(offset).Limit(limit).Find(&services).Error
	return services, err
}

// Search matches the term as a substring across name, description and category
func (r *serviceRepository) Search(query string) ([]models.Service, error) {
	var services []models.Service
	pattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.Where("name LIKE ? OR description LIKE ? OR category LIKE ?",
		pattern, pattern, pattern).Find(&services).Error
	return services, err
}

// Deactivate soft-deletes a service by flipping it to Inactive
func (r *serviceRepository) Deactivate(id uint) error {
	return r.db.Model(&models.Service{}).Where("id = ?", id).
		Update("status", models.ServiceStatusInactive).Error
}

// UpdatePrice sets a new price for the service
func (r *serviceRepository) UpdatePrice(id uint, price float64) error {
	return r.db.Model(&models.Service{}).Where("id = ?", id).Update("price", price).Error
}

// Count returns the total number of services
func (r *serviceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Service{}).Count(&count).Error
	return count, err
}

// DistinctCategories lists every service category
func (r *serviceRepository) DistinctCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Service{}).Distinct("category").Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// Delete hard-deletes a service; Deactivate is the usual path
func (r *serviceRepository) Delete(id uint) error {
	return r.db.Delete(&models.Service{}, id).Error
}

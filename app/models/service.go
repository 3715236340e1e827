package models

import (
	"time"
)

const (
	ServiceStatusActive   = "Active"
	ServiceStatusInactive = "Inactive"
)

// Service is a billable utility offering (Water, Electricity, ...).
// Deactivation is a soft delete; rows are only removed by an explicit
// hard delete.
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ServiceID   string    `gorm:"type:varchar(50);uniqueIndex" json:"service_id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex" json:"name" validate:"required"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"type:varchar(100);index" json:"category" validate:"required"`
	Price       float64   `gorm:"type:decimal(12,2)" json:"price" validate:"gte=0"`
	Status      string    `gorm:"type:varchar(20);default:'Active'" json:"status" validate:"required"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ServiceParams holds the caller-supplied fields for a new service.
type ServiceParams struct {
	ServiceID   string
	Name        string
	Description string
	Category    string
	Price       float64
	Status      string
}

// NewService builds a service from params, defaulting the status to Active.
func NewService(p ServiceParams) *Service {
	status := p.Status
	if status == "" {
		status = ServiceStatusActive
	}
	return &Service{
		ServiceID:   p.ServiceID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Status:      status,
	}
}

var serviceRules = []rule{
	{"Name", "required", "name is required"},
	{"Category", "required", "category is required"},
	{"Status", "required", "status is required"},
	{"Price", "gte", "price must not be negative"},
}

// ValidationErrors lists every violated rule; empty means the service is valid.
func (s *Service) ValidationErrors() []string {
	return collectViolations(s, serviceRules)
}

func (s *Service) IsValid() bool {
	return len(s.ValidationErrors()) == 0
}

func (s *Service) Validate() error {
	if violations := s.ValidationErrors(); len(violations) > 0 {
		return &ValidationError{Entity: "service", Violations: violations}
	}
	return nil
}

func (s *Service) IsActive() bool {
	return statusEquals(s.Status, ServiceStatusActive)
}

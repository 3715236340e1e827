package repository

import (
	"time"

	"github.com/utilityhub/UtilityHub/app/models"
)

// BillRepository defines the interface for bill-related database operations
type BillRepository interface {
	Create(bill *models.Bill) error
	GetByID(id uint) (*models.Bill, error)
	GetByBillID(billID string) (*models.Bill, error)
	GetBySubscriber(subscriber string) ([]models.Bill, error)
	GetByStatus(status string) ([]models.Bill, error)
	GetOverdueCandidates(asOf time.Time) ([]models.Bill, error)
	List(offset, limit int) ([]models.Bill, error)
	Search(query string) ([]models.Bill, error)
	UpdateStatus(billID, status string) (int64, error)
	MarkPaid(billID string) error
	MarkOverdue(billID string) error
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
	SumAmountByStatus(status string) (float64, error)
	DistinctSubscribers() ([]string, error)
	Delete(id uint) error
}

// PaymentRepository defines the interface for payment-related database operations
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	GetByPaymentID(paymentID string) (*models.Payment, error)
	GetByReference(reference string) (*models.Payment, error)
	GetByBillID(billID string) ([]models.Payment, error)
	GetBySubscriber(subscriber string) ([]models.Payment, error)
	GetByMethod(method string) ([]models.Payment, error)
	GetByStatus(status string) ([]models.Payment, error)
	List(offset, limit int) ([]models.Payment, error)
	Search(query string) ([]models.Payment, error)
	Complete(paymentID string) error
	Fail(paymentID string) error
	Count() (int64, error)
	TotalCompletedInRange(from, to time.Time) (float64, error)
	DistinctMethods() ([]string, error)
	Delete(id uint) error
}

// MeterReadingRepository defines the interface for meter-reading database operations
type MeterReadingRepository interface {
	Create(reading *models.MeterReading) error
	GetByID(id uint) (*models.MeterReading, error)
	GetBySubscriber(subscriber string) ([]models.MeterReading, error)
	GetBySubscriberAndService(subscriber, service string) ([]models.MeterReading, error)
	GetByStatus(status string) ([]models.MeterReading, error)
	List(offset, limit int) ([]models.MeterReading, error)
	Search(query string) ([]models.MeterReading, error)
	Verify(id uint) error
	MarkOverdue(id uint) error
	MarkPendingOverdueBefore(cutoff time.Time) (int64, error)
	Count() (int64, error)
	AverageConsumption(subscriber, service string, from, to time.Time) (float64, error)
	MaxReading(subscriber, service string, from, to time.Time) (float64, error)
	DistinctSubscribers() ([]string, error)
	DistinctUnits() ([]string, error)
	Delete(id uint) error
}

// ComplaintRepository defines the interface for complaint-related database operations
type ComplaintRepository interface {
	Create(complaint *models.Complaint) error
	GetByID(id uint) (*models.Complaint, error)
	GetByComplaintID(complaintID string) (*models.Complaint, error)
	GetBySubscriber(subscriber string) ([]models.Complaint, error)
	GetByStatus(status string) ([]models.Complaint, error)
	GetByCategory(category string) ([]models.Complaint, error)
	GetByPriority(priority string) ([]models.Complaint, error)
	List(offset, limit int) ([]models.Complaint, error)
	Search(query string) ([]models.Complaint, error)
	UpdateStatus(complaintID, status string) error
	UpdatePriority(complaintID, priority string) error
	Assign(complaintID, assignee string) error
	Resolve(complaintID string) error
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
	DistinctCategories() ([]string, error)
	Delete(id uint) error
}

// ServiceRepository defines the interface for service-catalog database operations
type ServiceRepository interface {
	Create(service *models.Service) error
	GetByID(id uint) (*models.Service, error)
	GetByName(name string) (*models.Service, error)
	GetByCategory(category string) ([]models.Service, error)
	GetActive() ([]models.Service, error)
	List(offset, limit int) ([]models.Service, error)
	Search(query string) ([]models.Service, error)
	Deactivate(id uint) error
	UpdatePrice(id uint, price float64) error
	Count() (int64, error)
	DistinctCategories() ([]string, error)
	Delete(id uint) error
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	CountNewSince(since time.Time) (int64, error)
	Delete(id uint) error
}

// Repositories bundles one instance of every repository
type Repositories struct {
	Bill         BillRepository
	Payment      PaymentRepository
	MeterReading MeterReadingRepository
	Complaint    ComplaintRepository
	Service      ServiceRepository
	User         UserRepository
}

package repository

import (
	"sync"

	"gorm.io/gorm"
)

// NewRepositories wires every repository against the given database handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Bill:         NewBillRepository(db),
		Payment:      NewPaymentRepository(db),
		MeterReading: NewMeterReadingRepository(db),
		Complaint:    NewComplaintRepository(db),
		Service:      NewServiceRepository(db),
		User:         NewUserRepository(db),
	}
}

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

func (f *Factory) GetBillRepository() BillRepository {
	return f.GetRepositories().Bill
}

func (f *Factory) GetPaymentRepository() PaymentRepository {
	return f.GetRepositories().Payment
}

func (f *Factory) GetMeterReadingRepository() MeterReadingRepository {
	return f.GetRepositories().MeterReading
}

func (f *Factory) GetComplaintRepository() ComplaintRepository {
	return f.GetRepositories().Complaint
}

func (f *Factory) GetServiceRepository() ServiceRepository {
	return f.GetRepositories().Service
}

func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory
func GetGlobalFactory() *Factory {
	return globalFactory
}

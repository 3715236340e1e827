package repository

import (
	"strings"
	"time"

	"github.com/utilityhub/UtilityHub/app/models"
	"gorm.io/gorm"
)

// meterReadingRepository implements the MeterReadingRepository interface
type meterReadingRepository struct {
	db *gorm.DB
}

// NewMeterReadingRepository creates a new meter reading repository instance
func NewMeterReadingRepository(db *gorm.DB) MeterReadingRepository {
	return &meterReadingRepository{db: db}
}

// Create validates the reading and inserts it. Consumption stays exactly
// as the caller supplied it.
func (r *meterReadingRepository) Create(reading *models.MeterReading) error {
	if err := reading.Validate(); err != nil {
		return err
	}
	return r.db.Create(reading).Error
}

// GetByID retrieves a reading by its primary key
func (r *meterReadingRepository) GetByID(id uint) (*models.MeterReading, error) {
	var reading models.MeterReading
	if err := r.db.First(&reading, id).Error; err != nil {
		return nil, err
	}
	return &reading, nil
}

// GetBySubscriber retrieves all readings of one subscriber, most recent first
func (r *meterReadingRepository) GetBySubscriber(subscriber string) ([]models.MeterReading, error) {
	var readings []models.MeterReading
	err := r.db.Where("subscriber = ?", subscriber).Order("date DESC").Find(&readings).Error
	return readings, err
}

// GetBySubscriberAndService narrows readings to one meter
func (r *meterReadingRepository) GetBySubscriberAndService(subscriber, service string) ([]models.MeterReading, error) {
	var readings []models.MeterReading
	err := r.db.Where("subscriber = ? AND service = ?", subscriber, service).
		Order("date DESC").Find(&readings).Error
	return readings, err
}

// GetByStatus retrieves all readings in the given status, matched case-insensitively
func (r *meterReadingRepository) GetByStatus(status string) ([]models.MeterReading, error) {
	var readings []models.MeterReading
	err := r.db.Where("LOWER(status) = LOWER(?)", status).Order("date DESC").Find(&readings).Error
	return readings, err
}

// List retrieves a paginated list of readings, most recent first
func (r *meterReadingRepository) List(offset, limit int) ([]models.MeterReading, error) {
	var readings []models.MeterReading
	err := r.db.Order("date DESC, id DESC").Offset(offset).Limit(limit).Find(&readings).Error
	return readings, err
}

// Search matches the term as a substring across subscriber and service
func (r *meterReadingRepository) Search(query string) ([]models.MeterReading, error) {
	var readings []models.MeterReading
	pattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.Where("subscriber LIKE ? OR service LIKE ?", pattern, pattern).Find(&readings).Error
	return readings, err
}

// Verify marks a reading Verified. Verifying twice leaves the status unchanged.
func (r *meterReadingRepository) Verify(id uint) error {
	return r.db.Model(&models.MeterReading{}).Where("id = ?", id).
		Update("status", models.ReadingStatusVerified).Error
}

// MarkOverdue marks a reading Overdue. Marking twice leaves the status unchanged.
func (r *meterReadingRepository) MarkOverdue(id uint) error {
	return r.db.Model(&models.MeterReading{}).Where("id = ?", id).
		Update("status", models.ReadingStatusOverdue).Error
}

// MarkPendingOverdueBefore flips every Pending reading older than the cutoff
// to Overdue and reports how many rows changed. Safe to run repeatedly.
func (r *meterReadingRepository) MarkPendingOverdueBefore(cutoff time.Time) (int64, error) {
	result := r.db.Model(&models.MeterReading{}).
		Where("LOWER(status) = LOWER(?) AND date < ?", models.ReadingStatusPending, cutoff).
		Update("status", models.ReadingStatusOverdue)
	return result.RowsAffected, result.Error
}

// Count returns the total number of readings
func (r *meterReadingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.MeterReading{}).Count(&count).Error
	return count, err
}

// AverageConsumption averages the caller-supplied consumption over one meter
// in a date range; zero when no readings match.
func (r *meterReadingRepository) AverageConsumption(subscriber, service string, from, to time.Time) (float64, error) {
	var avg float64
	err := r.db.Model(&models.MeterReading{}).
		Where("subscriber = ? AND service = ? AND date BETWEEN ? AND ?", subscriber, service, from, to).
		Select("COALESCE(AVG(consumption), 0)").Row().Scan(&avg)
	return avg, err
}

// MaxReading returns the highest raw reading over one meter in a date range
func (r *meterReadingRepository) MaxReading(subscriber, service string, from, to time.Time) (float64, error) {
	var max float64
	err := r.db.Model(&models.MeterReading{}).
		Where("subscriber = ? AND service = ? AND date BETWEEN ? AND ?", subscriber, service, from, to).
		Select("COALESCE(MAX(reading), 0)").Row().Scan(&max)
	return max, err
}

// DistinctSubscribers lists every subscriber that has at least one reading
func (r *meterReadingRepository) DistinctSubscribers() ([]string, error) {
	var subscribers []string
	err := r.db.Model(&models.MeterReading{}).Distinct("subscriber").Order("subscriber ASC").
		Pluck("subscriber", &subscribers).Error
	return subscribers, err
}

// DistinctUnits lists every measurement unit seen across readings
func (r *meterReadingRepository) DistinctUnits() ([]string, error) {
	var units []string
	err := r.db.Model(&models.MeterReading{}).Where("unit <> ''").
		Distinct("unit").Order("unit ASC").Pluck("unit", &units).Error
	return units, err
}

// Delete removes a reading by its primary key
func (r *meterReadingRepository) Delete(id uint) error {
	return r.db.Delete(&models.MeterReading{}, id).Error
}

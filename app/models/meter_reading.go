package models

import (
	"time"
)

const (
	ReadingStatusPending  = "Pending"
	ReadingStatusVerified = "Verified"
	ReadingStatusOverdue  = "Overdue"

	ReadingTypeCurrent  = "Current"
	ReadingTypePrevious = "Previous"
)

// MeterReading is a recorded utility-usage value for a subscriber/service
// pair at a point in time. Consumption is caller-supplied and is never
// recomputed from reading deltas.
type MeterReading struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Subscriber  string    `gorm:"type:varchar(100);index" json:"subscriber" validate:"required"`
	Service     string    `gorm:"type:varchar(100);index" json:"service" validate:"required"`
	Unit        string    `gorm:"type:varchar(20)" json:"unit"`
	Reading     float64   `json:"reading" validate:"gte=0"`
	Consumption int       `json:"consumption"`
	Date        time.Time `json:"date" validate:"required"`
	Type        string    `gorm:"type:varchar(20);default:'Current'" json:"type"`
	Status      string    `gorm:"type:varchar(20);default:'Pending';index" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// MeterReadingParams holds the caller-supplied fields for a new reading.
type MeterReadingParams struct {
	Subscriber  string
	Service     string
	Unit        string
	Reading     float64
	Consumption int
	Date        time.Time
	Type        string
	Status      string
}

// NewMeterReading builds a reading from params. Type defaults to Current,
// status to Pending. Construction never fails.
func NewMeterReading(p MeterReadingParams) *MeterReading {
	readingType := p.Type
	if readingType == "" {
		readingType = ReadingTypeCurrent
	}
	status := p.Status
	if status == "" {
		status = ReadingStatusPending
	}
	return &MeterReading{
		Subscriber:  p.Subscriber,
		Service:     p.Service,
		Unit:        p.Unit,
		Reading:     p.Reading,
		Consumption: p.Consumption,
		Date:        p.Date,
		Type:        readingType,
		Status:      status,
	}
}

var meterReadingRules = []rule{
	{"Subscriber", "required", "subscriber is required"},
	{"Service", "required", "service is required"},
	{"Reading", "gte", "reading must not be negative"},
	{"Date", "required", "date is required"},
}

// ValidationErrors lists every violated rule; empty means the reading is valid.
func (m *MeterReading) ValidationErrors() []string {
	return collectViolations(m, meterReadingRules)
}

func (m *MeterReading) IsValid() bool {
	return len(m.ValidationErrors()) == 0
}

func (m *MeterReading) Validate() error {
	if violations := m.ValidationErrors(); len(violations) > 0 {
		return &ValidationError{Entity: "meter reading", Violations: violations}
	}
	return nil
}

func (m *MeterReading) IsPending() bool {
	return statusEquals(m.Status, ReadingStatusPending)
}

func (m *MeterReading) IsVerified() bool {
	return statusEquals(m.Status, ReadingStatusVerified)
}

func (m *MeterReading) IsOverdue() bool {
	return statusEquals(m.Status, ReadingStatusOverdue)
}

func (m *MeterReading) IsCurrent() bool {
	return statusEquals(m.Type, ReadingTypeCurrent)
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeterReadingDefaultsAndValidation(t *testing.T) {
	m := NewMeterReading(MeterReadingParams{
		Subscriber:  "john_doe",
		Service:     "Electricity",
		Unit:        "kWh",
		Reading:     1540.5,
		Consumption: 120,
		Date:        time.Now(),
	})

	assert.Equal(t, ReadingTypeCurrent, m.Type)
	assert.Equal(t, ReadingStatusPending, m.Status)
	require.NoError(t, m.Validate())

	m.Reading = -1
	assert.False(t, m.IsValid())
	assert.Equal(t, []string{"reading must not be negative"}, m.ValidationErrors())
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceDefaultsAndValidation(t *testing.T) {
	s := NewService(ServiceParams{
		ServiceID: "S-1",
		Name:      "Water",
		Category:  "Utility",
		Price:     12.50,
	})

	assert.Equal(t, ServiceStatusActive, s.Status)
	assert.True(t, s.IsActive())
	require.NoError(t, s.Validate())

	s.Price = -0.01
	assert.Contains(t, s.ValidationErrors(), "price must not be negative")
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComplaintDefaults(t *testing.T) {
	c := NewComplaint(ComplaintParams{
		ComplaintID: "C-1",
		Subscriber:  "john_doe",
		Title:       "No water pressure",
		Category:    "Water",
	})

	assert.Equal(t, ComplaintStatusOpen, c.Status)
	assert.Equal(t, PriorityMedium, c.Priority)
	assert.False(t, c.CreatedAt.IsZero())
	require.NoError(t, c.Validate())
}

func TestComplaintValidationEnumeratesAllViolations(t *testing.T) {
	c := &Complaint{}

	assert.Equal(t, []string{
		"complaint id is required",
		"subscriber is required",
		"title is required",
		"category is required",
		"created date is required",
	}, c.ValidationErrors())
}

func TestComplaintPredicatesIgnoreCase(t *testing.T) {
	c := &Complaint{Status: "resolved", Priority: "URGENT"}

	assert.True(t, c.IsResolved())
	assert.True(t, c.IsUrgent())
	assert.False(t, c.IsOpen())
}

func TestComplaintResolutionHours(t *testing.T) {
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	assigned := created.Add(4 * time.Hour)

	c := &Complaint{CreatedAt: created, AssignedTo: "tech_1", AssignedAt: &assigned}
	hours, ok := c.ResolutionHours()
	require.True(t, ok)
	assert.InDelta(t, 4.0, hours, 0.001)

	unassigned := &Complaint{CreatedAt: created}
	_, ok = unassigned.ResolutionHours()
	assert.False(t, ok)
}

package models

import (
	"time"
)

const (
	ComplaintStatusOpen       = "Open"
	ComplaintStatusInProgress = "In Progress"
	ComplaintStatusResolved   = "Resolved"
	ComplaintStatusClosed     = "Closed"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

// Complaint is a subscriber-filed issue ticket. Status, priority and
// assignment are mutated independently by later calls.
type Complaint struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ComplaintID string     `gorm:"type:varchar(50);uniqueIndex" json:"complaint_id" validate:"required"`
	Subscriber  string     `gorm:"type:varchar(100);index" json:"subscriber" validate:"required"`
	Title       string     `gorm:"type:varchar(200)" json:"title" validate:"required"`
	Description string     `gorm:"type:text" json:"description"`
	Category    string     `gorm:"type:varchar(100);index" json:"category" validate:"required"`
	Status      string     `gorm:"type:varchar(20);default:'Open';index" json:"status"`
	Priority    string     `gorm:"type:varchar(20);default:'Medium'" json:"priority"`
	AssignedTo  string     `gorm:"type:varchar(100)" json:"assigned_to"`
	AssignedAt  *time.Time `gorm:"type:timestamp;default:null" json:"assigned_at,omitempty"`
	ResolvedAt  *time.Time `gorm:"type:timestamp;default:null" json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at" validate:"required"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// ComplaintParams holds the caller-supplied fields for a new complaint.
type ComplaintParams struct {
	ComplaintID string
	Subscriber  string
	Title       string
	Description string
	Category    string
	Priority    string
	CreatedAt   time.Time
}

// NewComplaint builds a complaint from params: status Open, priority
// defaulting to Medium, creation time set now unless supplied.
func NewComplaint(p ComplaintParams) *Complaint {
	priority := p.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &Complaint{
		ComplaintID: p.ComplaintID,
		Subscriber:  p.Subscriber,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Status:      ComplaintStatusOpen,
		Priority:    priority,
		CreatedAt:   createdAt,
	}
}

var complaintRules = []rule{
	{"ComplaintID", "required", "complaint id is required"},
	{"Subscriber", "required", "subscriber is required"},
	{"Title", "required", "title is required"},
	{"Category", "required", "category is required"},
	{"CreatedAt", "required", "created date is required"},
}

// ValidationErrors lists every violated rule; empty means the complaint is valid.
func (c *Complaint) ValidationErrors() []string {
	return collectViolations(c, complaintRules)
}

func (c *Complaint) IsValid() bool {
	return len(c.ValidationErrors()) == 0
}

func (c *Complaint) Validate() error {
	if violations := c.ValidationErrors(); len(violations) > 0 {
		return &ValidationError{Entity: "complaint", Violations: violations}
	}
	return nil
}

func (c *Complaint) IsOpen() bool {
	return statusEquals(c.Status, ComplaintStatusOpen)
}

func (c *Complaint) IsInProgress() bool {
	return statusEquals(c.Status, ComplaintStatusInProgress)
}

func (c *Complaint) IsResolved() bool {
	return statusEquals(c.Status, ComplaintStatusResolved)
}

func (c *Complaint) IsClosed() bool {
	return statusEquals(c.Status, ComplaintStatusClosed)
}

func (c *Complaint) IsUrgent() bool {
	return statusEquals(c.Priority, PriorityUrgent)
}

func (c *Complaint) IsAssigned() bool {
	return c.AssignedTo != "" && c.AssignedAt != nil
}

// ResolutionHours is the time between creation and assignment, in hours.
// The second return is false for unassigned complaints, which are excluded
// from resolution-time averages rather than counted as zero.
func (c *Complaint) ResolutionHours() (float64, bool) {
	if !c.IsAssigned() {
		return 0, false
	}
	return c.AssignedAt.Sub(c.CreatedAt).Hours(), true
}

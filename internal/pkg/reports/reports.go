package reports

import (
	"gorm.io/gorm"
)

// Engine builds aggregated report documents straight from the store. It
// keeps no state of its own; every report is a function of a date range
// over whatever the store holds right now.
//
// Each report runs its sub-queries inside one read transaction so the
// sections of a single document describe one consistent snapshot. A
// sub-query that fails contributes its zero value instead of aborting
// the report; documents always come back fully structured.
type Engine struct {
	db *gorm.DB
}

// NewEngine creates a report engine on the given database handle.
func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

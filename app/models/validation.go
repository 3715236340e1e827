package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries every rule an entity violates, in a stable order:
// identity fields first, then numeric fields, then date fields, then
// cross-field rules.
type ValidationError struct {
	Entity     string
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %s", e.Entity, strings.Join(e.Violations, "; "))
}

// rule maps one (struct field, validator tag) pair to a human-readable message.
// The slice order of a model's rule table is the order violations are reported in.
type rule struct {
	field   string
	tag     string
	message string
}

// collectViolations runs the struct tags and translates each failed rule
// through the given table. Failures the table does not cover are appended
// after the tabled ones so nothing is silently dropped.
func collectViolations(entity interface{}, rules []rule) []string {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	failed := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed[fe.Field()+":"+fe.Tag()] = true
	}

	var violations []string
	covered := make(map[string]bool, len(rules))
	for _, r := range rules {
		key := r.field + ":" + r.tag
		covered[key] = true
		if failed[key] {
			violations = append(violations, r.message)
		}
	}
	for _, fe := range fieldErrs {
		if !covered[fe.Field()+":"+fe.Tag()] {
			violations = append(violations, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return violations
}

// statusEquals compares status-like fields without relying on canonical casing.
func statusEquals(value, want string) bool {
	return strings.EqualFold(strings.TrimSpace(value), want)
}

package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/utilityhub/UtilityHub/app/models"
)

const (
	defaultPageSize = 25
	maxPageSize     = 200
)

// pagination reads offset/limit query params with sane bounds
func pagination(c *fiber.Ctx) (int, int) {
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit := c.QueryInt("limit", defaultPageSize)
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return offset, limit
}

// dateRange reads from/to query params, defaulting to the last 30 days.
// Accepts RFC3339 or plain dates.
func dateRange(c *fiber.Ctx) (time.Time, time.Time) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if v := c.Query("from"); v != "" {
		if parsed, err := parseDate(v); err == nil {
			from = parsed
		}
	}
	if v := c.Query("to"); v != "" {
		if parsed, err := parseDate(v); err == nil {
			to = parsed
		}
	}
	return from, to
}

func parseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// parseOptionalDate treats an empty field as absent. A non-empty field that
// does not parse is a caller error, not a silent zero time.
func parseOptionalDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return parseDate(value)
}

// storeError maps repository errors to a JSON response: validation
// failures carry the full violation list, absence is 404, anything else
// is a plain 500.
func storeError(c *fiber.Ctx, err error) error {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":      "validation_failed",
			"message":    vErr.Error(),
			"violations": vErr.Violations,
		})
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not_found", "message": "Resource not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal_server_error", "message": "Store operation failed",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "bad_request", "message": message,
	})
}

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/utilityhub/UtilityHub/app/models"
	"github.com/utilityhub/UtilityHub/app/repository"
)

type meterReadingRequest struct {
	Subscriber  string  `json:"subscriber"`
	Service     string  `json:"service"`
	Unit        string  `json:"unit"`
	Reading     float64 `json:"reading"`
	Consumption int     `json:"consumption"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
}

// HandleCreateMeterReading records a new reading
func HandleCreateMeterReading(c *fiber.Ctx) error {
	var req meterReadingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return badRequest(c, "date is not a valid date")
	}
	reading := models.NewMeterReading(models.MeterReadingParams{
		Subscriber:  req.Subscriber,
		Service:     req.Service,
		Unit:        req.Unit,
		Reading:     req.Reading,
		Consumption: req.Consumption,
		Date:        date,
		Type:        req.Type,
	})

	repo := repository.GetGlobalFactory().GetMeterReadingRepository()
	if err := repo.Create(reading); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reading)
}

// HandleListMeterReadings lists readings filtered by subscriber/service/status
func HandleListMeterReadings(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetMeterReadingRepository()

	if q := c.Query("q"); q != "" {
		readings, err := repo.Search(q)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"readings": readings})
	}
	if subscriber := c.Query("subscriber"); subscriber != "" {
		if service := c.Query("service"); service != "" {
			readings, err := repo.GetBySubscriberAndService(subscriber, service)
			if err != nil {
				return storeError(c, err)
			}
			return c.JSON(fiber.Map{"readings": readings})
		}
		readings, err := repo.GetBySubscriber(subscriber)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"readings": readings})
	}
	if status := c.Query("status"); status != "" {
		readings, err := repo.GetByStatus(status)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"readings": readings})
	}

	offset, limit := pagination(c)
	readings, err := repo.List(offset, limit)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"readings": readings, "offset": offset, "limit": limit})
}

// HandleVerifyMeterReading marks a reading Verified; repeat calls are harmless
func HandleVerifyMeterReading(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "Invalid reading id")
	}

	repo := repository.GetGlobalFactory().GetMeterReadingRepository()
	if _, err := repo.GetByID(uint(id)); err != nil {
		return storeError(c, err)
	}
	if err := repo.Verify(uint(id)); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "status": models.ReadingStatusVerified})
}

// HandleMarkMeterReadingOverdue marks a reading Overdue
func HandleMarkMeterReadingOverdue(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "Invalid reading id")
	}

	repo := repository.GetGlobalFactory().GetMeterReadingRepository()
	if _, err := repo.GetByID(uint(id)); err != nil {
		return storeError(c, err)
	}
	if err := repo.MarkOverdue(uint(id)); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "status": models.ReadingStatusOverdue})
}

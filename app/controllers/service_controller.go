package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/utilityhub/UtilityHub/app/models"
	"github.com/utilityhub/UtilityHub/app/repository"
)

type serviceRequest struct {
	ServiceID   string  `json:"service_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
}

// HandleCreateService adds a service to the catalog
func HandleCreateService(c *fiber.Ctx) error {
	var req serviceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	service := models.NewService(models.ServiceParams{
		ServiceID:   req.ServiceID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Status:      req.Status,
	})

	repo := repository.GetGlobalFactory().GetServiceRepository()
	if err := repo.Create(service); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// HandleListServices lists the catalog, optionally filtered
func HandleListServices(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetServiceRepository()

	if q := c.Query("q"); q != "" {
		services, err := repo.Search(q)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"services": services})
	}
	if category := c.Query("category"); category != "" {
		services, err := repo.GetByCategory(category)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"services": services})
	}
	if c.QueryBool("active", false) {
		services, err := repo.GetActive()
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"services": services})
	}

	offset, limit := pagination(c)
	services, err := repo.List(offset, limit)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"services": services, "offset": offset, "limit": limit})
}

// HandleGetService returns one service by name
func HandleGetService(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetServiceRepository()
	service, err := repo.GetByName(c.Params("name"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(service)
}

// HandleDeactivateService soft-deletes a service
func HandleDeactivateService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "Invalid service id")
	}

	repo := repository.GetGlobalFactory().GetServiceRepository()
	if _, err := repo.GetByID(uint(id)); err != nil {
		return storeError(c, err)
	}
	if err := repo.Deactivate(uint(id)); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "status": models.ServiceStatusInactive})
}

// HandleUpdateServicePrice sets a new price
func HandleUpdateServicePrice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "Invalid service id")
	}
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&req); err != nil || req.Price < 0 {
		return badRequest(c, "price must not be negative")
	}

	repo := repository.GetGlobalFactory().GetServiceRepository()
	if _, err := repo.GetByID(uint(id)); err != nil {
		return storeError(c, err)
	}
	if err := repo.UpdatePrice(uint(id), req.Price); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "price": req.Price})
}

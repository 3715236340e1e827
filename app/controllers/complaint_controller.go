package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/utilityhub/UtilityHub/app/models"
	"github.com/utilityhub/UtilityHub/app/repository"
)

type complaintRequest struct {
	ComplaintID string `json:"complaint_id"`
	Subscriber  string `json:"subscriber"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

// HandleCreateComplaint files a new complaint
func HandleCreateComplaint(c *fiber.Ctx) error {
	var req complaintRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	complaint := models.NewComplaint(models.ComplaintParams{
		ComplaintID: req.ComplaintID,
		Subscriber:  req.Subscriber,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	})

	repo := repository.GetGlobalFactory().GetComplaintRepository()
	if err := repo.Create(complaint); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(complaint)
}

// HandleGetComplaint returns one complaint by its ticket reference
func HandleGetComplaint(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetComplaintRepository()
	complaint, err := repo.GetByComplaintID(c.Params("complaintId"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(complaint)
}

// HandleListComplaints lists complaints filtered by subscriber, status,
// category, priority or a search term
func HandleListComplaints(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetComplaintRepository()

	if q := c.Query("q"); q != "" {
		complaints, err := repo.Search(q)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"complaints": complaints})
	}
	if subscriber := c.Query("subscriber"); subscriber != "" {
		complaints, err := repo.GetBySubscriber(subscriber)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"complaints": complaints})
	}
	if status := c.Query("status"); status != "" {
		complaints, err := repo.GetByStatus(status)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"complaints": complaints})
	}
	if category := c.Query("category"); category != "" {
		complaints, err := repo.GetByCategory(category)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"complaints": complaints})
	}
	if priority := c.Query("priority"); priority != "" {
		complaints, err := repo.GetByPriority(priority)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(fiber.Map{"complaints": complaints})
	}

	offset, limit := pagination(c)
	complaints, err := repo.List(offset, limit)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"complaints": complaints, "offset": offset, "limit": limit})
}

// HandleAssignComplaint hands a complaint to an assignee
func HandleAssignComplaint(c *fiber.Ctx) error {
	var req struct {
		AssignedTo string `json:"assigned_to"`
	}
	if err := c.BodyParser(&req); err != nil || req.AssignedTo == "" {
		return badRequest(c, "assigned_to is required")
	}

	repo := repository.GetGlobalFactory().GetComplaintRepository()
	complaintID := c.Params("complaintId")
	if _, err := repo.GetByComplaintID(complaintID); err != nil {
		return storeError(c, err)
	}
	if err := repo.Assign(complaintID, req.AssignedTo); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"complaint_id": complaintID, "assigned_to": req.AssignedTo})
}

// HandleUpdateComplaintStatus sets a complaint's status
func HandleUpdateComplaintStatus(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return badRequest(c, "status is required")
	}

	repo := repository.GetGlobalFactory().GetComplaintRepository()
	complaintID := c.Params("complaintId")
	if _, err := repo.GetByComplaintID(complaintID); err != nil {
		return storeError(c, err)
	}
	if err := repo.UpdateStatus(complaintID, req.Status); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"complaint_id": complaintID, "status": req.Status})
}

// HandleUpdateComplaintPriority sets a complaint's priority
func HandleUpdateComplaintPriority(c *fiber.Ctx) error {
	var req struct {
		Priority string `json:"priority"`
	}
	if err := c.BodyParser(&req); err != nil || req.Priority == "" {
		return badRequest(c, "priority is required")
	}

	repo := repository.GetGlobalFactory().GetComplaintRepository()
	complaintID := c.Params("complaintId")
	if _, err := repo.GetByComplaintID(complaintID); err != nil {
		return storeError(c, err)
	}
	if err := repo.UpdatePriority(complaintID, req.Priority); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"complaint_id": complaintID, "priority": req.Priority})
}

// HandleResolveComplaint marks a complaint Resolved
func HandleResolveComplaint(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetComplaintRepository()
	complaintID := c.Params("complaintId")
	if _, err := repo.GetByComplaintID(complaintID); err != nil {
		return storeError(c, err)
	}
	if err := repo.Resolve(complaintID); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"complaint_id": complaintID, "status": models.ComplaintStatusResolved})
}

package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/utilityhub/UtilityHub/app/repository"
)

// HandleLogin performs the single credential-match check. On success the
// repository stamps the user's last login.
func HandleLogin(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
		return badRequest(c, "username and password are required")
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized", "message": "Invalid credentials",
			})
		}
		return storeError(c, err)
	}

	return c.JSON(user)
}

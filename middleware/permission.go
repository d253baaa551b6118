package middleware

import (
	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireCompanyRole returns a middleware that checks the caller holds the
// given role in at least one company membership. The matched membership's
// company id is stored in c.Locals("companyId") for the handler.
func RequireCompanyRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get user ID from context (set by the auth middleware)
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: User ID not found",
				"data":    nil,
			})
		}

		var memberships []models.CompanyMembership
		err := database.Database.Db.Where("user_id = ? AND is_deleted = false", userID).
			Find(&memberships).Error

		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"status":  false,
					"message": "You do not have permission to access this resource!",
					"data":    nil,
				})
			}
			// Other DB error
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  false,
				"message": "Server error while checking permissions!",
				"data":    nil,
			})
		}

		for _, m := range memberships {
			if m.HasRole(requiredRole) {
				c.Locals("companyId", m.CompanyID)
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  false,
			"message": "You do not have permission to access this resource!",
			"data":    nil,
		})
	}
}

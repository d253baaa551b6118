package userValidator

import (
	"lms/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Profile validator middleware for the first-login profile form
func Profile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			Locale    string `json:"locale"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.FirstName = strings.TrimSpace(reqData.FirstName)
		reqData.LastName = strings.TrimSpace(reqData.LastName)

		if reqData.FirstName == "" {
			errors["first_name"] = "First name is required!"
		}
		if reqData.LastName == "" {
			errors["last_name"] = "Last name is required!"
		}
		if reqData.Locale != "" && len(reqData.Locale) != 2 {
			errors["locale"] = "Locale must be a two-letter code!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}

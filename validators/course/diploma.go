package courseValidator

import (
	"lms/middleware"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DiplomaTemplate validator middleware for the certificate layout form
func DiplomaTemplate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TitleText         string `json:"title_text"`
			BodyText          string `json:"body_text"`
			FooterText        string `json:"footer_text"`
			AccentColor       string `json:"accent_color"`
			LogoURL           string `json:"logo_url"`
			SignatureImageURL string `json:"signature_image_url"`
			SignatureName     string `json:"signature_name"`
			SignatureTitle    string `json:"signature_title"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.AccentColor != "" && !hexColorRe.MatchString(reqData.AccentColor) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"accent_color": "Accent color must be a #RRGGBB hex value!",
			})
		}

		c.Locals("validatedDiplomaTemplate", reqData)
		return c.Next()
	}
}

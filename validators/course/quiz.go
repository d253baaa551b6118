package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// Completion validator middleware for marking a module complete or incomplete
func Completion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Complete bool `json:"complete"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedCompletion", reqData)
		return c.Next()
	}
}

// QuizSubmission validator middleware for a full module answer set
func QuizSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers map[string]string `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": "Answers are required!",
			})
		}

		c.Locals("validatedQuizSubmission", reqData)
		return c.Next()
	}
}

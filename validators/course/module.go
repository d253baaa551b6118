package courseValidator

import (
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// fillQuestionIDs assigns ids to questions and alternatives that arrive
// without one, so quiz answers can always be keyed.
func fillQuestionIDs(questions []courseModels.Question) {
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.New().String()
		}
		for j := range questions[i].Alternatives {
			if questions[i].Alternatives[j].ID == "" {
				questions[i].Alternatives[j].ID = uuid.New().String()
			}
		}
	}
}

func validateModuleBody(errors map[string]string, moduleType string, passPercent int, questions []courseModels.Question) {
	if moduleType != "" && moduleType != courseModels.ModuleTypeNormal && moduleType != courseModels.ModuleTypeExam {
		errors["module_type"] = "Module type must be NORMAL or EXAM!"
	}
	if passPercent < 0 || passPercent > 100 {
		errors["pass_percent"] = "Pass percent must be between 0 and 100!"
	}
	for _, q := range questions {
		if !hasText(q.Title) {
			errors["questions"] = "Every question needs a title in at least one language!"
			return
		}
		if len(q.Alternatives) < 2 {
			errors["questions"] = "Every question needs at least two alternatives!"
			return
		}
	}
}

// Module validator middleware for module creation
func Module() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       map[string]string                   `json:"title"`
			Summary     map[string]string                   `json:"summary"`
			Body        map[string]string                   `json:"body"`
			Media       map[string][]courseModels.MediaItem `json:"media"`
			Questions   []courseModels.Question             `json:"questions"`
			OrderIndex  int                                 `json:"order_index"`
			ModuleType  string                              `json:"module_type"`
			PassPercent int                                 `json:"pass_percent"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !hasText(reqData.Title) {
			errors["title"] = "Title is required in at least one language!"
		}
		validateModuleBody(errors, reqData.ModuleType, reqData.PassPercent, reqData.Questions)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		fillQuestionIDs(reqData.Questions)

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// ModuleUpdate validator middleware. Absent fields stay untouched.
func ModuleUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       map[string]string                   `json:"title"`
			Summary     map[string]string                   `json:"summary"`
			Body        map[string]string                   `json:"body"`
			Media       map[string][]courseModels.MediaItem `json:"media"`
			Questions   []courseModels.Question             `json:"questions"`
			OrderIndex  int                                 `json:"order_index"`
			ModuleType  string                              `json:"module_type"`
			PassPercent int                                 `json:"pass_percent"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Title) > 0 && !hasText(reqData.Title) {
			errors["title"] = "Title cannot be blank!"
		}
		validateModuleBody(errors, reqData.ModuleType, reqData.PassPercent, reqData.Questions)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		fillQuestionIDs(reqData.Questions)

		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

package courseValidator

import (
	"lms/middleware"
	courseModels "lms/models/course"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// hasText reports whether a locale map carries at least one non-empty value.
func hasText(m map[string]string) bool {
	for _, v := range m {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

func isValidExpirationType(t string) bool {
	switch t {
	case "", courseModels.ExpirationNone, courseModels.ExpirationDays, courseModels.ExpirationMonths, courseModels.ExpirationDate:
		return true
	}
	return false
}

// CourseID parses and validates the :id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required in the URL!", nil)
		}

		courseID, err := strconv.Atoi(idStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CourseAndModuleID parses the :course_id and :module_id route parameters
func CourseAndModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("course_id"))
		moduleIDStr := strings.TrimSpace(c.Params("module_id"))

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// List parses optional page and limit query parameters
func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if pageStr := c.Query("page"); pageStr != "" {
			page, err := strconv.Atoi(pageStr)
			if err != nil || page <= 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid page number!", nil)
			}
			reqData.Page = &page
		}
		if limitStr := c.Query("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit <= 0 || limit > 100 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid limit!", nil)
			}
			reqData.Limit = &limit
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// Course validator middleware for course creation
func Course() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title           map[string]string `json:"title"`
			Description     map[string]string `json:"description"`
			CoverImageURL   string            `json:"cover_image_url"`
			ExpirationType  string            `json:"expiration_type"`
			ExpirationValue int               `json:"expiration_value"`
			ExpirationDate  *time.Time        `json:"expiration_date"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Title needs text in at least one locale
		if !hasText(reqData.Title) {
			errors["title"] = "Title is required in at least one language!"
		}

		if !isValidExpirationType(reqData.ExpirationType) {
			errors["expiration_type"] = "Invalid expiration type!"
		}
		if (reqData.ExpirationType == courseModels.ExpirationDays || reqData.ExpirationType == courseModels.ExpirationMonths) && reqData.ExpirationValue <= 0 {
			errors["expiration_value"] = "Expiration value must be positive!"
		}
		if reqData.ExpirationType == courseModels.ExpirationDate && reqData.ExpirationDate == nil {
			errors["expiration_date"] = "Expiration date is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseUpdate validator middleware. Absent fields stay untouched.
func CourseUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title           map[string]string `json:"title"`
			Description     map[string]string `json:"description"`
			CoverImageURL   *string           `json:"cover_image_url"`
			Status          string            `json:"status"`
			ExpirationType  string            `json:"expiration_type"`
			ExpirationValue *int              `json:"expiration_value"`
			ExpirationDate  *time.Time        `json:"expiration_date"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Title) > 0 && !hasText(reqData.Title) {
			errors["title"] = "Title cannot be blank!"
		}
		if reqData.Status != "" && reqData.Status != "ACTIVE" && reqData.Status != "INACTIVE" {
			errors["status"] = "Status must be ACTIVE or INACTIVE!"
		}
		if !isValidExpirationType(reqData.ExpirationType) {
			errors["expiration_type"] = "Invalid expiration type!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

package customerValidator

import (
	"lms/middleware"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// CustomerID parses and validates the :id route parameter
func CustomerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Customer ID is required in the URL!", nil)
		}

		customerID, err := strconv.Atoi(idStr)
		if err != nil || customerID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid customer ID!", nil)
		}

		c.Locals("customerID", customerID)
		return c.Next()
	}
}

// Customer validator middleware for customer creation
func Customer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name          string `json:"name"`
			ContactName   string `json:"contact_name"`
			ContactEmail  string `json:"contact_email"`
			ContactPhone  string `json:"contact_phone"`
			Address       string `json:"address"`
			City          string `json:"city"`
			PostalCode    string `json:"postal_code"`
			ParentID      *uint  `json:"parent_id"`
			AllowSubunits bool   `json:"allow_subunits"`
			CourseIDs     []uint `json:"course_ids"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		if len(reqData.Name) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}
		if reqData.ContactEmail != "" && !isValidEmail(reqData.ContactEmail) {
			errors["contact_email"] = "Invalid contact email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCustomer", reqData)
		return c.Next()
	}
}

// CustomerUpdate validator middleware. Absent fields stay untouched.
func CustomerUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name          string  `json:"name"`
			ContactName   *string `json:"contact_name"`
			ContactEmail  *string `json:"contact_email"`
			ContactPhone  *string `json:"contact_phone"`
			Address       *string `json:"address"`
			City          *string `json:"city"`
			PostalCode    *string `json:"postal_code"`
			Status        string  `json:"status"`
			AllowSubunits *bool   `json:"allow_subunits"`
			CourseIDs     *[]uint `json:"course_ids"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != "" && reqData.Status != "ACTIVE" && reqData.Status != "INACTIVE" {
			errors["status"] = "Status must be ACTIVE or INACTIVE!"
		}
		if reqData.ContactEmail != nil && *reqData.ContactEmail != "" && !isValidEmail(*reqData.ContactEmail) {
			errors["contact_email"] = "Invalid contact email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCustomerUpdate", reqData)
		return c.Next()
	}
}

// Invite validator middleware for inviting an email to a customer's course
func Invite() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint   `json:"course_id"`
			Email    string `json:"email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if reqData.Email != "" && !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInvite", reqData)
		return c.Next()
	}
}

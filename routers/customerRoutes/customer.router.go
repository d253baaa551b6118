package customerRoutes

import (
	customerController "lms/controllers/customer"
	"lms/middleware"
	"lms/models"
	courseValidators "lms/validators/course"
	customerValidators "lms/validators/customer"

	"github.com/gofiber/fiber/v2"
)

// SetupCustomerRoutes sets up all admin customer management routes
func SetupCustomerRoutes(app *fiber.App) {
	adminOnly := middleware.RequireCompanyRole(models.CompanyRoleAdmin)

	customerGroup := app.Group("/admin/customer")

	customerGroup.Post("/create", middleware.JWTMiddleware, adminOnly, customerValidators.Customer(), customerController.AdminCreateCustomer)
	customerGroup.Get("/list", middleware.JWTMiddleware, adminOnly, courseValidators.List(), customerController.AdminGetAllCustomers)
	customerGroup.Put("/:id", middleware.JWTMiddleware, adminOnly, customerValidators.CustomerID(), customerValidators.CustomerUpdate(), customerController.AdminUpdateCustomer)
	customerGroup.Delete("/:id", middleware.JWTMiddleware, adminOnly, customerValidators.CustomerID(), customerController.AdminDeleteCustomer)
	customerGroup.Get("/:id/subunits", middleware.JWTMiddleware, adminOnly, customerValidators.CustomerID(), customerController.AdminGetCustomerSubunits)
	customerGroup.Post("/:id/invite", middleware.JWTMiddleware, adminOnly, customerValidators.CustomerID(), customerValidators.Invite(), customerController.AdminInviteToCourse)
}

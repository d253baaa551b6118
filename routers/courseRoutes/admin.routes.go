package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminOnly := middleware.RequireCompanyRole(models.CompanyRoleAdmin)

	adminGroup := app.Group("/admin/course")

	// Course CRUD
	adminGroup.Post("/create", middleware.JWTMiddleware, adminOnly, validators.Course(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", middleware.JWTMiddleware, adminOnly, validators.List(), controllers.AdminGetAllCourses)
	adminGroup.Get("/:id", middleware.JWTMiddleware, adminOnly, validators.CourseID(), controllers.AdminGetCourseDetails)
	adminGroup.Put("/:id", middleware.JWTMiddleware, adminOnly, validators.CourseID(), validators.CourseUpdate(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, adminOnly, validators.CourseID(), controllers.AdminDeleteCourse)

	// Module management
	adminGroup.Post("/:id/module", middleware.JWTMiddleware, adminOnly, validators.CourseID(), validators.Module(), controllers.AdminCreateModule)
	adminGroup.Get("/:id/modules", middleware.JWTMiddleware, adminOnly, validators.CourseID(), controllers.AdminListModules)
	adminGroup.Put("/:course_id/module/:module_id", middleware.JWTMiddleware, adminOnly, validators.CourseAndModuleID(), validators.ModuleUpdate(), controllers.AdminUpdateModule)
	adminGroup.Delete("/:course_id/module/:module_id", middleware.JWTMiddleware, adminOnly, validators.CourseAndModuleID(), controllers.AdminDeleteModule)

	// Diploma template
	diplomaGroup := app.Group("/admin/diploma")
	diplomaGroup.Get("/template", middleware.JWTMiddleware, adminOnly, controllers.AdminGetDiplomaTemplate)
	diplomaGroup.Put("/template", middleware.JWTMiddleware, adminOnly, validators.DiplomaTemplate(), controllers.AdminUpdateDiplomaTemplate)
	diplomaGroup.Get("/preview", middleware.JWTMiddleware, adminOnly, controllers.AdminPreviewDiploma)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard")
	dashGroup.Get("/stats", middleware.JWTMiddleware, adminOnly, controllers.AdminGetDashboard)
}

package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all learner-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Assigned course listing and details
	userGroup.Get("/list", middleware.JWTMiddleware, controllers.GetMyCourses)
	userGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Progress tracking
	userGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetProgress)
	userGroup.Post("/:course_id/module/:module_id/complete", middleware.JWTMiddleware, validators.CourseAndModuleID(), validators.Completion(), controllers.SetModuleCompletion)

	// Quiz
	userGroup.Get("/:course_id/module/:module_id/quiz", middleware.JWTMiddleware, validators.CourseAndModuleID(), controllers.GetModuleQuiz)
	userGroup.Post("/:course_id/module/:module_id/quiz/submit", middleware.JWTMiddleware, validators.CourseAndModuleID(), validators.QuizSubmission(), controllers.SubmitQuiz)

	// Diploma download
	userGroup.Get("/:id/diploma", middleware.JWTMiddleware, validators.CourseID(), controllers.IssueDiploma)
}

package userProfileRoutes

import (
	userProfileController "lms/controllers/userControllers"
	"lms/middleware"
	userProfileValidator "lms/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userProfileController.GetProfile)
	userGroup.Post("/profile/complete", middleware.JWTMiddleware, userProfileValidator.Profile(), userProfileController.CompleteProfile)
}

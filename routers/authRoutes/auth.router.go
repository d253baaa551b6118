package authRoutes

import (
	authControllers "lms/controllers/auth"
	"lms/middleware"
	authValidators "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/invite/signup", authValidators.InviteSignup(), authControllers.InviteSignup)
	authGroup.Post("/invite/redeem", middleware.JWTMiddleware, authValidators.InviteRedeem(), authControllers.InviteRedeem)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/magiclink", authValidators.MagicLinkRequest(), authControllers.RequestMagicLink)
	authGroup.Get("/magiclink/:code", authControllers.ResolveMagicLink)
}

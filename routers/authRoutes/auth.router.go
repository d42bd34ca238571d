package authRoutes

import (
	authControllers "github.com/solankismit/exambuddy/controllers/auth"
	"github.com/solankismit/exambuddy/middleware"
	authValidators "github.com/solankismit/exambuddy/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/provider", authValidators.ProviderLogin(), authControllers.ProviderLogin)
	authGroup.Post("/refresh", authValidators.Refresh(), authControllers.Refresh)
	authGroup.Post("/logout", authValidators.Refresh(), authControllers.Logout)
	authGroup.Get("/me", middleware.JWTMiddleware, authControllers.Me)
}

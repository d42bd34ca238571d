package userRoutes

import (
	userControllers "github.com/solankismit/exambuddy/controllers/userControllers"
	"github.com/solankismit/exambuddy/middleware"
	userValidators "github.com/solankismit/exambuddy/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/admin/users", middleware.JWTMiddleware, middleware.RequireAdmin)

	userGroup.Get("/", userControllers.ListUsers)
	userGroup.Get("/:id", userValidators.TargetUserID(), userControllers.GetUser)
	userGroup.Put("/:id", userValidators.TargetUserID(), userControllers.UpdateUser)
	userGroup.Delete("/:id", userValidators.TargetUserID(), userControllers.DeleteUser)
	userGroup.Patch("/:id/role", userValidators.TargetUserID(), userValidators.UpdateRole(), userControllers.UpdateUserRole)
}

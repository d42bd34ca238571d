package userValidator

import (
	"strings"

	"github.com/solankismit/exambuddy/middleware"

	"github.com/gofiber/fiber/v2"
)

func TargetUserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id parameter!", nil)
		}
		c.Locals("targetUserID", uint(id))
		return c.Next()
	}
}

// UpdateRole ensures the role payload names a supported role
func UpdateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Role string `json:"role"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		role := strings.ToUpper(strings.TrimSpace(reqData.Role))
		if role != "USER" && role != "ADMIN" {
			errors["role"] = "Role must be USER or ADMIN!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

package quizValidator

import (
	"github.com/solankismit/exambuddy/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("quizId")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quizId parameter!", nil)
		}
		c.Locals("quizID", uint(id))
		return c.Next()
	}
}

func AttemptID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("attemptId")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid attemptId parameter!", nil)
		}
		c.Locals("attemptID", uint(id))
		return c.Next()
	}
}

// SubmitAttempt validates the response list of a quiz submission
func SubmitAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Responses []struct {
				QuestionID     uint   `json:"question_id" validate:"required"`
				SelectedAnswer string `json:"selected_answer" validate:"required,oneof=A B C D"`
			} `json:"responses" validate:"required,dive"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Responses":
					errors["responses"] = "Responses are required!"
				case "QuestionID":
					errors["question_id"] = "Question id is required for every response!"
				case "SelectedAnswer":
					errors["selected_answer"] = "Selected answer must be one of A, B, C or D!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

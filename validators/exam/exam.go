package examValidator

import (
	"strings"

	"github.com/solankismit/exambuddy/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// idParam parses a positive integer route parameter into Locals
func idParam(param, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt(param)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+param+" parameter!", nil)
		}
		c.Locals(localKey, uint(id))
		return c.Next()
	}
}

func ExamID() fiber.Handler    { return idParam("id", "examID") }
func SubjectID() fiber.Handler { return idParam("id", "subjectID") }
func ChapterID() fiber.Handler { return idParam("id", "chapterID") }
func QuizID() fiber.Handler    { return idParam("id", "quizID") }
func QuestionID() fiber.Handler {
	return idParam("id", "questionID")
}

// CreateEntity validates the shared name/description payload used by exams,
// subjects and chapters
func CreateEntity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// CreateQuiz validates the quiz creation payload
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// CreateQuestion validates a new question's options and answer label
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Text          string `json:"text" validate:"required"`
			OptionA       string `json:"option_a" validate:"required"`
			OptionB       string `json:"option_b" validate:"required"`
			OptionC       string `json:"option_c" validate:"required"`
			OptionD       string `json:"option_d" validate:"required"`
			CorrectAnswer string `json:"correct_answer" validate:"required,oneof=A B C D"`
			Complexity    string `json:"complexity" validate:"omitempty,oneof=EASY MEDIUM HARD"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Text":
					errors["text"] = "Question text is required!"
				case "OptionA":
					errors["option_a"] = "Option A is required!"
				case "OptionB":
					errors["option_b"] = "Option B is required!"
				case "OptionC":
					errors["option_c"] = "Option C is required!"
				case "OptionD":
					errors["option_d"] = "Option D is required!"
				case "CorrectAnswer":
					errors["correct_answer"] = "Correct answer must be one of A, B, C or D!"
				case "Complexity":
					errors["complexity"] = "Complexity must be EASY, MEDIUM or HARD!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// UpdateQuestion validates the optional fields of a question update
func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CorrectAnswer *string `json:"correct_answer" validate:"omitempty,oneof=A B C D"`
			Complexity    *string `json:"complexity" validate:"omitempty,oneof=EASY MEDIUM HARD"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "CorrectAnswer":
					errors["correct_answer"] = "Correct answer must be one of A, B, C or D!"
				case "Complexity":
					errors["complexity"] = "Complexity must be EASY, MEDIUM or HARD!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

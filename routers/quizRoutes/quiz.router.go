package quizRoutes

import (
	quizControllers "github.com/solankismit/exambuddy/controllers/quiz"
	"github.com/solankismit/exambuddy/middleware"
	quizValidators "github.com/solankismit/exambuddy/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quizzes", middleware.JWTMiddleware)

	quizGroup.Get("/:quizId/questions", quizValidators.QuizID(), quizControllers.GetQuizQuestions)
	quizGroup.Post("/:quizId/attempts", quizValidators.QuizID(), quizValidators.SubmitAttempt(), quizControllers.SubmitQuizAttempt)
	quizGroup.Get("/:quizId/attempts", quizValidators.QuizID(), quizControllers.GetQuizAttempts)
	quizGroup.Get("/:quizId/attempts/:attemptId", quizValidators.QuizID(), quizValidators.AttemptID(), quizControllers.GetQuizAttemptDetail)
}

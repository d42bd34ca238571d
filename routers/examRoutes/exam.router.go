package examRoutes

import (
	controllers "github.com/solankismit/exambuddy/controllers/exam"
	"github.com/solankismit/exambuddy/middleware"
	validators "github.com/solankismit/exambuddy/validators/exam"

	"github.com/gofiber/fiber/v2"
)

// SetupExamRoutes sets up the learner-facing content browsing routes
func SetupExamRoutes(app *fiber.App) {
	app.Get("/exams", middleware.JWTMiddleware, controllers.GetAllExams)
	app.Get("/exams/:id", middleware.JWTMiddleware, validators.ExamID(), controllers.GetExamDetails)
	app.Get("/subjects/:id", middleware.JWTMiddleware, validators.SubjectID(), controllers.GetSubjectDetails)
	app.Get("/chapters/:id", middleware.JWTMiddleware, validators.ChapterID(), controllers.GetChapterDetails)
	app.Get("/quizzes/:id", middleware.JWTMiddleware, validators.QuizID(), controllers.GetQuizDetails)
}

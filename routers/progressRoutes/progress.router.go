package progressRoutes

import (
	progressControllers "github.com/solankismit/exambuddy/controllers/progress"
	"github.com/solankismit/exambuddy/middleware"
	examValidators "github.com/solankismit/exambuddy/validators/exam"

	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/progress", middleware.JWTMiddleware)

	progressGroup.Get("/", progressControllers.GetProgressOverview)
	progressGroup.Get("/streak", progressControllers.GetStreak)
	progressGroup.Get("/exams/:id", examValidators.ExamID(), progressControllers.GetExamProgress)
	progressGroup.Get("/subjects/:id", examValidators.SubjectID(), progressControllers.GetSubjectProgress)
	progressGroup.Get("/chapters/:id", examValidators.ChapterID(), progressControllers.GetChapterProgress)
}

package examRoutes

import (
	controllers "github.com/solankismit/exambuddy/controllers/exam"
	"github.com/solankismit/exambuddy/middleware"
	validators "github.com/solankismit/exambuddy/validators/exam"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminExamRoutes sets up all admin content management routes
func SetupAdminExamRoutes(app *fiber.App) {
	examGroup := app.Group("/admin/exams", middleware.JWTMiddleware, middleware.RequireAdmin)

	// Exam CRUD
	examGroup.Get("/", controllers.AdminGetAllExams)
	examGroup.Post("/", validators.CreateEntity(), controllers.AdminCreateExam)
	examGroup.Put("/:id", validators.ExamID(), controllers.AdminUpdateExam)
	examGroup.Delete("/:id", validators.ExamID(), controllers.AdminDeleteExam)

	// Subject Management
	examGroup.Get("/:id/subjects", validators.ExamID(), controllers.AdminGetExamSubjects)
	examGroup.Post("/:id/subjects", validators.ExamID(), validators.CreateEntity(), controllers.AdminCreateSubject)

	subjectGroup := app.Group("/admin/subjects", middleware.JWTMiddleware, middleware.RequireAdmin)
	subjectGroup.Put("/:id", validators.SubjectID(), controllers.AdminUpdateSubject)
	subjectGroup.Delete("/:id", validators.SubjectID(), controllers.AdminDeleteSubject)
	subjectGroup.Patch("/:id/reorder", validators.SubjectID(), controllers.AdminReorderSubject)

	// Chapter Management
	subjectGroup.Get("/:id/chapters", validators.SubjectID(), controllers.AdminGetSubjectChapters)
	subjectGroup.Post("/:id/chapters", validators.SubjectID(), validators.CreateEntity(), controllers.AdminCreateChapter)

	chapterGroup := app.Group("/admin/chapters", middleware.JWTMiddleware, middleware.RequireAdmin)
	chapterGroup.Put("/:id", validators.ChapterID(), controllers.AdminUpdateChapter)
	chapterGroup.Delete("/:id", validators.ChapterID(), controllers.AdminDeleteChapter)
	chapterGroup.Patch("/:id/reorder", validators.ChapterID(), controllers.AdminReorderChapter)

	// Quiz Management
	chapterGroup.Get("/:id/quizzes", validators.ChapterID(), controllers.AdminGetChapterQuizzes)
	chapterGroup.Post("/:id/quizzes", validators.ChapterID(), validators.CreateQuiz(), controllers.AdminCreateQuiz)

	quizGroup := app.Group("/admin/quizzes", middleware.JWTMiddleware, middleware.RequireAdmin)
	quizGroup.Put("/:id", validators.QuizID(), controllers.AdminUpdateQuiz)
	quizGroup.Delete("/:id", validators.QuizID(), controllers.AdminDeleteQuiz)

	// Question Management
	quizGroup.Get("/:id/questions", validators.QuizID(), controllers.AdminGetQuizQuestions)
	quizGroup.Post("/:id/questions", validators.QuizID(), validators.CreateQuestion(), controllers.AdminCreateQuestion)

	questionGroup := app.Group("/admin/questions", middleware.JWTMiddleware, middleware.RequireAdmin)
	questionGroup.Put("/:id", validators.QuestionID(), validators.UpdateQuestion(), controllers.AdminUpdateQuestion)
	questionGroup.Delete("/:id", validators.QuestionID(), controllers.AdminDeleteQuestion)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard", middleware.JWTMiddleware, middleware.RequireAdmin)
	dashGroup.Get("/stats", controllers.AdminGetDashboard)
}

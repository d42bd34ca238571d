package quizController

import (
	"testing"

	"github.com/solankismit/exambuddy/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single connection keeps the in-memory database alive for the whole test
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Exam{},
		&models.Subject{},
		&models.Chapter{},
		&models.Quiz{},
		&models.Question{},
		&models.QuizAttempt{},
		&models.QuestionResponse{},
		&models.UserQuizProgress{},
		&models.UserChapterProgress{},
		&models.UserSubjectProgress{},
		&models.UserExamProgress{},
		&models.UserStreak{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// seedExamTree creates one exam > subject > chapter
func seedExamTree(t *testing.T, db *gorm.DB) (models.Exam, models.Subject, models.Chapter) {
	t.Helper()

	exam := models.Exam{Name: "UPSC", IsActive: true}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("failed to seed exam: %v", err)
	}
	subject := models.Subject{ExamID: exam.ID, Name: "History", IsActive: true}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("failed to seed subject: %v", err)
	}
	chapter := models.Chapter{SubjectID: subject.ID, Name: "Ancient India", IsActive: true}
	if err := db.Create(&chapter).Error; err != nil {
		t.Fatalf("failed to seed chapter: %v", err)
	}
	return exam, subject, chapter
}

// seedQuiz creates a quiz with four active questions whose correct answers
// are A, B, C and D in order
func seedQuiz(t *testing.T, db *gorm.DB, chapterID uint, title string) (models.Quiz, []models.Question) {
	t.Helper()

	quiz := models.Quiz{ChapterID: chapterID, Title: title, IsActive: true}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("failed to seed quiz: %v", err)
	}

	answers := []string{"A", "B", "C", "D"}
	questions := make([]models.Question, 0, len(answers))
	for i, answer := range answers {
		q := models.Question{
			QuizID:        quiz.ID,
			Text:          "Question",
			OptionA:       "a",
			OptionB:       "b",
			OptionC:       "c",
			OptionD:       "d",
			CorrectAnswer: answer,
			Complexity:    "MEDIUM",
			IsActive:      true,
			OrderIndex:    i,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("failed to seed question: %v", err)
		}
		questions = append(questions, q)
	}
	return quiz, questions
}

// allCorrect builds a submission answering every question correctly
func allCorrect(questions []models.Question) []QuizResponse {
	responses := make([]QuizResponse, len(questions))
	for i, q := range questions {
		responses[i] = QuizResponse{QuestionID: q.ID, SelectedAnswer: q.CorrectAnswer}
	}
	return responses
}

package quizController

import (
	"testing"

	"github.com/solankismit/exambuddy/models"

	"github.com/stretchr/testify/assert"
)

func TestUpdateQuizProgress_FirstAndLaterAttempts(t *testing.T) {
	db := setupTestDB(t)
	_, _, chapter := seedExamTree(t, db)
	quiz, _ := seedQuiz(t, db, chapter.ID, "Quiz 1")

	first, err := UpdateQuizProgress(db, 1, quiz.ID, true)
	assert.NoError(t, err)
	assert.True(t, first.IsCompleted)
	assert.Equal(t, 1, first.AttemptCount)
	assert.Nil(t, first.BestScore)

	second, err := UpdateQuizProgress(db, 1, quiz.ID, true)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.AttemptCount)

	var rows int64
	db.Model(&models.UserQuizProgress{}).Where("user_id = ?", 1).Count(&rows)
	assert.Equal(t, int64(1), rows)
}

func TestUpdateChapterProgress_RatioAndCompletion(t *testing.T) {
	db := setupTestDB(t)
	_, _, chapter := seedExamTree(t, db)
	quiz1, questions1 := seedQuiz(t, db, chapter.ID, "Quiz 1")
	quiz2, questions2 := seedQuiz(t, db, chapter.ID, "Quiz 2")

	_, err := EvaluateQuizAttempt(db, 1, quiz1.ID, allCorrect(questions1))
	assert.NoError(t, err)

	var row models.UserChapterProgress
	assert.NoError(t, db.Where("user_id = ? AND chapter_id = ?", 1, chapter.ID).First(&row).Error)
	assert.Equal(t, 2, row.TotalQuizzes)
	assert.Equal(t, 1, row.CompletedQuizzes)
	assert.Equal(t, float64(50), row.Progress)

	_, err = EvaluateQuizAttempt(db, 1, quiz2.ID, allCorrect(questions2))
	assert.NoError(t, err)

	assert.NoError(t, db.Where("user_id = ? AND chapter_id = ?", 1, chapter.ID).First(&row).Error)
	assert.Equal(t, 2, row.CompletedQuizzes)
	assert.Equal(t, float64(100), row.Progress)
}

func TestUpdateChapterProgress_IgnoresInactiveQuizzes(t *testing.T) {
	db := setupTestDB(t)
	_, _, chapter := seedExamTree(t, db)
	quiz1, questions1 := seedQuiz(t, db, chapter.ID, "Quiz 1")
	quiz2, _ := seedQuiz(t, db, chapter.ID, "Quiz 2")

	assert.NoError(t, db.Model(&quiz2).Update("is_active", false).Error)

	_, err := EvaluateQuizAttempt(db, 1, quiz1.ID, allCorrect(questions1))
	assert.NoError(t, err)

	var row models.UserChapterProgress
	assert.NoError(t, db.Where("user_id = ? AND chapter_id = ?", 1, chapter.ID).First(&row).Error)
	assert.Equal(t, 1, row.TotalQuizzes)
	assert.Equal(t, float64(100), row.Progress)
}

func TestUpdateSubjectProgress_CountsOnlyFullyCompletedChapters(t *testing.T) {
	db := setupTestDB(t)
	_, subject, chapter1 := seedExamTree(t, db)
	chapter2 := models.Chapter{SubjectID: subject.ID, Name: "Medieval India", IsActive: true}
	assert.NoError(t, db.Create(&chapter2).Error)

	quiz1, questions1 := seedQuiz(t, db, chapter1.ID, "Quiz 1")
	quiz2, _ := seedQuiz(t, db, chapter1.ID, "Quiz 2")
	seedQuiz(t, db, chapter2.ID, "Quiz 3")

	// Chapter 1 at 50% does not count towards the subject
	_, err := EvaluateQuizAttempt(db, 1, quiz1.ID, allCorrect(questions1))
	assert.NoError(t, err)

	var row models.UserSubjectProgress
	assert.NoError(t, db.Where("user_id = ? AND subject_id = ?", 1, subject.ID).First(&row).Error)
	assert.Equal(t, 2, row.TotalChapters)
	assert.Equal(t, 0, row.CompletedChapters)
	assert.Equal(t, float64(0), row.Progress)

	// Chapter 1 at 100% counts
	questions2 := []models.Question{}
	assert.NoError(t, db.Where("quiz_id = ?", quiz2.ID).Order("order_index asc").Find(&questions2).Error)
	_, err = EvaluateQuizAttempt(db, 1, quiz2.ID, allCorrect(questions2))
	assert.NoError(t, err)

	assert.NoError(t, db.Where("user_id = ? AND subject_id = ?", 1, subject.ID).First(&row).Error)
	assert.Equal(t, 1, row.CompletedChapters)
	assert.Equal(t, float64(50), row.Progress)
}

func TestRecalculateProgress_FullCascade(t *testing.T) {
	db := setupTestDB(t)
	exam, subject, chapter := seedExamTree(t, db)
	quiz, questions := seedQuiz(t, db, chapter.ID, "Quiz 1")

	_, err := EvaluateQuizAttempt(db, 1, quiz.ID, allCorrect(questions))
	assert.NoError(t, err)

	// The one quiz completes its chapter, subject and exam in one cascade
	var chapterRow models.UserChapterProgress
	assert.NoError(t, db.Where("user_id = ? AND chapter_id = ?", 1, chapter.ID).First(&chapterRow).Error)
	assert.Equal(t, float64(100), chapterRow.Progress)

	var subjectRow models.UserSubjectProgress
	assert.NoError(t, db.Where("user_id = ? AND subject_id = ?", 1, subject.ID).First(&subjectRow).Error)
	assert.Equal(t, float64(100), subjectRow.Progress)

	var examRow models.UserExamProgress
	assert.NoError(t, db.Where("user_id = ? AND exam_id = ?", 1, exam.ID).First(&examRow).Error)
	assert.Equal(t, 1, examRow.TotalSubjects)
	assert.Equal(t, 1, examRow.CompletedSubjects)
	assert.Equal(t, float64(100), examRow.Progress)
}

func TestRecalculateProgress_SelfHealsAfterContentChange(t *testing.T) {
	db := setupTestDB(t)
	_, _, chapter := seedExamTree(t, db)
	quiz1, questions1 := seedQuiz(t, db, chapter.ID, "Quiz 1")

	_, err := EvaluateQuizAttempt(db, 1, quiz1.ID, allCorrect(questions1))
	assert.NoError(t, err)

	var row models.UserChapterProgress
	assert.NoError(t, db.Where("user_id = ? AND chapter_id = ?", 1, chapter.ID).First(&row).Error)
	assert.Equal(t, float64(100), row.Progress)

	// A newly published quiz dilutes the ratio on the next recompute
	seedQuiz(t, db, chapter.ID, "Quiz 2")
	assert.NoError(t, RecalculateProgressAfterAttempt(db, 1, quiz1.ID))

	assert.NoError(t, db.Where("user_id = ? AND chapter_id = ?", 1, chapter.ID).First(&row).Error)
	assert.Equal(t, 2, row.TotalQuizzes)
	assert.Equal(t, float64(50), row.Progress)
}

func TestRecalculateProgress_IsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	_, _, chapter := seedExamTree(t, db)
	quiz, questions := seedQuiz(t, db, chapter.ID, "Quiz 1")

	_, err := EvaluateQuizAttempt(db, 1, quiz.ID, allCorrect(questions))
	assert.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.NoError(t, RecalculateProgressAfterAttempt(db, 1, quiz.ID))
	}

	var chapterRows, subjectRows, examRows int64
	db.Model(&models.UserChapterProgress{}).Where("user_id = ?", 1).Count(&chapterRows)
	db.Model(&models.UserSubjectProgress{}).Where("user_id = ?", 1).Count(&subjectRows)
	db.Model(&models.UserExamProgress{}).Where("user_id = ?", 1).Count(&examRows)
	assert.Equal(t, int64(1), chapterRows)
	assert.Equal(t, int64(1), subjectRows)
	assert.Equal(t, int64(1), examRows)

	var row models.UserChapterProgress
	assert.NoError(t, db.Where("user_id = ?", 1).First(&row).Error)
	assert.Equal(t, float64(100), row.Progress)
}

func TestUpdateChapterProgress_ChapterNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := UpdateChapterProgress(db, 1, 999)
	assert.ErrorIs(t, err, ErrChapterNotFound)
}

func TestUpdateExamProgress_NoSubjects(t *testing.T) {
	db := setupTestDB(t)
	exam := models.Exam{Name: "Empty", IsActive: true}
	assert.NoError(t, db.Create(&exam).Error)

	row, err := UpdateExamProgress(db, 1, exam.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, row.TotalSubjects)
	assert.Equal(t, float64(0), row.Progress)
}

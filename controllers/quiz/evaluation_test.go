package quizController

import (
	"errors"
	"testing"

	"github.com/solankismit/exambuddy/models"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateQuizAttempt_PartialScore(t *testing.T) {
	db := setupTestDB(t)
	_, _, chapter := seedExamTree(t, db)
	quiz, questions := seedQuiz(t, db, chapter.ID, "Quiz 1")

	// Third answer wrong, rest right
	responses := allCorrect(questions)
	responses[2].SelectedAnswer = "A"

	result, err := EvaluateQuizAttempt(db, 1, quiz.ID, responses)
	assert.NoError(t, err)
	assert.Equal(t, float64(75), result.Score)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.Equal(t, 3, result.CorrectAnswers)

	// Breakdown comes back in submission order
	assert.Len(t, result.Responses, 4)
	assert.Equal(t, questions[2].ID, result.Responses[2].QuestionID)
	assert.False(t, result.Responses[2].IsCorrect)
	assert.Equal(t, "C", result.Responses[2].CorrectAnswer)
	assert.True(t, result.Responses[0].IsCorrect)

	// Attempt and responses were persisted
	var attempt models.QuizAttempt
	assert.NoError(t, db.First(&attempt, result.AttemptID).Error)
	assert.Equal(t, float64(75), attempt.Score)

	var responseCount int64
	db.Model(&models.QuestionResponse{}).Where("attempt_id = ?", attempt.ID).Count(&responseCount)
	assert.Equal(t, int64(4), responseCount)
}

func TestEvaluateQuizAttempt_AnswerMatchIsCaseSensitive(t *testing.T) {
	db := setupTestDB(t)
	_, _, chapter := seedExamTree(t, db)
	quiz, questions := seedQuiz(t, db, chapter.ID, "Quiz 1")

	responses := allCorrect(questions)
	responses[0].SelectedAnswer = "a"

	result, err := EvaluateQuizAttempt(db, 1, quiz.ID, responses)
	assert.NoError(t, err)
	assert.Equal(t, 3, result.CorrectAnswers)
	assert.False(t, result.Responses[0].IsCorrect)
}

func TestEvaluateQuizAttempt_QuizNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := EvaluateQuizAttempt(db, 1, 999, nil)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestEvaluateQuizAttempt_ResponseCountMismatch(t *testing.T) {
	db := setupTestDB(t)
	_, _, chapter := seedExamTree(t, db)
	quiz, questions := seedQuiz(t, db, chapter.ID, "Quiz 1")

	_, err := EvaluateQuizAttempt(db, 1, quiz.ID, allCorrect(questions)[:2])
	assert.ErrorIs(t, err, ErrResponseCountMismatch)

	// Nothing persisted on a rejected submission
	var attempts int64
	db.Model(&models.QuizAttempt{}).Count(&attempts)
	assert.Equal(t, int64(0), attempts)

	var progressRows int64
	db.Model(&models.UserQuizProgress{}).Count(&progressRows)
	assert.Equal(t, int64(0), progressRows)
}

func TestEvaluateQuizAttempt_UnknownQuestion(t *testing.T) {
	db := setupTestDB(t)
	_, _, chapter := seedExamTree(t, db)
	quiz, questions := seedQuiz(t, db, chapter.ID, "Quiz 1")

	responses := allCorrect(questions)
	responses[1].QuestionID = 9999

	_, err := EvaluateQuizAttempt(db, 1, quiz.ID, responses)
	assert.ErrorIs(t, err, ErrUnknownQuestion)

	var attempts int64
	db.Model(&models.QuizAttempt{}).Count(&attempts)
	assert.Equal(t, int64(0), attempts)
}

func TestEvaluateQuizAttempt_InactiveQuestionsExcluded(t *testing.T) {
	db := setupTestDB(t)
	_, _, chapter := seedExamTree(t, db)
	quiz, questions := seedQuiz(t, db, chapter.ID, "Quiz 1")

	// Retiring a question shrinks the expected response set
	assert.NoError(t, db.Model(&questions[3]).Update("is_active", false).Error)

	result, err := EvaluateQuizAttempt(db, 1, quiz.ID, allCorrect(questions[:3]))
	assert.NoError(t, err)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, float64(100), result.Score)

	// Submitting the retired question is now an unknown question
	responses := allCorrect(questions[1:])
	_, err = EvaluateQuizAttempt(db, 1, quiz.ID, responses)
	assert.True(t, errors.Is(err, ErrUnknownQuestion))
}

func TestEvaluateQuizAttempt_EmptyQuizScoresZero(t *testing.T) {
	db := setupTestDB(t)
	_, _, chapter := seedExamTree(t, db)

	quiz := models.Quiz{ChapterID: chapter.ID, Title: "Empty", IsActive: true}
	assert.NoError(t, db.Create(&quiz).Error)

	result, err := EvaluateQuizAttempt(db, 1, quiz.ID, []QuizResponse{})
	assert.NoError(t, err)
	assert.Equal(t, float64(0), result.Score)
	assert.Equal(t, 0, result.TotalQuestions)

	// The attempt still counts as completing the quiz
	var progress models.UserQuizProgress
	assert.NoError(t, db.Where("user_id = ? AND quiz_id = ?", 1, quiz.ID).First(&progress).Error)
	assert.True(t, progress.IsCompleted)
}

func TestEvaluateQuizAttempt_BestScoreIsMonotonic(t *testing.T) {
	db := setupTestDB(t)
	_, _, chapter := seedExamTree(t, db)
	quiz, questions := seedQuiz(t, db, chapter.ID, "Quiz 1")

	// 100%, then 25%, then 75%
	_, err := EvaluateQuizAttempt(db, 1, quiz.ID, allCorrect(questions))
	assert.NoError(t, err)

	low := allCorrect(questions)
	low[0].SelectedAnswer = "D"
	low[1].SelectedAnswer = "D"
	low[2].SelectedAnswer = "A"
	_, err = EvaluateQuizAttempt(db, 1, quiz.ID, low)
	assert.NoError(t, err)

	mid := allCorrect(questions)
	mid[3].SelectedAnswer = "A"
	_, err = EvaluateQuizAttempt(db, 1, quiz.ID, mid)
	assert.NoError(t, err)

	var progress models.UserQuizProgress
	assert.NoError(t, db.Where("user_id = ? AND quiz_id = ?", 1, quiz.ID).First(&progress).Error)
	assert.NotNil(t, progress.BestScore)
	assert.Equal(t, float64(100), *progress.BestScore)
	assert.Equal(t, 3, progress.AttemptCount)
	assert.True(t, progress.IsCompleted)
}

func TestEvaluateQuizAttempt_AttemptsAreAppendOnly(t *testing.T) {
	db := setupTestDB(t)
	_, _, chapter := seedExamTree(t, db)
	quiz, questions := seedQuiz(t, db, chapter.ID, "Quiz 1")

	for i := 0; i < 3; i++ {
		_, err := EvaluateQuizAttempt(db, 1, quiz.ID, allCorrect(questions))
		assert.NoError(t, err)
	}

	var attempts int64
	db.Model(&models.QuizAttempt{}).Where("user_id = ? AND quiz_id = ?", 1, quiz.ID).Count(&attempts)
	assert.Equal(t, int64(3), attempts)

	var streak models.UserStreak
	assert.NoError(t, db.Where("user_id = ?", 1).First(&streak).Error)
	assert.Equal(t, 1, streak.CurrentStreak)
}

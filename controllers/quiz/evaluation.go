package quizController

import (
	"errors"
	"fmt"
	"time"

	"github.com/solankismit/exambuddy/models"

	"gorm.io/gorm"
)

var (
	ErrQuizNotFound    = errors.New("quiz not found")
	ErrChapterNotFound = errors.New("chapter not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrExamNotFound    = errors.New("exam not found")

	// ErrResponseCountMismatch and ErrUnknownQuestion are client errors: the
	// submission does not line up with the quiz's active question set.
	ErrResponseCountMismatch = errors.New("response count mismatch")
	ErrUnknownQuestion       = errors.New("unknown question")
)

// QuizResponse is one submitted answer
type QuizResponse struct {
	QuestionID     uint   `json:"question_id"`
	SelectedAnswer string `json:"selected_answer"` // A, B, C or D
}

// EvaluatedResponse is the per-question correctness breakdown returned to the caller
type EvaluatedResponse struct {
	QuestionID     uint   `json:"question_id"`
	SelectedAnswer string `json:"selected_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
}

type EvaluationResult struct {
	AttemptID      uint                `json:"attempt_id"`
	Score          float64             `json:"score"`
	TotalQuestions int                 `json:"total_questions"`
	CorrectAnswers int                 `json:"correct_answers"`
	Responses      []EvaluatedResponse `json:"responses"`
}

// EvaluateQuizAttempt scores one submission against the quiz's active question
// set, persists the attempt with its responses, then runs the follow-up side
// effects in order: quiz progress upsert, best-score update, streak touch and
// the chapter→subject→exam recompute. A failure before the attempt is persisted
// aborts the whole submission; a failure after it leaves the attempt in place
// and the aggregates stale, to be healed by the next attempt or the nightly sweep.
func EvaluateQuizAttempt(db *gorm.DB, userID, quizID uint, responses []QuizResponse) (*EvaluationResult, error) {
	var quiz models.Quiz
	err := db.Preload("Questions", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("is_active = ?", true).Order("order_index asc")
	}).First(&quiz, quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	questions := quiz.Questions
	totalQuestions := len(questions)

	if len(responses) != totalQuestions {
		return nil, fmt.Errorf("%w: expected %d responses, got %d", ErrResponseCountMismatch, totalQuestions, len(responses))
	}

	questionByID := make(map[uint]models.Question, totalQuestions)
	for _, q := range questions {
		questionByID[q.ID] = q
	}

	// Evaluate in input order; correctness is a case-sensitive exact match
	correctAnswers := 0
	evaluated := make([]EvaluatedResponse, 0, totalQuestions)
	for _, response := range responses {
		question, ok := questionByID[response.QuestionID]
		if !ok {
			return nil, fmt.Errorf("%w: question %d is not part of this quiz", ErrUnknownQuestion, response.QuestionID)
		}

		isCorrect := question.CorrectAnswer == response.SelectedAnswer
		if isCorrect {
			correctAnswers++
		}

		evaluated = append(evaluated, EvaluatedResponse{
			QuestionID:     question.ID,
			SelectedAnswer: response.SelectedAnswer,
			CorrectAnswer:  question.CorrectAnswer,
			IsCorrect:      isCorrect,
		})
	}

	score := float64(0)
	if totalQuestions > 0 {
		score = float64(correctAnswers) / float64(totalQuestions) * 100
	}

	attempt := models.QuizAttempt{
		UserID:         userID,
		QuizID:         quizID,
		Score:          score,
		TotalQuestions: totalQuestions,
		CorrectAnswers: correctAnswers,
		CompletedAt:    time.Now(),
	}

	// Attempt and responses land together or not at all
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}
		if len(evaluated) > 0 {
			rows := make([]models.QuestionResponse, len(evaluated))
			for i, r := range evaluated {
				rows[i] = models.QuestionResponse{
					AttemptID:      attempt.ID,
					QuestionID:     r.QuestionID,
					SelectedAnswer: r.SelectedAnswer,
					IsCorrect:      r.IsCorrect,
				}
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	quizProgress, err := UpdateQuizProgress(db, userID, quizID, true)
	if err != nil {
		return nil, err
	}

	// Best score is a read-then-conditionally-write, not part of the upsert
	if quizProgress.BestScore == nil || score > *quizProgress.BestScore {
		if err := db.Model(&models.UserQuizProgress{}).
			Where("id = ?", quizProgress.ID).
			Update("best_score", score).Error; err != nil {
			return nil, err
		}
	}

	if _, err := UpdateUserStreak(db, userID); err != nil {
		return nil, err
	}

	if err := RecalculateProgressAfterAttempt(db, userID, quizID); err != nil {
		return nil, err
	}

	return &EvaluationResult{
		AttemptID:      attempt.ID,
		Score:          score,
		TotalQuestions: totalQuestions,
		CorrectAnswers: correctAnswers,
		Responses:      evaluated,
	}, nil
}

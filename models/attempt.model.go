package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizAttempt is one evaluated submission. Rows are append-only and never updated.
type QuizAttempt struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	QuizID         uint      `json:"quiz_id" gorm:"index;not null"`
	Score          float64   `json:"score"` // percentage 0-100
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	CompletedAt    time.Time `json:"completed_at"`
}

// QuestionResponse belongs to exactly one attempt. Correctness is fixed at
// evaluation time and is not recomputed when the question is edited later.
type QuestionResponse struct {
	gorm.Model
	AttemptID      uint   `json:"attempt_id" gorm:"index;not null"`
	QuestionID     uint   `json:"question_id" gorm:"index;not null"`
	SelectedAnswer string `json:"selected_answer" gorm:"not null"`
	IsCorrect      bool   `json:"is_correct" gorm:"default:false"`
}

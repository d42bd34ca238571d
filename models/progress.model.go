package models

import (
	"time"

	"gorm.io/gorm"
)

// UserQuizProgress tracks per-user completion state for one quiz
type UserQuizProgress struct {
	gorm.Model
	UserID        uint      `json:"user_id" gorm:"uniqueIndex:idx_user_quiz;not null"`
	QuizID        uint      `json:"quiz_id" gorm:"uniqueIndex:idx_user_quiz;not null"`
	IsCompleted   bool      `json:"is_completed" gorm:"default:false"`
	AttemptCount  int       `json:"attempt_count" gorm:"default:0"`
	BestScore     *float64  `json:"best_score"`
	LastAttemptAt time.Time `json:"last_attempt_at"`
}

// The three rows below are cached aggregates, always recomputed from live child
// counts rather than incremented in place, so they self-heal after content edits.

type UserChapterProgress struct {
	gorm.Model
	UserID           uint    `json:"user_id" gorm:"uniqueIndex:idx_user_chapter;not null"`
	ChapterID        uint    `json:"chapter_id" gorm:"uniqueIndex:idx_user_chapter;not null"`
	TotalQuizzes     int     `json:"total_quizzes" gorm:"default:0"`
	CompletedQuizzes int     `json:"completed_quizzes" gorm:"default:0"`
	Progress         float64 `json:"progress" gorm:"default:0"` // percentage 0-100
}

type UserSubjectProgress struct {
	gorm.Model
	UserID            uint    `json:"user_id" gorm:"uniqueIndex:idx_user_subject;not null"`
	SubjectID         uint    `json:"subject_id" gorm:"uniqueIndex:idx_user_subject;not null"`
	TotalChapters     int     `json:"total_chapters" gorm:"default:0"`
	CompletedChapters int     `json:"completed_chapters" gorm:"default:0"`
	Progress          float64 `json:"progress" gorm:"default:0"`
}

type UserExamProgress struct {
	gorm.Model
	UserID            uint    `json:"user_id" gorm:"uniqueIndex:idx_user_exam;not null"`
	ExamID            uint    `json:"exam_id" gorm:"uniqueIndex:idx_user_exam;not null"`
	TotalSubjects     int     `json:"total_subjects" gorm:"default:0"`
	CompletedSubjects int     `json:"completed_subjects" gorm:"default:0"`
	Progress          float64 `json:"progress" gorm:"default:0"`
}

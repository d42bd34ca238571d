package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserStreak holds consecutive-day activity counters. LastQuizDate is date-only;
// multiple attempts on the same calendar day never inflate the streak.
type UserStreak struct {
	gorm.Model
	UserID        uint            `json:"user_id" gorm:"uniqueIndex;not null"`
	CurrentStreak int             `json:"current_streak" gorm:"default:0"`
	LongestStreak int             `json:"longest_streak" gorm:"default:0"`
	LastQuizDate  *datatypes.Date `json:"last_quiz_date"`
}

package models

import "gorm.io/gorm"

type Quiz struct {
	gorm.Model
	ChapterID   uint       `json:"chapter_id" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	OrderIndex  int        `json:"order_index" gorm:"default:0"`
	Chapter     Chapter    `json:"-" gorm:"foreignKey:ChapterID"`
	Questions   []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}

// Question is a four-option multiple choice question with exactly one correct label
type Question struct {
	gorm.Model
	QuizID        uint   `json:"quiz_id" gorm:"index;not null"`
	Text          string `json:"text" gorm:"type:text;not null"`
	OptionA       string `json:"option_a" gorm:"not null"`
	OptionB       string `json:"option_b" gorm:"not null"`
	OptionC       string `json:"option_c" gorm:"not null"`
	OptionD       string `json:"option_d" gorm:"not null"`
	CorrectAnswer string `json:"correct_answer" gorm:"not null"` // A, B, C or D
	Explanation   string `json:"explanation" gorm:"type:text"`
	Complexity    string `json:"complexity" gorm:"default:'MEDIUM'"` // EASY, MEDIUM, HARD
	IsActive      bool   `json:"is_active" gorm:"default:true"`
	OrderIndex    int    `json:"order_index" gorm:"default:0"`
}

package models

import "gorm.io/gorm"

// Exam is the top level of the content hierarchy (Exam → Subject → Chapter → Quiz → Question)
type Exam struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
}

type Subject struct {
	gorm.Model
	ExamID      uint   `json:"exam_id" gorm:"index;not null"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	Exam        Exam   `json:"-" gorm:"foreignKey:ExamID"`
}

type Chapter struct {
	gorm.Model
	SubjectID   uint    `json:"subject_id" gorm:"index;not null"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
	OrderIndex  int     `json:"order_index" gorm:"default:0"`
	Subject     Subject `json:"-" gorm:"foreignKey:SubjectID"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// RefreshToken is an opaque rotating token exchanged for new access tokens
type RefreshToken struct {
	gorm.Model
	UserID    uint       `json:"user_id" gorm:"index;not null"`
	Token     string     `json:"-" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at"`
}

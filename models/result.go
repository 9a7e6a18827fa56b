package models

import (
	"time"
)

// Result is one scored quiz attempt. Rows are insert-only: the score, total and
// timestamp never change after creation, even if the question bank does.
type Result struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Score     int       `json:"score" gorm:"not null"`
	Total     int       `json:"total" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User User `json:"user,omitempty"`
}

package models

import (
	"time"
)

type Question struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Text       string    `json:"text" gorm:"not null"`
	OptionA    string    `json:"option_a" gorm:"not null"`
	OptionB    string    `json:"option_b" gorm:"not null"`
	OptionC    string    `json:"option_c" gorm:"not null"`
	OptionD    string    `json:"option_d" gorm:"not null"`
	CorrectAns string    `json:"correct_ans" gorm:"not null"` // free text, not checked against the options
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

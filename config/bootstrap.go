package config

import (
	"log"

	"quizapp/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Bootstrap migrates the schema and seeds the initial data: one admin account
// (if no admin exists) and a handful of sample questions (if the bank is empty).
// Safe to run on every start.
func Bootstrap(db *gorm.DB, cfg *Config) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Result{},
	)
	if err != nil {
		return err
	}

	var adminCount int64
	if err := db.Model(&models.User{}).Where("is_admin = ?", true).Count(&adminCount).Error; err != nil {
		return err
	}

	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin := models.User{
			Name:     cfg.AdminName,
			Email:    cfg.AdminEmail,
			Password: string(hashed),
			IsAdmin:  true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("Default admin created: email=%s", cfg.AdminEmail)
	}

	var questionCount int64
	if err := db.Model(&models.Question{}).Count(&questionCount).Error; err != nil {
		return err
	}

	if questionCount == 0 {
		samples := []models.Question{
			{
				Text:       "What is the capital of France?",
				OptionA:    "London",
				OptionB:    "Paris",
				OptionC:    "Berlin",
				OptionD:    "Madrid",
				CorrectAns: "Paris",
			},
			{
				Text:       "Which planet is known as the Red Planet?",
				OptionA:    "Venus",
				OptionB:    "Jupiter",
				OptionC:    "Mars",
				OptionD:    "Saturn",
				CorrectAns: "Mars",
			},
			{
				Text:       "What is the chemical symbol for gold?",
				OptionA:    "Ag",
				OptionB:    "Au",
				OptionC:    "Fe",
				OptionD:    "Cu",
				CorrectAns: "Au",
			},
			{
				Text:       "Which language is used for web development?",
				OptionA:    "Python",
				OptionB:    "JavaScript",
				OptionC:    "C++",
				OptionD:    "All of the above",
				CorrectAns: "All of the above",
			},
		}
		if err := db.Create(&samples).Error; err != nil {
			return err
		}
		log.Printf("Added %d sample questions", len(samples))
	}

	return nil
}

package services

import (
	"math"

	"quizapp/models"

	"gorm.io/gorm"
)

type ResultService struct {
	db *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{db: db}
}

// Stats is the aggregate view shown on the admin dashboard.
type Stats struct {
	TotalQuestions int64   `json:"total_questions"`
	TotalQuizzes   int64   `json:"total_quizzes"`
	UniqueUsers    int64   `json:"unique_users"`
	AverageScore   float64 `json:"average_score"`
}

func (s *ResultService) GetByUser(userID uint) ([]models.Result, error) {
	var results []models.Result
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}

func (s *ResultService) GetAll() ([]models.Result, error) {
	var results []models.Result
	err := s.db.Preload("User").
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}

// GetStats computes the totals over all historical results. The average is the
// simple arithmetic mean of per-attempt percentages, not weighted by attempt
// size, rounded to one decimal.
func (s *ResultService) GetStats() (*Stats, error) {
	stats := &Stats{}

	if err := s.db.Model(&models.Question{}).Count(&stats.TotalQuestions).Error; err != nil {
		return nil, err
	}

	var results []models.Result
	if err := s.db.Find(&results).Error; err != nil {
		return nil, err
	}

	stats.TotalQuizzes = int64(len(results))

	uniqueUsers := make(map[uint]struct{})
	totalPercentage := 0.0
	for _, r := range results {
		uniqueUsers[r.UserID] = struct{}{}
		totalPercentage += float64(r.Score) / float64(r.Total) * 100
	}
	stats.UniqueUsers = int64(len(uniqueUsers))

	if stats.TotalQuizzes > 0 {
		stats.AverageScore = math.Round(totalPercentage/float64(stats.TotalQuizzes)*10) / 10
	}

	return stats, nil
}

package services

import (
	"fmt"
	"strings"
	"testing"

	"quizapp/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a uniquely-named in-memory sqlite database and migrates the
// schema. cache=shared keeps the database alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Question{}, &models.Result{}))

	return db
}

func seedQuestions(t *testing.T, db *gorm.DB, n int) []models.Question {
	t.Helper()

	questions := make([]models.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, models.Question{
			Text:       fmt.Sprintf("Question %d", i),
			OptionA:    "Alpha",
			OptionB:    "Beta",
			OptionC:    "Gamma",
			OptionD:    "Delta",
			CorrectAns: "Beta",
		})
	}
	require.NoError(t, db.Create(&questions).Error)

	return questions
}

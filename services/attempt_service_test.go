package services

import (
	"context"
	"testing"

	"quizapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWithEmptyBank(t *testing.T) {
	db := newTestDB(t)
	store := NewMemoryAttemptStore()
	svc := NewAttemptService(db, store)
	ctx := context.Background()

	err := svc.Start(ctx, "session-1")
	assert.ErrorIs(t, err, ErrNoQuestions)

	state, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, state, "failed start must not leave attempt state behind")
}

func TestFullAttemptAllCorrect(t *testing.T) {
	db := newTestDB(t)
	store := NewMemoryAttemptStore()
	svc := NewAttemptService(db, store)
	ctx := context.Background()

	questions := seedQuestions(t, db, 3)
	require.NoError(t, svc.Start(ctx, "session-1"))

	for i := range questions {
		current, err := svc.Current(ctx, "session-1")
		require.NoError(t, err)
		require.False(t, current.Completed)
		assert.Equal(t, questions[i].ID, current.Question.ID)
		assert.Equal(t, i+1, current.Progress.Current)
		assert.Equal(t, 3, current.Progress.Total)

		completed, err := svc.Answer(ctx, "session-1", current.Question.ID, "Beta")
		require.NoError(t, err)
		assert.Equal(t, i == len(questions)-1, completed)
	}

	current, err := svc.Current(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, current.Completed)

	summary, err := svc.Finish(ctx, "session-1", 7)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Score)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 100, summary.Percentage)
	assert.Equal(t, "Excellent! You did great!", summary.Message)
	require.Len(t, summary.Results, 3)
	for _, r := range summary.Results {
		assert.True(t, r.IsCorrect)
		assert.Equal(t, "Beta", r.UserAnswer)
	}

	var results []models.Result
	require.NoError(t, db.Find(&results).Error)
	require.Len(t, results, 1, "exactly one result row per completed attempt")
	assert.EqualValues(t, 7, results[0].UserID)
	assert.Equal(t, 3, results[0].Score)
	assert.Equal(t, 3, results[0].Total)

	// State is cleared: the quiz flow is no longer re-enterable.
	_, err = svc.Current(ctx, "session-1")
	assert.ErrorIs(t, err, ErrNoAttempt)
	_, err = svc.Finish(ctx, "session-1", 7)
	assert.ErrorIs(t, err, ErrNoAttempt)
}

func TestFinishWithNoAnswers(t *testing.T) {
	db := newTestDB(t)
	store := NewMemoryAttemptStore()
	svc := NewAttemptService(db, store)
	ctx := context.Background()

	seedQuestions(t, db, 4)
	require.NoError(t, svc.Start(ctx, "session-1"))

	// Unanswered questions count as incorrect, never as an error.
	summary, err := svc.Finish(ctx, "session-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Score)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 0, summary.Percentage)
	assert.Equal(t, "You need more practice. Try again!", summary.Message)
	for _, r := range summary.Results {
		assert.False(t, r.IsCorrect)
		assert.Empty(t, r.UserAnswer)
	}
}

func TestAnswerComparisonIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	store := NewMemoryAttemptStore()
	svc := NewAttemptService(db, store)
	ctx := context.Background()

	questions := seedQuestions(t, db, 1)
	require.NoError(t, svc.Start(ctx, "session-1"))

	_, err := svc.Answer(ctx, "session-1", questions[0].ID, "beta")
	require.NoError(t, err)

	summary, err := svc.Finish(ctx, "session-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Score)
}

func TestAnswerOverwritesPriorAnswer(t *testing.T) {
	db := newTestDB(t)
	store := NewMemoryAttemptStore()
	svc := NewAttemptService(db, store)
	ctx := context.Background()

	questions := seedQuestions(t, db, 2)
	require.NoError(t, svc.Start(ctx, "session-1"))

	_, err := svc.Answer(ctx, "session-1", questions[0].ID, "Alpha")
	require.NoError(t, err)
	_, err = svc.Answer(ctx, "session-1", questions[0].ID, "Beta")
	require.NoError(t, err)

	summary, err := svc.Finish(ctx, "session-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Score, "the later answer for a question id wins")
}

func TestStartDiscardsPriorAttempt(t *testing.T) {
	db := newTestDB(t)
	store := NewMemoryAttemptStore()
	svc := NewAttemptService(db, store)
	ctx := context.Background()

	questions := seedQuestions(t, db, 2)
	require.NoError(t, svc.Start(ctx, "session-1"))
	_, err := svc.Answer(ctx, "session-1", questions[0].ID, "Beta")
	require.NoError(t, err)

	require.NoError(t, svc.Start(ctx, "session-1"))

	current, err := svc.Current(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 1, current.Progress.Current, "restart resets the cursor")

	summary, err := svc.Finish(ctx, "session-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Score, "restart clears the answer mapping")
}

// The snapshot is fixed at start: bank edits during an attempt change nothing,
// and deleting a question never touches a recorded result.
func TestSnapshotIsolatedFromBankEdits(t *testing.T) {
	db := newTestDB(t)
	store := NewMemoryAttemptStore()
	svc := NewAttemptService(db, store)
	ctx := context.Background()

	questions := seedQuestions(t, db, 2)
	require.NoError(t, svc.Start(ctx, "session-1"))

	require.NoError(t, db.Delete(&models.Question{}, questions[1].ID).Error)

	for _, q := range questions {
		_, err := svc.Answer(ctx, "session-1", q.ID, "Beta")
		require.NoError(t, err)
	}

	summary, err := svc.Finish(ctx, "session-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Score)
	assert.Equal(t, 2, summary.Total)

	require.NoError(t, db.Delete(&models.Question{}, questions[0].ID).Error)

	var result models.Result
	require.NoError(t, db.First(&result).Error)
	assert.Equal(t, 2, result.Score, "historical results survive question deletion")
	assert.Equal(t, 2, result.Total)
}

func TestProgressPercentRounds(t *testing.T) {
	db := newTestDB(t)
	store := NewMemoryAttemptStore()
	svc := NewAttemptService(db, store)
	ctx := context.Background()

	questions := seedQuestions(t, db, 3)
	require.NoError(t, svc.Start(ctx, "session-1"))

	current, err := svc.Current(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 33, current.Progress.Percent)

	_, err = svc.Answer(ctx, "session-1", questions[0].ID, "Beta")
	require.NoError(t, err)

	current, err = svc.Current(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 67, current.Progress.Percent, "2/3 rounds up, not truncates")
}

func TestPercentageIsFloored(t *testing.T) {
	db := newTestDB(t)
	store := NewMemoryAttemptStore()
	svc := NewAttemptService(db, store)
	ctx := context.Background()

	questions := seedQuestions(t, db, 3)
	require.NoError(t, svc.Start(ctx, "session-1"))

	_, err := svc.Answer(ctx, "session-1", questions[0].ID, "Beta")
	require.NoError(t, err)

	summary, err := svc.Finish(ctx, "session-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 33, summary.Percentage, "1/3 floors to 33")
}

func TestResultMessageTiers(t *testing.T) {
	tests := []struct {
		percentage int
		message    string
	}{
		{100, "Excellent! You did great!"},
		{80, "Excellent! You did great!"},
		{79, "Good job! You passed the quiz."},
		{60, "Good job! You passed the quiz."},
		{59, "Not bad, but you can do better."},
		{40, "Not bad, but you can do better."},
		{39, "You need more practice. Try again!"},
		{0, "You need more practice. Try again!"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.message, resultMessage(tt.percentage), "percentage %d", tt.percentage)
	}
}

func TestAbandonClearsState(t *testing.T) {
	db := newTestDB(t)
	store := NewMemoryAttemptStore()
	svc := NewAttemptService(db, store)
	ctx := context.Background()

	seedQuestions(t, db, 1)
	require.NoError(t, svc.Start(ctx, "session-1"))
	require.NoError(t, svc.Abandon(ctx, "session-1"))

	_, err := svc.Current(ctx, "session-1")
	assert.ErrorIs(t, err, ErrNoAttempt)
}

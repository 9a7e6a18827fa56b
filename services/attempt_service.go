package services

import (
	"context"
	"errors"
	"math"

	"quizapp/models"

	"gorm.io/gorm"
)

var (
	// ErrNoQuestions means the question bank is empty, so no attempt can start.
	ErrNoQuestions = errors.New("no questions available for the quiz")
	// ErrNoAttempt means the session has no quiz in progress.
	ErrNoAttempt = errors.New("no quiz in progress")
)

// AttemptService runs the per-session quiz state machine: snapshot the bank at
// start, step through the questions, then score and persist exactly one result.
type AttemptService struct {
	db    *gorm.DB
	store AttemptStore
}

func NewAttemptService(db *gorm.DB, store AttemptStore) *AttemptService {
	return &AttemptService{db: db, store: store}
}

// QuestionView is a snapshot question with the correct answer stripped.
// Don't expose CorrectAns while the attempt is live.
type QuestionView struct {
	ID      uint   `json:"id"`
	Text    string `json:"text"`
	OptionA string `json:"option_a"`
	OptionB string `json:"option_b"`
	OptionC string `json:"option_c"`
	OptionD string `json:"option_d"`
}

type Progress struct {
	Current int `json:"current"` // 1-based ordinal of the question being shown
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

type CurrentQuestion struct {
	Completed bool          `json:"completed"`
	Question  *QuestionView `json:"question,omitempty"`
	Progress  *Progress     `json:"progress,omitempty"`
}

type QuestionResult struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

type AttemptSummary struct {
	Score      int              `json:"score"`
	Total      int              `json:"total"`
	Percentage int              `json:"percentage"`
	Message    string           `json:"message"`
	Results    []QuestionResult `json:"results"`
}

// Start snapshots every stored question, in stored order, into fresh attempt
// state for the session. Any prior in-flight attempt is discarded.
func (s *AttemptService) Start(ctx context.Context, sessionID string) error {
	var questions []models.Question
	if err := s.db.Order("id").Find(&questions).Error; err != nil {
		return err
	}

	if len(questions) == 0 {
		return ErrNoQuestions
	}

	state := &AttemptState{
		Questions: make([]QuestionSnapshot, 0, len(questions)),
		Current:   0,
		Answers:   make(map[uint]string),
	}
	for _, q := range questions {
		state.Questions = append(state.Questions, QuestionSnapshot{
			ID:         q.ID,
			Text:       q.Text,
			OptionA:    q.OptionA,
			OptionB:    q.OptionB,
			OptionC:    q.OptionC,
			OptionD:    q.OptionD,
			CorrectAns: q.CorrectAns,
		})
	}

	return s.store.Put(ctx, sessionID, state)
}

// Current returns the question at the cursor plus progress, or Completed when
// the cursor has moved past the end of the snapshot.
func (s *AttemptService) Current(ctx context.Context, sessionID string) (*CurrentQuestion, error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrNoAttempt
	}

	total := len(state.Questions)
	if state.Current >= total {
		return &CurrentQuestion{Completed: true}, nil
	}

	q := state.Questions[state.Current]
	current := state.Current + 1

	return &CurrentQuestion{
		Question: &QuestionView{
			ID:      q.ID,
			Text:    q.Text,
			OptionA: q.OptionA,
			OptionB: q.OptionB,
			OptionC: q.OptionC,
			OptionD: q.OptionD,
		},
		Progress: &Progress{
			Current: current,
			Total:   total,
			Percent: int(math.Round(float64(current) / float64(total) * 100)),
		},
	}, nil
}

// Answer records the submitted answer for the given question id, overwriting
// any earlier answer for that id, and advances the cursor. It reports whether
// the attempt is now complete.
func (s *AttemptService) Answer(ctx context.Context, sessionID string, questionID uint, answer string) (bool, error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if state == nil {
		return false, ErrNoAttempt
	}

	if state.Answers == nil {
		state.Answers = make(map[uint]string)
	}
	state.Answers[questionID] = answer
	state.Current++

	if err := s.store.Put(ctx, sessionID, state); err != nil {
		return false, err
	}

	return state.Current >= len(state.Questions), nil
}

// Finish scores the attempt against the snapshot, persists one result row for
// the user, and clears the attempt state. The state is cleared even when
// scoring or persistence fails: a finished attempt is never resumable.
func (s *AttemptService) Finish(ctx context.Context, sessionID string, userID uint) (*AttemptSummary, error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrNoAttempt
	}

	defer func() {
		_ = s.store.Delete(ctx, sessionID)
	}()

	score := 0
	results := make([]QuestionResult, 0, len(state.Questions))
	for _, q := range state.Questions {
		// An unanswered question scores as incorrect, never as an error.
		userAnswer := state.Answers[q.ID]
		isCorrect := userAnswer == q.CorrectAns
		if isCorrect {
			score++
		}
		results = append(results, QuestionResult{
			Question:      q.Text,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAns,
			IsCorrect:     isCorrect,
		})
	}

	total := len(state.Questions)
	result := models.Result{
		UserID: userID,
		Score:  score,
		Total:  total,
	}
	if err := s.db.Create(&result).Error; err != nil {
		return nil, err
	}

	percentage := score * 100 / total

	return &AttemptSummary{
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Message:    resultMessage(percentage),
		Results:    results,
	}, nil
}

// Abandon drops any in-flight attempt state for the session.
func (s *AttemptService) Abandon(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// resultMessage buckets a final percentage into its tier. Boundaries are
// inclusive at the lower end of each band.
func resultMessage(percentage int) string {
	switch {
	case percentage >= 80:
		return "Excellent! You did great!"
	case percentage >= 60:
		return "Good job! You passed the quiz."
	case percentage >= 40:
		return "Not bad, but you can do better."
	default:
		return "You need more practice. Try again!"
	}
}

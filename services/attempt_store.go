package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// QuestionSnapshot is one question frozen at attempt start. It keeps the
// correct answer; views handed to the client must go through Sanitized.
type QuestionSnapshot struct {
	ID         uint   `json:"id"`
	Text       string `json:"text"`
	OptionA    string `json:"option_a"`
	OptionB    string `json:"option_b"`
	OptionC    string `json:"option_c"`
	OptionD    string `json:"option_d"`
	CorrectAns string `json:"correct_ans"`
}

// AttemptState is the transient per-session quiz state: the ordered snapshot
// taken at start, the cursor, and the answers submitted so far.
type AttemptState struct {
	Questions []QuestionSnapshot `json:"questions"`
	Current   int                `json:"current"`
	Answers   map[uint]string    `json:"answers"`
}

// AttemptStore holds AttemptState keyed by session id. Implementations are
// free to expire entries; an expired or absent key reads as (nil, nil).
type AttemptStore interface {
	Get(ctx context.Context, sessionID string) (*AttemptState, error)
	Put(ctx context.Context, sessionID string, state *AttemptState) error
	Delete(ctx context.Context, sessionID string) error
}

const attemptKeyPrefix = "attempt:"

type redisAttemptStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAttemptStore returns an AttemptStore backed by Redis. Entries expire
// after ttl so abandoned attempts do not accumulate.
func NewRedisAttemptStore(client *redis.Client, ttl time.Duration) AttemptStore {
	return &redisAttemptStore{client: client, ttl: ttl}
}

func (s *redisAttemptStore) Get(ctx context.Context, sessionID string) (*AttemptState, error) {
	data, err := s.client.Get(ctx, attemptKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read attempt state: %w", err)
	}

	var state AttemptState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attempt state: %w", err)
	}

	return &state, nil
}

func (s *redisAttemptStore) Put(ctx context.Context, sessionID string, state *AttemptState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal attempt state: %w", err)
	}

	if err := s.client.Set(ctx, attemptKeyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store attempt state: %w", err)
	}

	return nil
}

func (s *redisAttemptStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, attemptKeyPrefix+sessionID).Err()
}

type memoryAttemptStore struct {
	mu     sync.RWMutex
	states map[string]*AttemptState
}

// NewMemoryAttemptStore returns a process-local AttemptStore, used in tests
// and single-node deployments without Redis.
func NewMemoryAttemptStore() AttemptStore {
	return &memoryAttemptStore{states: make(map[string]*AttemptState)}
}

func (s *memoryAttemptStore) Get(ctx context.Context, sessionID string) (*AttemptState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[sessionID]
	if !ok {
		return nil, nil
	}

	// Copy so callers cannot mutate stored state without a Put.
	cp := *state
	cp.Questions = append([]QuestionSnapshot(nil), state.Questions...)
	cp.Answers = make(map[uint]string, len(state.Answers))
	for k, v := range state.Answers {
		cp.Answers[k] = v
	}
	return &cp, nil
}

func (s *memoryAttemptStore) Put(ctx context.Context, sessionID string, state *AttemptState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[sessionID] = state
	return nil
}

func (s *memoryAttemptStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
	return nil
}

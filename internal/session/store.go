// Package session keeps per-chat dialog state in Redis.
// A chat is in exactly one step of a linear dialog; absence of a key means idle.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Dialog steps. A step names the input the bot is waiting for.
const (
	StepIdle          = ""
	StepAddCarMake    = "add_car_make"
	StepAddCarModel   = "add_car_model"
	StepAddCarYear    = "add_car_year"
	StepAddCarPhoto   = "add_car_photo"
	StepRefreshPhoto  = "refresh_car_photo"
	StepAddDealerName = "add_dealer_name"
	StepAddDealerID   = "add_dealer_telegram_id"
)

// State is the persisted dialog state for one chat.
type State struct {
	Step  string            `json:"step"`
	Draft map[string]string `json:"draft,omitempty"`
}

// Idle reports whether no dialog step is pending.
func (s State) Idle() bool {
	return s.Step == StepIdle
}

// WithDraft returns a copy of the state with the draft field set.
func (s State) WithDraft(key, value string) State {
	draft := make(map[string]string, len(s.Draft)+1)
	for k, v := range s.Draft {
		draft[k] = v
	}
	draft[key] = value
	s.Draft = draft
	return s
}

// Store persists dialog state in Redis with a TTL.
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{redis: client, ttl: ttl}
}

// Get returns the dialog state for a chat; a missing key means idle.
func (s *Store) Get(ctx context.Context, chatID int64) (State, error) {
	if s == nil || s.redis == nil {
		return State{}, nil
	}
	data, err := s.redis.Get(ctx, sessionKey(chatID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("session: get state: %w", err)
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("session: decode state: %w", err)
	}
	return state, nil
}

// Put stores the dialog state for a chat, refreshing the TTL.
func (s *Store) Put(ctx context.Context, chatID int64, state State) error {
	if s == nil || s.redis == nil {
		return nil
	}
	if state.Idle() && len(state.Draft) == 0 {
		return s.Clear(ctx, chatID)
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("session: encode state: %w", err)
	}
	if err := s.redis.Set(ctx, sessionKey(chatID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: put state: %w", err)
	}
	return nil
}

// Clear resets a chat to idle.
func (s *Store) Clear(ctx context.Context, chatID int64) error {
	if s == nil || s.redis == nil {
		return nil
	}
	if err := s.redis.Del(ctx, sessionKey(chatID)).Err(); err != nil {
		return fmt.Errorf("session: clear state: %w", err)
	}
	return nil
}

func sessionKey(chatID int64) string {
	return keyPrefix + strconv.FormatInt(chatID, 10)
}

package conversation

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"globetrek/internal/model"
)

// Kind separates the two UI histories: trip plans and free chat.
type Kind string

const (
	KindPlan Kind = "plan"
	KindChat Kind = "chat"
)

// Turn is a single conversation entry.
type Turn struct {
	Role      model.Role `json:"role"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"created_at"`
}

// Exchange is a (user, assistant) pair. Turns are only ever appended as
// complete exchanges, which keeps the pairing invariant structural.
type Exchange struct {
	Query  Turn `json:"query"`
	Answer Turn `json:"answer"`
}

// Store holds per-session conversation logs. It is bounded on both axes:
// an LRU caps the number of live sessions, and each history caps its
// exchange count by evicting the oldest pair.
type Store struct {
	sessions     *lru.Cache[string, *history]
	maxExchanges int
}

type history struct {
	mu    sync.Mutex
	turns []Turn
}

// NewStore creates a bounded conversation store.
func NewStore(maxSessions, maxExchanges int) (*Store, error) {
	if maxSessions <= 0 {
		return nil, fmt.Errorf("maxSessions must be positive")
	}
	if maxExchanges <= 0 {
		return nil, fmt.Errorf("maxExchanges must be positive")
	}

	sessions, err := lru.New[string, *history](maxSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}

	return &Store{
		sessions:     sessions,
		maxExchanges: maxExchanges,
	}, nil
}

func (s *Store) key(sessionID string, kind Kind) string {
	return sessionID + "/" + string(kind)
}

func (s *Store) histFor(sessionID string, kind Kind) *history {
	key := s.key(sessionID, kind)
	if h, ok := s.sessions.Get(key); ok {
		return h
	}
	h := &history{}
	if prev, ok, _ := s.sessions.PeekOrAdd(key, h); ok {
		return prev
	}
	return h
}

// AppendExchange records a completed (user, assistant) exchange.
func (s *Store) AppendExchange(sessionID string, kind Kind, userText, assistantText string) {
	now := time.Now()
	h := s.histFor(sessionID, kind)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.turns = append(h.turns,
		Turn{Role: model.RoleUser, Text: userText, CreatedAt: now},
		Turn{Role: model.RoleAssistant, Text: assistantText, CreatedAt: now},
	)

	// Evict oldest pairs beyond the bound.
	for len(h.turns) > 2*s.maxExchanges {
		h.turns = h.turns[2:]
	}
}

// Turns returns a copy of the raw turn log for a session.
func (s *Store) Turns(sessionID string, kind Kind) []Turn {
	key := s.key(sessionID, kind)
	h, ok := s.sessions.Get(key)
	if !ok {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Turn, len(h.turns))
	copy(out, h.turns)
	return out
}

// Exchanges returns the paired history. An unpaired trailing turn is dropped.
func (s *Store) Exchanges(sessionID string, kind Kind) []Exchange {
	turns := s.Turns(sessionID, kind)

	var exchanges []Exchange
	for i := 0; i+1 < len(turns); i += 2 {
		if turns[i].Role != model.RoleUser || turns[i+1].Role != model.RoleAssistant {
			continue
		}
		exchanges = append(exchanges, Exchange{Query: turns[i], Answer: turns[i+1]})
	}
	return exchanges
}

// LatestAnswer returns the most recent assistant text, if any.
func (s *Store) LatestAnswer(sessionID string, kind Kind) (string, bool) {
	exchanges := s.Exchanges(sessionID, kind)
	if len(exchanges) == 0 {
		return "", false
	}
	return exchanges[len(exchanges)-1].Answer.Text, true
}

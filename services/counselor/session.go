package counselor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/utils/cache"
)

// Mode is where a chat session stands
type Mode string

const (
	ModeGreeting     Mode = "greeting"
	ModeOptionMenu   Mode = "option_menu"
	ModeSelector     Mode = "selector"
	ModeFreeText     Mode = "free_text"
	ModeAwaitingLead Mode = "awaiting_lead"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

var (
	ErrSessionNotFound = errors.New("chat session not found")
	// ErrSessionConflict means the session was saved by someone else since it was loaded
	ErrSessionConflict = errors.New("chat session was modified concurrently")
)

// Message is one transcript entry
type Message struct {
	ID         string     `json:"id"`
	Role       Role       `json:"role"`
	Content    string     `json:"content"`
	Affordance Affordance `json:"affordance,omitempty"`
	Options    []Option   `json:"options,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Session is one visitor's conversation
type Session struct {
	ID           string    `json:"id"`
	Language     Language  `json:"language"`
	Mode         Mode      `json:"mode"`
	LeadCaptured bool      `json:"lead_captured"`
	LeadName     string    `json:"lead_name,omitempty"`
	PendingQuery string    `json:"pending_query,omitempty"`
	Messages     []Message `json:"messages"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	// Version counts saves; a save must carry the version it was loaded at
	Version int `json:"version"`
}

func (s *Session) clone() *Session {
	cp := *s
	cp.Messages = make([]Message, len(s.Messages))
	copy(cp.Messages, s.Messages)
	return &cp
}

// SessionStore keeps sessions for a TTL measured from the last save.
// Save is compare-and-set on Version: it fails with ErrSessionConflict when
// the stored copy moved on, and bumps s.Version on success.
type SessionStore interface {
	Save(ctx context.Context, s *Session) error
	Load(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	Prune(ctx context.Context) (int, error)
}

type memoryEntry struct {
	session   *Session
	expiresAt time.Time
}

// MemoryStore is a process-local SessionStore
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if e, ok := m.sessions[s.ID]; ok && now.Before(e.expiresAt) && e.session.Version != s.Version {
		return ErrSessionConflict
	}
	s.Version++
	m.sessions[s.ID] = memoryEntry{session: s.clone(), expiresAt: now.Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.sessions[id]
	if !ok || !m.now().Before(e.expiresAt) {
		return nil, ErrSessionNotFound
	}
	return e.session.clone(), nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Prune drops expired sessions and reports how many went
func (m *MemoryStore) Prune(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	n := 0
	for id, e := range m.sessions {
		if !now.Before(e.expiresAt) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

// JSONCache is the part of the Redis cache the session store uses
type JSONCache interface {
	UpdateJSON(ctx context.Context, key string, expiration time.Duration, fn func(current []byte) (interface{}, error)) error
	GetJSON(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// RedisStore keeps sessions in Redis so any instance can serve them
type RedisStore struct {
	cache  JSONCache
	ttl    time.Duration
	prefix string
}

func NewRedisStore(cache JSONCache, ttl time.Duration) *RedisStore {
	return &RedisStore{cache: cache, ttl: ttl, prefix: "chat:session:"}
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	err := r.cache.UpdateJSON(ctx, r.prefix+s.ID, r.ttl, func(current []byte) (interface{}, error) {
		if current != nil {
			var stored struct {
				Version int `json:"version"`
			}
			if err := json.Unmarshal(current, &stored); err != nil {
				return nil, err
			}
			if stored.Version != s.Version {
				return nil, ErrSessionConflict
			}
		}
		next := *s
		next.Version++
		return &next, nil
	})
	switch {
	case err == nil:
		s.Version++
		return nil
	case errors.Is(err, ErrSessionConflict), errors.Is(err, cache.ErrConflict):
		return ErrSessionConflict
	default:
		return fmt.Errorf("failed to save session: %w", err)
	}
}

func (r *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	var s Session
	if err := r.cache.GetJSON(ctx, r.prefix+id, &s); err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.cache.Delete(ctx, r.prefix+id)
}

// Prune is a no-op: Redis expires keys itself
func (r *RedisStore) Prune(context.Context) (int, error) {
	return 0, nil
}

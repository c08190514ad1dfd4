package counselor

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/utils/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ExpiryAndPrune(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{ID: "a"}))
	now = now.Add(30 * time.Second)
	require.NoError(t, store.Save(ctx, &Session{ID: "b"}))

	now = now.Add(45 * time.Second)
	_, err := store.Load(ctx, "a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Load(ctx, "b")
	assert.NoError(t, err)

	n, err := store.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &Session{ID: "a", Messages: []Message{{Content: "one"}}}))

	s, err := store.Load(ctx, "a")
	require.NoError(t, err)
	s.Messages = append(s.Messages, Message{Content: "two"})
	s.Messages[0].Content = "changed"

	again, err := store.Load(ctx, "a")
	require.NoError(t, err)
	require.Len(t, again.Messages, 1)
	assert.Equal(t, "one", again.Messages[0].Content)
}

type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *mapCache) UpdateJSON(_ context.Context, key string, ttl time.Duration, fn func([]byte) (interface{}, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next, err := fn(m.data[key])
	if err != nil {
		return err
	}
	b, err := json.Marshal(next)
	if err != nil {
		return err
	}
	m.data[key] = b
	m.ttls[key] = ttl
	return nil
}

func (m *mapCache) GetJSON(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return cache.ErrNotFound
	}
	return json.Unmarshal(b, dest)
}

func (m *mapCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func TestRedisStore_RoundTrip(t *testing.T) {
	c := newMapCache()
	store := NewRedisStore(c, 2*time.Hour)
	ctx := context.Background()

	sess := &Session{
		ID:       "abc",
		Language: Hindi,
		Mode:     ModeSelector,
		Messages: []Message{{Role: RoleAssistant, Content: "menu", Affordance: AffordanceFaqSelector, Options: []Option{{Label: "q", Value: "q"}}}},
	}
	require.NoError(t, store.Save(ctx, sess))
	assert.Equal(t, 2*time.Hour, c.ttls["chat:session:abc"])

	got, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, Hindi, got.Language)
	assert.Equal(t, ModeSelector, got.Mode)
	assert.Equal(t, sess.Messages[0].Options, got.Messages[0].Options)

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Load(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_RejectsStaleSave(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &Session{ID: "a"}))

	first, err := store.Load(ctx, "a")
	require.NoError(t, err)
	second, err := store.Load(ctx, "a")
	require.NoError(t, err)

	first.Messages = append(first.Messages, Message{Content: "from first"})
	require.NoError(t, store.Save(ctx, first))
	assert.Equal(t, 2, first.Version)

	second.Messages = append(second.Messages, Message{Content: "from second"})
	assert.ErrorIs(t, store.Save(ctx, second), ErrSessionConflict)

	got, err := store.Load(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "from first", got.Messages[0].Content)
}

func TestRedisStore_RejectsStaleSave(t *testing.T) {
	store := NewRedisStore(newMapCache(), time.Hour)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &Session{ID: "abc"}))

	first, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	second, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Version)

	first.Messages = append(first.Messages, Message{Content: "from first"})
	require.NoError(t, store.Save(ctx, first))
	assert.Equal(t, 2, first.Version)

	second.Messages = append(second.Messages, Message{Content: "from second"})
	assert.ErrorIs(t, store.Save(ctx, second), ErrSessionConflict)
	assert.Equal(t, 1, second.Version)

	got, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "from first", got.Messages[0].Content)
}

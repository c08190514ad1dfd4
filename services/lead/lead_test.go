package lead

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/services/events"
	"github.com/Anirudh646/dfghjkddfghj/utils/validation"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestInputValidate_Phone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		ok    bool
	}{
		{"ten digits", "9876543210", true},
		{"surrounding spaces trimmed", " 9876543210 ", true},
		{"nine digits", "987654321", false},
		{"eleven digits", "98765432101", false},
		{"country code", "+919876543210", false},
		{"letters", "98765abcde", false},
		{"inner space", "98765 43210", false},
		{"dashes", "987-654-3210", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{Name: "Asha", Phone: tt.phone}
			err := in.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, validation.PhoneMessage, verr.Fields["phone"])
		})
	}
}

func TestInputValidate_Name(t *testing.T) {
	for _, name := range []string{"", "   ", "A"} {
		in := Input{Name: name, Phone: "9876543210"}
		var verr *ValidationError
		require.ErrorAs(t, in.Validate(), &verr, "name %q", name)
		assert.Contains(t, verr.Fields, "name")
	}

	in := Input{Name: "  Ravi  ", Phone: "9876543210"}
	require.NoError(t, in.Validate())
	assert.Equal(t, "Ravi", in.Name)
}

func TestInputValidate_StripsNullBytes(t *testing.T) {
	in := Input{Name: "Ra\x00vi", Phone: "98765\x0043210 ", Source: "chat\x00"}
	require.NoError(t, in.Validate())
	assert.Equal(t, "Ravi", in.Name)
	assert.Equal(t, "9876543210", in.Phone)
	assert.Equal(t, "chat", in.Source)
}

type memStore struct {
	mu      sync.Mutex
	leads   []model.Lead
	err     error
	started chan struct{}
	release chan struct{}
}

func (m *memStore) Insert(_ context.Context, l *model.Lead) error {
	if m.started != nil {
		close(m.started)
		<-m.release
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.leads = append(m.leads, *l)
	return nil
}

func (m *memStore) List(context.Context, int, int) ([]model.Lead, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.leads, int64(len(m.leads)), nil
}
func (m *memStore) Delete(context.Context, string) error                { return nil }
func (m *memStore) DeleteMany(context.Context, []string) (int64, error) { return 0, nil }
func (m *memStore) Ping(context.Context) error                          { return nil }

func TestService_SubmitDoesNotWaitForWrite(t *testing.T) {
	store := &memStore{started: make(chan struct{}), release: make(chan struct{})}
	svc := NewService(store, events.NewEmitter())

	lead, err := svc.Submit(context.Background(), Input{Name: "Asha", Phone: "9876543210", Source: "chat"})
	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.False(t, lead.CreatedAt.IsZero())

	<-store.started
	// Submit returned while the write is still blocked
	close(store.release)
	svc.Wait()

	leads, total, _ := store.List(context.Background(), 10, 0)
	require.EqualValues(t, 1, total)
	assert.Equal(t, lead.ID, leads[0].ID)
}

func TestService_InvalidInputNeverWrites(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, events.NewEmitter())

	_, err := svc.Submit(context.Background(), Input{Name: "Asha", Phone: "12345"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	svc.Wait()
	assert.Empty(t, store.leads)
}

func TestService_WriteFailureGoesToEmitter(t *testing.T) {
	store := &memStore{err: errors.New("connection refused")}
	emitter := events.NewEmitter()

	var mu sync.Mutex
	var got []events.Event
	emitter.On(events.LeadWriteFailed, func(ev events.Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, ev)
	})

	svc := NewService(store, emitter)
	lead, err := svc.Submit(context.Background(), Input{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err, "storage failures are not surfaced to the caller")
	svc.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, lead.ID, got[0].Payload["lead_id"])
	assert.Contains(t, got[0].Error, "connection refused")
}

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestGormStore_Insert(t *testing.T) {
	db, mock := newMockGorm(t)
	store := NewGormStore(db)

	lead := &model.Lead{ID: "3f1c", Name: "Asha", Phone: "9876543210", CreatedAt: time.Now().UTC()}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "leads"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.Insert(context.Background(), lead))
}

func TestGormStore_ListNewestFirst(t *testing.T) {
	db, mock := newMockGorm(t)
	store := NewGormStore(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "leads"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "leads" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "source", "session_id", "created_at"}).
			AddRow("b", "Ravi", "9123456780", "chat", "", now).
			AddRow("a", "Asha", "9876543210", "form", "", now.Add(-time.Hour)))

	leads, total, err := store.List(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, leads, 2)
	assert.Equal(t, "b", leads[0].ID)
}

func TestGormStore_DeleteMissing(t *testing.T) {
	db, mock := newMockGorm(t)
	store := NewGormStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "leads" WHERE id = \$1`).
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, store.Delete(context.Background(), "nope"), ErrLeadNotFound)
}

func TestGormStore_DeleteMany(t *testing.T) {
	db, mock := newMockGorm(t)
	store := NewGormStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "leads" WHERE id IN \(\$1,\$2\)`).
		WithArgs("a", "b").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	n, err := store.DeleteMany(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = store.DeleteMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

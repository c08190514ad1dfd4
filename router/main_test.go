package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/handlers"
	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/services"
	"github.com/Anirudh646/dfghjkddfghj/services/college"
	"github.com/Anirudh646/dfghjkddfghj/services/counselor"
	"github.com/Anirudh646/dfghjkddfghj/services/events"
	"github.com/Anirudh646/dfghjkddfghj/services/knowledge"
	"github.com/Anirudh646/dfghjkddfghj/services/lead"
	"github.com/Anirudh646/dfghjkddfghj/services/llm"
	"github.com/Anirudh646/dfghjkddfghj/utils/auth"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type nopLeadStore struct{}

func (nopLeadStore) Insert(context.Context, *model.Lead) error { return nil }
func (nopLeadStore) List(context.Context, int, int) ([]model.Lead, int64, error) {
	return nil, 0, nil
}
func (nopLeadStore) Delete(context.Context, string) error                { return lead.ErrLeadNotFound }
func (nopLeadStore) DeleteMany(context.Context, []string) (int64, error) { return 0, nil }
func (nopLeadStore) Ping(context.Context) error                          { return nil }

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	kb := knowledge.Default()
	gen := llm.Unavailable{Reason: "test"}
	c := counselor.New(kb, gen, time.Second)
	leads := lead.NewService(nopLeadStore{}, events.NewEmitter())

	app := fiber.New()
	SetupRoutes(app, Deps{
		DB:            db,
		JWT:           auth.NewJWTManager(auth.JWTConfig{Secret: "test-secret", Expiry: time.Hour, RefreshExpiry: 2 * time.Hour}),
		Knowledge:     kb,
		Counselor:     c,
		Chat:          counselor.NewChatService(c, counselor.NewMemoryStore(time.Hour), leads),
		Leads:         leads,
		Colleges:      college.NewService(db, college.Catalog()),
		Essays:        services.NewEssayService(db, gen, time.Second, nil),
		Notifications: services.NewNotificationService(db),
		HealthChecks:  map[string]handlers.Check{"leads": leads.Ping},
		// credentials are allowed, so CORS refuses a wildcard origin
		AllowedOrigins: []string{"http://localhost:3000"},
	})
	return app
}

func TestRoutes(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/health", fiber.StatusOK},
		{http.MethodGet, "/health/ready", fiber.StatusOK},
		{http.MethodGet, "/api/v1/catalog/courses", fiber.StatusOK},
		{http.MethodGet, "/api/v1/catalog/info", fiber.StatusOK},
		{http.MethodGet, "/api/v1/chat/sessions/missing", fiber.StatusNotFound},
		{http.MethodGet, "/api/v1/essays", fiber.StatusUnauthorized},
		{http.MethodGet, "/api/v1/colleges", fiber.StatusUnauthorized},
		{http.MethodGet, "/api/v1/notifications", fiber.StatusUnauthorized},
		{http.MethodGet, "/api/v1/auth/profile", fiber.StatusUnauthorized},
		{http.MethodPost, "/api/v1/auth/logout-all", fiber.StatusUnauthorized},
		{http.MethodGet, "/api/v1/admin/leads", fiber.StatusUnauthorized},
		{http.MethodPost, "/api/v1/admin/notifications", fiber.StatusUnauthorized},
		{http.MethodGet, "/api/v1/admin/audit-logs", fiber.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestRoutes_AdminRejectsForeignToken(t *testing.T) {
	// Forged with another secret: the signature check fails before any lookup
	other := auth.NewJWTManager(auth.JWTConfig{Secret: "other", Expiry: time.Hour, RefreshExpiry: time.Hour})
	token, _, err := other.GenerateAccessToken(auth.Subject{UserID: 1, Email: "a@example.com", Role: model.RoleAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/leads", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := newTestApp(t).Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRoutes_LeadCaptureSharesModelBudget(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 20; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/chat/sessions/missing/messages", nil), -1)
		require.NoError(t, err)
		require.NotEqual(t, fiber.StatusTooManyRequests, resp.StatusCode, "request %d", i)
	}

	// capturing a lead resubmits the pending question to the model
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/chat/sessions/missing/lead", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/chat/sessions/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

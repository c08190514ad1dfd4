package notification

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/services"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
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

	h := NewNotificationHandler(services.NewNotificationService(db))
	app := fiber.New()
	app.Post("/admin/notifications", h.Create)
	app.Post("/admin/notifications/bulk", h.CreateBulk)

	student := app.Group("/notifications", func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(3))
		return c.Next()
	})
	student.Get("/", h.GetNotifications)
	student.Get("/unread-count", h.GetUnreadCount)
	student.Put("/read-all", h.MarkAllAsRead)
	student.Put("/:id/read", h.MarkAsRead)
	student.Put("/:id/archive", h.Archive)
	student.Delete("/:id", h.DeleteNotification)
	return app, mock
}

type result struct {
	status int
	body   map[string]interface{}
}

func call(t *testing.T, app *fiber.App, method, path, body string) result {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return result{status: resp.StatusCode, body: out}
}

func TestGetNotifications_HidesArchivedByDefault(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "student_notifications" WHERE user_id = \$1 AND status <> \$2`).
		WithArgs(3, "archived").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "student_notifications" WHERE user_id = \$1 AND status <> \$2 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "priority", "status", "title", "created_at"}).
			AddRow(8, 3, "deadline", "high", "unread", "MIT early action", time.Now()))

	res := call(t, app, http.MethodGet, "/notifications?limit=10", "")
	require.Equal(t, fiber.StatusOK, res.status)

	data := res.body["data"].([]interface{})
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "MIT early action", first["title"])
	assert.Equal(t, "high", first["priority"])
	assert.EqualValues(t, 10, res.body["pagination"].(map[string]interface{})["per_page"])
}

func TestGetUnreadCount(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "student_notifications"`).
		WithArgs(3, "unread").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	res := call(t, app, http.MethodGet, "/notifications/unread-count", "")
	require.Equal(t, fiber.StatusOK, res.status)
	assert.EqualValues(t, 6, res.body["data"].(map[string]interface{})["unread_count"])
}

func TestMarkAsRead(t *testing.T) {
	app, mock := newTestApp(t)

	res := call(t, app, http.MethodPut, "/notifications/zero/read", "")
	assert.Equal(t, fiber.StatusBadRequest, res.status)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "student_notifications" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	res = call(t, app, http.MethodPut, "/notifications/44/read", "")
	assert.Equal(t, fiber.StatusNotFound, res.status)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "student_notifications" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	res = call(t, app, http.MethodPut, "/notifications/8/archive", "")
	assert.Equal(t, fiber.StatusOK, res.status)
	assert.Equal(t, "Notification archived", res.body["message"])
}

func TestMarkAllAsRead(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "student_notifications" SET .* WHERE user_id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	res := call(t, app, http.MethodPut, "/notifications/read-all", "")
	require.Equal(t, fiber.StatusOK, res.status)
	assert.EqualValues(t, 2, res.body["data"].(map[string]interface{})["count"])
}

func TestDelete(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "student_notifications"`).WithArgs(8, 3).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res := call(t, app, http.MethodDelete, "/notifications/8", "")
	assert.Equal(t, fiber.StatusOK, res.status)
}

func TestAdminCreate(t *testing.T) {
	app, mock := newTestApp(t)

	res := call(t, app, http.MethodPost, "/admin/notifications", `{"type":"party","title":""}`)
	require.Equal(t, fiber.StatusUnprocessableEntity, res.status)
	fields := res.body["error"].(map[string]interface{})["fields"].(map[string]interface{})
	assert.Contains(t, fields, "user_id")
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "title")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "student_notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(15))
	mock.ExpectCommit()

	res = call(t, app, http.MethodPost, "/admin/notifications",
		`{"user_id":3,"type":"reminder","title":"Finish your essay","message":"Two days left","priority":"high"}`)
	require.Equal(t, fiber.StatusCreated, res.status)
	data := res.body["data"].(map[string]interface{})
	assert.EqualValues(t, 15, data["id"])
	assert.Equal(t, "unread", data["status"])
}

func TestAdminCreateBulk_RequiresRecipients(t *testing.T) {
	app, _ := newTestApp(t)

	res := call(t, app, http.MethodPost, "/admin/notifications/bulk",
		`{"user_ids":[],"type":"update","title":"New colleges","message":"Five added"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.status)
}

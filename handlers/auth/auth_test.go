package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/model"
	authutil "github.com/Anirudh646/dfghjkddfghj/utils/auth"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var userColumns = []string{"id", "email", "password_hash", "name", "role", "token_version"}

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock, *authutil.JWTManager) {
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

	jwtManager := authutil.NewJWTManager(authutil.JWTConfig{
		Secret:        "test-secret",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "admissions-test",
	})
	h := NewAuthHandler(db, jwtManager, nil)

	app := fiber.New()
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	app.Post("/auth/refresh", h.RefreshToken)
	app.Post("/auth/logout-all", func(c *fiber.Ctx) error {
		c.Locals("user", &model.User{ID: 5, Role: model.RoleStudent})
		return c.Next()
	}, h.LogoutAll)
	return app, mock, jwtManager
}

func post(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestRegister_ValidationErrors(t *testing.T) {
	app, _, _ := newTestApp(t)

	status, body := post(t, app, "/auth/register", `{"email":"not-an-email","password":"short","name":"A"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	fields := body["error"].(map[string]interface{})["fields"].(map[string]interface{})
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "name")
}

func TestRegister_PasswordNeedsALetter(t *testing.T) {
	app, _, _ := newTestApp(t)

	status, body := post(t, app, "/auth/register", `{"email":"asha@example.com","password":"12345678","name":"Asha"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "Password must contain at least one letter", body["error"].(map[string]interface{})["message"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app, mock, _ := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "asha@example.com", "x", "Asha", "student", 0))

	status, _ := post(t, app, "/auth/register", `{"email":" Asha@Example.com ","password":"password1","name":"Asha"}`)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestRegister_CreatesStudent(t *testing.T) {
	app, mock, jwtManager := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	status, body := post(t, app, "/auth/register", `{"email":"asha@example.com","password":"password1","name":"Asha"}`)
	require.Equal(t, fiber.StatusCreated, status)

	data := body["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.EqualValues(t, 42, user["id"])
	assert.Equal(t, "student", user["role"])

	access := data["tokens"].(map[string]interface{})["access_token"].(string)
	claims, err := jwtManager.ValidateToken(access)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, authutil.TokenTypeAccess, claims.TokenType)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		status   int
	}{
		{"correct password", "password1", fiber.StatusOK},
		{"wrong password", "password2", fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, mock, _ := newTestApp(t)
			mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
				WillReturnRows(sqlmock.NewRows(userColumns).AddRow(7, "admin@example.com", string(hash), "Admin", "admin", 0))

			status, _ := post(t, app, "/auth/login", `{"email":"admin@example.com","password":"`+tt.password+`"}`)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	app, mock, _ := newTestApp(t)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).WillReturnRows(sqlmock.NewRows(userColumns))

	status, body := post(t, app, "/auth/login", `{"email":"nobody@example.com","password":"password1"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", body["error"].(map[string]interface{})["message"])
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	app, _, jwtManager := newTestApp(t)
	access, _, err := jwtManager.GenerateAccessToken(authutil.Subject{UserID: 7, Email: "a@example.com", Role: "student"})
	require.NoError(t, err)

	status, _ := post(t, app, "/auth/refresh", `{"refresh_token":"`+access+`"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLogoutAll_BumpsTokenVersion(t *testing.T) {
	app, mock, _ := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "token_version"=token_version \+ \$1 WHERE id = \$2`).
		WithArgs(1, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	status, body := post(t, app, "/auth/logout-all", `{}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Signed out on all devices", body["message"])
}

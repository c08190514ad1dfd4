package counselor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/services/counselor"
	"github.com/Anirudh646/dfghjkddfghj/services/knowledge"
	"github.com/Anirudh646/dfghjkddfghj/services/lead"
	"github.com/Anirudh646/dfghjkddfghj/services/llm"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type acceptLeads struct{ got []lead.Input }

func (a *acceptLeads) Submit(_ context.Context, in lead.Input) (*model.Lead, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a.got = append(a.got, in)
	return &model.Lead{ID: "l-1", Name: in.Name, Phone: in.Phone, CreatedAt: time.Now()}, nil
}

func newTestApp(gen llm.Generator) (*fiber.App, *acceptLeads) {
	kb := knowledge.Default()
	c := counselor.New(kb, gen, time.Second)
	leads := &acceptLeads{}
	chat := counselor.NewChatService(c, counselor.NewMemoryStore(time.Hour), leads)

	ch := NewCounselorHandler(c)
	chatH := NewChatHandler(chat)
	cat := NewCatalogHandler(kb)

	app := fiber.New()
	app.Post("/counselor/ask", ch.Ask)
	app.Post("/counselor/get-started", ch.GetStarted)
	app.Get("/counselor/courses/:id/summary", ch.CourseSummary)
	app.Post("/chat/sessions", chatH.Start)
	app.Get("/chat/sessions/:id", chatH.Get)
	app.Post("/chat/sessions/:id/messages", chatH.Submit)
	app.Post("/chat/sessions/:id/select", chatH.Select)
	app.Post("/chat/sessions/:id/lead", chatH.CaptureLead)
	app.Get("/catalog/courses", cat.ListCourses)
	app.Get("/catalog/courses/:id", cat.GetCourse)
	return app, leads
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
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
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func replyWith(text string) llm.Generator {
	return llm.Func(func(context.Context, llm.Request) (string, error) { return text, nil })
}

func TestAsk_EmptyQueryIs422(t *testing.T) {
	called := false
	app, _ := newTestApp(llm.Func(func(context.Context, llm.Request) (string, error) {
		called = true
		return "", nil
	}))

	status, env := do(t, app, http.MethodPost, "/counselor/ask", `{"query":"   "}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, counselor.ErrEmptyQuery.Error(), env.Error.Fields["query"])
	assert.False(t, called)
}

func TestAsk_CourseMenuIsLocal(t *testing.T) {
	app, _ := newTestApp(llm.Unavailable{Reason: "test"})

	status, env := do(t, app, http.MethodPost, "/counselor/ask", `{"query":"courses"}`)
	require.Equal(t, fiber.StatusOK, status)

	var ans counselor.Answer
	require.NoError(t, json.Unmarshal(env.Data, &ans))
	assert.Equal(t, counselor.KindCourseMenu, ans.Kind)
	assert.Equal(t, counselor.AffordanceCourseSelector, ans.Affordance)
	assert.NotEmpty(t, ans.Options)
}

func TestAsk_ModelFailureIsGeneric502(t *testing.T) {
	app, _ := newTestApp(llm.Func(func(context.Context, llm.Request) (string, error) {
		return "", errors.New("dial tcp: connection refused")
	}))

	status, env := do(t, app, http.MethodPost, "/counselor/ask", `{"query":"What is the hostel fee?","language":"hi"}`)
	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Equal(t, counselor.GenericErrorMessage(counselor.Hindi), env.Error.Message)
	assert.NotContains(t, env.Error.Message, "connection refused")
}

func TestAsk_ForwardedAnswer(t *testing.T) {
	app, _ := newTestApp(replyWith("The hostel fee is ₹60,000 per year."))

	status, env := do(t, app, http.MethodPost, "/counselor/ask", `{"query":"What is the hostel fee?"}`)
	require.Equal(t, fiber.StatusOK, status)

	var ans counselor.Answer
	require.NoError(t, json.Unmarshal(env.Data, &ans))
	assert.Equal(t, counselor.KindText, ans.Kind)
	assert.Equal(t, "The hostel fee is ₹60,000 per year.", ans.Text)
	require.NotNil(t, ans.FollowUp)
	assert.Equal(t, counselor.AffordanceOptionMenu, ans.FollowUp.Affordance)
}

func TestGetStarted_InterestLength(t *testing.T) {
	app, _ := newTestApp(replyWith("Start with BCA."))

	status, env := do(t, app, http.MethodPost, "/counselor/get-started", `{"interest":"ai"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Error.Fields, "interest")

	status, env = do(t, app, http.MethodPost, "/counselor/get-started", `{"interest":"artificial intelligence"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"guide":"Start with BCA."}`, string(env.Data))
}

func TestCourseSummary_UnknownCourse(t *testing.T) {
	app, _ := newTestApp(replyWith("{}"))
	status, _ := do(t, app, http.MethodGet, "/counselor/courses/nope/summary", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestChat_LeadGateAndResubmit(t *testing.T) {
	var prompts []string
	app, leads := newTestApp(llm.Func(func(_ context.Context, req llm.Request) (string, error) {
		prompts = append(prompts, req.Prompt)
		return "Hostel fee is ₹60,000 per year.", nil
	}))

	status, env := do(t, app, http.MethodPost, "/chat/sessions", `{"language":"en"}`)
	require.Equal(t, fiber.StatusCreated, status)
	var sess counselor.Session
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.Equal(t, counselor.ModeGreeting, sess.Mode)

	base := "/chat/sessions/" + sess.ID
	status, env = do(t, app, http.MethodPost, base+"/messages", `{"text":"What is the hostel fee?"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.Equal(t, counselor.ModeAwaitingLead, sess.Mode)
	assert.Equal(t, counselor.AffordanceLeadForm, sess.Messages[len(sess.Messages)-1].Affordance)
	assert.Empty(t, prompts)

	status, env = do(t, app, http.MethodPost, base+"/lead", `{"name":"Asha","phone":"12345"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Error.Fields, "phone")

	status, env = do(t, app, http.MethodPost, base+"/lead", `{"name":"Asha","phone":"9876543210"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.True(t, sess.LeadCaptured)
	assert.Len(t, prompts, 1)
	require.Len(t, leads.got, 1)
	assert.Equal(t, sess.ID, leads.got[0].SessionID)

	status, _ = do(t, app, http.MethodPost, base+"/lead", `{"name":"Asha","phone":"9876543210"}`)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestChat_UnknownSession(t *testing.T) {
	app, _ := newTestApp(replyWith("ok"))
	status, env := do(t, app, http.MethodGet, "/chat/sessions/missing", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestCatalog_CourseByCode(t *testing.T) {
	app, _ := newTestApp(replyWith("ok"))
	kb := knowledge.Default()
	first := kb.Courses[0]

	status, env := do(t, app, http.MethodGet, "/catalog/courses/"+first.Code, "")
	require.Equal(t, fiber.StatusOK, status)
	var got knowledge.Course
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, first.ID, got.ID)

	status, _ = do(t, app, http.MethodGet, "/catalog/courses/unknown", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

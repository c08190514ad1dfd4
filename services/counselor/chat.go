package counselor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/services/lead"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrLeadAlreadyCaptured = errors.New("lead already captured for this session")

// LeadSubmitter starts a lead write and returns once the input is accepted
type LeadSubmitter interface {
	Submit(ctx context.Context, in lead.Input) (*model.Lead, error)
}

// sessionLock is one session's mutex plus the number of callers holding or
// waiting for it
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// sessionLocks hands out one mutex per session id. An entry lives only while
// some caller holds or waits for it.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

func (k *sessionLocks) lock(id string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sessionLock)
	}
	l, ok := k.locks[id]
	if !ok {
		l = &sessionLock{}
		k.locks[id] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}

func (k *sessionLocks) len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}

// ChatService drives the chat transcript. Operations on one session are
// serialized; different sessions proceed in parallel.
//
// The lock is per process. Across instances sharing Redis, the store's
// version check rejects a save based on a stale read with ErrSessionConflict.
type ChatService struct {
	counselor *Counselor
	store     SessionStore
	leads     LeadSubmitter
	locks     sessionLocks
	now       func() time.Time
}

func NewChatService(c *Counselor, store SessionStore, leads LeadSubmitter) *ChatService {
	return &ChatService{
		counselor: c,
		store:     store,
		leads:     leads,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *ChatService) lock(id string) func() {
	return s.locks.lock(id)
}

// Start opens a session with the greeting. A non-empty initial query is
// submitted straight away.
func (s *ChatService) Start(ctx context.Context, lang Language, initialQuery string) (*Session, error) {
	var initial string
	if initialQuery != "" {
		q, err := ValidateQuery(initialQuery)
		if err != nil {
			return nil, err
		}
		initial = q
	}

	now := s.now()
	sess := &Session{
		ID:        uuid.New().String(),
		Language:  lang,
		Mode:      ModeGreeting,
		Messages:  []Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.appendAnswer(sess, s.counselor.Greeting(lang))

	unlock := s.lock(sess.ID)
	defer unlock()

	var err error
	if initial != "" {
		err = s.submit(ctx, sess, initial)
	}
	if saveErr := s.store.Save(ctx, sess); saveErr != nil {
		return nil, saveErr
	}

	zap.S().Infow("chat session started", "session_id", sess.ID, "language", lang)
	return sess, err
}

// Get returns the session transcript
func (s *ChatService) Get(ctx context.Context, id string) (*Session, error) {
	return s.store.Load(ctx, id)
}

// Submit adds a typed message and the counselor's reply. Invalid text is
// rejected before anything is stored or generated.
func (s *ChatService) Submit(ctx context.Context, id, text string) (*Session, error) {
	q, err := ValidateQuery(text)
	if err != nil {
		return nil, err
	}

	unlock := s.lock(id)
	defer unlock()

	sess, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.submit(ctx, sess, q)
	if saveErr := s.store.Save(ctx, sess); saveErr != nil {
		return nil, saveErr
	}
	return sess, err
}

// Select picks a rendered option. It is the same as typing the option's value.
func (s *ChatService) Select(ctx context.Context, id, value string) (*Session, error) {
	return s.Submit(ctx, id, value)
}

// CaptureLead records the visitor's details, then answers the question that
// was held back, once.
func (s *ChatService) CaptureLead(ctx context.Context, id, name, phone string) (*Session, error) {
	unlock := s.lock(id)
	defer unlock()

	sess, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.LeadCaptured {
		return nil, ErrLeadAlreadyCaptured
	}

	l, err := s.leads.Submit(ctx, lead.Input{Name: name, Phone: phone, Source: "chat", SessionID: sess.ID})
	if err != nil {
		return nil, err
	}

	t := textsFor(sess.Language)
	sess.LeadCaptured = true
	sess.LeadName = l.Name
	s.appendMessage(sess, RoleAssistant, fmt.Sprintf(t.LeadThanks, l.Name), AffordanceNone, nil)
	s.appendMessage(sess, RoleAssistant, t.Privacy, AffordanceNone, nil)
	sess.Mode = ModeFreeText

	pending := sess.PendingQuery
	sess.PendingQuery = ""

	var answerErr error
	if pending != "" {
		answerErr = s.answer(ctx, sess, pending)
	}
	if saveErr := s.store.Save(ctx, sess); saveErr != nil {
		return nil, saveErr
	}
	return sess, answerErr
}

// Prune drops expired sessions from stores that need it
func (s *ChatService) Prune(ctx context.Context) (int, error) {
	return s.store.Prune(ctx)
}

func (s *ChatService) submit(ctx context.Context, sess *Session, q string) error {
	s.appendMessage(sess, RoleUser, q, AffordanceNone, nil)

	if !sess.LeadCaptured {
		// the latest question is the one answered after capture
		sess.PendingQuery = q
		if sess.Mode != ModeAwaitingLead {
			s.appendMessage(sess, RoleAssistant, textsFor(sess.Language).LeadPrompt, AffordanceLeadForm, nil)
			sess.Mode = ModeAwaitingLead
		}
		return nil
	}
	return s.answer(ctx, sess, q)
}

func (s *ChatService) answer(ctx context.Context, sess *Session, q string) error {
	ans, err := s.counselor.Ask(ctx, q, sess.Language)
	if err != nil {
		s.appendMessage(sess, RoleSystem, GenericErrorMessage(sess.Language), AffordanceNone, nil)
		sess.Mode = ModeFreeText
		return err
	}

	s.appendAnswer(sess, ans)
	if ans.FollowUp != nil {
		s.appendAnswer(sess, ans.FollowUp)
	}
	sess.Mode = modeAfter(ans)
	return nil
}

func modeAfter(ans *Answer) Mode {
	switch {
	case ans.Kind == KindGreeting:
		return ModeGreeting
	case ans.FollowUp != nil:
		return ModeOptionMenu
	case ans.Affordance != AffordanceNone:
		return ModeSelector
	default:
		return ModeFreeText
	}
}

func (s *ChatService) appendAnswer(sess *Session, ans *Answer) {
	s.appendMessage(sess, RoleAssistant, ans.Text, ans.Affordance, ans.Options)
}

func (s *ChatService) appendMessage(sess *Session, role Role, content string, aff Affordance, opts []Option) {
	now := s.now()
	sess.Messages = append(sess.Messages, Message{
		ID:         uuid.New().String(),
		Role:       role,
		Content:    content,
		Affordance: aff,
		Options:    opts,
		CreatedAt:  now,
	})
	sess.UpdatedAt = now
}

package lead

import (
	"context"
	"sync"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/services/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultWriteTimeout = 10 * time.Second

// Service validates leads and writes them without blocking the caller
type Service struct {
	store        Store
	emitter      *events.Emitter
	writeTimeout time.Duration
	now          func() time.Time
	wg           sync.WaitGroup
}

func NewService(store Store, emitter *events.Emitter) *Service {
	return &Service{
		store:        store,
		emitter:      emitter,
		writeTimeout: defaultWriteTimeout,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates in, assigns id and timestamp, and starts the write in the
// background. Storage errors never reach the caller; they go to the emitter.
func (s *Service) Submit(ctx context.Context, in Input) (*model.Lead, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	lead := &model.Lead{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Source:    in.Source,
		SessionID: in.SessionID,
		CreatedAt: s.now(),
	}

	record := *lead
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		// detached from the request so the write survives the response
		writeCtx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
		defer cancel()
		s.write(writeCtx, &record)
	}()

	return lead, nil
}

func (s *Service) write(ctx context.Context, lead *model.Lead) {
	if err := s.store.Insert(ctx, lead); err != nil {
		zap.S().Errorw("lead write failed", "lead_id", lead.ID, "error", err)
		s.emitter.Emit(events.Event{
			Type:    events.LeadWriteFailed,
			Payload: map[string]interface{}{"lead_id": lead.ID, "source": lead.Source},
			Error:   err.Error(),
		})
		return
	}
	s.emitter.Emit(events.Event{
		Type:    events.LeadCaptured,
		Payload: map[string]interface{}{"lead_id": lead.ID, "source": lead.Source},
	})
}

// Wait blocks until in-flight writes finish
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]model.Lead, int64, error) {
	return s.store.List(ctx, limit, offset)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	return s.store.DeleteMany(ctx, ids)
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Package events is a small in-process pub/sub used to surface background
// failures (lead writes, cron jobs) without coupling the producer to a sink.
package events

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	LeadCaptured       = "lead.captured"
	LeadWriteFailed    = "lead.write_failed"
	NotificationFailed = "notification.delivery_failed"

	// Wildcard handlers receive every event
	Wildcard = "*"
)

// Event is one occurrence. Payload must be JSON-encodable for the Redis bridge.
type Event struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
	Error   string                 `json:"error,omitempty"`
	At      time.Time              `json:"at"`
}

type Handler func(Event)

// Emitter fans events out to registered handlers synchronously
type Emitter struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewEmitter() *Emitter {
	return &Emitter{handlers: make(map[string][]Handler)}
}

// On registers h for eventType, or for everything with Wildcard
func (e *Emitter) On(eventType string, h Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[eventType] = append(e.handlers[eventType], h)
}

// Emit stamps the event and runs matching handlers. A panicking handler is
// logged and does not stop the others.
func (e *Emitter) Emit(ev Event) {
	if e == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	e.mu.RLock()
	hs := make([]Handler, 0, len(e.handlers[ev.Type])+len(e.handlers[Wildcard]))
	hs = append(hs, e.handlers[ev.Type]...)
	hs = append(hs, e.handlers[Wildcard]...)
	e.mu.RUnlock()

	for _, h := range hs {
		run(h, ev)
	}
}

func run(h Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			zap.S().Errorw("event handler panicked", "type", ev.Type, "panic", r)
		}
	}()
	h(ev)
}

// LogHandler writes events to the global logger; failures at warn level
func LogHandler(ev Event) {
	if ev.Error != "" {
		zap.S().Warnw("event", "type", ev.Type, "payload", ev.Payload, "error", ev.Error)
		return
	}
	zap.S().Infow("event", "type", ev.Type, "payload", ev.Payload)
}

// Publisher is the slice of the Redis cache the bridge needs
type Publisher interface {
	Publish(ctx context.Context, channel string, payload interface{}) error
}

// RedisBridge forwards events to a pub/sub channel
func RedisBridge(pub Publisher, channel string) Handler {
	return func(ev Event) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := pub.Publish(ctx, channel, ev); err != nil {
			zap.S().Warnw("event publish failed", "channel", channel, "type", ev.Type, "error", err)
		}
	}
}

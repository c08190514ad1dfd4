package services

import (
	"context"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/services/events"
	"go.uber.org/zap"
)

// DispatchResult summarises one dispatcher run
type DispatchResult struct {
	Sent   int
	Failed int
}

// NotificationDispatcher delivers scheduled notifications on their channels
type NotificationDispatcher struct {
	notifications *NotificationService
	mailer        Mailer
	emitter       *events.Emitter
	batchSize     int
}

func NewNotificationDispatcher(notifications *NotificationService, mailer Mailer, emitter *events.Emitter) *NotificationDispatcher {
	return &NotificationDispatcher{
		notifications: notifications,
		mailer:        mailer,
		emitter:       emitter,
		batchSize:     100,
	}
}

// Dispatch sends everything that is due. In-app delivery needs no work beyond
// marking the row sent; email goes through the mailer.
func (d *NotificationDispatcher) Dispatch(ctx context.Context) (DispatchResult, error) {
	var res DispatchResult

	due, err := d.notifications.DueForDelivery(ctx, d.batchSize)
	if err != nil {
		return res, err
	}

	for i := range due {
		n := &due[i]
		if err := d.deliver(n); err != nil {
			res.Failed++
			zap.S().Warnw("notification delivery failed", "id", n.ID, "attempt", n.RetryCount+1, "error", err)
			if markErr := d.notifications.MarkAttemptFailed(ctx, n); markErr != nil {
				return res, markErr
			}
			d.emitter.Emit(events.Event{
				Type:    events.NotificationFailed,
				Payload: map[string]interface{}{"notification_id": n.ID, "retry_count": n.RetryCount, "delivery_status": n.DeliveryStatus},
				Error:   err.Error(),
			})
			continue
		}
		if err := d.notifications.MarkSent(ctx, n.ID); err != nil {
			return res, err
		}
		res.Sent++
	}
	return res, nil
}

func (d *NotificationDispatcher) deliver(n *model.StudentNotification) error {
	if !n.HasChannel(model.ChannelEmail) {
		return nil
	}
	if d.mailer == nil || !d.mailer.IsConfigured() {
		if n.HasChannel(model.ChannelInApp) {
			return nil
		}
		return ErrSMTPNotConfigured
	}
	return d.mailer.SendNotificationEmail(n.User.Email, n.User.Name, n.Title, n.Message)
}

package cron

import (
	"context"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/services"
)

// NotificationRetention is how long read and archived notifications are kept
const NotificationRetention = 90 * 24 * time.Hour

// Dispatcher sends due notifications
type Dispatcher interface {
	Dispatch(ctx context.Context) (services.DispatchResult, error)
}

// NotificationCleaner removes old read or archived notifications
type NotificationCleaner interface {
	CleanupOld(ctx context.Context, olderThan time.Duration) (int64, error)
}

// TokenCleaner drops expired entries from the token blacklist
type TokenCleaner interface {
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

// SessionPruner drops idle chat sessions
type SessionPruner interface {
	Prune(ctx context.Context) (int, error)
}

// DispatchNotificationsJob runs every minute
func DispatchNotificationsJob(d Dispatcher) Job {
	return Job{
		Name:     "dispatch_notifications",
		Schedule: "0 * * * * *",
		Timeout:  50 * time.Second,
		Run: func(ctx context.Context) (int64, error) {
			res, err := d.Dispatch(ctx)
			return int64(res.Sent + res.Failed), err
		},
	}
}

// CleanupNotificationsJob runs daily at 2 AM
func CleanupNotificationsJob(c NotificationCleaner) Job {
	return Job{
		Name:     "cleanup_notifications",
		Schedule: "0 0 2 * * *",
		Timeout:  10 * time.Minute,
		Run: func(ctx context.Context) (int64, error) {
			return c.CleanupOld(ctx, NotificationRetention)
		},
	}
}

// CleanupTokenBlacklistJob runs daily at 3 AM
func CleanupTokenBlacklistJob(c TokenCleaner) Job {
	return Job{
		Name:     "cleanup_token_blacklist",
		Schedule: "0 0 3 * * *",
		Run:      c.CleanupExpiredTokens,
	}
}

// PruneSessionsJob runs every 15 minutes
func PruneSessionsJob(p SessionPruner) Job {
	return Job{
		Name:     "prune_chat_sessions",
		Schedule: "0 */15 * * * *",
		Timeout:  time.Minute,
		Run: func(ctx context.Context) (int64, error) {
			n, err := p.Prune(ctx)
			return int64(n), err
		},
	}
}

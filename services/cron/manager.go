package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusStarted   = "started"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Job is one scheduled task. Run returns how many records it touched.
type Job struct {
	Name     string
	Schedule string // six fields, seconds first
	Timeout  time.Duration
	Run      func(ctx context.Context) (int64, error)
}

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron *cron.Cron
	db   *gorm.DB
	jobs []Job
	now  func() time.Time
}

// NewCronManager creates a new cron manager. db may be nil, in which case runs
// are only logged, not recorded.
func NewCronManager(db *gorm.DB, jobs ...Job) *CronManager {
	return &CronManager{
		cron: cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		db:   db,
		jobs: jobs,
		now:  time.Now,
	}
}

// Start registers every job and starts the scheduler
func (m *CronManager) Start() error {
	for _, job := range m.jobs {
		job := job
		if _, err := m.cron.AddFunc(job.Schedule, func() { m.RunNow(context.Background(), job) }); err != nil {
			return fmt.Errorf("failed to schedule %s: %w", job.Name, err)
		}
		zap.S().Infow("cron job registered", "job", job.Name, "schedule", job.Schedule)
	}
	m.cron.Start()
	zap.S().Infow("cron jobs started", "count", len(m.jobs))
	return nil
}

// Stop waits for running jobs to finish
func (m *CronManager) Stop() {
	<-m.cron.Stop().Done()
	zap.S().Info("cron jobs stopped")
}

// RunNow executes job once and records the run
func (m *CronManager) RunNow(ctx context.Context, job Job) (int64, error) {
	timeout := job.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := m.now()
	entry := m.logJobStart(job.Name, started)

	processed, err := job.Run(ctx)
	if err != nil {
		m.logJobError(entry, started, err)
		return processed, err
	}
	m.logJobComplete(entry, started, processed)
	return processed, nil
}

func (m *CronManager) logJobStart(name string, started time.Time) *model.CronJobLog {
	zap.S().Debugw("cron job started", "job", name)
	entry := &model.CronJobLog{JobName: name, Status: StatusStarted, StartedAt: started}
	if m.db == nil {
		return entry
	}
	if err := m.db.Create(entry).Error; err != nil {
		zap.S().Warnw("cron log not written", "job", name, "error", err)
	}
	return entry
}

func (m *CronManager) finish(entry *model.CronJobLog, started time.Time, updates map[string]interface{}) {
	done := m.now()
	updates["completed_at"] = done
	updates["duration_ms"] = done.Sub(started).Milliseconds()
	if m.db == nil || entry.ID == 0 {
		return
	}
	if err := m.db.Model(entry).Updates(updates).Error; err != nil {
		zap.S().Warnw("cron log not updated", "job", entry.JobName, "error", err)
	}
}

func (m *CronManager) logJobComplete(entry *model.CronJobLog, started time.Time, processed int64) {
	zap.S().Infow("cron job completed", "job", entry.JobName, "processed", processed)
	m.finish(entry, started, map[string]interface{}{"status": StatusCompleted, "processed": processed})
}

func (m *CronManager) logJobError(entry *model.CronJobLog, started time.Time, err error) {
	zap.S().Errorw("cron job failed", "job", entry.JobName, "error", err)
	m.finish(entry, started, map[string]interface{}{"status": StatusFailed, "error_msg": err.Error()})
}

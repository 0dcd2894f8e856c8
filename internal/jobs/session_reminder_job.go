package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionReminderJob notifies assigned translators and customers shortly
// before their session starts. Each run covers the half-open interval
// [lead+lastRun, lead+now), so consecutive runs never remind the same job
// twice and no window start falls between two runs.
type SessionReminderJob struct {
	handler commands.RemindUpcomingSessionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
	lead    time.Duration

	mu      sync.Mutex
	lastRun time.Time
}

// NewSessionReminderJob creates the reminder job. lead is how far before the
// window start the reminder goes out.
func NewSessionReminderJob(
	handler commands.RemindUpcomingSessionsCommandHandler,
	lead time.Duration,
	logger *slog.Logger,
) *SessionReminderJob {
	return &SessionReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "session_reminder_job"),
		lead:    lead,
		lastRun: time.Now(),
	}
}

// Start begins the reminder job, running every minute.
func (j *SessionReminderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		j.mu.Lock()
		from := j.lastRun.Add(j.lead)
		now := time.Now()
		to := now.Add(j.lead)
		j.lastRun = now
		j.mu.Unlock()

		if !from.Before(to) {
			return
		}

		cmd, err := commands.NewRemindUpcomingSessionsCommand(from, to)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reminder command rejected", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Session reminder run failed", "error", err)
			return
		}

		if len(result.RemindedJobs) > 0 {
			j.logger.InfoContext(ctx, "Sent session reminders",
				"count", len(result.RemindedJobs),
				"notification_failures", len(result.NotificationFailures))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *SessionReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session reminder job stopped")
}

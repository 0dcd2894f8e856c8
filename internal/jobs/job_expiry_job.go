package jobs

import (
	"context"
	"log/slog"
	"time"

	"booking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// JobExpiryJob sweeps Open jobs whose scheduled window has started and moves
// them to Expired. Runs every minute; a job accepted mid-sweep is skipped by
// the guarded update, so the sweep never races a translator.
type JobExpiryJob struct {
	handler commands.ExpireJobsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewJobExpiryJob creates the expiry sweep job.
func NewJobExpiryJob(handler commands.ExpireJobsCommandHandler, logger *slog.Logger) *JobExpiryJob {
	return &JobExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "job_expiry_job"),
	}
}

// Start begins the expiry sweep, running every minute.
func (j *JobExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireJobsCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Expiry sweep command rejected", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Expiry sweep failed", "error", err)
			return
		}

		if len(result.ExpiredJobs) > 0 {
			j.logger.InfoContext(ctx, "Expired stale jobs",
				"count", len(result.ExpiredJobs),
				"notification_failures", len(result.NotificationFailures))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Job expiry sweep started (running every minute)")
	return nil
}

// Stop stops the expiry sweep.
func (j *JobExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Job expiry sweep stopped")
}

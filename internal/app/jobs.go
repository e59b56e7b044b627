package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

const jobTimeout = time.Minute

type tokenCleaner interface {
	CleanupExpiredTokens(ctx context.Context) (int, error)
}

// Jobs runs periodic maintenance in the background.
type Jobs struct {
	sched *gocron.Scheduler
	log   *slog.Logger
}

// NewJobs schedules the refresh-token purge every interval. Runs never
// overlap: a slow purge delays the next one instead of stacking up.
func NewJobs(ctx context.Context, interval time.Duration, tokens tokenCleaner, logger *slog.Logger) (*Jobs, error) {
	j := &Jobs{
		sched: gocron.NewScheduler(time.UTC),
		log:   logger.With("component", "jobs"),
	}
	j.sched.SingletonModeAll()

	_, err := j.sched.Every(interval).Tag("token-cleanup").Do(func() {
		runCtx, cancel := context.WithTimeout(ctx, jobTimeout)
		defer cancel()

		n, err := tokens.CleanupExpiredTokens(runCtx)
		if err != nil {
			j.log.ErrorContext(runCtx, "token cleanup job failed", slog.String("error", err.Error()))
			return
		}
		j.log.DebugContext(runCtx, "token cleanup job done", slog.Int("deleted", n))
	})
	if err != nil {
		return nil, fmt.Errorf("schedule token cleanup: %w", err)
	}
	return j, nil
}

// Start runs the scheduler without blocking.
func (j *Jobs) Start() {
	j.sched.StartAsync()
	j.log.Info("background jobs started", slog.Int("jobs", len(j.sched.Jobs())))
}

// Stop halts the scheduler. Running jobs are allowed to finish.
func (j *Jobs) Stop() {
	j.sched.Stop()
}

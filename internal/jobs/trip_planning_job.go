package jobs

import (
	"context"
	"errors"
	"log/slog"

	"ordertrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TripPlanningJob manages the scheduled planning of delivery trips.
// Runs every second to advance queued orders into planned trips.
type TripPlanningJob struct {
	handler commands.PlanQueuedTripCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTripPlanningJob creates a new job for planning delivery trips.
// Uses PlanQueuedTripCommandHandler to process one queued order per tick.
func NewTripPlanningJob(handler commands.PlanQueuedTripCommandHandler, logger *slog.Logger) *TripPlanningJob {
	return &TripPlanningJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "trip_planning_job"),
	}
}

// Start begins the trip planning job to run every second.
func (j *TripPlanningJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewPlanQueuedTripCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue is an expected business scenario
			if !errors.Is(err, commands.ErrNoOrderFound) {
				j.logger.ErrorContext(ctx, "Trip planning job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Trip planning job started (running every second)")
	return nil
}

// Stop stops the trip planning job.
func (j *TripPlanningJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Trip planning job stopped")
}

package jobs

import (
	"context"
	"log/slog"

	"courier/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CourierMovementJob manages the scheduled movement of couriers.
// Each tick steps every out-for-delivery courier toward its order destination.
type CourierMovementJob struct {
	handler  commands.MoveCouriersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCourierMovementJob creates a new job for moving couriers.
// schedule is a six-field cron expression with second granularity,
// e.g. "* * * * * *" for every second.
func NewCourierMovementJob(
	handler commands.MoveCouriersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *CourierMovementJob {
	return &CourierMovementJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "courier_movement_job"),
	}
}

// Start begins the courier movement job on its schedule.
func (j *CourierMovementJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewMoveCouriersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Courier movement job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier movement job started", "schedule", j.schedule)
	return nil
}

// Stop stops the courier movement job.
func (j *CourierMovementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier movement job stopped")
}

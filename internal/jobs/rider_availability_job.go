package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/rider"

	"github.com/robfig/cron/v3"
)

// RiderReconciler is satisfied by commands.ReconcileRiderAvailabilityCommandHandler.
type RiderReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcileRiderAvailabilityCommand) ([]*rider.Rider, error)
}

// RiderAvailabilityJob marks riders that own open batches as busy.
type RiderAvailabilityJob struct {
	handler  RiderReconciler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewRiderAvailabilityJob(handler RiderReconciler, schedule string, logger *slog.Logger) *RiderAvailabilityJob {
	return &RiderAvailabilityJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "rider_availability_job"),
	}
}

// Start schedules the job.
func (j *RiderAvailabilityJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rider availability job started", "schedule", j.schedule)
	return nil
}

// Run reconciles once.
func (j *RiderAvailabilityJob) Run(ctx context.Context) {
	busy, err := j.handler.Handle(ctx, commands.NewReconcileRiderAvailabilityCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Rider availability job failed", "error", err)
		return
	}
	for _, r := range busy {
		j.logger.InfoContext(ctx, "Rider marked busy", "rider_id", r.ID().String())
	}
}

// Stop stops the job and waits for a running reconciliation.
func (j *RiderAvailabilityJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Rider availability job stopped")
}

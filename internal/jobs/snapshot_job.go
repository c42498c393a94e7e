package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SnapshotSaver is satisfied by commands.SaveSnapshotCommandHandler.
type SnapshotSaver interface {
	Handle(ctx context.Context, cmd commands.SaveSnapshotCommand) error
}

// SnapshotJob periodically exports the registries to the snapshot store.
type SnapshotJob struct {
	handler  SnapshotSaver
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSnapshotJob creates the job. schedule is a cron spec with seconds or a
// descriptor such as "@every 30s".
func NewSnapshotJob(handler SnapshotSaver, schedule string, logger *slog.Logger) *SnapshotJob {
	return &SnapshotJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "snapshot_job"),
	}
}

// Start schedules the job.
func (j *SnapshotJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot job started", "schedule", j.schedule)
	return nil
}

// Run saves one snapshot.
func (j *SnapshotJob) Run(ctx context.Context) {
	if err := j.handler.Handle(ctx, commands.NewSaveSnapshotCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Snapshot job failed", "error", err)
	}
}

// Stop waits for a running save and then saves once more, so state written
// since the last tick survives a shutdown.
func (j *SnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.Run(context.Background())
	j.logger.InfoContext(context.Background(), "Snapshot job stopped")
}

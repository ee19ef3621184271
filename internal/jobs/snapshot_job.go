package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// SnapshotStore is the storage that can be written to a snapshot file.
type SnapshotStore interface {
	Dirty(ctx context.Context) (bool, error)
	SaveFile(ctx context.Context, path string) error
}

// SnapshotJob writes the in-memory state to disk when something was
// committed since the last write.
type SnapshotJob struct {
	store    SnapshotStore
	path     string
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewSnapshotJob(store SnapshotStore, path, schedule string, logger *slog.Logger) *SnapshotJob {
	return &SnapshotJob{
		store:    store,
		path:     path,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "snapshot_job"),
	}
}

// Run saves the snapshot once. It reports whether a file was written.
func (j *SnapshotJob) Run(ctx context.Context) (bool, error) {
	dirty, err := j.store.Dirty(ctx)
	if err != nil || !dirty {
		return false, err
	}
	if err = j.store.SaveFile(ctx, j.path); err != nil {
		return false, err
	}
	j.logger.DebugContext(ctx, "Snapshot saved", "path", j.path)
	return true, nil
}

func (j *SnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Snapshot job failed", "path", j.path, "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot job started", "schedule", j.schedule, "path", j.path)
	return nil
}

// Stop waits for a running save to finish and then writes whatever is left.
func (j *SnapshotJob) Stop() {
	<-j.cron.Stop().Done()

	ctx := context.Background()
	if _, err := j.Run(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Final snapshot failed", "path", j.path, "error", err)
	}
	j.logger.InfoContext(ctx, "Snapshot job stopped")
}

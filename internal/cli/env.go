package cli

import (
	"context"

	"github.com/nerrad567/plugctl/internal/history"
	"github.com/nerrad567/plugctl/internal/infrastructure/database"
	"github.com/nerrad567/plugctl/internal/infrastructure/influxdb"
)

// recordHistory appends a command history entry when history is enabled.
// Failures are logged at warn level and never fail the command.
func (e *appEnv) recordHistory(ctx context.Context, action, target string, details map[string]any) {
	if !e.cfg.History.Enabled {
		return
	}

	db, err := database.Open(database.Config{
		Path:        e.cfg.History.Path,
		WALMode:     e.cfg.History.WALMode,
		BusyTimeout: e.cfg.History.BusyTimeout,
	})
	if err != nil {
		e.log.Warn("opening history database", "error", err)
		return
	}
	defer db.Close()

	repo := history.NewSQLiteRepository(db.DB)
	if err := repo.EnsureSchema(ctx); err != nil {
		e.log.Warn("preparing history schema", "error", err)
		return
	}

	entry := &history.Entry{Action: action, Target: target, Details: details}
	if err := repo.Record(ctx, entry); err != nil {
		e.log.Warn("recording history entry", "error", err)
	}
}

// telemetry connects to InfluxDB when telemetry is enabled.
// Returns nil when disabled or unreachable; the caller skips writes.
func (e *appEnv) telemetry() *influxdb.Client {
	if !e.cfg.InfluxDB.Enabled {
		return nil
	}

	client, err := influxdb.Connect(e.cfg.InfluxDB)
	if err != nil {
		e.log.Warn("connecting to influxdb", "error", err)
		return nil
	}
	client.SetOnError(func(err error) {
		e.log.Warn("influxdb write failed", "error", err)
	})
	return client
}

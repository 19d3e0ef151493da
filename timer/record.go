package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/leoarenas/pomodorotrack/api"
	"github.com/leoarenas/pomodorotrack/internal/models"
)

const submitTimeout = 15 * time.Second

// apiRecorder submits completed time entries to the backend in the
// background. The local timer experience is authoritative: a failed
// submission is logged and never retried.
type apiRecorder struct {
	client *api.Client
}

// NewRecorder returns a fire-and-forget recorder backed by the API client.
func NewRecorder(client *api.Client) Recorder {
	return &apiRecorder{client: client}
}

func (r *apiRecorder) Record(entry models.TimeEntry) {
	go func() {
		ctx, cancel := context.WithTimeout(
			context.Background(),
			submitTimeout,
		)
		defer cancel()

		record, err := r.client.CreateTimeEntry(ctx, entry)
		if err != nil {
			slog.Error("time entry submission failed",
				"project_id", entry.ProjectID,
				"type", string(entry.Type),
				"duration_seconds", entry.DurationSeconds,
				"error", err)

			return
		}

		slog.Info("time entry submitted",
			"record_id", record.RecordID,
			"project_id", record.ProjectID,
			"duration_minutes", record.DurationMinutes)
	}()
}

// discardRecorder is used when no API token is configured. Entries are
// dropped with a warning so local sessions keep working offline.
type discardRecorder struct{}

// NewDiscardRecorder returns a recorder that drops every entry.
func NewDiscardRecorder() Recorder {
	return discardRecorder{}
}

func (discardRecorder) Record(entry models.TimeEntry) {
	slog.Warn("not logged in; time entry discarded",
		"project_id", entry.ProjectID,
		"type", string(entry.Type))
}

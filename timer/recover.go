package timer

import (
	"log/slog"

	"github.com/leoarenas/pomodorotrack/internal/models"
)

// Restore reconstructs an engine from the stored session snapshot,
// reconciling the countdown with the wall-clock time that elapsed while the
// process was not running.
//
// A snapshot whose effective remaining time has expired is discarded without
// emitting a completion record: the user never observed that completion, and
// fabricating an entry for it would change their accounting.
func Restore(opts Options) (*Engine, error) {
	e := New(opts)

	snap, err := e.store.Snapshot()
	if err != nil {
		return nil, err
	}

	if snap == nil || snap.Phase == models.PhaseIdle {
		return e, nil
	}

	e.projectID = snap.ProjectID
	e.projectName = snap.ProjectName
	e.note = snap.ActivityNote
	e.workCycle = snap.WorkCycle

	total := e.settings.PhaseSeconds(snap.Phase)

	remaining := snap.RemainingSeconds

	if snap.Running {
		elapsed := int(e.clock().Sub(snap.StartedAt).Seconds())
		remaining -= elapsed
	}

	if remaining <= 0 {
		// the phase finished while unobserved
		slog.Info("discarding expired session snapshot",
			"phase", string(snap.Phase))

		e.projectID = ""
		e.projectName = ""
		e.note = ""

		if err := e.store.ClearSnapshot(); err != nil {
			return nil, err
		}

		return e, nil
	}

	if remaining > total {
		remaining = total
	}

	e.phase = snap.Phase
	e.total = total
	e.remaining = remaining
	e.running = snap.Running
	e.startedAt = e.clock()

	if err := e.persist(); err != nil {
		return nil, err
	}

	return e, nil
}

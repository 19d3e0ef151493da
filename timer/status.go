package timer

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/leoarenas/pomodorotrack/config"
	"github.com/leoarenas/pomodorotrack/internal/models"
	"github.com/leoarenas/pomodorotrack/store"
)

// writeStatusFile mirrors the live countdown to a world-readable JSON file so
// other processes (status bars, the status subcommand) can observe it without
// contending for the database lock.
func (t *Timer) writeStatusFile() error {
	status := models.Status{
		Phase:            t.engine.Phase(),
		RemainingSeconds: t.engine.Remaining(),
		Running:          t.engine.Running(),
		ProjectName:      t.engine.ProjectName(),
		WorkCycle:        t.engine.WorkCycle(),
		Cycles:           t.engine.Settings().Cycles,
		UpdatedAt:        time.Now(),
	}

	value, err := json.Marshal(status)
	if err != nil {
		return err
	}

	var fileMode fs.FileMode = 0o644

	return os.WriteFile(config.StatusFilePath(), value, fileMode)
}

func readStatusFile() (*models.Status, error) {
	value, err := os.ReadFile(config.StatusFilePath())
	if err != nil {
		return nil, err
	}

	var status models.Status

	if err := json.Unmarshal(value, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

func printStatus(status *models.Status) {
	if status.Phase == models.PhaseIdle {
		pterm.Println("The timer is not running")
		return
	}

	label := "Work"

	switch status.Phase {
	case models.PhaseBreak:
		label = "Short break"
	case models.PhaseLongBreak:
		label = "Long break"
	}

	state := "running"
	if !status.Running {
		state = "paused"
	}

	pterm.Printf(
		"%s (%s): %02d:%02d remaining",
		label,
		state,
		status.RemainingSeconds/60,
		status.RemainingSeconds%60,
	)
	pterm.Println()

	if status.Phase == models.PhaseWork {
		if status.ProjectName != "" {
			pterm.Printf("Project: %s\n", status.ProjectName)
		}

		pterm.Printf("Cycle: %d/%d\n", status.WorkCycle, status.Cycles)
	}
}

// ReportStatus prints the state of the active or paused timer. A live timer
// process publishes a status file; in its absence the persisted snapshot
// describes a paused session, if any.
func ReportStatus() error {
	status, err := readStatusFile()
	if err == nil {
		// a stale file left behind by a crashed process is ignored
		if time.Since(status.UpdatedAt) < 2*time.Second {
			printStatus(status)
			return nil
		}
	}

	dbClient, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return fmt.Errorf("unable to read timer status: %w", err)
	}

	defer dbClient.Close()

	snap, err := dbClient.Snapshot()
	if err != nil {
		return err
	}

	if snap == nil {
		pterm.Println("The timer is not running")
		return nil
	}

	settings, err := dbClient.Settings()
	if err != nil {
		return err
	}

	if settings == nil {
		defaults := config.DefaultSettings()
		settings = &defaults
	}

	remaining := snap.RemainingSeconds
	if snap.Running {
		remaining -= int(time.Since(snap.StartedAt).Seconds())
		if remaining < 0 {
			remaining = 0
		}
	}

	printStatus(&models.Status{
		Phase:            snap.Phase,
		RemainingSeconds: remaining,
		Running:          snap.Running,
		ProjectName:      snap.ProjectName,
		WorkCycle:        snap.WorkCycle,
		Cycles:           settings.Cycles,
	})

	return nil
}

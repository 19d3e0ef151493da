package models

import "time"

// Phase identifies the state of the countdown timer.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseWork      Phase = "work"
	PhaseBreak     Phase = "break"
	PhaseLongBreak Phase = "long_break"
)

// IsBreak reports whether the phase is one of the two break kinds.
func (p Phase) IsBreak() bool {
	return p == PhaseBreak || p == PhaseLongBreak
}

// EntryType classifies a completed time entry.
type EntryType string

const (
	EntryPomodoro EntryType = "pomodoro"
	EntryBreak    EntryType = "break"
)

// TimeEntry is the record of a completed work or break phase, submitted to
// the time-tracking API.
type TimeEntry struct {
	ProjectID       string    `json:"project_id"`
	DurationSeconds int       `json:"duration_seconds"`
	Type            EntryType `json:"type"`
	Notes           string    `json:"notes"`
}

// Snapshot is the serialized representation of an in-progress session,
// mirrored to the local store so a session survives a restart.
//
// StartedAt is the wall-clock instant at which RemainingSeconds was accurate.
// It is refreshed on every write while the timer is running, which keeps the
// pair consistent for elapsed-time reconciliation on reload.
type Snapshot struct {
	Phase            Phase     `json:"phase"`
	RemainingSeconds int       `json:"remaining_seconds"`
	Running          bool      `json:"running"`
	ProjectID        string    `json:"project_id"`
	ProjectName      string    `json:"project_name"`
	ActivityNote     string    `json:"activity_note"`
	WorkCycle        int       `json:"work_cycle"`
	StartedAt        time.Time `json:"started_at"`
}

// Status is the payload of the status file written by a running timer so
// that other invocations can report on it without taking the store lock.
type Status struct {
	Phase            Phase     `json:"phase"`
	RemainingSeconds int       `json:"remaining_seconds"`
	Running          bool      `json:"running"`
	ProjectName      string    `json:"project_name"`
	WorkCycle        int       `json:"work_cycle"`
	Cycles           int       `json:"cycles"`
	UpdatedAt        time.Time `json:"updated_at"`
}

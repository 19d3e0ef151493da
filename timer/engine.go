// Package timer operates the countdown state machine and handles the
// recovery of in-progress sessions.
package timer

import (
	"log/slog"
	"strings"
	"time"

	"github.com/leoarenas/pomodorotrack/config"
	"github.com/leoarenas/pomodorotrack/internal/models"
)

// Recorder submits a completed time entry. Implementations must not block:
// the outcome of a submission never gates a phase transition.
type Recorder interface {
	Record(entry models.TimeEntry)
}

// Notifier dispatches a completion notification. Failures are downgraded
// silently.
type Notifier interface {
	Notify(title, body string)
}

// SnapshotStore mirrors the in-progress session to durable storage.
type SnapshotStore interface {
	SaveSnapshot(snap *models.Snapshot) error
	Snapshot() (*models.Snapshot, error)
	ClearSnapshot() error
}

// Options configures an Engine.
type Options struct {
	Settings config.Settings
	Store    SnapshotStore
	Recorder Recorder
	Notifier Notifier

	// RequireProject rejects work phases without a selected project. It is
	// enabled whenever the user's company has projects.
	RequireProject bool
	// RequireNote rejects work phases without an activity note.
	RequireNote bool

	// Clock overrides the wall-clock source in tests.
	Clock func() time.Time
}

// Remainder is the time remaining in an active session.
type Remainder struct {
	T int // total
	M int // minutes
	S int // seconds
}

// Engine is the timer state machine. All transition methods are synchronous
// and total; the caller drives the countdown by invoking Tick once per
// elapsed wall-clock second.
type Engine struct {
	settings config.Settings
	store    SnapshotStore
	recorder Recorder
	notifier Notifier

	requireProject bool
	requireNote    bool
	clock          func() time.Time

	phase       models.Phase
	remaining   int
	total       int
	running     bool
	projectID   string
	projectName string
	note        string
	workCycle   int
	suggested   models.Phase
	startedAt   time.Time
}

// New returns an idle engine.
func New(opts Options) *Engine {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Engine{
		settings:       opts.Settings,
		store:          opts.Store,
		recorder:       opts.Recorder,
		notifier:       opts.Notifier,
		requireProject: opts.RequireProject,
		requireNote:    opts.RequireNote,
		clock:          clock,
		phase:          models.PhaseIdle,
	}
}

// Start begins a work phase. The project and activity note are validated
// before any state is mutated.
func (e *Engine) Start(projectID, projectName, note string) error {
	if e.phase != models.PhaseIdle {
		return errTimerActive
	}

	if e.requireProject && projectID == "" {
		return ErrMissingProject
	}

	if e.requireNote && strings.TrimSpace(note) == "" {
		return ErrMissingNote
	}

	if e.workCycle >= e.settings.Cycles {
		e.workCycle = 1
	} else {
		e.workCycle++
	}

	e.phase = models.PhaseWork
	e.total = e.settings.PhaseSeconds(models.PhaseWork)
	e.remaining = e.total
	e.running = true
	e.projectID = projectID
	e.projectName = projectName
	e.note = note
	e.suggested = ""
	e.startedAt = e.clock()

	return e.persist()
}

// StartBreak begins a short or long break from idle.
func (e *Engine) StartBreak(phase models.Phase) error {
	if !phase.IsBreak() {
		return errInvalidBreak
	}

	if e.phase != models.PhaseIdle {
		return errTimerActive
	}

	e.phase = phase
	e.total = e.settings.PhaseSeconds(phase)
	e.remaining = e.total
	e.running = true
	e.suggested = ""
	e.startedAt = e.clock()

	return e.persist()
}

// Pause halts the countdown without losing progress.
func (e *Engine) Pause() error {
	if e.phase == models.PhaseIdle || !e.running {
		return errNotRunning
	}

	e.running = false

	return e.persist()
}

// Resume continues a paused countdown.
func (e *Engine) Resume() error {
	if e.phase == models.PhaseIdle || e.running {
		return errNotPaused
	}

	e.running = true
	e.startedAt = e.clock()

	return e.persist()
}

// Toggle pauses a running countdown or resumes a paused one.
func (e *Engine) Toggle() error {
	if e.running {
		return e.Pause()
	}

	return e.Resume()
}

// Reset discards the current session without emitting a record and erases
// the persisted snapshot.
func (e *Engine) Reset() error {
	e.phase = models.PhaseIdle
	e.running = false
	e.remaining = 0
	e.total = 0
	e.note = ""
	e.suggested = ""

	return e.store.ClearSnapshot()
}

// Skip discards the remainder of the current phase. Unlike natural
// completion, it never emits a record or fires a notification.
func (e *Engine) Skip() error {
	if e.phase == models.PhaseIdle {
		return errNotRunning
	}

	return e.Reset()
}

// Tick advances the countdown by one second of elapsed wall-clock time.
// When the countdown reaches zero the completion transition fires exactly
// once; further ticks are no-ops until a new phase starts.
func (e *Engine) Tick() {
	if e.phase == models.PhaseIdle || !e.running {
		return
	}

	if e.remaining > 0 {
		e.remaining--
		e.startedAt = e.clock()
	}

	if e.remaining > 0 {
		_ = e.persist()
		return
	}

	e.complete()
}

// complete emits the time entry and notification for a naturally finished
// phase and returns the machine to idle. Submission and notification are
// fire-and-forget: their outcomes never roll back the transition.
func (e *Engine) complete() {
	finished := e.phase

	entryType := models.EntryPomodoro
	if finished.IsBreak() {
		entryType = models.EntryBreak
	}

	if e.projectID != "" {
		e.recorder.Record(models.TimeEntry{
			ProjectID:       e.projectID,
			DurationSeconds: e.total,
			Type:            entryType,
			Notes:           e.note,
		})
	} else {
		slog.Warn("completed phase has no project; no time entry recorded",
			"phase", string(finished))
	}

	if finished == models.PhaseWork {
		if e.workCycle >= e.settings.Cycles {
			e.suggested = models.PhaseLongBreak
		} else {
			e.suggested = models.PhaseBreak
		}

		e.notifier.Notify(
			"Work session completed",
			"Time to take a break",
		)
	} else {
		e.suggested = ""

		e.notifier.Notify(
			"Break is over",
			"Ready for the next work session",
		)
	}

	e.phase = models.PhaseIdle
	e.running = false
	e.note = ""
	e.total = e.settings.PhaseSeconds(models.PhaseWork)
	e.remaining = e.total

	if err := e.store.ClearSnapshot(); err != nil {
		slog.Error("unable to clear session snapshot", "error", err)
	}
}

// persist mirrors the current state to the snapshot store. An idle machine
// has no snapshot.
func (e *Engine) persist() error {
	if e.phase == models.PhaseIdle {
		return e.store.ClearSnapshot()
	}

	return e.store.SaveSnapshot(&models.Snapshot{
		Phase:            e.phase,
		RemainingSeconds: e.remaining,
		Running:          e.running,
		ProjectID:        e.projectID,
		ProjectName:      e.projectName,
		ActivityNote:     e.note,
		WorkCycle:        e.workCycle,
		StartedAt:        e.startedAt,
	})
}

// Suggested returns the break phase offered after a completed work phase,
// or "" when none is pending.
func (e *Engine) Suggested() models.Phase {
	return e.suggested
}

// Progress reports the completed fraction of the current phase in [0, 1].
func (e *Engine) Progress() float64 {
	if e.total == 0 {
		return 0
	}

	p := float64(e.total-e.remaining) / float64(e.total)

	if p < 0 {
		return 0
	}

	if p > 1 {
		return 1
	}

	return p
}

// Remainder returns the remaining time split into minutes and seconds.
func (e *Engine) Remainder() Remainder {
	return Remainder{
		T: e.remaining,
		M: e.remaining / 60,
		S: e.remaining % 60,
	}
}

func (e *Engine) Phase() models.Phase {
	return e.phase
}

func (e *Engine) Remaining() int {
	return e.remaining
}

func (e *Engine) Running() bool {
	return e.running
}

func (e *Engine) WorkCycle() int {
	return e.workCycle
}

func (e *Engine) ProjectID() string {
	return e.projectID
}

func (e *Engine) ProjectName() string {
	return e.projectName
}

func (e *Engine) Note() string {
	return e.note
}

func (e *Engine) Settings() config.Settings {
	return e.settings
}

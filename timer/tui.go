package timer

import (
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kballard/go-shellquote"

	"github.com/leoarenas/pomodorotrack/config"
	"github.com/leoarenas/pomodorotrack/internal/models"
)

const (
	padding  = 2
	maxWidth = 80
)

type keymap struct {
	togglePlay key.Binding
	skip       key.Binding
	reset      key.Binding
	shortBreak key.Binding
	longBreak  key.Binding
	enter      key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "pause/resume"),
	),
	skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	shortBreak: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "short break"),
	),
	longBreak: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "long break"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start suggested break"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type styles struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	work      lipgloss.Style
	shortBrk  lipgloss.Style
	longBrk   lipgloss.Style
}

func newStyles() styles {
	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true),
		secondary: lipgloss.NewStyle().Faint(true),
		hint:      lipgloss.NewStyle().Faint(true),
		work: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#B0DB43")),
		shortBrk: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#12EAEA")),
		longBrk: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#C492B1")),
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Timer is the interactive countdown program wrapped around the engine.
type Timer struct {
	engine      *Engine
	app         *config.App
	progress    progress.Model
	help        help.Model
	style       styles
	waitForNext bool
	quitting    bool
}

// NewTimer returns the bubbletea model driving the countdown.
func NewTimer(engine *Engine, app *config.App) *Timer {
	return &Timer{
		engine:   engine,
		app:      app,
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		style:    newStyles(),
	}
}

func (t *Timer) Init() tea.Cmd {
	_ = t.writeStatusFile()

	return tick()
}

// runSessionCmd executes the configured post-session command.
func (t *Timer) runSessionCmd() {
	if t.app.SessionCmd == "" {
		return
	}

	cmdSlice, err := shellquote.Split(t.app.SessionCmd)
	if err != nil {
		slog.Warn("unable to parse session command", "error", err)
		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	if err := cmd.Run(); err != nil {
		slog.Warn("session command failed", "error", err)
	}
}

func (t *Timer) handleTick() (tea.Model, tea.Cmd) {
	before := t.engine.Phase()

	t.engine.Tick()

	if before != models.PhaseIdle && t.engine.Phase() == models.PhaseIdle {
		// natural completion
		t.waitForNext = true

		go t.runSessionCmd()
	}

	_ = t.writeStatusFile()

	return t, tick()
}

func (t *Timer) quit() (tea.Model, tea.Cmd) {
	t.quitting = true

	_ = os.Remove(config.StatusFilePath())

	return t, tea.Batch(tea.ClearScreen, tea.Quit)
}

func (t *Timer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		if t.engine.Phase() == models.PhaseIdle {
			return t, nil
		}

		if err := t.engine.Toggle(); err != nil {
			slog.Warn("toggle failed", "error", err)
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.skip):
		if t.engine.Phase() == models.PhaseIdle {
			return t, nil
		}

		_ = t.engine.Skip()

		return t.quit()

	case key.Matches(msg, defaultKeymap.reset):
		_ = t.engine.Reset()

		return t.quit()

	case key.Matches(msg, defaultKeymap.shortBreak):
		if t.engine.Phase() != models.PhaseIdle {
			return t, nil
		}

		t.waitForNext = false

		if err := t.engine.StartBreak(models.PhaseBreak); err != nil {
			slog.Warn("unable to start break", "error", err)
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.longBreak):
		if t.engine.Phase() != models.PhaseIdle {
			return t, nil
		}

		t.waitForNext = false

		if err := t.engine.StartBreak(models.PhaseLongBreak); err != nil {
			slog.Warn("unable to start break", "error", err)
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.enter):
		if !t.waitForNext {
			return t, nil
		}

		suggested := t.engine.Suggested()
		if suggested == "" {
			return t.quit()
		}

		t.waitForNext = false

		if err := t.engine.StartBreak(suggested); err != nil {
			slog.Warn("unable to start suggested break", "error", err)
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.quit):
		return t.quit()
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick()

	case tea.KeyMsg:
		return t.handleKey(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil
	}

	return t, nil
}

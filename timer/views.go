package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/leoarenas/pomodorotrack/internal/models"
)

func (t *Timer) phaseLabel() string {
	switch t.engine.Phase() {
	case models.PhaseWork:
		return t.style.work.Render(
			fmt.Sprintf(
				"Focus (%d/%d)",
				t.engine.WorkCycle(),
				t.engine.Settings().Cycles,
			),
		)
	case models.PhaseBreak:
		return t.style.shortBrk.Render("Short break")
	case models.PhaseLongBreak:
		return t.style.longBrk.Render("Long break")
	default:
		return ""
	}
}

func (t *Timer) timerView() string {
	var b strings.Builder

	b.WriteString(t.phaseLabel())
	b.WriteString("\n\n")

	if t.engine.Phase() == models.PhaseWork {
		line := t.engine.ProjectName()
		if line == "" {
			line = "no project"
		}

		if note := t.engine.Note(); note != "" {
			line += t.style.secondary.Render(" · " + note)
		}

		b.WriteString(t.style.main.Render(line))
		b.WriteString("\n\n")
	}

	rem := t.engine.Remainder()

	countdown := fmt.Sprintf("%02d:%02d", rem.M, rem.S)
	if !t.engine.Running() {
		countdown += t.style.hint.Render(" (paused)")
	}

	b.WriteString(t.style.main.Render(countdown))
	b.WriteString("\n\n")
	b.WriteString(t.progress.ViewAs(t.engine.Progress()))
	b.WriteString("\n\n")
	b.WriteString(t.helpView())

	return t.style.base.Render(b.String())
}

// nextSessionView prompts the user after a phase completes naturally.
func (t *Timer) nextSessionView() string {
	var b strings.Builder

	if t.engine.Suggested() == "" {
		b.WriteString(t.style.main.Render("Break is over"))
		b.WriteString("\n\n")
		b.WriteString(
			t.style.hint.Render("press q to exit, or b/l to take a break"),
		)

		return t.style.base.Render(b.String())
	}

	b.WriteString(t.style.main.Render("Work session completed"))
	b.WriteString("\n\n")

	label := "short"
	if t.engine.Suggested() == models.PhaseLongBreak {
		label = "long"
	}

	b.WriteString(t.style.hint.Render(
		fmt.Sprintf(
			"press ENTER to start a %s break, or q to exit",
			label,
		),
	))

	return t.style.base.Render(b.String())
}

func (t *Timer) helpView() string {
	bindings := []key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.skip,
		defaultKeymap.reset,
		defaultKeymap.quit,
	}

	if t.engine.Phase() == models.PhaseIdle {
		bindings = []key.Binding{
			defaultKeymap.shortBreak,
			defaultKeymap.longBreak,
			defaultKeymap.quit,
		}
	}

	return t.help.ShortHelpView(bindings)
}

func (t *Timer) View() string {
	if t.quitting {
		return ""
	}

	if t.waitForNext {
		return t.nextSessionView()
	}

	if t.engine.Phase() == models.PhaseIdle {
		return t.style.base.Render(
			t.style.hint.Render("timer is idle") + "\n\n" + t.helpView(),
		)
	}

	return t.timerView()
}

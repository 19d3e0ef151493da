package timer

import (
	"log/slog"

	"github.com/gen2brain/beeep"

	"github.com/leoarenas/pomodorotrack/config"
)

// desktopNotifier shows a desktop notification and plays the configured
// completion sound. Both are best-effort: a denied notification permission
// or a missing sound file downgrades silently.
type desktopNotifier struct {
	enabled  bool
	settings config.Settings
}

// NewNotifier returns the production notifier. When enabled is false every
// notification becomes a no-op.
func NewNotifier(enabled bool, settings config.Settings) Notifier {
	return &desktopNotifier{
		enabled:  enabled,
		settings: settings,
	}
}

func (n *desktopNotifier) Notify(title, body string) {
	if !n.enabled {
		return
	}

	if err := beeep.Notify(title, body, ""); err != nil {
		slog.Warn("unable to display notification", "error", err)
	}

	if n.settings.SoundEnabled && n.settings.Sound != "" &&
		n.settings.Volume > 0 {
		go playSound(n.settings.Sound, n.settings.Volume)
	}
}

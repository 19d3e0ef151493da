package config

import (
	"time"

	"github.com/leoarenas/pomodorotrack/internal/models"
)

// Duration bounds for the settings editor. Values outside these ranges are
// rejected before any state is mutated.
const (
	MinWorkMinutes  = 1
	MaxWorkMinutes  = 120
	MinBreakMinutes = 1
	MaxBreakMinutes = 60
	MinCycles       = 1
	MaxCycles       = 10
)

const (
	defaultWorkMinutes       = 25
	defaultShortBreakMinutes = 5
	defaultLongBreakMinutes  = 15
	defaultCycles            = 4
	defaultSound             = "bell"
	defaultVolume            = 0.7
)

// Settings is the user's durable timer configuration. It is persisted in
// full on every update so partial updates never corrupt unrelated fields.
type Settings struct {
	WorkMinutes       int     `json:"work_minutes"`
	ShortBreakMinutes int     `json:"short_break_minutes"`
	LongBreakMinutes  int     `json:"long_break_minutes"`
	Cycles            int     `json:"cycles"`
	SoundEnabled      bool    `json:"sound_enabled"`
	Sound             string  `json:"sound"`
	Volume            float64 `json:"volume"`
}

// SettingsPatch is a partial settings update. Nil fields are left untouched
// when the patch is applied.
type SettingsPatch struct {
	WorkMinutes       *int
	ShortBreakMinutes *int
	LongBreakMinutes  *int
	Cycles            *int
	SoundEnabled      *bool
	Sound             *string
	Volume            *float64
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:       defaultWorkMinutes,
		ShortBreakMinutes: defaultShortBreakMinutes,
		LongBreakMinutes:  defaultLongBreakMinutes,
		Cycles:            defaultCycles,
		SoundEnabled:      true,
		Sound:             defaultSound,
		Volume:            defaultVolume,
	}
}

// Apply merges the patch into a copy of the settings, leaving unset fields
// unchanged.
func (s Settings) Apply(p SettingsPatch) Settings {
	if p.WorkMinutes != nil {
		s.WorkMinutes = *p.WorkMinutes
	}

	if p.ShortBreakMinutes != nil {
		s.ShortBreakMinutes = *p.ShortBreakMinutes
	}

	if p.LongBreakMinutes != nil {
		s.LongBreakMinutes = *p.LongBreakMinutes
	}

	if p.Cycles != nil {
		s.Cycles = *p.Cycles
	}

	if p.SoundEnabled != nil {
		s.SoundEnabled = *p.SoundEnabled
	}

	if p.Sound != nil {
		s.Sound = *p.Sound
	}

	if p.Volume != nil {
		s.Volume = *p.Volume
	}

	return s
}

// Validate enforces the documented bounds on every field.
func (s Settings) Validate() error {
	if s.WorkMinutes < MinWorkMinutes || s.WorkMinutes > MaxWorkMinutes {
		return errWorkDuration.Fmt(MinWorkMinutes, MaxWorkMinutes)
	}

	if s.ShortBreakMinutes < MinBreakMinutes ||
		s.ShortBreakMinutes > MaxBreakMinutes {
		return errShortBreakDuration.Fmt(MinBreakMinutes, MaxBreakMinutes)
	}

	if s.LongBreakMinutes < MinBreakMinutes ||
		s.LongBreakMinutes > MaxBreakMinutes {
		return errLongBreakDuration.Fmt(MinBreakMinutes, MaxBreakMinutes)
	}

	if s.Cycles < MinCycles || s.Cycles > MaxCycles {
		return errCycles.Fmt(MinCycles, MaxCycles)
	}

	if s.Volume < 0 || s.Volume > 1 {
		return errVolume
	}

	return nil
}

// PhaseSeconds returns the configured duration of a phase in seconds.
// Durations are authored in minutes and converted internally.
func (s Settings) PhaseSeconds(phase models.Phase) int {
	switch phase {
	case models.PhaseWork:
		return s.WorkMinutes * 60
	case models.PhaseBreak:
		return s.ShortBreakMinutes * 60
	case models.PhaseLongBreak:
		return s.LongBreakMinutes * 60
	default:
		return 0
	}
}

// PhaseDuration returns the configured duration of a phase.
func (s Settings) PhaseDuration(phase models.Phase) time.Duration {
	return time.Duration(s.PhaseSeconds(phase)) * time.Second
}

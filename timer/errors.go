package timer

import "github.com/leoarenas/pomodorotrack/internal/apperr"

var (
	// ErrMissingProject rejects a work phase without a selected project.
	ErrMissingProject = &apperr.Error{
		Message: "select a project before starting a work session",
	}

	// ErrMissingNote rejects a work phase without an activity note.
	ErrMissingNote = &apperr.Error{
		Message: "describe your activity before starting a work session",
	}

	errTimerActive = &apperr.Error{
		Message: "a session is already in progress",
	}

	errNotRunning = &apperr.Error{
		Message: "no session is in progress",
	}

	errNotPaused = &apperr.Error{
		Message: "the session is not paused",
	}

	errInvalidBreak = &apperr.Error{
		Message: "not a break phase",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}
)

package config

import "github.com/leoarenas/pomodorotrack/internal/apperr"

var (
	errReadConfig = &apperr.Error{
		Message: "reading config file failed: %v",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed: %v",
	}

	errWorkDuration = &apperr.Error{
		Message: "work duration must be between %d and %d minutes",
	}

	errShortBreakDuration = &apperr.Error{
		Message: "short break duration must be between %d and %d minutes",
	}

	errLongBreakDuration = &apperr.Error{
		Message: "long break duration must be between %d and %d minutes",
	}

	errCycles = &apperr.Error{
		Message: "cycles until long break must be between %d and %d",
	}

	errVolume = &apperr.Error{
		Message: "volume must be between 0.0 and 1.0",
	}
)

package app

import "github.com/urfave/cli/v2"

var (
	projectFlag = &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"P"},
		Usage:   "Select a project by name without prompting",
	}

	noteFlag = &cli.StringFlag{
		Name:    "note",
		Aliases: []string{"n"},
		Usage:   "Describe the activity for this session",
	}

	workFlag = &cli.IntFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work duration in minutes (default: 25)",
	}

	shortBreakFlag = &cli.IntFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes (default: 5)",
	}

	longBreakFlag = &cli.IntFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes (default: 15)",
	}

	cyclesFlag = &cli.IntFlag{
		Name:    "cycles",
		Aliases: []string{"c"},
		Usage:   "The number of work sessions before a long break (default: 4)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Sound to play when a session is completed. Set to 'off' to disable",
	}

	volumeFlag = &cli.Float64Flag{
		Name:  "volume",
		Usage: "Completion sound volume between 0.0 and 1.0 (default: 0.7)",
	}

	soundEnabledFlag = &cli.BoolFlag{
		Name:  "sound-enabled",
		Usage: "Enable or disable the completion sound",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	emailFlag = &cli.StringFlag{
		Name:    "email",
		Aliases: []string{"e"},
		Usage:   "The account email address",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only list entries created after this point (e.g. 'yesterday', '2 weeks ago')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output in JSON format",
	}
)

// Package app assembles the command-line interface.
package app

import (
	"encoding/json"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/leoarenas/pomodorotrack/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	pterm.Println(string(b))

	return nil
}

// Get retrieves the pomodorotrack app instance.
func Get() *cli.App {
	trackApp := &cli.App{
		Name: "pomodorotrack",
		Usage: `
		PomodoroTrack is a command-line pomodoro timer that records completed
		work sessions against your company's projects.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Authenticate against the backend and store the API token",
				Action: loginAction,
				Flags:  []cli.Flag{emailFlag},
			},
			{
				Name:   "logout",
				Usage:  "Invalidate and discard the stored API token",
				Action: logoutAction,
			},
			{
				Name:   "projects",
				Usage:  "List your company's projects",
				Action: projectsAction,
				Flags:  []cli.Flag{jsonFlag},
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Create a new project",
						ArgsUsage: "NAME",
						Action:    addProjectAction,
					},
				},
			},
			{
				Name:   "entries",
				Usage:  "List your recorded time entries",
				Action: entriesAction,
				Flags:  []cli.Flag{projectFlag, sinceFlag, jsonFlag},
			},
			{
				Name:   "stats",
				Usage:  "Track your progress with productivity reports",
				Action: statsAction("today"),
				Flags:  []cli.Flag{jsonFlag},
				Subcommands: []*cli.Command{
					{
						Name:   "today",
						Usage:  "Summarise today's completed work",
						Action: statsAction("today"),
						Flags:  []cli.Flag{jsonFlag},
					},
					{
						Name:   "week",
						Usage:  "Chart the current week day by day",
						Action: statsAction("week"),
						Flags:  []cli.Flag{jsonFlag},
					},
					{
						Name:   "projects",
						Usage:  "Break down completed work per project",
						Action: statsAction("projects"),
						Flags:  []cli.Flag{jsonFlag},
					},
				},
			},
			{
				Name:   "settings",
				Usage:  "Show the stored timer settings",
				Action: showSettingsAction,
				Flags:  []cli.Flag{jsonFlag},
				Subcommands: []*cli.Command{
					{
						Name:   "set",
						Usage:  "Update one or more timer settings",
						Action: setSettingsAction,
						Flags: []cli.Flag{
							workFlag,
							shortBreakFlag,
							longBreakFlag,
							cyclesFlag,
							soundFlag,
							soundEnabledFlag,
							volumeFlag,
						},
					},
					{
						Name:   "reset",
						Usage:  "Restore the default timer settings",
						Action: resetSettingsAction,
					},
				},
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
			{
				Name:   "resume",
				Usage:  "Resume an interrupted session",
				Action: resumeAction,
				Flags: []cli.Flag{
					disableNotificationFlag,
					sessionCmdFlag,
				},
			},
		},
		Flags: []cli.Flag{
			projectFlag,
			noteFlag,
			workFlag,
			shortBreakFlag,
			longBreakFlag,
			cyclesFlag,
			disableNotificationFlag,
			soundFlag,
			soundEnabledFlag,
			volumeFlag,
			sessionCmdFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return trackApp
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/markusmobius/go-dateparser"
	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/leoarenas/pomodorotrack/api"
	"github.com/leoarenas/pomodorotrack/config"
	"github.com/leoarenas/pomodorotrack/internal/logutil"
	"github.com/leoarenas/pomodorotrack/internal/models"
	"github.com/leoarenas/pomodorotrack/internal/timeutil"
	"github.com/leoarenas/pomodorotrack/internal/ui"
	"github.com/leoarenas/pomodorotrack/report"
	"github.com/leoarenas/pomodorotrack/stats"
	"github.com/leoarenas/pomodorotrack/store"
	"github.com/leoarenas/pomodorotrack/timer"
)

const (
	envNoColor    = "NO_COLOR"
	envAppNoColor = "POMODOROTRACK_NO_COLOR"

	fetchTimeout = 10 * time.Second
)

// loadSettings reads the timer settings from the store, seeding the defaults
// on first run.
func loadSettings(db store.DB) (config.Settings, error) {
	settings, err := db.Settings()
	if err != nil {
		return config.Settings{}, err
	}

	if settings == nil {
		defaults := config.DefaultSettings()

		if err := db.SaveSettings(defaults); err != nil {
			return config.Settings{}, err
		}

		return defaults, nil
	}

	return *settings, nil
}

// settingsPatchFromFlags builds a partial settings update from the flags the
// user actually set.
func settingsPatchFromFlags(ctx *cli.Context) config.SettingsPatch {
	var patch config.SettingsPatch

	if ctx.IsSet("work") {
		v := ctx.Int("work")
		patch.WorkMinutes = &v
	}

	if ctx.IsSet("short-break") {
		v := ctx.Int("short-break")
		patch.ShortBreakMinutes = &v
	}

	if ctx.IsSet("long-break") {
		v := ctx.Int("long-break")
		patch.LongBreakMinutes = &v
	}

	if ctx.IsSet("cycles") {
		v := ctx.Int("cycles")
		patch.Cycles = &v
	}

	if ctx.IsSet("sound") {
		v := ctx.String("sound")
		if v == "off" {
			enabled := false
			patch.SoundEnabled = &enabled
		} else {
			patch.Sound = &v
		}
	}

	if ctx.IsSet("sound-enabled") {
		v := ctx.Bool("sound-enabled")
		patch.SoundEnabled = &v
	}

	if ctx.IsSet("volume") {
		v := ctx.Float64("volume")
		patch.Volume = &v
	}

	return patch
}

// selectProject resolves the project and activity note for a new work
// session, prompting interactively for anything not supplied via flags.
func selectProject(
	ctx *cli.Context,
	projects []api.Project,
	requireNote bool,
) (projectID, projectName, note string, err error) {
	note = ctx.String("note")

	if name := ctx.String("project"); name != "" {
		for _, p := range projects {
			if strings.EqualFold(p.Name, name) {
				projectID = p.ProjectID
				projectName = p.Name

				break
			}
		}

		if projectID == "" {
			return "", "", "", fmt.Errorf("unknown project: %s", name)
		}
	}

	var fields []huh.Field

	if projectID == "" && len(projects) > 0 {
		opts := make([]huh.Option[string], 0, len(projects))
		for _, p := range projects {
			opts = append(opts, huh.NewOption(p.Name, p.ProjectID))
		}

		fields = append(fields, huh.NewSelect[string]().
			Title("Project").
			Options(opts...).
			Value(&projectID))
	}

	if note == "" && requireNote {
		fields = append(fields, huh.NewInput().
			Title("What are you working on?").
			Value(&note))
	}

	if len(fields) > 0 {
		if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
			return "", "", "", err
		}
	}

	if projectName == "" {
		for _, p := range projects {
			if p.ProjectID == projectID {
				projectName = p.Name
				break
			}
		}
	}

	return projectID, projectName, note, nil
}

// timerSetup wires the store, settings, API client, and engine options shared
// by the default and resume actions.
func timerSetup(ctx *cli.Context) (*config.App, timer.Options, error) {
	cfg, err := config.LoadApp()
	if err != nil {
		return nil, timer.Options{}, err
	}

	ui.DarkTheme = cfg.DarkTheme

	if ctx.IsSet("session-cmd") {
		cfg.SessionCmd = ctx.String("session-cmd")
	}

	dbClient, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, timer.Options{}, err
	}

	settings, err := loadSettings(dbClient)
	if err != nil {
		return nil, timer.Options{}, err
	}

	// flag overrides apply to this run only and are never persisted
	settings = settings.Apply(settingsPatchFromFlags(ctx))

	if err := settings.Validate(); err != nil {
		return nil, timer.Options{}, err
	}

	var recorder timer.Recorder = timer.NewDiscardRecorder()

	if cfg.Token != "" {
		recorder = timer.NewRecorder(api.New(cfg.APIURL, cfg.Token))
	}

	notify := cfg.Notify && !ctx.Bool("disable-notification")

	opts := timer.Options{
		Settings:    settings,
		Store:       dbClient,
		Recorder:    recorder,
		Notifier:    timer.NewNotifier(notify, settings),
		RequireNote: cfg.RequireNote,
	}

	return cfg, opts, nil
}

// defaultAction starts a new work session.
func defaultAction(ctx *cli.Context) error {
	cfg, opts, err := timerSetup(ctx)
	if err != nil {
		return err
	}

	var projects []api.Project

	if cfg.Token != "" {
		fetchCtx, cancel := context.WithTimeout(
			context.Background(),
			fetchTimeout,
		)
		defer cancel()

		projects, err = api.New(cfg.APIURL, cfg.Token).Projects(fetchCtx)
		if err != nil {
			// sessions must keep working offline
			slog.Warn("unable to fetch projects", "error", err)
			report.Warn("Backend unreachable: this session will not be recorded")
		}
	}

	opts.RequireProject = len(projects) > 0

	projectID, projectName, note, err := selectProject(
		ctx,
		projects,
		cfg.RequireNote,
	)
	if err != nil {
		return err
	}

	engine := timer.New(opts)

	if err := engine.Start(projectID, projectName, note); err != nil {
		return err
	}

	_, err = tea.NewProgram(timer.NewTimer(engine, cfg)).Run()

	return err
}

// resumeAction recovers a previously interrupted session.
func resumeAction(ctx *cli.Context) error {
	cfg, opts, err := timerSetup(ctx)
	if err != nil {
		return err
	}

	engine, err := timer.Restore(opts)
	if err != nil {
		return err
	}

	if engine.Phase() == models.PhaseIdle {
		pterm.Println("No session to resume")
		return nil
	}

	_, err = tea.NewProgram(timer.NewTimer(engine, cfg)).Run()

	return err
}

// statusAction prints the state of the active or paused timer.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus()
}

// loginAction exchanges credentials for an API token and stores it.
func loginAction(ctx *cli.Context) error {
	cfg, err := config.LoadApp()
	if err != nil {
		return err
	}

	email := ctx.String("email")

	var password string

	var fields []huh.Field

	if email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(&email))
	}

	fields = append(fields, huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&password))

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	resp, err := api.New(cfg.APIURL, "").Login(reqCtx, email, password)
	if err != nil {
		return err
	}

	if err := config.SaveToken(resp.Token); err != nil {
		return err
	}

	msg := fmt.Sprintf("Logged in as %s", resp.User.Email)
	if resp.Company != nil {
		msg += fmt.Sprintf(" (%s)", resp.Company.Name)
	}

	pterm.Success.Println(msg)

	return nil
}

// logoutAction invalidates the stored token.
func logoutAction(_ *cli.Context) error {
	cfg, err := config.LoadApp()
	if err != nil {
		return err
	}

	if cfg.Token == "" {
		pterm.Println("Not logged in")
		return nil
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	if err := api.New(cfg.APIURL, cfg.Token).Logout(reqCtx); err != nil {
		// the local token is cleared regardless
		slog.Warn("server-side logout failed", "error", err)
	}

	if err := config.SaveToken(""); err != nil {
		return err
	}

	pterm.Success.Println("Logged out")

	return nil
}

func apiClient() (*api.Client, error) {
	cfg, err := config.LoadApp()
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.DarkTheme

	return api.New(cfg.APIURL, cfg.Token), nil
}

// projectsAction lists the company's projects.
func projectsAction(ctx *cli.Context) error {
	client, err := apiClient()
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	projects, err := client.Projects(reqCtx)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		pterm.Println("No projects yet")
		return nil
	}

	sort.Slice(projects, func(i, j int) bool {
		return natural.Less(projects[i].Name, projects[j].Name)
	})

	if ctx.Bool("json") {
		return printJSON(projects)
	}

	data := [][]string{{"#", "name", "created"}}

	for i, p := range projects {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			p.Name,
			p.CreatedAt,
		})
	}

	ui.PrintTable(data, os.Stdout)

	return nil
}

// addProjectAction registers a new project.
func addProjectAction(ctx *cli.Context) error {
	name := strings.TrimSpace(ctx.Args().First())
	if name == "" {
		return fmt.Errorf("a project name is required")
	}

	client, err := apiClient()
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	project, err := client.CreateProject(reqCtx, name)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Created project %s", project.Name)

	return nil
}

// entriesAction lists the user's time records.
func entriesAction(ctx *cli.Context) error {
	client, err := apiClient()
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	var projectID string

	if name := ctx.String("project"); name != "" {
		projects, err := client.Projects(reqCtx)
		if err != nil {
			return err
		}

		for _, p := range projects {
			if strings.EqualFold(p.Name, name) {
				projectID = p.ProjectID
				break
			}
		}

		if projectID == "" {
			return fmt.Errorf("unknown project: %s", name)
		}
	}

	records, err := client.TimeEntries(reqCtx, projectID)
	if err != nil {
		return err
	}

	if since := ctx.String("since"); since != "" {
		dt, err := dateparser.Parse(&dateparser.Configuration{
			CurrentTime: time.Now(),
		}, since)
		if err != nil {
			return fmt.Errorf("unable to parse '%s': %w", since, err)
		}

		cutoff := timeutil.RoundToStart(dt.Time)

		filtered := records[:0]

		for _, r := range records {
			created, err := time.Parse(time.RFC3339, r.CreatedAt)
			if err != nil || !created.Before(cutoff) {
				filtered = append(filtered, r)
			}
		}

		records = filtered
	}

	if ctx.Bool("json") {
		return printJSON(records)
	}

	if len(records) == 0 {
		pterm.Println("No time entries found")
		return nil
	}

	data := [][]string{{"#", "created", "duration", "pomodoros", "notes"}}

	for i, r := range records {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			r.CreatedAt,
			timeutil.FormatMinutes(r.DurationMinutes),
			fmt.Sprintf("%d", r.Pomodoros),
			r.Notes,
		})
	}

	ui.PrintTable(data, os.Stdout)

	return nil
}

// statsAction renders the requested productivity report.
func statsAction(view string) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		client, err := apiClient()
		if err != nil {
			return err
		}

		s := stats.New(client, stats.Opts{
			JSON: ctx.Bool("json"),
		})

		return s.Show(view)
	}
}

// showSettingsAction prints the stored timer settings.
func showSettingsAction(ctx *cli.Context) error {
	dbClient, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer dbClient.Close()

	settings, err := loadSettings(dbClient)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(settings)
	}

	soundEnabled := "yes"
	if !settings.SoundEnabled {
		soundEnabled = "no"
	}

	data := [][]string{
		{"setting", "value"},
		{"work", fmt.Sprintf("%d minutes", settings.WorkMinutes)},
		{"short break", fmt.Sprintf("%d minutes", settings.ShortBreakMinutes)},
		{"long break", fmt.Sprintf("%d minutes", settings.LongBreakMinutes)},
		{"cycles", fmt.Sprintf("%d", settings.Cycles)},
		{"sound", settings.Sound},
		{"sound enabled", soundEnabled},
		{"volume", fmt.Sprintf("%.1f", settings.Volume)},
	}

	ui.PrintTable(data, os.Stdout)

	return nil
}

// setSettingsAction applies a partial settings update.
func setSettingsAction(ctx *cli.Context) error {
	dbClient, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer dbClient.Close()

	settings, err := loadSettings(dbClient)
	if err != nil {
		return err
	}

	updated := settings.Apply(settingsPatchFromFlags(ctx))

	if err := updated.Validate(); err != nil {
		return err
	}

	if err := dbClient.SaveSettings(updated); err != nil {
		return err
	}

	pterm.Success.Println("Settings updated")

	return nil
}

// resetSettingsAction restores the default timer settings.
func resetSettingsAction(_ *cli.Context) error {
	dbClient, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer dbClient.Close()

	if err := dbClient.SaveSettings(config.DefaultSettings()); err != nil {
		return err
	}

	pterm.Success.Println("Settings restored to defaults")

	return nil
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	logutil.Init(config.LogFilePath())

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envAppNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

// Package config manages application paths, the local config file, and the
// user's timer settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
)

const Version = "v0.3.1"

var (
	configDir      = "pomodorotrack"
	configFileName = "config.yml"
	dbFileName     = "pomodorotrack.db"
	statusFileName = "status.json"
	logFileName    = "pomodorotrack.log"
	soundsDirName  = "sounds"

	configFilePath string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
	soundsDirPath  string
)

const (
	keyAPIURL      = "api.url"
	keyAPIToken    = "api.token"
	keyNotify      = "notifications.enabled"
	keyRequireNote = "settings.require_note"
	keySessionCmd  = "settings.cmd"
	keyDarkTheme   = "display.dark_theme"

	defaultAPIURL = "http://localhost:8000"
)

var v *viper.Viper

// App holds installation-level configuration read from the config file: how
// to reach the backend and a few behavioural toggles. Device-local timer
// settings live in the bolt store instead (see Settings).
type App struct {
	APIURL      string
	Token       string
	Notify      bool
	RequireNote bool
	SessionCmd  string
	DarkTheme   bool
}

func Dir() string {
	return configDir
}

func ConfigFilePath() string {
	return configFilePath
}

func DBFilePath() string {
	return dbFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func LogFilePath() string {
	return logFilePath
}

func SoundsDirPath() string {
	return soundsDirPath
}

// InitializePaths resolves all application file paths. It must be called
// once at startup before anything touches the config file or the store.
func InitializePaths() {
	appEnv := strings.TrimSpace(os.Getenv("POMODOROTRACK_ENV"))
	if appEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", appEnv)
		dbFileName = fmt.Sprintf("pomodorotrack_%s.db", appEnv)
		statusFileName = fmt.Sprintf("status_%s.json", appEnv)
		logFileName = fmt.Sprintf("pomodorotrack_%s.log", appEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	statusFilePath = filepath.Join(dataDir, statusFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)

	soundsDirPath = filepath.Join(dataDir, soundsDirName)
}

func appDefaults(vi *viper.Viper) {
	vi.SetDefault(keyAPIURL, defaultAPIURL)
	vi.SetDefault(keyAPIToken, "")
	vi.SetDefault(keyNotify, true)
	vi.SetDefault(keyRequireNote, true)
	vi.SetDefault(keySessionCmd, "")
	vi.SetDefault(keyDarkTheme, true)
}

// LoadApp reads the application config file, creating it with defaults on
// first run.
func LoadApp() (*App, error) {
	v = viper.New()

	v.SetConfigFile(configFilePath)
	v.SetConfigType("yaml")

	appDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, errReadConfig.Fmt(err)
		}

		if err := v.WriteConfigAs(configFilePath); err != nil {
			return nil, errWriteConfig.Fmt(err)
		}
	}

	return &App{
		APIURL:      strings.TrimSuffix(v.GetString(keyAPIURL), "/"),
		Token:       v.GetString(keyAPIToken),
		Notify:      v.GetBool(keyNotify),
		RequireNote: v.GetBool(keyRequireNote),
		SessionCmd:  v.GetString(keySessionCmd),
		DarkTheme:   v.GetBool(keyDarkTheme),
	}, nil
}

// SaveToken persists the API token to the config file.
func SaveToken(token string) error {
	if v == nil {
		if _, err := LoadApp(); err != nil {
			return err
		}
	}

	v.Set(keyAPIToken, token)

	return v.WriteConfigAs(configFilePath)
}

package commands

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/notify"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/todo"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	Storage    string
	Theme      string
	NoColor    bool

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// KV is the storage backend opened in the Before hook
	KV store.KV
}

// controller wires a fresh todo store and controller to r and n.
func (f *Flags) controller(r app.Renderer, n notify.Notifier) *app.Controller {
	s := todo.New(f.KV, log.Logger, todo.WithKey(f.Config.Storage.Key))
	return app.New(s, r, n, app.Options{ExportDir: f.Config.Export.Dir}, log.Logger)
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tada", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tada")
}

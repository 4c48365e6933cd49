package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sumcalc/internal/clipboard"
	"github.com/alexisbeaulieu97/sumcalc/internal/config"
	"github.com/alexisbeaulieu97/sumcalc/internal/logger"
	"github.com/alexisbeaulieu97/sumcalc/internal/theme"
)

// Hooks replaced in tests.
var (
	newClipboard = func() clipboard.Writer { return clipboard.NewSystem() }
	systemDark   = lipgloss.HasDarkBackground
)

// AppContext bundles long-lived services created for one command.
type AppContext struct {
	Settings  *config.Settings
	Logger    *logger.Logger
	Store     *theme.Store
	Clipboard clipboard.Writer

	ctx     context.Context
	closers []io.Closer
}

// newAppContext loads configuration and builds the logger. Interactive
// sessions log to the configured file so the terminal stays clean; every
// other command logs to the command's stderr.
func newAppContext(cmd *cobra.Command, flags *rootFlags, interactive bool, component string) (*AppContext, error) {
	settings, err := config.Load(config.LoadOptions{
		ConfigFile: flags.configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := settings.Log.Level
	if flags.verbose {
		level = "debug"
	}

	app := &AppContext{
		Settings:  settings,
		Store:     theme.NewStore(settings.Theme.File),
		Clipboard: newClipboard(),
	}

	var writer io.Writer = cmd.ErrOrStderr()
	if interactive {
		writer = io.Discard
		if settings.Log.File != "" {
			file, err := openLogFile(settings.Log.File)
			if err != nil {
				return nil, err
			}
			app.closers = append(app.closers, file)
			writer = file
		}
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: settings.Log.HumanReadable(),
		Writer:        writer,
	})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("create logger: %w", err)
	}

	ctx := logger.WithCorrelationID(cmd.Context(), logger.NewCorrelationID())
	ctx = logger.WithContext(ctx, log.With("component", component))
	app.ctx = ctx
	app.Logger = logger.FromContext(ctx)

	return app, nil
}

// Context returns the command context carrying the logger.
func (a *AppContext) Context() context.Context {
	return a.ctx
}

// ResolveTheme returns the stored theme, or the configured fallback when
// nothing valid is stored. A broken preference file is logged and ignored.
func (a *AppContext) ResolveTheme() theme.Theme {
	stored, found, err := a.Store.Load()
	if err != nil {
		a.Logger.With("path", a.Store.Path()).Warn(err, "ignoring theme preference")
		found = false
	}
	return theme.Resolve(stored, found, theme.Fallback(a.Settings.Theme.Fallback), systemDark)
}

// Close releases resources such as the log file.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

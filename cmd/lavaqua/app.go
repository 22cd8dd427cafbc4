package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavaqua/internal/config"
	"github.com/vovakirdan/lavaqua/internal/level"
	"github.com/vovakirdan/lavaqua/internal/registry"
	"github.com/vovakirdan/lavaqua/internal/report"
)

// appContext holds what every command needs, built once per invocation.
type appContext struct {
	cfg    config.Config
	runID  string
	logger *log.Logger
	loader *level.Loader
}

var app *appContext

// setup loads configuration, applies flag overrides and builds the logger
// and level loader.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagLevels != "" {
		cfg.Levels.Dir = flagLevels
	}
	if flagLogLevel != "" {
		cfg.Log.Level = strings.ToLower(flagLogLevel)
	}
	if flagColor != "" {
		cfg.Report.Color = strings.ToLower(flagColor)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !registry.Exists(cfg.Search.Algorithm) {
		return fmt.Errorf("config %s: unknown algorithm %q", cfg.Source, cfg.Search.Algorithm)
	}

	logLevel, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	runID := uuid.NewString()
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "lavaqua",
		Level:           logLevel,
	}).With("run", runID[:8])

	logger.Debug("config loaded", "source", cfg.Source, "levels", cfg.Levels.Dir)

	loader := newLoader(cfg.Levels.Dir, logger)

	app = &appContext{
		cfg:    cfg,
		runID:  runID,
		logger: logger,
		loader: loader,
	}
	return nil
}

func newLoader(dir string, logger *log.Logger) *level.Loader {
	loader := level.NewLoader(dir)
	loader.OnSkip = func(path string, err error) {
		logger.Warn("skipping level", "path", path, "error", err)
	}
	return loader
}

// newReporter builds a reporter for the command's output.
func newReporter(cmd *cobra.Command, showBoards bool) *report.Reporter {
	out := cmd.OutOrStdout()
	r := report.New(out, report.Options{
		Color:      report.ColorEnabled(app.cfg.Report.Color, out),
		ShowBoards: showBoards,
		MaxBoards:  app.cfg.Report.MaxBoards,
	})
	r.SetTheme(report.ThemeByName(app.cfg.Report.Theme, r.Renderer()))
	return r
}

// resolveLevel loads a level by path or ID.
func resolveLevel(arg string) (level.Level, error) {
	lvl, err := app.loader.Resolve(arg)
	if err != nil {
		return level.Level{}, err
	}
	app.logger.Debug("level loaded", "level", lvl.ID, "path", lvl.FilePath, "size", fmt.Sprintf("%dx%d", lvl.Width, lvl.Height))
	return lvl, nil
}

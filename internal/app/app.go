package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/duet-tui/duet/internal/config"
	"github.com/duet-tui/duet/internal/fambot"
	"github.com/duet-tui/duet/internal/prefs"
	"github.com/duet-tui/duet/internal/state"
	"github.com/duet-tui/duet/internal/ui"
)

// Options configure the Duet application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/duet/prefs.toml
}

// Run boots the Duet TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	logger := newLogger(cfg.LogFile)
	defer func() { _ = logger.Sync() }()

	client, err := fambot.NewClient(cfg.APIURL, cfg.Identity())
	if err != nil {
		return fmt.Errorf("init fambot client: %w", err)
	}

	store := &state.Store{}

	logger.Info("starting",
		zap.String("api_url", cfg.APIURL),
		zap.Int64("user_id", cfg.User.ID),
		zap.String("theme", userPrefs.Theme))

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// newLogger builds the diagnostic file logger. The terminal belongs to the
// TUI, so diagnostics go to the configured file; any setup failure yields a
// no-op logger rather than a broken screen.
func newLogger(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop()
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}

	logger, err := zapCfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

package cli

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/logger"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/store/jsonstore"
	"github.com/idilsaglam/tada/internal/store/sqlitestore"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

// env bundles what every command needs, built once per invocation.
type env struct {
	cfg    config.Config
	theme  model.Theme
	log    *logger.Logger
	store  store.Store
	mgr    *todo.Manager
	styles ui.Styles

	closers []io.Closer
}

func openEnv(cmd *cobra.Command, flags *rootFlags) (*env, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, flags, &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, usageError{err}
	}
	theme, err := model.ParseTheme(cfg.UI.Theme)
	if err != nil {
		return nil, usageError{err}
	}

	e := &env{cfg: cfg, theme: theme}
	logOpts := logger.Options{Level: cfg.Log.Level, HumanReadable: cfg.Log.HumanReadable}
	if cfg.Log.File != "" {
		l, closer, err := logger.OpenFile(cfg.Log.File, logOpts)
		if err != nil {
			return nil, err
		}
		e.log = l
		e.closers = append(e.closers, closer)
	} else if e.log, err = logger.New(logOpts); err != nil {
		return nil, err
	}
	e.log = e.log.WithFields(map[string]any{"cmd": cmd.Name()})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.store = st
	e.closers = append(e.closers, st)
	e.log.WithFields(map[string]any{"backend": cfg.Store.Backend, "path": cfg.Store.Path}).Debug("store opened")

	e.mgr = todo.NewManager(ctx, st, todo.WithKey(cfg.Store.Key), todo.WithLogger(e.log))
	e.styles = ui.NewStyles(theme, lipgloss.NewRenderer(cmd.OutOrStdout()))
	return e, nil
}

// applyFlags overrides config values with the flags given on the command
// line.
func applyFlags(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) {
	set := func(name string, dst *string, v string) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("store", &cfg.Store.Backend, flags.backend)
	set("path", &cfg.Store.Path, flags.path)
	set("key", &cfg.Store.Key, flags.key)
	set("theme", &cfg.UI.Theme, flags.theme)
	set("log-level", &cfg.Log.Level, flags.logLevel)
	set("log-file", &cfg.Log.File, flags.logFile)
	cfg.Normalize()
}

func openStore(ctx context.Context, cfg config.StoreConfig) (store.Store, error) {
	if cfg.Backend == config.BackendSQLite {
		return sqlitestore.Open(ctx, cfg.Path)
	}
	return jsonstore.Open(cfg.Path)
}

// Close releases the store and log file in reverse order of opening.
func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}
	return errors.Join(errs...)
}

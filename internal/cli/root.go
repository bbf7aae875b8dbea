package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// usageError marks bad invocations; they exit with code 2.
type usageError struct{ error }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

type rootFlags struct {
	configPath string
	backend    string
	path       string
	key        string
	theme      string
	logLevel   string
	logFile    string
}

// NewRootCmd builds the tada command tree. With no subcommand it opens the
// interactive list.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tada",
		Short:         "A tiny todo list for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd, flags)
			if err != nil {
				return err
			}
			defer e.Close()
			return tui.Run(cmd.Context(), e.mgr, tui.RunOptions{
				Options:   tui.Options{Theme: e.theme, Logger: e.log},
				AltScreen: e.cfg.UI.AltScreen,
			})
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	pf.StringVar(&flags.backend, "store", "", "store backend: json or sqlite")
	pf.StringVar(&flags.path, "path", "", "store file path")
	pf.StringVar(&flags.key, "key", "", "store key the list is kept under")
	pf.StringVar(&flags.theme, "theme", "", "initial theme: light or dark")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&flags.logFile, "log-file", "", "append logs to this file")

	cmd.AddCommand(newAddCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newDoneCmd(flags))
	cmd.AddCommand(newRemoveCmd(flags))
	cmd.AddCommand(newClearCmd(flags))

	return cmd
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unknown subcommand: %s", args[0])
	}
	return nil
}

// Execute runs the command line and returns the process exit code:
// 0 ok, 1 error, 2 usage.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	c, err := cmd.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	ui.Fail(stderr, ui.NewStyles(model.ThemeLight, lipgloss.NewRenderer(stderr)), err.Error())
	var uerr usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(stderr)
		c.SetOut(stderr)
		_ = c.Usage()
		return 2
	}
	return 1
}

// Main is Execute over the process streams.
func Main(ctx context.Context) int {
	return Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// Command tada is a small todo list for the terminal. Run it without
// arguments for the interactive list, or see `tada --help` for the
// one-shot subcommands.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/idilsaglam/tada/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Main(ctx)
	stop()
	os.Exit(code)
}

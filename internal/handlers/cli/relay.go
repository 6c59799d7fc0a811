package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/transferwatch/internal/relay"

	"github.com/urfave/cli/v3"
)

// shutdownTimeout bounds the final snapshot flush.
const shutdownTimeout = 15 * time.Second

// startRelayCommand returns a CLI command that restores the registry and
// serves chat commands.
//
// Usage example:
//
//	transferwatch start
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or its
// context is done, then writes the pending snapshot before exiting.
func startRelayCommand(r relay.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Restores the saved watches and starts serving chat commands.",
		Usage:       "Runs the relay. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := r.Start(ctx); err != nil {
				return err
			}

			select {
			case <-quit:
			case <-ctx.Done():
			}

			closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()

			return r.Close(closeCtx)
		},
	}
}

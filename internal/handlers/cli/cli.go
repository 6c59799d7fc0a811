package cli

import (
	"context"
	"os"

	"github.com/gabapcia/transferwatch/internal/relay"
	"github.com/gabapcia/transferwatch/internal/statepersist"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the transferwatch CLI application.
//
// It registers all available commands:
//
//   - `start`: Restores the watches and serves chat commands.
//   - `snapshot`: Prints the stored durable state.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, r relay.Service, sp statepersist.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "transferwatch",
		Description:           "Chat relay notifying ERC-20 transfers into watched addresses.",
		Usage:                 "transferwatch [command] [flags]",
		Commands: []*cli.Command{
			startRelayCommand(r),
			showSnapshotCommand(sp),
		},
	}

	return app.Run(ctx, os.Args)
}

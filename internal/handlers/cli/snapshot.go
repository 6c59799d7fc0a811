package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/transferwatch/internal/statepersist"

	"github.com/urfave/cli/v3"
)

// showSnapshotCommand returns a CLI command that prints the stored durable
// state as indented JSON. A missing snapshot prints an empty state.
//
// Usage example:
//
//	transferwatch snapshot
func showSnapshotCommand(sp statepersist.Service) *cli.Command {
	return &cli.Command{
		Name:        "snapshot",
		Description: "Prints the allow-list and watches stored by the relay.",
		Usage:       "Reads the stored snapshot without starting the relay.",
		Action: func(ctx context.Context, c *cli.Command) error {
			state, err := sp.LoadSnapshot(ctx)
			switch {
			case errors.Is(err, statepersist.ErrNoSnapshot):
				state = statepersist.DurableState{AllowList: []int64{}, Watches: []statepersist.WatchDescriptor{}}
			case err != nil:
				return fmt.Errorf("loading snapshot: %w", err)
			}

			enc := json.NewEncoder(c.Root().Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(state)
		},
	}
}

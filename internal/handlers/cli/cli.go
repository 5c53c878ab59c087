// Package cli is the command-line entrypoint of txtracker.
package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/pkfire13/Tx-tracking/internal/blockproc"
)

func newApp(bp blockproc.Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txtracker",
		Description:           "Follows new blocks of an EVM chain and emits the balance changes of every transaction.",
		Usage:                 "txtracker [command] [flags]",
		Commands: []*cli.Command{
			startPipelineCommand(bp),
			inspectTransactionCommand(bp),
		},
	}
}

// Run parses os.Args and runs the matching command:
//
//   - `start`: follows new blocks until interrupted or the stream fails.
//   - `inspect`: prints the balance changes of a single transaction.
func Run(ctx context.Context, bp blockproc.Service) error {
	return newApp(bp).Run(ctx, os.Args)
}

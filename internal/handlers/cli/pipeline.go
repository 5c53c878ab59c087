package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/pkfire13/Tx-tracking/internal/blockproc"
)

// startPipelineCommand runs the block pipeline until SIGINT or SIGTERM, or
// until the block stream gives up reconnecting. The latter is returned as an
// error so the process exits with a non-zero status.
//
//	txtracker start
func startPipelineCommand(bp blockproc.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Subscribes to new blocks and emits the balance changes of their transactions.",
		Usage:       "Runs the block pipeline. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer signal.Stop(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			if err := bp.Start(ctx); err != nil {
				return err
			}
			defer bp.Close()

			select {
			case <-quit:
				return nil
			case <-ctx.Done():
				return nil
			case <-bp.Done():
				return bp.Err()
			}
		},
	}
}

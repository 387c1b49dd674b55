package cli

import (
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run a free-agent sweep now",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/sweep", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("sweep completed")
			return nil
		},
	}
}

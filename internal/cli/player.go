package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerVerifyCmd())
	cmd.AddCommand(newPlayerRenewCmd())
	cmd.AddCommand(newPlayerToggleCmd())

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <player-id>",
		Short: "Show a player record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerVerifyCmd() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "verify <player-id>",
		Short: "Verify a player against their game tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tag == "" {
				return fmt.Errorf("--tag is required")
			}

			req := map[string]string{"tag": tag}
			var result Player
			if err := client.Post("/api/v1/players/"+args[0]+"/verify", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Game tag (required)")
	_ = cmd.MarkFlagRequired("tag")

	return cmd
}

func newPlayerRenewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "renew <player-id>",
		Short: "Renew a player's free-agent advertisement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Post("/api/v1/players/"+args[0]+"/free-agent/renew", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <player-id>",
		Short: "Toggle a player's free-agent status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Post("/api/v1/players/"+args[0]+"/free-agent/toggle", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

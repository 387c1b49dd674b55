package cli

import (
	"github.com/spf13/cobra"
)

func newRolesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Role management commands",
	}

	cmd.AddCommand(newRolesSyncCmd())

	return cmd
}

func newRolesSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Grant the ping role to every roster member",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RoleSyncReport
			if err := client.Post("/api/v1/roles/sync", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

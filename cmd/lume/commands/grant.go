package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/lume/internal/app"
	"go.trai.ch/lume/internal/ui/render"
)

func (c *CLI) newGrantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant <full|limited|deny>",
		Short: "Change the library access grant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			photos, _ := cmd.Flags().GetStringSlice("photo")

			mode := app.GrantMode(args[0])
			if mode == app.GrantLimited && len(photos) == 0 {
				return fmt.Errorf("limited access requires at least one --photo id")
			}

			status, err := c.app.Grant(cmd.Context(), mode, photos)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "library access: %s\n", status)
			return err
		},
	}
	cmd.Flags().StringSlice("photo", nil, "Asset id to include in a limited grant (repeatable)")
	return cmd
}

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current library access grant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.PermissionStatus(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), render.PermissionStatus(status))
			return err
		},
	}
}

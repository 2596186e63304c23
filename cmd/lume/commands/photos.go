package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/lume/internal/ui/render"
)

func (c *CLI) newPhotosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photos <cluster-id>",
		Short: "List the photos of a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cluster, err := c.app.Cluster(ctx, args[0])
			if err != nil {
				return err
			}
			photos, err := c.app.Photos(ctx, args[0])
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(photos)
			}

			_, err = fmt.Fprint(out, render.Photos(cluster, photos))
			return err
		},
	}
	cmd.Flags().Bool("json", false, "Print the photos as JSON")
	return cmd
}

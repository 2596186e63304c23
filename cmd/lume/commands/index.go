package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index <directory>",
		Short: "Scan a directory tree into the photo library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.app.Index(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d photos from %s\n", n, args[0])
			return err
		},
	}
}

func (c *CLI) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <moments.yaml>",
		Short: "Import a moment manifest into the photo library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.app.ImportMoments(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d moments from %s\n", n, args[0])
			return err
		},
	}
}

// Package commands implements the CLI commands for the lume photo catalog.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lume/internal/app"
	"go.trai.ch/lume/internal/build"
	"go.trai.ch/lume/internal/core/domain"
)

// CLI represents the command line interface for lume.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Clusters(ctx context.Context) ([]domain.Cluster, error)
	Cluster(ctx context.Context, clusterID string) (domain.Cluster, error)
	Photos(ctx context.Context, clusterID string) ([]domain.Asset, error)
	Index(ctx context.Context, root string) (int, error)
	ImportMoments(ctx context.Context, path string) (int, error)
	Grant(ctx context.Context, mode app.GrantMode, assetIDs []string) (domain.PermissionStatus, error)
	PermissionStatus(ctx context.Context) (domain.PermissionStatus, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lume",
		Short:         "A photo library clustering engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newClustersCmd())
	rootCmd.AddCommand(c.newPhotosCmd())
	rootCmd.AddCommand(c.newIndexCmd())
	rootCmd.AddCommand(c.newImportCmd())
	rootCmd.AddCommand(c.newGrantCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

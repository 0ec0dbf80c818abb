package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cvatkit",
		Short: "Toolkit for CVAT image annotation files",
		Long: `Cvatkit works with CVAT for images annotation XML and the photos it
describes.

It rasterizes polygon annotations into color masks with Ignore regions
punched out, reports dataset statistics, rewrites annotation files for
re-upload and exports shapes to tabular formats.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newMaskCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newUpdateCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newInspectCmd())

	return cmd
}

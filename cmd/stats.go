package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cvat-tools/cvatkit/internal/statscmd"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Dataset statistics reports",
		Long: `Statistics reports over CVAT annotation files.

Each subcommand accepts explicit .xml files as arguments or discovers every
.xml file in the working directory, and writes its report next to the input.`,
	}

	// Add stats subcommands
	cmd.AddCommand(statscmd.NewSummaryCmd())
	cmd.AddCommand(statscmd.NewClassesCmd())
	cmd.AddCommand(statscmd.NewFiguresCmd())

	return cmd
}

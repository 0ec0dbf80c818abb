package statscmd

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cvat-tools/cvatkit/internal/cvat"
	"github.com/cvat-tools/cvatkit/internal/stats"
)

// NewFiguresCmd creates the stats figures command.
func NewFiguresCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "figures [annotation.xml ...]",
		Short: "Count shapes per figure type",
		Long: `Count how many shapes exist of each figure type (polygon, box, polyline,
points), most frequent first.

The report lands next to the input as <name>-figures.txt (or .json / .csv).`,
		Example: `  # Count figure types in every .xml file in the working directory
  cvatkit stats figures

  # One file, CSV output
  cvatkit stats figures annotations.xml --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeFigures(args, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, or csv)")

	return cmd
}

func executeFigures(args []string, format string) error {
	files, err := resolveFiles(args)
	if err != nil {
		return err
	}

	for _, file := range files {
		doc, err := cvat.Load(file)
		if err != nil {
			return err
		}

		outBase := filepath.Join(filepath.Dir(file), stemOf(file)+"-figures")
		outPath, err := writeTallies(outBase, "Figure type", stats.CountShapeTypes(doc), format)
		if err != nil {
			return err
		}
		slog.Info("Figure report written", "annotations", file, "output", outPath)
	}

	return nil
}

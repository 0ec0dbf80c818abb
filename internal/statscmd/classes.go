package statscmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cvat-tools/cvatkit/internal/cvat"
	"github.com/cvat-tools/cvatkit/internal/stats"
)

// NewClassesCmd creates the stats classes command.
func NewClassesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "classes [annotation.xml ...]",
		Short: "Count shapes per class label",
		Long: `Count how many shapes carry each class label, most frequent first.

The report is written to a directory named after the input:
<name>/classes.txt (or .json / .csv).`,
		Example: `  # Count classes in every .xml file in the working directory
  cvatkit stats classes

  # One file, JSON output
  cvatkit stats classes annotations.xml --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeClasses(args, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, or csv)")

	return cmd
}

func executeClasses(args []string, format string) error {
	files, err := resolveFiles(args)
	if err != nil {
		return err
	}

	for _, file := range files {
		doc, err := cvat.Load(file)
		if err != nil {
			return err
		}

		outDir := filepath.Join(filepath.Dir(file), stemOf(file))
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}

		outPath, err := writeTallies(filepath.Join(outDir, "classes"), "Class name", stats.CountLabels(doc), format)
		if err != nil {
			return err
		}
		slog.Info("Class report written", "annotations", file, "output", outPath)
	}

	return nil
}

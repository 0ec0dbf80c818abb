package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cvat-tools/cvatkit/internal/cvat"
	"github.com/cvat-tools/cvatkit/internal/export"
)

func newExportCmd() *cobra.Command {
	var annotations string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export annotation shapes to Parquet or JSON lines",
		Long: `Flatten every shape in an annotation file into one tabular record holding
the image name and dimensions, the shape type and label, the point list and
the polygon area.

The output format follows the destination extension: .parquet, .jsonl or
.json.`,
		Example: `  # Export to Parquet
  cvatkit export --annotations annotations.xml --output shapes.parquet

  # Export to JSON lines
  cvatkit export --annotations annotations.xml --output shapes.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveAnnotations(annotations)
			if err != nil {
				return err
			}

			doc, err := cvat.Load(path)
			if err != nil {
				return err
			}

			rows := export.Rows(doc)
			if err := export.Write(output, rows); err != nil {
				return err
			}

			slog.Info("Shapes exported", "annotations", path, "output", output, "rows", len(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&annotations, "annotations", "", "Annotation XML file (defaults to the only .xml in the working directory)")
	cmd.Flags().StringVar(&output, "output", "shapes.parquet", "Destination file (.parquet, .jsonl or .json)")

	return cmd
}

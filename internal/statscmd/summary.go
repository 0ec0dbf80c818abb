package statscmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cvat-tools/cvatkit/internal/cvat"
	"github.com/cvat-tools/cvatkit/internal/report"
	"github.com/cvat-tools/cvatkit/internal/stats"
)

// NewSummaryCmd creates the stats summary command.
func NewSummaryCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "summary [annotation.xml ...]",
		Short: "Write a dataset summary report per annotation file",
		Long: `Write record counts, figure counts, extreme image sizes and figure area
statistics for each annotation file.

The report lands next to the input as <name>-common.txt (or .json / .csv).`,
		Example: `  # Summarize every .xml file in the working directory
  cvatkit stats summary

  # Summarize one file as CSV
  cvatkit stats summary annotations.xml --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeSummary(args, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, or csv)")

	return cmd
}

func executeSummary(args []string, format string) error {
	files, err := resolveFiles(args)
	if err != nil {
		return err
	}

	for _, file := range files {
		doc, err := cvat.Load(file)
		if err != nil {
			return err
		}

		outPath, err := writeSummary(file, stats.Summarize(doc), format)
		if err != nil {
			return err
		}
		slog.Info("Summary written", "annotations", file, "output", outPath)
	}

	return nil
}

func writeSummary(file string, s stats.Summary, format string) (string, error) {
	rows := summaryRows(s)
	outBase := filepath.Join(filepath.Dir(file), stemOf(file)+"-common")

	switch strings.ToLower(format) {
	case "text", "":
		table := report.NewTable(
			report.Column{Name: "Parameter", Align: report.AlignLeft},
			report.Column{Name: "Value", Align: report.AlignRight},
		)
		for _, row := range rows {
			table.AddRow(row[0], row[1])
		}
		outPath := outBase + ".txt"
		if err := os.WriteFile(outPath, []byte(table.String()+"\n"), 0644); err != nil {
			return "", fmt.Errorf("failed to write report: %w", err)
		}
		return outPath, nil

	case "json":
		outPath := outBase + ".json"
		out, err := os.Create(outPath)
		if err != nil {
			return "", fmt.Errorf("failed to create report: %w", err)
		}
		defer out.Close()

		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s); err != nil {
			return "", fmt.Errorf("failed to encode report: %w", err)
		}
		return outPath, nil

	case "csv":
		outPath := outBase + ".csv"
		out, err := os.Create(outPath)
		if err != nil {
			return "", fmt.Errorf("failed to create report: %w", err)
		}
		defer out.Close()

		writer := csv.NewWriter(out)
		if err := writer.Write([]string{"Parameter", "Value"}); err != nil {
			return "", err
		}
		for _, row := range rows {
			if err := writer.Write(row[:]); err != nil {
				return "", err
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return "", fmt.Errorf("failed to write report: %w", err)
		}
		return outPath, nil

	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, json, csv)", format)
	}
}

func summaryRows(s stats.Summary) [][2]string {
	rows := [][2]string{
		{"Images", strconv.Itoa(s.Images)},
		{"Annotated images", strconv.Itoa(s.AnnotatedImages)},
		{"Not annotated images", strconv.Itoa(s.UnannotatedImages)},
		{"Figures", strconv.Itoa(s.Figures)},
	}
	if s.Images > 0 {
		rows = append(rows,
			[2]string{"Largest images", strconv.Itoa(s.LargestCount)},
			[2]string{"Largest image", s.LargestName},
			[2]string{"Largest image height", strconv.Itoa(s.LargestHeight)},
			[2]string{"Largest image width", strconv.Itoa(s.LargestWidth)},
			[2]string{"Smallest images", strconv.Itoa(s.SmallestCount)},
			[2]string{"Smallest image", s.SmallestName},
			[2]string{"Smallest image height", strconv.Itoa(s.SmallestHeight)},
			[2]string{"Smallest image width", strconv.Itoa(s.SmallestWidth)},
		)
	}
	if s.AreaCount > 0 {
		rows = append(rows,
			[2]string{"Figure area mean", fmt.Sprintf("%.1f", s.AreaMean)},
			[2]string{"Figure area median", fmt.Sprintf("%.1f", s.AreaMedian)},
			[2]string{"Figure area std dev", fmt.Sprintf("%.1f", s.AreaStdDev)},
		)
	}
	return rows
}

package statscmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cvat-tools/cvatkit/internal/report"
	"github.com/cvat-tools/cvatkit/internal/stats"
)

// writeTallies writes a key/quantity report shared by the classes and
// figures commands. outBase is the destination path without extension.
func writeTallies(outBase, header string, tallies []stats.Tally, format string) (string, error) {
	switch strings.ToLower(format) {
	case "text", "":
		table := report.NewTable(
			report.Column{Name: header, Align: report.AlignLeft},
			report.Column{Name: "Quantity", Align: report.AlignRight},
		)
		for _, tally := range tallies {
			table.AddRow(tally.Key, strconv.Itoa(tally.Count))
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
		if err := encoder.Encode(tallies); err != nil {
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
		if err := writer.Write([]string{header, "Quantity"}); err != nil {
			return "", err
		}
		for _, tally := range tallies {
			if err := writer.Write([]string{tally.Key, strconv.Itoa(tally.Count)}); err != nil {
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

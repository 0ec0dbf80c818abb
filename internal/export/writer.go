package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// Write stores rows in the format implied by the destination extension:
// .parquet for a Parquet file, .jsonl or .json for one JSON object per line.
func Write(path string, rows []ShapeRow) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return writeParquet(path, rows)
	case ".jsonl", ".json":
		return writeJSONL(path, rows)
	default:
		return fmt.Errorf("unsupported export format %s (supported: .parquet, .jsonl, .json)", filepath.Ext(path))
	}
}

func writeParquet(path string, rows []ShapeRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[ShapeRow](file)

	// Write in batches of 128 rows
	for start := 0; start < len(rows); start += 128 {
		end := start + 128
		if end > len(rows) {
			end = len(rows)
		}
		if _, err := writer.Write(rows[start:end]); err != nil {
			return fmt.Errorf("failed to write parquet rows: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}

func writeJSONL(path string, rows []ShapeRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	for _, row := range rows {
		if err := encoder.Encode(row); err != nil {
			return fmt.Errorf("failed to encode export row: %w", err)
		}
	}
	return nil
}

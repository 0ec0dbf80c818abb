package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// RunConfig is the configuration section of a run manifest.
type RunConfig struct {
	Annotations string `yaml:"annotations"`
	ImagesDir   string `yaml:"imagesdir"`
	Extension   string `yaml:"extension"`
	OutputDir   string `yaml:"outputdir"`
	Color       string `yaml:"color"`
	Workers     int    `yaml:"workers"`
	Timestamp   string `yaml:"timestamp"`
}

// ImageEntry is one image's outcome in a run manifest.
type ImageEntry struct {
	Image     string `yaml:"image"`
	Shapes    int    `yaml:"shapes"`
	Positive  int    `yaml:"positive"`
	Ignore    int    `yaml:"ignore"`
	MaskPath  string `yaml:"maskpath,omitempty"`
	PhotoPath string `yaml:"photopath,omitempty"`
	Error     string `yaml:"error,omitempty"`
}

// RunManifest is the complete record of one mask run.
type RunManifest struct {
	Config  RunConfig    `yaml:"config"`
	Results []ImageEntry `yaml:"results"`
}

// SaveManifest writes the run record to runs/mask-<timestamp>.yaml under the
// output directory.
func SaveManifest(opts Options, color string, results []Result) error {
	runsDir := filepath.Join(opts.OutputDir, "runs")
	if err := os.MkdirAll(runsDir, 0755); err != nil {
		return fmt.Errorf("failed to create runs directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")

	manifest := RunManifest{
		Config: RunConfig{
			Annotations: opts.Annotations,
			ImagesDir:   opts.ImagesDir,
			Extension:   opts.Extension,
			OutputDir:   opts.OutputDir,
			Color:       color,
			Workers:     opts.Workers,
			Timestamp:   timestamp,
		},
		Results: make([]ImageEntry, 0, len(results)),
	}

	for _, r := range results {
		entry := ImageEntry{
			Image:     r.Image,
			Shapes:    r.Shapes,
			Positive:  r.Positive,
			Ignore:    r.Ignore,
			MaskPath:  r.MaskPath,
			PhotoPath: r.PhotoPath,
		}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		}
		manifest.Results = append(manifest.Results, entry)
	}

	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	filename := filepath.Join(runsDir, fmt.Sprintf("mask-%s.yaml", timestamp))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	slog.Info("Run manifest saved", "path", filename)
	return nil
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cvat-tools/cvatkit/internal/cvat"
)

func newUpdateCmd() *cobra.Command {
	var extension string

	cmd := &cobra.Command{
		Use:   "update [annotation.xml ...]",
		Short: "Rewrite annotation files for re-upload",
		Long: `Rewrite CVAT annotation files so they line up with a re-uploaded frame
sequence: invert image ids, force a single image extension and strip
directory portions from image names.

The result is written next to the input as <name>-updated.xml.`,
		Example: `  # Update every .xml file in the working directory
  cvatkit update

  # Force .jpg instead of the default .png
  cvatkit update annotations.xml --ext .jpg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeUpdate(args, extension)
		},
	}

	cmd.Flags().StringVar(&extension, "ext", ".png", "Extension forced onto every image name")

	return cmd
}

func executeUpdate(args []string, extension string) error {
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	files, err := resolveXMLFiles(args)
	if err != nil {
		return err
	}

	for _, file := range files {
		doc, err := cvat.Load(file)
		if err != nil {
			return err
		}

		cvat.InvertIDs(doc)
		cvat.ForceExtension(doc, extension)
		cvat.StripDirectories(doc)

		base := filepath.Base(file)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		outPath := filepath.Join(filepath.Dir(file), stem+"-updated.xml")
		if err := doc.Save(outPath); err != nil {
			return err
		}
		slog.Info("Annotation file updated", "input", file, "output", outPath)
	}

	return nil
}

// resolveXMLFiles validates explicitly named annotation files or, with no
// arguments, returns every .xml file in the working directory.
func resolveXMLFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if _, err := os.Stat(arg); err != nil {
			return nil, fmt.Errorf("file not found by path: %s", arg)
		}
		if ext := filepath.Ext(arg); strings.ToLower(ext) != ".xml" {
			return nil, fmt.Errorf("extension must be .xml, not %s", ext)
		}
		files = append(files, arg)
	}

	if len(files) == 0 {
		matches, err := filepath.Glob("*.xml")
		if err != nil {
			return nil, err
		}
		files = matches
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no annotation files: name them as arguments or run in a directory with .xml files")
	}

	return files, nil
}

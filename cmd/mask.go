package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cvat-tools/cvatkit/internal/pipeline"
)

func newMaskCmd() *cobra.Command {
	var annotations string
	var imagesDir string
	var outputDir string
	var extension string
	var workers int
	var manifest bool

	cmd := &cobra.Command{
		Use:   "mask [image ...]",
		Short: "Rasterize polygon annotations into color masks",
		Long: `Generate a mask and a mask-on-photo image for every photo in the batch.

Shapes are filled with the first label color from the annotation metadata.
Shapes labeled "Ignore" punch holes out of the others regardless of draw
order, and a photo without an annotation record yields an empty mask.
Results are written to mask/mask-<image> and mask_on_photo/mask_on_photo-<image>
in the photo's own format.`,
		Example: `  # Mask every .jpg under images/ using the only .xml in the working directory
  cvatkit mask

  # Explicit annotation file and image selection
  cvatkit mask --annotations annotations.xml images/img_0001.jpg

  # Fan out over 4 workers and record a run manifest
  cvatkit mask --workers 4 --manifest`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveAnnotations(annotations)
			if err != nil {
				return err
			}
			return pipeline.Run(pipeline.Options{
				Annotations: path,
				ImagesDir:   imagesDir,
				Images:      args,
				Extension:   extension,
				OutputDir:   outputDir,
				Workers:     workers,
				Manifest:    manifest,
			})
		},
	}

	cmd.Flags().StringVar(&annotations, "annotations", "", "Annotation XML file (defaults to the only .xml in the working directory)")
	cmd.Flags().StringVar(&imagesDir, "images", "images", "Directory searched for photos")
	cmd.Flags().StringVar(&outputDir, "output", ".", "Directory receiving the mask/ and mask_on_photo/ directories")
	cmd.Flags().StringVar(&extension, "ext", ".jpg", "Photo extension used for discovery")
	cmd.Flags().IntVar(&workers, "workers", 1, "Number of images processed concurrently")
	cmd.Flags().BoolVar(&manifest, "manifest", false, "Write a YAML run manifest under runs/")

	return cmd
}

// resolveAnnotations falls back to the first .xml file in the working
// directory when no path is given.
func resolveAnnotations(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	matches, err := filepath.Glob("*.xml")
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no annotation file found: pass --annotations or run in a directory with a .xml file")
	}
	return matches[0], nil
}

package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cvat-tools/cvatkit/internal/cvat"
	"github.com/cvat-tools/cvatkit/internal/imaging"
	"github.com/cvat-tools/cvatkit/internal/mask"
)

const (
	maskDirName  = "mask"
	photoDirName = "mask_on_photo"
)

// Options configures one mask run.
type Options struct {
	Annotations string   // annotation XML path
	ImagesDir   string   // directory holding the photos
	Images      []string // explicit image files; discovered from ImagesDir when empty
	Extension   string   // image extension used for discovery
	OutputDir   string   // parent of the mask/ and mask_on_photo/ directories
	Workers     int
	Manifest    bool
}

// Result records the outcome for one image.
type Result struct {
	Image     string
	Shapes    int
	Positive  int
	Ignore    int
	MaskPath  string
	PhotoPath string
	Err       error
}

// Run synthesizes a mask and a mask-on-photo image for every photo in the
// batch. A failure on one image is reported and the batch continues; setup
// failures (unreadable annotations, no usable mask color, unwritable output
// directories) abort before any image is processed.
func Run(opts Options) error {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Extension == "" {
		opts.Extension = ".jpg"
	}
	if opts.ImagesDir == "" {
		opts.ImagesDir = "images"
	}

	doc, err := cvat.Load(opts.Annotations)
	if err != nil {
		return err
	}

	hexColor, err := doc.LabelColor()
	if err != nil {
		return fmt.Errorf("no mask color available: %w", err)
	}
	maskColor, err := mask.ParseHexColor(hexColor)
	if err != nil {
		return fmt.Errorf("no mask color available: %w", err)
	}

	images := opts.Images
	if len(images) == 0 {
		images, err = imaging.ListImages(opts.ImagesDir, opts.Extension)
		if err != nil {
			return err
		}
	}
	if len(images) == 0 {
		slog.Warn("No images to process", "dir", opts.ImagesDir, "extension", opts.Extension)
		return nil
	}

	maskDir := filepath.Join(opts.OutputDir, maskDirName)
	photoDir := filepath.Join(opts.OutputDir, photoDirName)
	for _, dir := range []string{maskDir, photoDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	index := cvat.NewIndex(doc)
	slog.Info("Starting mask run",
		"annotations", opts.Annotations,
		"images", len(images),
		"records", index.Len(),
		"color", hexColor,
		"workers", opts.Workers)

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, opts.Workers)
	resultsChan := make(chan Result, len(images))

	for i, img := range images {
		wg.Add(1)
		go func(idx int, imagePath string) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			slog.Info("Processing image",
				"image", filepath.Base(imagePath),
				"progress", fmt.Sprintf("%d/%d", idx+1, len(images)))
			resultsChan <- processImage(imagePath, index, maskColor, maskDir, photoDir)
		}(i, img)
	}

	// Close results channel when all goroutines complete
	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []Result
	for result := range resultsChan {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Image < results[j].Image })

	processed, failed := 0, 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			var malformed *cvat.MalformedShapeError
			if errors.As(result.Err, &malformed) {
				slog.Error("Skipping image with malformed annotation", "image", result.Image, "error", result.Err)
			} else {
				slog.Error("Failed to process image", "image", result.Image, "error", result.Err)
			}
			continue
		}
		processed++
	}

	slog.Info("Mask run finished", "processed", processed, "failed", failed)

	if opts.Manifest {
		if err := SaveManifest(opts, hexColor, results); err != nil {
			return fmt.Errorf("failed to save run manifest: %w", err)
		}
	}

	return nil
}

// processImage builds both outputs for one photo. The photo's own pixels are
// the background of the second output, so it is loaded even when the image
// has no annotation record.
func processImage(imagePath string, index *cvat.Index, maskColor mask.Color, maskDir, photoDir string) Result {
	name := filepath.Base(imagePath)
	result := Result{Image: name}

	photo, err := imaging.Load(imagePath)
	if err != nil {
		result.Err = err
		return result
	}

	var shapes []cvat.Shape
	if record, ok := index.Lookup(name); ok {
		shapes = record.Shapes
	} else {
		slog.Debug("No annotation record for image", "image", name)
	}
	result.Shapes = len(shapes)

	regions, err := mask.BuildRegions(shapes)
	if err != nil {
		result.Err = fmt.Errorf("image %s: %w", name, err)
		return result
	}
	result.Positive = len(regions.Positive)
	result.Ignore = len(regions.Ignore)

	positive := mask.NewCanvas(photo.W, photo.H)
	ignore := mask.NewCanvas(photo.W, photo.H)
	mask.Fill(positive, regions.Positive, maskColor)
	mask.Fill(ignore, regions.Ignore, maskColor)
	overlay := mask.Combine(positive, ignore)

	onBlack := mask.NewCanvas(photo.W, photo.H)
	mask.Composite(onBlack, overlay)
	result.MaskPath = filepath.Join(maskDir, maskDirName+"-"+name)
	if err := imaging.Save(result.MaskPath, onBlack); err != nil {
		result.Err = err
		return result
	}

	mask.Composite(photo, overlay)
	result.PhotoPath = filepath.Join(photoDir, photoDirName+"-"+name)
	if err := imaging.Save(result.PhotoPath, photo); err != nil {
		result.Err = err
		return result
	}

	return result
}

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cvat-tools/cvatkit/internal/cvat"
	"github.com/cvat-tools/cvatkit/internal/mask"
)

func newInspectCmd() *cobra.Command {
	var annotations string
	var limit int
	var interactive bool
	var showShapes bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect annotation records (useful for checking labels and shapes)",
		Long: `Print the image records of an annotation file one by one.

Useful for eyeballing labels, shape counts and point data before running a
mask batch.`,
		Example: `  # Inspect the first 5 records interactively
  cvatkit inspect --annotations annotations.xml --limit 5 --interactive

  # Dump every record with its shapes
  cvatkit inspect --annotations annotations.xml --limit 0 --shapes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveAnnotations(annotations)
			if err != nil {
				return err
			}

			// Create a context that gets canceled on an interrupt signal (Ctrl+C)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return executeInspect(ctx, path, limit, interactive, showShapes)
		},
	}

	cmd.Flags().StringVar(&annotations, "annotations", "", "Annotation XML file (defaults to the only .xml in the working directory)")
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of records to print (0 for all)")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Pause after each record (press Enter to continue)")
	cmd.Flags().BoolVar(&showShapes, "shapes", false, "Print every shape's label, type and points")

	return cmd
}

func executeInspect(ctx context.Context, path string, limit int, interactive, showShapes bool) error {
	doc, err := cvat.Load(path)
	if err != nil {
		return err
	}

	records := doc.Images
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	fmt.Printf("Loaded %d of %d records from %s\n", len(records), len(doc.Images), path)
	if color, err := doc.LabelColor(); err == nil {
		fmt.Printf("Mask color: %s\n", color)
	}
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	for i, record := range records {
		select {
		case <-ctx.Done():
			fmt.Println("\nInspection interrupted.")
			return nil
		default:
		}

		fmt.Printf("RECORD %d/%d\n", i+1, len(records))
		fmt.Println(strings.Repeat("-", 80))
		fmt.Printf("ID:     %d\n", record.ID)
		fmt.Printf("Name:   %s\n", record.Name)
		fmt.Printf("Size:   %dx%d\n", record.Width, record.Height)
		fmt.Printf("Shapes: %d\n", len(record.Shapes))

		labels := make(map[string]int)
		ignored := 0
		for _, shape := range record.Shapes {
			labels[shape.Label]++
			if shape.Label == mask.IgnoreLabel {
				ignored++
			}
		}
		if len(labels) > 0 {
			names := make([]string, 0, len(labels))
			for label := range labels {
				names = append(names, label)
			}
			sort.Strings(names)
			fmt.Println("Labels:")
			for _, label := range names {
				fmt.Printf("  %s: %d\n", label, labels[label])
			}
		}
		if ignored > 0 {
			fmt.Printf("Ignore regions: %d\n", ignored)
		}

		if showShapes {
			for j, shape := range record.Shapes {
				fmt.Printf("  [%d] %s label=%q points=%s\n", j, shape.Type(), shape.Label, truncate(shape.Points, 60))
			}
		}

		fmt.Println()

		if interactive && i < len(records)-1 {
			fmt.Print("Press Enter to continue to next record (or Ctrl+C to quit)...")

			inputCh := make(chan struct{})
			go func() {
				_, _ = reader.ReadString('\n')
				close(inputCh)
			}()

			select {
			case <-ctx.Done():
				fmt.Println("\nInspection interrupted.")
				return nil
			case <-inputCh:
				fmt.Println()
			}
		}
	}

	return nil
}

// truncate shortens a string to maxLen characters
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

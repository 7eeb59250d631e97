package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-layout/internal/config"
	"github.com/jonathan/resume-layout/internal/rendering"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Render many resume documents concurrently",
	Long:  "Renders every given resume document JSON file (or every .json file in --dir) with the same template and format, writing outputs next to each other in --out-dir.",
	RunE:  runBatch,
}

var (
	batchDir         string
	batchOutDir      string
	batchTemplate    string
	batchFormat      string
	batchConcurrency int
	batchTimeout     int
)

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of resume document JSON files")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", ".", "Directory for output files")
	batchCmd.Flags().StringVarP(&batchTemplate, "template", "t", "", "Template id applied to every document")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", config.FormatTree, "Output format: tree, html or pdf")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum documents rendered in parallel")
	batchCmd.Flags().IntVar(&batchTimeout, "print-timeout", 0, "Headless browser budget in seconds for PDF output")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	files := append([]string(nil), args...)
	if batchDir != "" {
		entries, err := os.ReadDir(batchDir)
		if err != nil {
			return fmt.Errorf("failed to read directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			files = append(files, filepath.Join(batchDir, entry.Name()))
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no input files: pass file arguments or --dir")
	}

	cfg := config.Config{
		Template:            batchTemplate,
		Format:              batchFormat,
		PrintTimeoutSeconds: batchTimeout,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	start := time.Now()
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(batchConcurrency)

	for _, file := range files {
		g.Go(func() error {
			doc, err := loadDocument(file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			out, err := renderDocument(ctx, doc, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			outPath := filepath.Join(batchOutDir, rendering.OutputBaseName(doc)+formatExtension(cfg.Format))
			if err := os.WriteFile(outPath, out, 0o644); err != nil {
				return fmt.Errorf("%s: failed to write output: %w", file, err)
			}

			fmt.Printf("Rendered %s -> %s\n", file, outPath)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Rendered %d documents in %v\n", len(files), time.Since(start).Round(time.Millisecond))
	return nil
}

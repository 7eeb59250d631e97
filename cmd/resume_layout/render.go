package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-layout/internal/config"
	"github.com/jonathan/resume-layout/internal/layout"
	"github.com/jonathan/resume-layout/internal/observability"
	"github.com/jonathan/resume-layout/internal/rendering"
	"github.com/jonathan/resume-layout/internal/schemas"
	"github.com/jonathan/resume-layout/internal/sections"
	"github.com/jonathan/resume-layout/internal/templates"
	"github.com/jonathan/resume-layout/internal/types"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume document to a page tree, HTML or PDF",
	Long:  "Runs the full layout pipeline on a resume document JSON file: materializes sections, resolves design tokens, composes regions and assembles the page tree, then writes the requested output format.",
	RunE:  runRender,
}

var (
	renderResumeFile string
	renderTemplate   string
	renderFormat     string
	renderOutputFile string
	renderConfigFile string
	renderVerbose    bool
	renderTimeout    int
)

func init() {
	renderCmd.Flags().StringVarP(&renderResumeFile, "resume", "r", "", "Path to resume document JSON file (required)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template id (classic, modern, minimal, professional, photo)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "Output format: tree, html or pdf (default tree)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output file (default derived from the document title)")
	renderCmd.Flags().StringVarP(&renderConfigFile, "config", "c", "", "Path to JSON config file")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print pipeline details")
	renderCmd.Flags().IntVar(&renderTimeout, "print-timeout", 0, "Headless browser budget in seconds for PDF output")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, err := resolveRenderConfig()
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}

	doc, err := loadDocument(cfg.Resume)
	if err != nil {
		return err
	}

	out, err := renderDocument(context.Background(), doc, cfg)
	if err != nil {
		return err
	}

	outPath := cfg.Out
	if outPath == "" {
		outPath = rendering.OutputBaseName(doc) + formatExtension(cfg.Format)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", outPath, len(out))
	return nil
}

// resolveRenderConfig merges the optional config file with CLI flags; flags
// win.
func resolveRenderConfig() (config.Config, error) {
	merged := config.Config{}
	if renderConfigFile != "" {
		loaded, err := config.LoadConfig(renderConfigFile)
		if err != nil {
			return merged, err
		}
		merged = *loaded
	}

	flagCfg := config.Config{
		Resume:              renderResumeFile,
		Out:                 renderOutputFile,
		Template:            renderTemplate,
		Format:              renderFormat,
		Verbose:             renderVerbose,
		PrintTimeoutSeconds: renderTimeout,
	}
	merged = flagCfg.MergeWithDefaults(merged)

	if merged.Format == "" {
		merged.Format = config.FormatTree
	}
	if err := merged.Validate(); err != nil {
		return merged, err
	}
	return merged, nil
}

// loadDocument reads a resume document JSON file, validates it against the
// document schema and backfills missing item ids.
func loadDocument(path string) (*types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateResumeDocument(data); err != nil {
		return nil, fmt.Errorf("resume document is invalid: %w", err)
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	doc.EnsureItemIDs()
	return &doc, nil
}

// renderDocument runs the layout pipeline and encodes the result in the
// configured format.
func renderDocument(ctx context.Context, doc *types.ResumeDocument, cfg config.Config) ([]byte, error) {
	tree := layout.Render(doc, cfg.Template)

	if cfg.Verbose {
		printPipeline(doc, tree.TemplateID)
	}

	switch cfg.Format {
	case config.FormatTree:
		return json.MarshalIndent(tree, "", "  ")

	case config.FormatHTML:
		htmlDoc, err := rendering.NewHTMLRenderer(rendering.DefaultFontAssets()).Render(tree)
		if err != nil {
			return nil, err
		}
		return []byte(htmlDoc), nil

	case config.FormatPDF:
		htmlDoc, err := rendering.NewHTMLRenderer(rendering.DefaultFontAssets()).Render(tree)
		if err != nil {
			return nil, err
		}
		return rendering.PrintPDF(ctx, htmlDoc, rendering.PrintOptions{
			Timeout: time.Duration(cfg.PrintTimeoutSeconds) * time.Second,
		})

	default:
		return nil, fmt.Errorf("unknown format: %s", cfg.Format)
	}
}

// printPipeline dumps the intermediate pipeline stages for the document.
func printPipeline(doc *types.ResumeDocument, templateID string) {
	printer := observability.NewPrinter(os.Stdout)

	cfg := templates.Get(templateID)
	printer.PrintTemplate(cfg)

	materialized := sections.Materialize(doc)
	printer.PrintSections(materialized)

	orders := make(map[string][]types.SectionKey, len(cfg.Regions.Structure))
	regionIDs := make([]string, 0, len(cfg.Regions.Structure))
	for _, region := range cfg.Regions.Structure {
		regionIDs = append(regionIDs, region.ID)
		orders[region.ID] = sections.OrderForRegion(cfg, region.ID, materialized)
	}
	printer.PrintRegionOrder(orders, regionIDs)
}

func formatExtension(format string) string {
	switch format {
	case config.FormatHTML:
		return ".html"
	case config.FormatPDF:
		return ".pdf"
	default:
		return ".tree.json"
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-layout/internal/observability"
	"github.com/jonathan/resume-layout/internal/templates"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint template configurations",
	Long:  "Checks every registered template configuration (or a single one with --id) for structural problems: missing fields, unknown regions in the content map, misused width fractions.",
	RunE:  runLint,
}

var lintID string

func init() {
	lintCmd.Flags().StringVar(&lintID, "id", "", "Lint a single template")

	rootCmd.AddCommand(lintCmd)
}

func runLint(_ *cobra.Command, _ []string) error {
	printer := observability.NewPrinter(os.Stdout)

	var results []*templates.Violations
	if lintID != "" {
		results = append(results, templates.Lint(templates.Get(lintID)))
	} else {
		results = templates.LintAll()
	}

	failed := false
	for _, violations := range results {
		printer.PrintViolations(violations)
		if violations.HasErrors() {
			failed = true
		}
	}

	if failed {
		return fmt.Errorf("template lint found errors")
	}
	return nil
}

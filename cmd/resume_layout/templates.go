package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-layout/internal/observability"
	"github.com/jonathan/resume-layout/internal/templates"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in templates",
	Long:  "Lists every registered template. With --id, prints the full configuration for a single template.",
	RunE:  runTemplates,
}

var (
	templatesID   string
	templatesJSON bool
)

func init() {
	templatesCmd.Flags().StringVar(&templatesID, "id", "", "Show the full configuration for one template")
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Emit JSON instead of formatted output")

	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(_ *cobra.Command, _ []string) error {
	if templatesID != "" {
		cfg := templates.Get(templatesID)
		if templatesJSON {
			out, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		observability.NewPrinter(os.Stdout).PrintTemplate(cfg)
		return nil
	}

	if templatesJSON {
		out, err := json.MarshalIndent(templates.All(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	for _, cfg := range templates.All() {
		marker := "  "
		if cfg.ID == templates.DefaultTemplateID {
			marker = "* "
		}
		fmt.Printf("%s%-14s %-14s %s\n", marker, cfg.ID, cfg.Layout, cfg.Label)
	}
	return nil
}

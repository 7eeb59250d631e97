// Package main provides the entry point for the resume layout engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_layout",
	Short: "Template-driven resume layout engine",
	Long:  "resume_layout turns a normalized resume document plus a template id into a renderer-independent page tree, and optionally renders it to HTML or PDF.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

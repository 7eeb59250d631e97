package main

import (
	"time"

	"github.com/jonathan/resume-layout/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort    int
	serveTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the layout HTTP server",
	Long:  `Start an HTTP server exposing the layout pipeline: POST /render plus template listing and health endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().IntVar(&serveTimeout, "print-timeout", 0, "Headless browser budget in seconds for PDF output")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	srv := server.New(server.Config{
		Port:         servePort,
		PrintTimeout: time.Duration(serveTimeout) * time.Second,
	})
	return srv.Start()
}

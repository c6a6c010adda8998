package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/suggest"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resumes, preview rendering, PDF export and summary suggestions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var gw gateway.Gateway
	var users server.UserStore
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		gw = database
		users = database
	} else {
		log.Println("DATABASE_URL not set, using in-memory storage")
		mem := gateway.NewMemory()
		gw = mem
		users = mem
	}

	var summarizer server.Summarizer
	if cfg.GeminiKey != "" {
		sg, err := suggest.New(ctx, cfg.GeminiKey)
		if err != nil {
			return fmt.Errorf("failed to create suggester: %w", err)
		}
		defer sg.Close()
		summarizer = sg
	} else {
		log.Println("GEMINI_API_KEY not set, summary suggestions disabled")
	}

	srv := server.New(cfg, gw, users, summarizer, export.NewRenderer())
	return srv.Start()
}

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/event-scout/app/api"
	"github.com/lysyi3m/event-scout/app/cfg"
	"github.com/lysyi3m/event-scout/app/config"
	"github.com/lysyi3m/event-scout/app/database"
	"github.com/lysyi3m/event-scout/app/event"
	"github.com/lysyi3m/event-scout/app/monitor"
	"github.com/lysyi3m/event-scout/app/serper"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	log.Println("Starting Event Scout server...")

	// Database connection
	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	log.Printf("Database ready (schema version %d, dirty=%v)", version, dirty)

	// Load category profiles
	profiles := config.NewCache(appCfg.CategoriesDir)
	if err := profiles.Run(); err != nil {
		log.Fatal("Failed to load category profiles:", err)
	}
	log.Printf("Loaded %d category profiles from %s", profiles.GetProfileCount(), appCfg.CategoriesDir)

	// Initialize core components
	searchRepo := database.NewSearchRepository(db)
	providerClient := serper.NewClient(
		appCfg.SerperURL, appCfg.SerperAPIKey, appCfg.UserAgent,
		time.Duration(appCfg.SearchTimeout)*time.Second,
		time.Duration(appCfg.RateLimitInterval)*time.Millisecond)
	searcher := event.NewSearcher(providerClient, profiles, appCfg.GL, appCfg.HL)

	// Start background health monitor
	healthMonitor := monitor.NewMonitor(searcher, time.Duration(appCfg.MonitorInterval)*time.Second)
	healthMonitor.Start()
	defer healthMonitor.Stop()

	// Initialize HTTP server
	apiHandler := api.NewHandler(searcher, searchRepo, appCfg.Version)
	server := api.NewServer(apiHandler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appCfg.Port)
		log.Printf("API endpoints available:")
		log.Printf("  Events:        http://localhost:%s/events/<category>?location=<location>", appCfg.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appCfg.Port)
		log.Printf("  Statistics:    http://localhost:%s/stats", appCfg.Port)
		log.Printf("  Metrics:       http://localhost:%s/metrics", appCfg.Port)

		if appCfg.APIAccessKey != "" {
			log.Printf("  Search log:    http://localhost:%s/api/searches (requires API key)", appCfg.Port)
		}

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("Event Scout server started successfully!")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	// Graceful shutdown
	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	log.Println("Event Scout server shutdown complete")
}

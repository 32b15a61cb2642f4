package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/messmeal/backend/config"
	httpDelivery "github.com/messmeal/backend/internal/delivery/http"
	"github.com/messmeal/backend/internal/delivery/mcp"
	"github.com/messmeal/backend/internal/infrastructure/cache"
	"github.com/messmeal/backend/internal/infrastructure/catalog"
	"github.com/messmeal/backend/internal/infrastructure/gemini"
	"github.com/messmeal/backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Mess Meal Planner Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Initialize infrastructure dependencies
	foodCatalog := catalog.New(catalog.MessHallFoods())

	memoryCache := cache.NewMemoryCache(cfg.Cache.CleanupInterval)
	defer memoryCache.Close()
	log.Printf("Cache TTL: %s, cleanup every %s", cfg.Cache.TTL, cfg.Cache.CleanupInterval)

	geminiClient := gemini.NewClient(gemini.Config{
		APIKey:            cfg.Gemini.APIKey,
		BaseURL:           cfg.Gemini.BaseURL,
		Model:             cfg.Gemini.Model,
		Timeout:           cfg.Gemini.Timeout,
		RequestsPerMinute: cfg.Gemini.RequestsPerMinute,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" || cfg.Matching.EnableDebugLogging {
		geminiClient.SetDebug(true)
		log.Printf("Gemini client debug mode enabled")
	}
	log.Printf("Gemini API configured: model %s (key: %s...)", cfg.Gemini.Model, keyPrefix(cfg.Gemini.APIKey))

	// Initialize usecase layer
	plannerService := usecase.NewPlannerService(
		foodCatalog,
		memoryCache,
		gemini.NewMenuScanner(geminiClient),
		gemini.NewMealAdvisor(geminiClient),
		usecase.PlannerServiceConfig{
			CacheTTL: cfg.Cache.TTL,
			Matcher: usecase.MatcherConfig{
				SubstringOrder:      cfg.Matching.SubstringOrder,
				CleanScannedText:    cfg.Matching.CleanScannedText,
				EnableFuzzyMatching: cfg.Matching.EnableFuzzyMatching,
				FuzzyEditDistance:   cfg.Matching.FuzzyEditDistance,
				EnableDebugLogging:  cfg.Matching.EnableDebugLogging,
			},
		},
	)

	log.Printf("Matching: order=%s, cleaning=%v, fuzzy=%v (distance %d), debug=%v",
		cfg.Matching.SubstringOrder,
		cfg.Matching.CleanScannedText,
		cfg.Matching.EnableFuzzyMatching,
		cfg.Matching.FuzzyEditDistance,
		cfg.Matching.EnableDebugLogging)

	// Create HTTP handlers with dependencies
	handler := httpDelivery.NewHandler(plannerService, cfg.Upload.MaxBytes)
	mcpHandler := httpDelivery.NewMCPHandler(mcp.NewToolServer(plannerService))

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, mcpHandler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		log.Println("Received shutdown signal")
	case err := <-errCh:
		log.Printf("Server error: %v", err)
	}

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

// keyPrefix shows enough of an API key to identify it in logs
func keyPrefix(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:8]
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

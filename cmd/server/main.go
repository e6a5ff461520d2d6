// Package main is the entry point for the jcolor HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nixprime/jhome/internal/api"
	"github.com/nixprime/jhome/internal/cache"
	"github.com/nixprime/jhome/internal/config"
	"github.com/nixprime/jhome/internal/render"
	"github.com/nixprime/jhome/internal/service"
	"github.com/nixprime/jhome/pkg/colorspace"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config/server.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting %s server on port %d", cfg.Server.Title, cfg.Server.Port)

	ctx := context.Background()

	cacheManager, err := cache.NewManager(cache.Config{
		LookupCacheSize:   cfg.Cache.LookupCacheSize,
		SwatchCacheSizeMB: cfg.Cache.SwatchSizeMB,
		SwatchTTL:         time.Duration(cfg.Cache.SwatchTTLMinutes) * time.Minute,
	})
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	defer cacheManager.Close()

	swatchRenderer := render.NewSwatchRenderer(render.Config{
		SwatchWidth:  cfg.Render.SwatchWidth,
		SwatchHeight: cfg.Render.SwatchHeight,
	})

	// Validated by config.Load.
	illuminant, _ := colorspace.IlluminantByName(cfg.Color.Illuminant)

	colorService := service.NewColorService(service.ColorServiceConfig{
		Cache:      cacheManager,
		Renderer:   swatchRenderer,
		Illuminant: illuminant,
	})

	log.Printf("Lookup cache: %d entries, swatch cache: %d MB (ttl %d min), reporting illuminant %s",
		cfg.Cache.LookupCacheSize, cfg.Cache.SwatchSizeMB, cfg.Cache.SwatchTTLMinutes, cfg.Color.Illuminant)

	// Set up HTTP router
	router := api.NewRouter(api.RouterConfig{
		Service:      colorService,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Title:        cfg.Server.Title,
		DefaultCount: cfg.Render.DefaultCount,
		MaxCount:     cfg.Limits.MaxCount,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on http://localhost:%d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hardipatel2510/WeatherX/api"
	"github.com/hardipatel2510/WeatherX/collector"
	"github.com/hardipatel2510/WeatherX/datasource"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Parse command line arguments
	port := flag.Int("port", 8080, "Port to run the server on")
	updateInterval := flag.Duration("update", 5*time.Minute, "Weather data update interval")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable API rate limiting")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	baseLogger, err := newLogger(*debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer baseLogger.Sync()
	logger := baseLogger.Sugar()

	// Load configuration
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		logger.Fatalw("failed to load configuration", "file", *configFile, "error", err)
	}
	if config.APIKey == "" {
		logger.Fatalw("no OpenWeatherMap API key configured, set OWM_API_KEY or the config file")
	}

	var source datasource.WeatherSource = datasource.NewOpenWeatherMapSource(config.APIKey, logger)
	if *enableRateLimiting {
		// OpenWeatherMap free tier allows 60 calls/minute = 1 call per second.
		// Allow bursts of up to 5 requests.
		source = datasource.NewRateLimitedSource(source, 1.0, 5)
		logger.Infow("rate limiting enabled", "source", source.Name())
	}

	store := api.NewWeatherStore()
	metrics := api.NewMetrics(prometheus.DefaultRegisterer)
	server := api.NewServer(store, source, metrics, logger, *port, config.DefaultCity)

	// Background refresh of configured locations.
	defaultUnit := datasource.ParseUnit(config.DefaultUnit)
	coll := collector.New(source, config.Locations, defaultUnit, *updateInterval)
	ctx, cancel := context.WithCancel(context.Background())
	stopCollector := coll.Start(ctx)

	go func() {
		for data := range coll.OutputChannel() {
			store.Update(data.City, defaultUnit, data, time.Now())
			metrics.Observe(data)
			logger.Debugw("refreshed weather data", "city", data.City)
		}
	}()
	go func() {
		for err := range coll.ErrorChannel() {
			logger.Warnw("background refresh failed", "error", err)
		}
	}()

	// Start the API server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Infow("server stopped", "error", err)
		}
	}()

	// Wait for shutdown signal
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-shutdownChan
	logger.Infow("shutting down", "signal", sig.String())

	cancel()
	stopCollector()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warnw("server shutdown error", "error", err)
	}

	logger.Infow("shutdown complete")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

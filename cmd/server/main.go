package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/pauljones0/farmassist-api/internal/ai"
	"github.com/pauljones0/farmassist-api/internal/api"
	"github.com/pauljones0/farmassist-api/internal/browser"
	"github.com/pauljones0/farmassist-api/internal/chat"
	"github.com/pauljones0/farmassist-api/internal/config"
	"github.com/pauljones0/farmassist-api/internal/market"
	"github.com/pauljones0/farmassist-api/internal/plantid"
	"github.com/pauljones0/farmassist-api/internal/scraper"
	"github.com/pauljones0/farmassist-api/internal/weather"
)

func main() {
	slog.Info("Starting FarmAssist API server...")

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded, using process environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Critical error loading configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gemini, err := ai.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		slog.Warn("Gemini client unavailable, advisor replies will report an error", "error", err)
	}

	driver, err := browser.New(cfg.BrowserEngine)
	if err != nil {
		slog.Error("Critical error selecting browser engine", "error", err)
		os.Exit(1)
	}

	selectors := scraper.LoadConfig()

	launch := browser.DefaultLaunchConfig(cfg.BrowserUserAgent)
	launch.ExecPath = cfg.ChromePath

	prices := market.New(driver, market.Options{
		SourceURL:   cfg.MarketURL,
		Selectors:   selectors.MarketPrices,
		Launch:      launch,
		WaitTimeout: cfg.MarketWaitTimeout,
		SettleDelay: cfg.MarketSettleDelay,
	})
	advisor := ai.NewAdvisor(gemini)
	w := weather.New(cfg.WeatherBaseURL, cfg.WeatherAPIKey, cfg.HTTPTimeout, cfg.UpstreamRPS)
	router := chat.New(w, advisor, cfg.DefaultCity)
	schemes := scraper.New(cfg, selectors.Schemes)
	pests := plantid.New(cfg.PlantIDAPIURL, cfg.PlantIDAPIKey, cfg.HTTPTimeout, cfg.UpstreamRPS)

	handlers := api.NewHandlers(prices, router, advisor, schemes, pests)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(handlers, cfg.AllowedOrigin),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Listening on port", "port", cfg.Port, "engine", cfg.BrowserEngine)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped.")
}

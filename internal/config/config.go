package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Supported values for BROWSER_ENGINE.
const (
	EngineChromedp   = "chromedp"
	EngineRod        = "rod"
	EnginePlaywright = "playwright"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

type Config struct {
	Port          string
	AllowedOrigin string

	GeminiAPIKey string
	GeminiModel  string

	WeatherAPIKey  string
	WeatherBaseURL string
	DefaultCity    string

	PlantIDAPIKey string
	PlantIDAPIURL string

	SchemesURL     string
	AllowedDomains []string

	MarketURL         string
	BrowserEngine     string
	ChromePath        string
	BrowserUserAgent  string
	MarketWaitTimeout time.Duration
	MarketSettleDelay time.Duration

	HTTPTimeout time.Duration
	UpstreamRPS float64
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
		slog.Info("Defaulting to port", "port", port)
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY not set, advisor responses will report an error")
	}

	weatherAPIKey := os.Getenv("WEATHER_API_KEY")
	if weatherAPIKey == "" {
		slog.Warn("WEATHER_API_KEY not set, weather lookups will fail")
	}

	plantIDAPIKey := os.Getenv("PLANT_ID_API_KEY")
	if plantIDAPIKey == "" {
		slog.Warn("PLANT_ID_API_KEY not set, pest detection will fail")
	}

	engine := getEnv("BROWSER_ENGINE", EngineChromedp)
	switch engine {
	case EngineChromedp, EngineRod, EnginePlaywright:
	default:
		return nil, fmt.Errorf("invalid BROWSER_ENGINE %q: want %s, %s or %s", engine, EngineChromedp, EngineRod, EnginePlaywright)
	}

	waitTimeout, err := getDuration("MARKET_WAIT_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	settleDelay, err := getDuration("MARKET_SETTLE_DELAY", "2s")
	if err != nil {
		return nil, err
	}
	httpTimeout, err := getDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	upstreamRPS := 5.0
	if v := os.Getenv("UPSTREAM_RPS"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_RPS %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("invalid UPSTREAM_RPS %q: must be positive", v)
		}
		upstreamRPS = parsed
	}

	return &Config{
		Port:              port,
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		GeminiAPIKey:      geminiAPIKey,
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
		WeatherAPIKey:     weatherAPIKey,
		WeatherBaseURL:    getEnv("WEATHER_BASE_URL", "http://api.openweathermap.org"),
		DefaultCity:       getEnv("DEFAULT_CITY", "Delhi"),
		PlantIDAPIKey:     plantIDAPIKey,
		PlantIDAPIURL:     getEnv("PLANT_ID_API_URL", "https://api.plant.id/v2/identify"),
		SchemesURL:        getEnv("SCHEMES_URL", "https://agriwelfare.gov.in/en/"),
		AllowedDomains:    []string{"agriwelfare.gov.in", "www.agriwelfare.gov.in"},
		MarketURL:         getEnv("MARKET_URL", "https://enam.gov.in/web/dashboard/trade-data"),
		BrowserEngine:     engine,
		ChromePath:        os.Getenv("CHROME_PATH"),
		BrowserUserAgent:  getEnv("BROWSER_USER_AGENT", defaultUserAgent),
		MarketWaitTimeout: waitTimeout,
		MarketSettleDelay: settleDelay,
		HTTPTimeout:       httpTimeout,
		UpstreamRPS:       upstreamRPS,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key, defaultValue string) (time.Duration, error) {
	raw := getEnv(key, defaultValue)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

// Package weather formats OpenWeatherMap current conditions as chat replies.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type Client struct {
	baseURL     string
	apiKey      string
	client      *http.Client
	rateLimiter *rate.Limiter
}

func New(baseURL, apiKey string, timeout time.Duration, rps float64) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		client:      &http.Client{Timeout: timeout},
		rateLimiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

type currentWeather struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     json.Number `json:"temp"`
		Humidity json.Number `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed json.Number `json:"speed"`
	} `json:"wind"`
}

type geoPlace struct {
	Name    string `json:"name"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// ByCity reports the current weather for city, assuming India when no
// country is given. Failures are returned as the reply text.
func (c *Client) ByCity(ctx context.Context, city string) string {
	if !strings.Contains(city, ",") {
		city += ",IN"
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	var w currentWeather
	if err := c.getJSON(ctx, "/data/2.5/weather", q, &w); err != nil {
		slog.Warn("Weather lookup failed", "city", city, "error", err)
		return fmt.Sprintf("Error retrieving weather data: %v", err)
	}
	if err := w.validate(); err != nil {
		return fmt.Sprintf("Error retrieving weather data: %v", err)
	}

	name := w.Name
	if name == "" {
		name = titleCase(city)
	}
	return fmt.Sprintf("Weather in %s:\n%s", name, w.details())
}

// ByCoordinates reports the current weather at lat/lon, naming the place by
// reverse geocoding. Both lookups run concurrently.
func (c *Client) ByCoordinates(ctx context.Context, lat, lon string) string {
	var (
		w        currentWeather
		location string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := url.Values{}
		q.Set("lat", lat)
		q.Set("lon", lon)
		q.Set("appid", c.apiKey)
		q.Set("units", "metric")
		if err := c.getJSON(gctx, "/data/2.5/weather", q, &w); err != nil {
			return err
		}
		return w.validate()
	})
	g.Go(func() error {
		location = c.ReverseGeocode(gctx, lat, lon)
		return nil
	})
	if err := g.Wait(); err != nil {
		slog.Warn("Weather lookup by coordinates failed", "lat", lat, "lon", lon, "error", err)
		return fmt.Sprintf("Error retrieving weather data by coordinates: %v", err)
	}

	return fmt.Sprintf("Weather in %s\n%s", location, w.details())
}

// ReverseGeocode names the place at lat/lon as "city, state, country",
// omitting empty parts. It never fails.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon string) string {
	unknown := fmt.Sprintf("Unknown Location (Lat: %s, Lon: %s)", lat, lon)

	q := url.Values{}
	q.Set("lat", lat)
	q.Set("lon", lon)
	q.Set("limit", "1")
	q.Set("appid", c.apiKey)

	var places []geoPlace
	if err := c.getJSON(ctx, "/geo/1.0/reverse", q, &places); err != nil {
		slog.Warn("Reverse geocoding failed", "lat", lat, "lon", lon, "error", err)
		return unknown
	}
	if len(places) == 0 {
		slog.Info("No reverse geocoding result, using coordinates", "lat", lat, "lon", lon)
		return unknown
	}

	var parts []string
	for _, p := range []string{places[0].Name, places[0].State, places[0].Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return unknown
	}
	return strings.Join(parts, ", ")
}

func (w *currentWeather) validate() error {
	if len(w.Weather) == 0 {
		return errors.New("response has no weather conditions")
	}
	return nil
}

func (w *currentWeather) details() string {
	return fmt.Sprintf("Description: %s\nTemperature: %s°C\nHumidity: %s%%\nWind Speed: %s m/s",
		w.Weather[0].Description, w.Main.Temp, w.Main.Humidity, w.Wind.Speed)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// titleCase upper-cases the first letter of every run of letters and
// lower-cases the rest, so "new delhi,IN" becomes "New Delhi,In".
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

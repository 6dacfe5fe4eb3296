// Package chat decides whether a free-text message is a weather question or
// something for the farming advisor.
package chat

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

var weatherCityPattern = regexp.MustCompile(`weather in ([\w\s,]+)`)

type Router struct {
	weather     WeatherReporter
	advisor     Advisor
	defaultCity string
}

func New(w WeatherReporter, a Advisor, defaultCity string) *Router {
	return &Router{weather: w, advisor: a, defaultCity: defaultCity}
}

// Respond answers message. Coordinates are only consulted for weather
// questions that name no city, and only when both are present.
func (r *Router) Respond(ctx context.Context, message, lat, lon string) string {
	lower := strings.ToLower(message)
	if !strings.Contains(lower, "weather") {
		return r.advisor.FarmerAdvice(ctx, message)
	}

	if m := weatherCityPattern.FindStringSubmatch(lower); m != nil {
		city := strings.TrimSpace(m[1])
		slog.Debug("Routing chat to weather by city", "city", city)
		return r.weather.ByCity(ctx, city)
	}
	if lat != "" && lon != "" {
		return r.weather.ByCoordinates(ctx, lat, lon)
	}
	return r.weather.ByCity(ctx, r.defaultCity)
}

// Weather answers a plain weather request, by coordinates when both are set.
func (r *Router) Weather(ctx context.Context, lat, lon string) string {
	if lat != "" && lon != "" {
		return r.weather.ByCoordinates(ctx, lat, lon)
	}
	return r.weather.ByCity(ctx, r.defaultCity)
}

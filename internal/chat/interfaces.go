package chat

import "context"

// WeatherReporter abstracts the weather lookups.
type WeatherReporter interface {
	ByCity(ctx context.Context, city string) string
	ByCoordinates(ctx context.Context, lat, lon string) string
}

// Advisor abstracts the generative farmer Q&A.
type Advisor interface {
	FarmerAdvice(ctx context.Context, query string) string
}

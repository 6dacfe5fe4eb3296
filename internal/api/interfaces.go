package api

import (
	"context"

	"github.com/pauljones0/farmassist-api/internal/models"
)

// PriceSource looks up market prices; it always answers.
type PriceSource interface {
	GetMarketPrices(ctx context.Context, cropName string) []models.PriceRecord
}

// ChatResponder answers free-text messages and plain weather requests.
type ChatResponder interface {
	Respond(ctx context.Context, message, lat, lon string) string
	Weather(ctx context.Context, lat, lon string) string
}

// AdviceGiver produces the crop rotation and fertilizer write-ups.
type AdviceGiver interface {
	CropRotationAdvice(ctx context.Context, query string) string
	FertilizerRecommendation(ctx context.Context, query string) string
}

type SchemeSource interface {
	ScrapeSchemes(ctx context.Context) ([]models.Scheme, error)
}

type PestIdentifier interface {
	Identify(ctx context.Context, image []byte) ([]models.PestSuggestion, error)
}

package market

import (
	"strings"

	"github.com/pauljones0/farmassist-api/internal/models"
)

// mockPrices is served when the live source cannot be scraped. Read only.
var mockPrices = []models.PriceRecord{
	{Location: "Delhi", Crop: "Wheat", MinPrice: "2000", ModalPrice: "2200", MaxPrice: "2400"},
	{Location: "Guntur", Crop: "Wheat", MinPrice: "2100", ModalPrice: "2300", MaxPrice: "2500"},
	{Location: "Mumbai", Crop: "Wheat", MinPrice: "2050", ModalPrice: "2250", MaxPrice: "2450"},
}

// FallbackPrices returns the mock rows whose crop equals cropName, ignoring
// case. Unlike live rows this is an exact match, not a substring one.
func FallbackPrices(cropName string) []models.PriceRecord {
	out := []models.PriceRecord{}
	for _, p := range mockPrices {
		if strings.EqualFold(p.Crop, cropName) {
			out = append(out, p)
		}
	}
	return out
}

package scraper

import (
	"encoding/json"
	"fmt"
	"os"
)

type SelectorConfig struct {
	MarketPrices MarketSelectors `json:"market_prices"`
	Schemes      SchemeSelectors `json:"schemes"`
}

type MarketSelectors struct {
	Table        string `json:"table"`         // e.g., "table"
	CropInput    string `json:"crop_input"`    // e.g., "#commodity-select"
	SubmitButton string `json:"submit_button"` // e.g., "#submit-filter"
}

type SchemeSelectors struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// LoadSelectors loads the selector configuration from the specified JSON file.
func LoadSelectors(path string) (SelectorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SelectorConfig{}, fmt.Errorf("failed to read selector config file: %w", err)
	}

	return LoadSelectorsFromBytes(data)
}

// LoadSelectorsFromBytes parses selector configuration from raw JSON bytes.
// Fields left empty in the JSON keep their default value.
func LoadSelectorsFromBytes(data []byte) (SelectorConfig, error) {
	config := DefaultSelectors()
	if err := json.Unmarshal(data, &config); err != nil {
		return SelectorConfig{}, fmt.Errorf("failed to parse selector config JSON: %w", err)
	}
	config.fillDefaults()

	return config, nil
}

// DefaultSelectors returns the fallback configuration if no JSON file is loaded.
func DefaultSelectors() SelectorConfig {
	return SelectorConfig{
		MarketPrices: MarketSelectors{
			Table:        "table",
			CropInput:    "#commodity-select",
			SubmitButton: "#submit-filter",
		},
		Schemes: SchemeSelectors{
			Title:       "h3",
			Description: "p",
		},
	}
}

func (c *SelectorConfig) fillDefaults() {
	d := DefaultSelectors()
	if c.MarketPrices.Table == "" {
		c.MarketPrices.Table = d.MarketPrices.Table
	}
	if c.MarketPrices.CropInput == "" {
		c.MarketPrices.CropInput = d.MarketPrices.CropInput
	}
	if c.MarketPrices.SubmitButton == "" {
		c.MarketPrices.SubmitButton = d.MarketPrices.SubmitButton
	}
	if c.Schemes.Title == "" {
		c.Schemes.Title = d.Schemes.Title
	}
	if c.Schemes.Description == "" {
		c.Schemes.Description = d.Schemes.Description
	}
}

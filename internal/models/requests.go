package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ChatRequest is accepted as JSON on /api/chat and as form fields on /chat.
type ChatRequest struct {
	Message string     `json:"message"`
	Lat     Coordinate `json:"lat,omitempty"`
	Lon     Coordinate `json:"lon,omitempty"`
}

// Coordinate holds a latitude or longitude exactly as the client sent it.
// Browsers send numbers, forms send strings; both are accepted.
type Coordinate string

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Coordinate(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("coordinate must be a number or string: %w", err)
	}
	*c = Coordinate(n.String())
	return nil
}

// AdviceRequest feeds the crop rotation and fertilizer prompts.
type AdviceRequest struct {
	Message string `json:"message"`
}

// Scheme is a government agricultural scheme scraped from the ministry site.
type Scheme struct {
	Name        string `json:"scheme_name" validate:"required"`
	Description string `json:"description"`
}

// PestSuggestion is a single Plant.id identification candidate.
type PestSuggestion struct {
	PlantName   string  `json:"plant_name"`
	Probability float64 `json:"probability"`
}

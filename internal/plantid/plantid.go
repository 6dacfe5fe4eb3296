// Package plantid identifies crop diseases and pests from photos using the
// Plant.id API.
package plantid

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pauljones0/farmassist-api/internal/models"
)

const (
	noPestsMessage = "No pests detected."
	unknownPest    = "Unknown Pest"
)

type Client struct {
	apiURL      string
	apiKey      string
	client      *http.Client
	rateLimiter *rate.Limiter
}

func New(apiURL, apiKey string, timeout time.Duration, rps float64) *Client {
	return &Client{
		apiURL:      apiURL,
		apiKey:      apiKey,
		client:      &http.Client{Timeout: timeout},
		rateLimiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

type identifyRequest struct {
	Images       []string `json:"images"`
	Modifiers    []string `json:"modifiers"`
	PlantDetails []string `json:"plant_details"`
}

type identifyResponse struct {
	Suggestions []struct {
		PlantName   *string  `json:"plant_name"`
		Probability *float64 `json:"probability"`
	} `json:"suggestions"`
}

// Identify sends image to Plant.id and returns its suggestions.
func (c *Client) Identify(ctx context.Context, image []byte) ([]models.PestSuggestion, error) {
	payload := identifyRequest{
		Images:       []string{base64.StdEncoding.EncodeToString(image)},
		Modifiers:    []string{"crops_fast"},
		PlantDetails: []string{"diseases"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var result identifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	suggestions := make([]models.PestSuggestion, 0, len(result.Suggestions))
	for _, s := range result.Suggestions {
		ps := models.PestSuggestion{PlantName: unknownPest}
		if s.PlantName != nil {
			ps.PlantName = *s.PlantName
		}
		if s.Probability != nil {
			ps.Probability = *s.Probability
		}
		suggestions = append(suggestions, ps)
	}
	return suggestions, nil
}

// FormatResults renders suggestions as the HTML fragment shown to users.
func FormatResults(suggestions []models.PestSuggestion) string {
	if len(suggestions) == 0 {
		return noPestsMessage
	}

	var b strings.Builder
	b.WriteString("<h2>Pest Detection Results:</h2><ul>")
	for _, s := range suggestions {
		fmt.Fprintf(&b, "<li>%s: %.2f%% confidence</li>", html.EscapeString(s.PlantName), s.Probability*100)
	}
	b.WriteString("</ul>")
	return b.String()
}

// Package api exposes the FarmAssist HTTP endpoints.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/pauljones0/farmassist-api/internal/models"
	"github.com/pauljones0/farmassist-api/internal/plantid"
	"github.com/pauljones0/farmassist-api/internal/validator"
)

const maxImageBytes = 10 << 20

type Handlers struct {
	prices    PriceSource
	chat      ChatResponder
	advice    AdviceGiver
	schemes   SchemeSource
	pests     PestIdentifier
	validator *validator.Validator
}

func NewHandlers(p PriceSource, c ChatResponder, a AdviceGiver, s SchemeSource, pi PestIdentifier) *Handlers {
	return &Handlers{
		prices:    p,
		chat:      c,
		advice:    a,
		schemes:   s,
		pests:     pi,
		validator: validator.New(),
	}
}

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to FarmAssist API"})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// MarketPrices serves both the pre-flight and the lookup. Any unreadable body
// counts as a missing crop.
func (h *Handlers) MarketPrices(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		writeJSON(w, http.StatusOK, struct{}{})
		return
	case http.MethodPost:
	default:
		w.Header().Set("Allow", "POST, OPTIONS")
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var q models.CropQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		slog.Debug("Unreadable market price body", "error", err)
		q = models.CropQuery{}
	}
	q.Crop = strings.TrimSpace(q.Crop)

	if err := h.validator.ValidateStruct(q); err != nil {
		if field, ok := validator.MissingField(err); ok && field == "crop" {
			writeError(w, http.StatusBadRequest, "Crop name is required")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	prices := h.prices.GetMarketPrices(r.Context(), q.Crop)
	writeJSON(w, http.StatusOK, map[string]any{"prices": prices})
}

func (h *Handlers) Weather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeText(w, http.StatusOK, h.chat.Weather(r.Context(), q.Get("lat"), q.Get("lon")))
}

// Chat is the form-encoded chat used by the web page.
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	reply := h.chat.Respond(r.Context(), r.FormValue("message"), r.FormValue("lat"), r.FormValue("lon"))
	writeText(w, http.StatusOK, reply)
}

// APIChat is the JSON chat used by the mobile client.
func (h *Handlers) APIChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	reply := h.chat.Respond(r.Context(), req.Message, string(req.Lat), string(req.Lon))
	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

func (h *Handlers) CropRotation(w http.ResponseWriter, r *http.Request) {
	h.advise(w, r, h.advice.CropRotationAdvice)
}

func (h *Handlers) Fertilizer(w http.ResponseWriter, r *http.Request) {
	h.advise(w, r, h.advice.FertilizerRecommendation)
}

// advise answers in the encoding the request came in: JSON for JSON bodies,
// plain text for forms.
func (h *Handlers) advise(w http.ResponseWriter, r *http.Request, ask func(ctx context.Context, query string) string) {
	if !isJSON(r) {
		writeText(w, http.StatusOK, ask(r.Context(), r.FormValue("message")))
		return
	}

	var req models.AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": ask(r.Context(), req.Message)})
}

// Subsidy reports scrape failures inside the list, keeping the 200 shape
// existing clients parse.
func (h *Handlers) Subsidy(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.schemes.ScrapeSchemes(r.Context())
	if err != nil {
		slog.Warn("Scheme scrape failed", "error", err)
		writeJSON(w, http.StatusOK, map[string]any{
			"agricultural_schemes": []map[string]string{
				{"error": fmt.Sprintf("Failed to fetch schemes: %v", err)},
			},
		})
		return
	}
	if schemes == nil {
		schemes = []models.Scheme{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"agricultural_schemes": schemes})
}

func (h *Handlers) VideoTutorials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"video_tutorials": models.VideoTutorials})
}

func (h *Handlers) DetectPest(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Image too large")
			return
		}
		writeError(w, http.StatusBadRequest, "No image uploaded")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image uploaded")
		return
	}

	suggestions, err := h.pests.Identify(r.Context(), image)
	if err != nil {
		slog.Warn("Plant.id request failed", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error calling Plant.id API: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": plantid.FormatResults(suggestions)})
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

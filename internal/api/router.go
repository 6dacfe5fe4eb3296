package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter wires every endpoint. /market_prices only accepts the configured
// front-end origin; all other routes are open to any origin.
func NewRouter(h *Handlers, allowedOrigin string) http.Handler {
	marketCORS := cors.New(cors.Options{
		AllowedOrigins:     []string{allowedOrigin},
		AllowedMethods:     []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type"},
		OptionsPassthrough: true,
	})

	open := mux.NewRouter()
	open.HandleFunc("/", h.Index).Methods(http.MethodGet)
	open.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	open.HandleFunc("/weather", h.Weather).Methods(http.MethodGet)
	open.HandleFunc("/chat", h.Chat).Methods(http.MethodPost)
	open.HandleFunc("/api/chat", h.APIChat).Methods(http.MethodPost)
	open.HandleFunc("/crop_rotation", h.CropRotation).Methods(http.MethodPost)
	open.HandleFunc("/fertilizer", h.Fertilizer).Methods(http.MethodPost)
	open.HandleFunc("/subsidy", h.Subsidy).Methods(http.MethodGet)
	open.HandleFunc("/video_tutorials", h.VideoTutorials).Methods(http.MethodGet)
	open.HandleFunc("/detect_pest", h.DetectPest).Methods(http.MethodPost)

	root := mux.NewRouter()
	root.Use(LoggingMiddleware)
	root.Handle("/market_prices", marketCORS.Handler(http.HandlerFunc(h.MarketPrices)))
	root.PathPrefix("/").Handler(cors.AllowAll().Handler(open))

	return root
}

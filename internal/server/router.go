package server

import (
	"esports-companion/internal/metrics"
	"esports-companion/internal/middleware"
	"esports-companion/internal/rpc"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// NewRouter mounts the connect service, /metrics and /healthz behind the
// request id, recovery and CORS middleware.
func NewRouter(companion *CompanionServer, logger zerolog.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.RequestID(logger), middleware.Recover)

	path, handler := rpc.NewCompanionServiceHandler(companion)
	router.PathPrefix(path).Handler(handler)
	router.Handle("/metrics", metrics.NewMetricsHandler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", healthz).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})
	return c.Handler(router)
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oakhall/teambot/internal/api/handler"
	"github.com/oakhall/teambot/internal/dispatch"
	"github.com/oakhall/teambot/internal/middleware"
	"github.com/oakhall/teambot/internal/perms"
	"github.com/oakhall/teambot/internal/registry"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger     *slog.Logger
	Registry   *registry.Registry
	Gate       *perms.Gate
	Dispatcher *dispatch.Dispatcher
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	teamHandler := handler.NewTeamHandler(cfg.Registry, cfg.Gate)
	invokeHandler := handler.NewInvokeHandler(cfg.Dispatcher)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler))
	api.Use(middleware.WithRequestID)
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/teams", teamHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/teams/{channel}", teamHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/guilds/{guild}/host-role", teamHandler.HostRole).Methods(http.MethodGet)
	api.HandleFunc("/invoke", invokeHandler.Invoke).Methods(http.MethodPost)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

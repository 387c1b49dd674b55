package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/leaguebot-go/internal/api/handler"
	"github.com/mcoot/leaguebot-go/internal/api/middleware"
	"github.com/mcoot/leaguebot-go/internal/services/freeagent"
	"github.com/mcoot/leaguebot-go/internal/services/rolesync"
	"github.com/mcoot/leaguebot-go/internal/services/verification"
	"github.com/mcoot/leaguebot-go/internal/storage"
)

// RouterConfig holds the settings the router needs beyond its handlers.
type RouterConfig struct {
	// AuthToken is the static bearer token for the API. Empty disables auth.
	AuthToken string
}

// NewRouter builds the HTTP routing table for the API
func NewRouter(
	store storage.Storage,
	verificationService *verification.Service,
	reconciler *freeagent.Reconciler,
	rolesyncService *rolesync.Service,
	cfg RouterConfig,
	logger *slog.Logger,
) http.Handler {
	players := handler.NewPlayerHandler(store, verificationService, reconciler, logger)
	admin := handler.NewAdminHandler(reconciler, rolesyncService, logger)

	r := mux.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))

	r.HandleFunc("/api/v1/health", healthHandler).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.Use(middleware.RequireToken(cfg.AuthToken))

	v1.HandleFunc("/players/{playerId}", players.Get).Methods(http.MethodGet)
	v1.HandleFunc("/players/{playerId}/verify", players.Verify).Methods(http.MethodPost)
	v1.HandleFunc("/players/{playerId}/free-agent/renew", players.RenewFreeAgent).Methods(http.MethodPost)
	v1.HandleFunc("/players/{playerId}/free-agent/toggle", players.ToggleFreeAgent).Methods(http.MethodPost)

	v1.HandleFunc("/sweep", admin.Sweep).Methods(http.MethodPost)
	v1.HandleFunc("/roles/sync", admin.SyncRoles).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

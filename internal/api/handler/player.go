package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/leaguebot-go/internal/api/apierr"
	"github.com/mcoot/leaguebot-go/internal/api/request"
	"github.com/mcoot/leaguebot-go/internal/api/response"
	"github.com/mcoot/leaguebot-go/internal/model"
	"github.com/mcoot/leaguebot-go/internal/services/freeagent"
	"github.com/mcoot/leaguebot-go/internal/services/verification"
	"github.com/mcoot/leaguebot-go/internal/storage"
)

// PlayerHandler serves player lookup, verification and free-agent
// lifecycle endpoints.
type PlayerHandler struct {
	storage      storage.Storage
	verification *verification.Service
	reconciler   *freeagent.Reconciler
	logger       *slog.Logger
}

// NewPlayerHandler creates a player handler
func NewPlayerHandler(
	storage storage.Storage,
	verificationService *verification.Service,
	reconciler *freeagent.Reconciler,
	logger *slog.Logger,
) *PlayerHandler {
	return &PlayerHandler{
		storage:      storage,
		verification: verificationService,
		reconciler:   reconciler,
		logger:       logger,
	}
}

// Get handles GET /api/v1/players/{playerId}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := playerID(r)

	player, err := h.storage.GetPlayer(r.Context(), id)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, response.FromPlayer(player))
}

// Verify handles POST /api/v1/players/{playerId}/verify
func (h *PlayerHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id := playerID(r)

	var req request.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Tag == "" {
		response.WriteError(w, apierr.NewInvalidRequestError("tag is required"))
		return
	}

	player, err := h.verification.Verify(r.Context(), id, req.Tag)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, response.FromPlayer(player))
}

// RenewFreeAgent handles POST /api/v1/players/{playerId}/free-agent/renew
func (h *PlayerHandler) RenewFreeAgent(w http.ResponseWriter, r *http.Request) {
	id := playerID(r)

	player, err := h.reconciler.Renew(r.Context(), id)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, response.FromPlayer(player))
}

// ToggleFreeAgent handles POST /api/v1/players/{playerId}/free-agent/toggle
func (h *PlayerHandler) ToggleFreeAgent(w http.ResponseWriter, r *http.Request) {
	id := playerID(r)

	player, err := h.reconciler.Toggle(r.Context(), id)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, response.FromPlayer(player))
}

func playerID(r *http.Request) model.PlayerID {
	return model.PlayerID(mux.Vars(r)["playerId"])
}

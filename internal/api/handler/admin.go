package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/leaguebot-go/internal/api/response"
	"github.com/mcoot/leaguebot-go/internal/services/freeagent"
	"github.com/mcoot/leaguebot-go/internal/services/rolesync"
)

// AdminHandler serves operational endpoints: on-demand sweeps and
// ping-role synchronisation.
type AdminHandler struct {
	reconciler *freeagent.Reconciler
	rolesync   *rolesync.Service
	logger     *slog.Logger
}

// NewAdminHandler creates an admin handler
func NewAdminHandler(
	reconciler *freeagent.Reconciler,
	rolesyncService *rolesync.Service,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		reconciler: reconciler,
		rolesync:   rolesyncService,
		logger:     logger,
	}
}

// Sweep handles POST /api/v1/sweep
func (h *AdminHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	if err := h.reconciler.Sweep(r.Context()); err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteNoContent(w)
}

// SyncRoles handles POST /api/v1/roles/sync
func (h *AdminHandler) SyncRoles(w http.ResponseWriter, r *http.Request) {
	report, err := h.rolesync.SyncPingRoles(r.Context())
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, response.FromRoleSyncReport(report))
}

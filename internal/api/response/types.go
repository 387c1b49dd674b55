package response

import (
	"time"

	"github.com/mcoot/leaguebot-go/internal/model"
	"github.com/mcoot/leaguebot-go/internal/services/rolesync"
)

// ErrorResponse is the body for all error statuses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Player is the wire representation of a league player.
type Player struct {
	ID                 string     `json:"id"`
	DisplayName        string     `json:"displayName"`
	GameTag            string     `json:"gameTag"`
	Verified           bool       `json:"verified"`
	TeamID             *string    `json:"teamId,omitempty"`
	IsFreeAgent        bool       `json:"isFreeAgent"`
	FreeAgentExpiresAt *time.Time `json:"freeAgentExpiresAt,omitempty"`
}

// FromPlayer converts a model player into its wire form.
func FromPlayer(p *model.Player) Player {
	out := Player{
		ID:                 string(p.ID),
		DisplayName:        p.DisplayName,
		GameTag:            p.GameTag,
		Verified:           p.Verified,
		IsFreeAgent:        p.IsFreeAgent,
		FreeAgentExpiresAt: p.FreeAgentExpiresAt,
	}
	if p.TeamID != nil {
		teamID := string(*p.TeamID)
		out.TeamID = &teamID
	}
	return out
}

// RoleSyncReport summarises a ping-role sync run.
type RoleSyncReport struct {
	TeamsProcessed int             `json:"teamsProcessed"`
	MembersChecked int             `json:"membersChecked"`
	RolesGranted   int             `json:"rolesGranted"`
	Errors         []RoleSyncError `json:"errors"`
}

// RoleSyncError is one member-level failure from a sync run.
type RoleSyncError struct {
	TeamID   string `json:"teamId"`
	PlayerID string `json:"playerId"`
	Error    string `json:"error"`
}

// FromRoleSyncReport converts a sync report into its wire form.
func FromRoleSyncReport(r *rolesync.Report) RoleSyncReport {
	out := RoleSyncReport{
		TeamsProcessed: r.TeamsProcessed,
		MembersChecked: r.MembersChecked,
		RolesGranted:   r.RolesGranted,
		Errors:         make([]RoleSyncError, 0, len(r.Errors)),
	}
	for _, e := range r.Errors {
		out.Errors = append(out.Errors, RoleSyncError{
			TeamID:   string(e.TeamID),
			PlayerID: string(e.PlayerID),
			Error:    e.Err.Error(),
		})
	}
	return out
}

package storage

import (
	"context"

	"github.com/mcoot/leaguebot-go/internal/model"
)

// Storage defines the interface for data persistence.
//
// Saves overwrite the full record; no partial-field update contract is
// assumed. ListPlayers is a sequential full scan, which is the scalability
// ceiling of the sweep (acceptable at league scale).
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// Team operations
	SaveTeam(ctx context.Context, team *model.Team) error
	GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error)
	ListTeams(ctx context.Context) ([]*model.Team, error)
}

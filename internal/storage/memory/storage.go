package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/leaguebot-go/internal/model"
	"github.com/mcoot/leaguebot-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players map[model.PlayerID]*model.Player
	teams   map[model.TeamID]*model.Team
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.PlayerID]*model.Player),
		teams:   make(map[model.TeamID]*model.Team),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = clonePlayer(player)
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clonePlayer(player), nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, clonePlayer(p))
	}
	// Deterministic order for the sweep and for tests
	sort.Slice(players, func(i, j int) bool {
		return players[i].ID < players[j].ID
	})
	return players, nil
}

// clonePlayer copies a player including pointer field targets, so the
// stored snapshot and the caller's record never share memory
func clonePlayer(player *model.Player) *model.Player {
	cp := *player
	if player.TeamID != nil {
		teamID := *player.TeamID
		cp.TeamID = &teamID
	}
	if player.FreeAgentExpiresAt != nil {
		expiresAt := *player.FreeAgentExpiresAt
		cp.FreeAgentExpiresAt = &expiresAt
	}
	if player.FreeAgentMessageID != nil {
		messageID := *player.FreeAgentMessageID
		cp.FreeAgentMessageID = &messageID
	}
	return &cp
}

// Team operations

func (s *Storage) SaveTeam(ctx context.Context, team *model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *team
	cp.Members = append([]model.TeamMember(nil), team.Members...)
	s.teams[team.ID] = &cp
	return nil
}

func (s *Storage) GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team, ok := s.teams[id]
	if !ok {
		return nil, model.ErrTeamNotFound
	}
	cp := *team
	cp.Members = append([]model.TeamMember(nil), team.Members...)
	return &cp, nil
}

func (s *Storage) ListTeams(ctx context.Context) ([]*model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := make([]*model.Team, 0, len(s.teams))
	for _, t := range s.teams {
		cp := *t
		cp.Members = append([]model.TeamMember(nil), t.Members...)
		teams = append(teams, &cp)
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].ID < teams[j].ID
	})
	return teams, nil
}

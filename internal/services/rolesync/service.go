package rolesync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/leaguebot-go/internal/chat"
	"github.com/mcoot/leaguebot-go/internal/model"
	"github.com/mcoot/leaguebot-go/internal/storage"
)

// Config holds role sync settings
type Config struct {
	// PingRoleID is the marker role granted to every roster member
	PingRoleID model.RoleID
}

// MemberError is one roster member whose role grant failed
type MemberError struct {
	TeamID   model.TeamID
	PlayerID model.PlayerID
	Err      error
}

// Report summarizes one role sync pass
type Report struct {
	TeamsProcessed int
	MembersChecked int
	RolesGranted   int
	Errors         []MemberError
}

// Service grants the marker role across all team rosters
type Service struct {
	storage storage.Storage
	chat    chat.Client
	cfg     Config
	logger  *slog.Logger
}

// New creates a new role sync service
func New(storage storage.Storage, chatClient chat.Client, cfg Config, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		chat:    chatClient,
		cfg:     cfg,
		logger:  logger,
	}
}

// SyncPingRoles ensures every roster member holds the marker role.
// A member already holding it is a no-op. Individual failures are
// collected in the report and never abort the batch.
func (s *Service) SyncPingRoles(ctx context.Context) (*Report, error) {
	teams, err := s.storage.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}

	report := &Report{}
	for _, team := range teams {
		// An empty roster skips this team only, never the rest of the pass
		if len(team.Members) == 0 {
			continue
		}
		report.TeamsProcessed++

		for _, member := range team.Members {
			report.MembersChecked++
			granted, err := s.ensureRole(ctx, member.PlayerID)
			if err != nil {
				report.Errors = append(report.Errors, MemberError{
					TeamID:   team.ID,
					PlayerID: member.PlayerID,
					Err:      err,
				})
				s.logger.Warn("role grant failed",
					slog.String("team", string(team.ID)),
					slog.String("player", string(member.PlayerID)),
					slog.String("error", err.Error()))
				continue
			}
			if granted {
				report.RolesGranted++
			}
		}
	}
	return report, nil
}

// ensureRole grants the marker role if the member does not already hold
// it, reporting whether a grant happened
func (s *Service) ensureRole(ctx context.Context, id model.PlayerID) (bool, error) {
	roles, err := s.chat.MemberRoles(ctx, id)
	if err != nil {
		return false, err
	}
	for _, role := range roles {
		if role == s.cfg.PingRoleID {
			return false, nil
		}
	}
	if err := s.chat.AddMemberRole(ctx, id, s.cfg.PingRoleID); err != nil {
		return false, err
	}
	return true, nil
}

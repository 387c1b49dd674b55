package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/leaguebot-go/internal/chat"
	"github.com/mcoot/leaguebot-go/internal/dependencies/clock"
	"github.com/mcoot/leaguebot-go/internal/model"
	"github.com/mcoot/leaguebot-go/internal/stats"
	"github.com/mcoot/leaguebot-go/internal/storage"
)

// Config holds verification service settings
type Config struct {
	// StaffLogChannelID receives a notice on each successful verification
	// (optional; empty disables the notice)
	StaffLogChannelID model.ChannelID
}

// Service links platform users to their external game profiles
type Service struct {
	storage storage.Storage
	stats   stats.Provider
	chat    chat.Client
	clock   clock.Clock
	cfg     Config
	logger  *slog.Logger
}

// New creates a new verification service
func New(
	storage storage.Storage,
	statsProvider stats.Provider,
	chatClient chat.Client,
	clock clock.Clock,
	cfg Config,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage: storage,
		stats:   statsProvider,
		chat:    chatClient,
		clock:   clock,
		cfg:     cfg,
		logger:  logger,
	}
}

// NormalizeTag uppercases a game tag and ensures the leading '#'
func NormalizeTag(raw string) string {
	tag := strings.ToUpper(strings.TrimSpace(raw))
	if tag == "" {
		return ""
	}
	if !strings.HasPrefix(tag, "#") {
		tag = "#" + tag
	}
	return tag
}

// Verify checks a tag against the stats provider and records it on the
// player, creating the record on first verification. Unlike the
// free-agent path, the profile lookup here is required: an unknown tag
// fails with model.ErrProfileNotFound.
func (s *Service) Verify(ctx context.Context, id model.PlayerID, rawTag string) (*model.Player, error) {
	tag := NormalizeTag(rawTag)
	if tag == "" {
		return nil, model.ErrProfileNotFound
	}

	profile, err := s.stats.FetchProfile(ctx, tag)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("verifying tag %s: %w", tag, err)
	}

	now := s.clock.Now()

	player, err := s.storage.GetPlayer(ctx, id)
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		player = &model.Player{ID: id, CreatedAt: now}
	case err != nil:
		return nil, err
	}

	player.GameTag = tag
	player.Verified = true
	if player.DisplayName == "" {
		player.DisplayName = profile.Name
	}
	player.UpdatedAt = now

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.sendStaffLog(ctx, player)
	return player, nil
}

// IsVerified recomputes and persists the verified flag from the presence
// of a game tag. An unknown player is simply not verified.
func (s *Service) IsVerified(ctx context.Context, id model.PlayerID) (bool, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if errors.Is(err, model.ErrPlayerNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	verified := player.GameTag != ""
	if player.Verified != verified {
		player.Verified = verified
		player.UpdatedAt = s.clock.Now()
		if err := s.storage.SavePlayer(ctx, player); err != nil {
			return false, err
		}
	}
	return verified, nil
}

// sendStaffLog posts a best-effort notice to the staff log channel
func (s *Service) sendStaffLog(ctx context.Context, player *model.Player) {
	if s.cfg.StaffLogChannelID == "" {
		return
	}
	payload := chat.MessagePayload{
		Embed: chat.Embed{
			Title:       "Player verified",
			Description: fmt.Sprintf("<@%s> verified with the tag **%s**.", player.ID, player.GameTag),
			Color:       0x2ECC71,
		},
	}
	if _, err := s.chat.SendMessage(ctx, s.cfg.StaffLogChannelID, payload); err != nil {
		s.logger.Warn("could not send staff log",
			slog.String("player", string(player.ID)),
			slog.String("error", err.Error()))
	}
}

package freeagent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/leaguebot-go/internal/chat"
	"github.com/mcoot/leaguebot-go/internal/dependencies/clock"
	"github.com/mcoot/leaguebot-go/internal/model"
	"github.com/mcoot/leaguebot-go/internal/services/advert"
	"github.com/mcoot/leaguebot-go/internal/stats"
	"github.com/mcoot/leaguebot-go/internal/storage"
)

// Advertisement lifetimes. Manual renewal from the expiry notice grants a
// longer window than the self-service toggle; the asymmetry is intentional.
const (
	DefaultRenewWindow  = 14 * 24 * time.Hour
	DefaultToggleWindow = 7 * 24 * time.Hour
)

// Config holds reconciler settings
type Config struct {
	// ChannelID is the public advertisement channel
	ChannelID model.ChannelID
	// RenewWindow is the advertisement lifetime granted by Renew
	RenewWindow time.Duration
	// ToggleWindow is the advertisement lifetime granted by Toggle
	ToggleWindow time.Duration
}

// DefaultConfig returns default reconciler settings (channel must still
// be set by the caller)
func DefaultConfig() Config {
	return Config{
		RenewWindow:  DefaultRenewWindow,
		ToggleWindow: DefaultToggleWindow,
	}
}

// Reconciler keeps persisted free-agent state and the public
// advertisement message in agreement.
//
// Operations are designed for a single sequential caller: manual triggers
// are rate-limited upstream and the sweep runs on one timer. Running
// multiple reconciler processes against the same records is not safe
// without adding per-record mutual exclusion on top of the store.
type Reconciler struct {
	storage storage.Storage
	chat    chat.Client
	stats   stats.Provider
	clock   clock.Clock
	cfg     Config
	logger  *slog.Logger
}

// NewReconciler creates a new Reconciler
func NewReconciler(
	storage storage.Storage,
	chatClient chat.Client,
	statsProvider stats.Provider,
	clock clock.Clock,
	cfg Config,
	logger *slog.Logger,
) *Reconciler {
	if cfg.RenewWindow == 0 {
		cfg.RenewWindow = DefaultRenewWindow
	}
	if cfg.ToggleWindow == 0 {
		cfg.ToggleWindow = DefaultToggleWindow
	}
	return &Reconciler{
		storage: storage,
		chat:    chatClient,
		stats:   statsProvider,
		clock:   clock,
		cfg:     cfg,
		logger:  logger,
	}
}

// Renew activates free-agent status from the expiry-notice renewal
// button. The player must not be on a team and must not already be an
// active free agent.
func (r *Reconciler) Renew(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	player, err := r.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if player.OnTeam() {
		return nil, model.ErrAlreadyAffiliated
	}
	if player.IsFreeAgent {
		return nil, model.ErrAlreadyFreeAgent
	}

	return r.activate(ctx, player, r.cfg.RenewWindow)
}

// Toggle flips free-agent status from the self-service button.
// Deactivation tears down the advertisement best-effort; activation is
// the same publish sequence as Renew with the shorter toggle window.
func (r *Reconciler) Toggle(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	player, err := r.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if !player.IsFreeAgent {
		return r.activate(ctx, player, r.cfg.ToggleWindow)
	}

	channel, err := r.advertisementChannel(ctx)
	if err != nil {
		return nil, err
	}

	// Deactivate: the state transition completes even if teardown of the
	// platform-owned message fails
	r.deleteAdvertisement(ctx, channel, player)

	player.ClearFreeAgent()
	player.UpdatedAt = r.clock.Now()
	if err := r.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Sweep reconciles every free-agent record against the advertisement
// channel. Per-record failures are logged and do not halt the pass.
func (r *Reconciler) Sweep(ctx context.Context) error {
	channel, err := r.advertisementChannel(ctx)
	if err != nil {
		return err
	}

	players, err := r.storage.ListPlayers(ctx)
	if err != nil {
		return fmt.Errorf("listing players: %w", err)
	}

	for _, player := range players {
		if !player.IsFreeAgent {
			continue
		}
		if err := r.sweepRecord(ctx, channel, player); err != nil {
			r.logger.Error("sweep: record reconciliation failed",
				slog.String("player", string(player.ID)),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

// sweepRecord applies the per-record branches in order, short-circuiting
// at the first match: affiliated teardown, missing-expiry repair,
// expiry teardown, active reconcile.
func (r *Reconciler) sweepRecord(ctx context.Context, channel model.ChannelID, player *model.Player) error {
	now := r.clock.Now()

	// A roster member should never keep an advertisement up
	if player.OnTeam() {
		r.deleteAdvertisement(ctx, channel, player)
		player.ClearFreeAgent()
		player.UpdatedAt = now
		if err := r.storage.SavePlayer(ctx, player); err != nil {
			return err
		}
		r.notify(ctx, player.ID, advert.WithdrawnNotice(player, channel))
		return nil
	}

	// Active without an expiry is an inconsistent state; treat it as
	// expiring right now so the next branch fires in this same pass
	if player.FreeAgentExpiresAt == nil {
		player.FreeAgentExpiresAt = &now
		player.UpdatedAt = now
		if err := r.storage.SavePlayer(ctx, player); err != nil {
			return err
		}
	}

	// Expiry boundary is inclusive: expiresAt == now counts as expired
	if !player.FreeAgentExpiresAt.After(now) {
		r.deleteAdvertisement(ctx, channel, player)
		player.ClearFreeAgent()
		player.UpdatedAt = now
		if err := r.storage.SavePlayer(ctx, player); err != nil {
			return err
		}
		r.notify(ctx, player.ID, advert.ExpiredNotice(player, channel))
		return nil
	}

	// Still active: refresh the advertisement content, recreating the
	// message if the platform lost it
	payload := advert.Advertisement(player, r.lookupStats(ctx, player))

	if player.FreeAgentMessageID != nil {
		msg, err := r.chat.Message(ctx, channel, *player.FreeAgentMessageID)
		if err != nil {
			return fmt.Errorf("fetching advertisement message: %w", err)
		}
		if msg != nil {
			return r.chat.EditMessage(ctx, channel, msg.ID, payload)
		}
		// Deleted out-of-band; fall through to republish
	}

	msgID, err := r.chat.SendMessage(ctx, channel, payload)
	if err != nil {
		return fmt.Errorf("republishing advertisement: %w", err)
	}
	player.FreeAgentMessageID = &msgID
	player.UpdatedAt = now
	return r.storage.SavePlayer(ctx, player)
}

// activate publishes a fresh advertisement and then persists the new
// state. Publish strictly precedes persist: a crash in between leaves an
// orphaned message for a later sweep to clean up, never a record pointing
// at a message that does not exist.
func (r *Reconciler) activate(ctx context.Context, player *model.Player, window time.Duration) (*model.Player, error) {
	channel, err := r.advertisementChannel(ctx)
	if err != nil {
		return nil, err
	}

	payload := advert.Advertisement(player, r.lookupStats(ctx, player))

	msgID, err := r.chat.SendMessage(ctx, channel, payload)
	if err != nil {
		return nil, fmt.Errorf("publishing advertisement: %w", err)
	}

	now := r.clock.Now()
	expiry := now.Add(window)
	player.IsFreeAgent = true
	player.FreeAgentExpiresAt = &expiry
	player.FreeAgentMessageID = &msgID
	player.UpdatedAt = now

	if err := r.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// advertisementChannel resolves the configured channel, failing with
// ErrChannelUnavailable when it is missing or cannot carry messages
func (r *Reconciler) advertisementChannel(ctx context.Context) (model.ChannelID, error) {
	ch, err := r.chat.Channel(ctx, r.cfg.ChannelID)
	if err != nil {
		return "", fmt.Errorf("fetching advertisement channel: %w", err)
	}
	if ch == nil || !ch.Messageable {
		return "", model.ErrChannelUnavailable
	}
	return ch.ID, nil
}

// lookupStats fetches the player's external profile best-effort; any
// failure degrades to nil
func (r *Reconciler) lookupStats(ctx context.Context, player *model.Player) *model.PlayerStats {
	if player.GameTag == "" {
		return nil
	}
	profile, err := r.stats.FetchProfile(ctx, player.GameTag)
	if err != nil {
		r.logger.Warn("stats lookup failed, publishing without profile data",
			slog.String("player", string(player.ID)),
			slog.String("tag", player.GameTag),
			slog.String("error", err.Error()))
		return nil
	}
	return profile
}

// deleteAdvertisement tears down the referenced message best-effort. The
// reference may be stale; a missing message is already the desired state.
func (r *Reconciler) deleteAdvertisement(ctx context.Context, channel model.ChannelID, player *model.Player) {
	if player.FreeAgentMessageID == nil {
		return
	}
	msg, err := r.chat.Message(ctx, channel, *player.FreeAgentMessageID)
	if err != nil {
		r.logger.Warn("could not fetch advertisement for deletion",
			slog.String("player", string(player.ID)),
			slog.String("error", err.Error()))
		return
	}
	if msg == nil {
		return
	}
	if err := r.chat.DeleteMessage(ctx, channel, msg.ID); err != nil {
		r.logger.Warn("could not delete advertisement",
			slog.String("player", string(player.ID)),
			slog.String("message", string(msg.ID)),
			slog.String("error", err.Error()))
	}
}

// notify delivers a DM best-effort; bounced or failed delivery is logged
// and dropped
func (r *Reconciler) notify(ctx context.Context, id model.PlayerID, payload chat.MessagePayload) {
	delivered, err := r.chat.SendDirectMessage(ctx, id, payload)
	if err != nil {
		r.logger.Warn("direct message failed",
			slog.String("player", string(id)),
			slog.String("error", err.Error()))
		return
	}
	if !delivered {
		r.logger.Debug("direct message not deliverable", slog.String("player", string(id)))
	}
}

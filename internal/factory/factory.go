package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/leaguebot-go/internal/chat"
	"github.com/mcoot/leaguebot-go/internal/chat/discord"
	"github.com/mcoot/leaguebot-go/internal/config"
	"github.com/mcoot/leaguebot-go/internal/dependencies/clock"
	"github.com/mcoot/leaguebot-go/internal/model"
	"github.com/mcoot/leaguebot-go/internal/scheduler"
	"github.com/mcoot/leaguebot-go/internal/services/freeagent"
	"github.com/mcoot/leaguebot-go/internal/services/rolesync"
	"github.com/mcoot/leaguebot-go/internal/services/verification"
	"github.com/mcoot/leaguebot-go/internal/stats"
	"github.com/mcoot/leaguebot-go/internal/storage"
	"github.com/mcoot/leaguebot-go/internal/storage/memory"
	redisstorage "github.com/mcoot/leaguebot-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage
	Chat    chat.Client
	Stats   stats.Provider
	Clock   clock.Clock

	Reconciler          *freeagent.Reconciler
	VerificationService *verification.Service
	RolesyncService     *rolesync.Service
}

// New creates a new application with all dependencies wired from config
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	switch cfg.StorageBackend {
	case StorageTypeMemory, "":
		store = memory.New()
	case StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisStore, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid storage backend: must be 'memory' or 'redis'")
	}

	discordCfg := discord.DefaultConfig()
	discordCfg.Token = cfg.DiscordToken
	discordCfg.GuildID = cfg.DiscordGuildID
	if cfg.DiscordBaseURL != "" {
		discordCfg.BaseURL = cfg.DiscordBaseURL
	}
	chatClient := discord.New(discordCfg, logger)

	statsCfg := stats.DefaultConfig()
	statsCfg.Token = cfg.StatsToken
	if cfg.StatsBaseURL != "" {
		statsCfg.BaseURL = cfg.StatsBaseURL
	}
	statsClient := stats.New(statsCfg)

	reconcilerCfg := freeagent.Config{
		ChannelID:    model.ChannelID(cfg.AdvertChannelID),
		RenewWindow:  cfg.RenewWindow,
		ToggleWindow: cfg.ToggleWindow,
	}
	verificationCfg := verification.Config{
		StaffLogChannelID: model.ChannelID(cfg.StaffLogChannelID),
	}
	rolesyncCfg := rolesync.Config{
		PingRoleID: model.RoleID(cfg.PingRoleID),
	}

	return newWithDependencies(store, chatClient, statsClient, clock.New(),
		reconcilerCfg, verificationCfg, rolesyncCfg, logger), nil
}

// ScheduledTasks returns the periodic jobs the server runs alongside the
// API: the free-agent sweep and the ping-role sync
func (a *App) ScheduledTasks() []scheduler.Task {
	return []scheduler.Task{
		{Name: "free-agent-sweep", Run: a.Reconciler.Sweep},
		{Name: "ping-role-sync", Run: func(ctx context.Context) error {
			_, err := a.RolesyncService.SyncPingRoles(ctx)
			return err
		}},
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	chatClient chat.Client,
	statsProvider stats.Provider,
	clk clock.Clock,
	reconcilerCfg freeagent.Config,
	verificationCfg verification.Config,
	rolesyncCfg rolesync.Config,
	logger *slog.Logger,
) *App {
	return &App{
		Storage:             store,
		Chat:                chatClient,
		Stats:               statsProvider,
		Clock:               clk,
		Reconciler:          freeagent.NewReconciler(store, chatClient, statsProvider, clk, reconcilerCfg, logger),
		VerificationService: verification.New(store, statsProvider, chatClient, clk, verificationCfg, logger),
		RolesyncService:     rolesync.New(store, chatClient, rolesyncCfg, logger),
	}
}

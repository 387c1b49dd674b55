package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all server settings, loaded from LEAGUEBOT_* environment
// variables.
type Config struct {
	Host            string        `env:"LEAGUEBOT_HOST"`
	Port            int           `env:"LEAGUEBOT_PORT" envDefault:"8080"`
	AuthToken       string        `env:"LEAGUEBOT_AUTH_TOKEN"`
	ShutdownTimeout time.Duration `env:"LEAGUEBOT_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// StorageBackend selects the persistence layer: "memory" or "redis"
	StorageBackend string `env:"LEAGUEBOT_STORAGE" envDefault:"memory"`
	RedisURL       string `env:"LEAGUEBOT_REDIS_URL" envDefault:"redis://localhost:6379"`

	DiscordToken   string `env:"LEAGUEBOT_DISCORD_TOKEN"`
	DiscordGuildID string `env:"LEAGUEBOT_DISCORD_GUILD_ID"`
	DiscordBaseURL string `env:"LEAGUEBOT_DISCORD_BASE_URL"`

	StatsToken   string `env:"LEAGUEBOT_STATS_TOKEN"`
	StatsBaseURL string `env:"LEAGUEBOT_STATS_BASE_URL"`

	AdvertChannelID   string `env:"LEAGUEBOT_ADVERT_CHANNEL_ID"`
	StaffLogChannelID string `env:"LEAGUEBOT_STAFF_LOG_CHANNEL_ID"`
	PingRoleID        string `env:"LEAGUEBOT_PING_ROLE_ID"`

	RenewWindow   time.Duration `env:"LEAGUEBOT_RENEW_WINDOW" envDefault:"336h"`
	ToggleWindow  time.Duration `env:"LEAGUEBOT_TOGGLE_WINDOW" envDefault:"168h"`
	SweepInterval time.Duration `env:"LEAGUEBOT_SWEEP_INTERVAL" envDefault:"24h"`
}

// Parse loads configuration from the environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
	if c.AdvertChannelID == "" {
		return fmt.Errorf("LEAGUEBOT_ADVERT_CHANNEL_ID is required")
	}
	return nil
}

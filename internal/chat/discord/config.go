package discord

import "time"

// Config holds Discord REST client settings
type Config struct {
	// Token is the bot token, sent as "Bot <token>"
	Token string
	// GuildID is the guild whose members and roles are managed
	GuildID string
	// BaseURL is the API root (overridable for tests)
	BaseURL string
	// Timeout bounds each HTTP request
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for the Discord client
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://discord.com/api/v10",
		Timeout: 10 * time.Second,
	}
}

package redis

import (
	"fmt"

	"github.com/mcoot/leaguebot-go/internal/model"
)

// Key prefix for all league-related data
const keyPrefix = "leaguebot"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all player ids
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// teamKey returns the Redis key for a Team
func teamKey(id model.TeamID) string {
	return fmt.Sprintf("%s:team:%s", keyPrefix, id)
}

// teamsIndexKey returns the Redis key for the SET of all team ids
func teamsIndexKey() string {
	return fmt.Sprintf("%s:idx:teams", keyPrefix)
}

package model

import "time"

// PlayerID uniquely identifies a player by their chat-platform user id
type PlayerID string

// TeamID uniquely identifies a team
type TeamID string

// ChannelID identifies a chat-platform channel
type ChannelID string

// MessageID identifies a chat-platform message.
// Messages are platform-owned; holding a MessageID never implies the
// message still exists.
type MessageID string

// RoleID identifies a chat-platform guild role
type RoleID string

// Player is the persisted record for one platform user
type Player struct {
	ID          PlayerID
	DisplayName string

	// GameTag is the player's external game profile tag, normalized to
	// "#UPPERCASE" form. Empty until the player verifies.
	GameTag  string
	Verified bool

	// TeamID is set while the player is on a roster. Team membership and an
	// active free-agent advertisement are mutually exclusive steady states;
	// the sweep repairs any overlap.
	TeamID *TeamID

	IsFreeAgent        bool
	FreeAgentExpiresAt *time.Time
	FreeAgentMessageID *MessageID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OnTeam reports whether the player is currently on a roster
func (p *Player) OnTeam() bool {
	return p.TeamID != nil
}

// ClearFreeAgent resets all free-agent state on the record.
// It does not persist the change.
func (p *Player) ClearFreeAgent() {
	p.IsFreeAgent = false
	p.FreeAgentExpiresAt = nil
	p.FreeAgentMessageID = nil
}

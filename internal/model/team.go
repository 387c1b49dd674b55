package model

import "time"

// Team is a roster of players competing together
type Team struct {
	ID        TeamID
	Name      string
	Members   []TeamMember
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeamMember is one roster slot on a team
type TeamMember struct {
	PlayerID PlayerID
	Role     string // e.g. "captain", "member"
}

// HasMember reports whether the player is on this team's roster
func (t *Team) HasMember(id PlayerID) bool {
	for _, m := range t.Members {
		if m.PlayerID == id {
			return true
		}
	}
	return false
}

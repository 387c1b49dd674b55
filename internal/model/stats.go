package model

// PlayerStats is a snapshot of a player's external game profile.
// It is fetched best-effort and never persisted; absence of stats is a
// normal condition, not an error.
type PlayerStats struct {
	Tag             string
	Name            string
	Trophies        int
	HighestTrophies int
	SoloVictories   int
	DuoVictories    int
	TrioVictories   int
	Club            *ClubRef
}

// ClubRef is the club a profile belongs to, if any
type ClubRef struct {
	Tag  string
	Name string
}

package advert

import (
	"fmt"

	"github.com/mcoot/leaguebot-go/internal/chat"
	"github.com/mcoot/leaguebot-go/internal/model"
)

// Embed colors per notice type
const (
	colorAdvertisement = 0x3498DB
	colorWithdrawn     = 0x2ECC71
	colorExpired       = 0xE67E22
)

// RenewButtonID is the interaction id the platform echoes back when a
// player presses the renew button on an expiry notice
const RenewButtonID = "userRenewFreeAgent"

// ContactURL returns the platform profile link used on the contact button
func ContactURL(id model.PlayerID) string {
	return fmt.Sprintf("https://discord.com/users/%s", id)
}

// Advertisement renders the public free-agent advertisement for a player.
// stats may be nil; the advertisement then carries no profile numbers.
// Pure function, no I/O.
func Advertisement(p *model.Player, stats *model.PlayerStats) chat.MessagePayload {
	title := fmt.Sprintf("%s is looking for a team", displayName(p))
	if p.GameTag != "" {
		title = fmt.Sprintf("%s (%s) is looking for a team", displayName(p), p.GameTag)
	}

	embed := chat.Embed{
		Title:       title,
		Description: "This player is a free agent open to roster offers.",
		Color:       colorAdvertisement,
	}

	if stats != nil {
		embed.Fields = append(embed.Fields,
			chat.EmbedField{Name: "Trophies", Value: fmt.Sprintf("%d", stats.Trophies), Inline: true},
			chat.EmbedField{Name: "Highest", Value: fmt.Sprintf("%d", stats.HighestTrophies), Inline: true},
			chat.EmbedField{Name: "3v3 Victories", Value: fmt.Sprintf("%d", stats.TrioVictories), Inline: true},
		)
		if stats.SoloVictories > 0 || stats.DuoVictories > 0 {
			embed.Fields = append(embed.Fields,
				chat.EmbedField{Name: "Solo Victories", Value: fmt.Sprintf("%d", stats.SoloVictories), Inline: true},
				chat.EmbedField{Name: "Duo Victories", Value: fmt.Sprintf("%d", stats.DuoVictories), Inline: true},
			)
		}
		if stats.Club != nil {
			embed.Fields = append(embed.Fields,
				chat.EmbedField{Name: "Club", Value: stats.Club.Name, Inline: true},
			)
		}
	}

	return chat.MessagePayload{
		Embed: embed,
		Buttons: []chat.Button{{
			Label: "Contact",
			Style: chat.ButtonStyleLink,
			URL:   ContactURL(p.ID),
		}},
	}
}

// WithdrawnNotice renders the DM sent when an advertisement is withdrawn
// because the player joined a team
func WithdrawnNotice(p *model.Player, channel model.ChannelID) chat.MessagePayload {
	return chat.MessagePayload{
		Embed: chat.Embed{
			Title: "Free agent status updated",
			Description: fmt.Sprintf(
				"Your free agent status has been withdrawn automatically because you are now part of a team.\n\n"+
					"Your advertisement has been removed from <#%s>.", channel),
			Color: colorWithdrawn,
		},
	}
}

// ExpiredNotice renders the DM sent when an advertisement expires,
// offering a renewal action
func ExpiredNotice(p *model.Player, channel model.ChannelID) chat.MessagePayload {
	return chat.MessagePayload{
		Embed: chat.Embed{
			Title: "Free agent status expired",
			Description: fmt.Sprintf(
				"Your free agent status has expired without you joining a team.\n\n"+
					"Your advertisement has been removed from <#%s>.\n\n"+
					"You can renew it with the button below.", channel),
			Color: colorExpired,
		},
		Buttons: []chat.Button{{
			Label:    "Renew Free Agent",
			Style:    chat.ButtonStylePrimary,
			CustomID: RenewButtonID,
			Emoji:    "🔍",
		}},
	}
}

func displayName(p *model.Player) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return string(p.ID)
}

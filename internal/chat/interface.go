package chat

import (
	"context"

	"github.com/mcoot/leaguebot-go/internal/model"
)

// Channel describes a chat-platform channel
type Channel struct {
	ID   model.ChannelID
	Name string
	// Messageable is false for channels that cannot carry bot messages
	// (categories, voice channels).
	Messageable bool
}

// Message is proof of a message's existence at fetch time. Messages are
// platform-owned and may be deleted out-of-band at any moment after a
// fetch returns.
type Message struct {
	ID      model.MessageID
	Channel model.ChannelID
}

// Client is the boundary to the chat platform.
//
// Structural lookups (Channel, Message) return nil rather than an error
// when the target does not exist; the caller decides whether absence is
// fatal. Errors are reserved for transport failures.
type Client interface {
	// Channel returns the channel, or nil if it does not exist.
	Channel(ctx context.Context, id model.ChannelID) (*Channel, error)

	// SendMessage publishes a message and returns its reference.
	SendMessage(ctx context.Context, channel model.ChannelID, payload MessagePayload) (model.MessageID, error)

	// Message returns the message, or nil if it has been deleted.
	Message(ctx context.Context, channel model.ChannelID, id model.MessageID) (*Message, error)

	// EditMessage replaces the content of an existing message.
	EditMessage(ctx context.Context, channel model.ChannelID, id model.MessageID, payload MessagePayload) error

	// DeleteMessage removes a message. Deleting an already-deleted
	// message is not an error.
	DeleteMessage(ctx context.Context, channel model.ChannelID, id model.MessageID) error

	// SendDirectMessage delivers a DM to the user. It returns false, not
	// an error, when the user cannot receive DMs.
	SendDirectMessage(ctx context.Context, user model.PlayerID, payload MessagePayload) (bool, error)

	// MemberRoles returns the role ids held by a guild member, or
	// model.ErrMemberNotFound if they are not in the guild.
	MemberRoles(ctx context.Context, user model.PlayerID) ([]model.RoleID, error)

	// AddMemberRole grants a role to a guild member.
	AddMemberRole(ctx context.Context, user model.PlayerID, role model.RoleID) error
}

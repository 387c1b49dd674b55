package chattest

import (
	"context"
	"fmt"
	"sync"

	"github.com/mcoot/leaguebot-go/internal/chat"
	"github.com/mcoot/leaguebot-go/internal/model"
)

// SentMessage is a message the fake client has published
type SentMessage struct {
	ID      model.MessageID
	Channel model.ChannelID
	Payload chat.MessagePayload
	Edits   int
}

// DirectMessage is a DM the fake client has delivered
type DirectMessage struct {
	User    model.PlayerID
	Payload chat.MessagePayload
}

// Client is an in-memory fake of the chat platform for tests.
// All failure modes are injectable.
type Client struct {
	mu sync.Mutex

	channels map[model.ChannelID]*chat.Channel
	messages map[model.MessageID]*SentMessage
	roles    map[model.PlayerID][]model.RoleID
	nextID   int

	// DMs records successfully delivered direct messages
	DMs []DirectMessage
	// DMsDisabled lists users whose DMs bounce (delivered=false, no error)
	DMsDisabled map[model.PlayerID]bool
	// Deleted records every message id passed to DeleteMessage
	Deleted []model.MessageID

	// Injectable errors
	SendErr   error
	EditErr   error
	DeleteErr error
	DMErr     error
	RoleErr   error
}

// Ensure Client implements the interface
var _ chat.Client = (*Client)(nil)

// New creates an empty fake chat client
func New() *Client {
	return &Client{
		channels:    make(map[model.ChannelID]*chat.Channel),
		messages:    make(map[model.MessageID]*SentMessage),
		roles:       make(map[model.PlayerID][]model.RoleID),
		DMsDisabled: make(map[model.PlayerID]bool),
	}
}

// AddChannel registers a channel with the fake platform
func (c *Client) AddChannel(id model.ChannelID, messageable bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channels[id] = &chat.Channel{ID: id, Name: string(id), Messageable: messageable}
}

// AddMember registers a guild member holding the given roles
func (c *Client) AddMember(id model.PlayerID, roles ...model.RoleID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roles[id] = append([]model.RoleID(nil), roles...)
}

// DropMessage deletes a message out-of-band, as another user or the
// platform itself might
func (c *Client) DropMessage(id model.MessageID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.messages, id)
}

// MessagesIn returns the live messages in a channel, in send order
func (c *Client) MessagesIn(channel model.ChannelID) []*SentMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*SentMessage
	for i := 1; i <= c.nextID; i++ {
		if m, ok := c.messages[model.MessageID(fmt.Sprintf("msg-%d", i))]; ok && m.Channel == channel {
			out = append(out, m)
		}
	}
	return out
}

// SentMessage returns a live message by id, or nil
func (c *Client) SentMessage(id model.MessageID) *SentMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.messages[id]
}

// MemberRolesHeld returns the roles the fake has recorded for a member
func (c *Client) MemberRolesHeld(id model.PlayerID) []model.RoleID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.RoleID(nil), c.roles[id]...)
}

// chat.Client implementation

func (c *Client) Channel(ctx context.Context, id model.ChannelID) (*chat.Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch, ok := c.channels[id]
	if !ok {
		return nil, nil
	}
	cp := *ch
	return &cp, nil
}

func (c *Client) SendMessage(ctx context.Context, channel model.ChannelID, payload chat.MessagePayload) (model.MessageID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SendErr != nil {
		return "", c.SendErr
	}
	c.nextID++
	id := model.MessageID(fmt.Sprintf("msg-%d", c.nextID))
	c.messages[id] = &SentMessage{ID: id, Channel: channel, Payload: payload}
	return id, nil
}

func (c *Client) Message(ctx context.Context, channel model.ChannelID, id model.MessageID) (*chat.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.messages[id]
	if !ok || m.Channel != channel {
		return nil, nil
	}
	return &chat.Message{ID: m.ID, Channel: m.Channel}, nil
}

func (c *Client) EditMessage(ctx context.Context, channel model.ChannelID, id model.MessageID, payload chat.MessagePayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.EditErr != nil {
		return c.EditErr
	}
	m, ok := c.messages[id]
	if !ok {
		return model.ErrMessageNotFound
	}
	m.Payload = payload
	m.Edits++
	return nil
}

func (c *Client) DeleteMessage(ctx context.Context, channel model.ChannelID, id model.MessageID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Deleted = append(c.Deleted, id)
	if c.DeleteErr != nil {
		return c.DeleteErr
	}
	delete(c.messages, id)
	return nil
}

func (c *Client) SendDirectMessage(ctx context.Context, user model.PlayerID, payload chat.MessagePayload) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.DMErr != nil {
		return false, c.DMErr
	}
	if c.DMsDisabled[user] {
		return false, nil
	}
	c.DMs = append(c.DMs, DirectMessage{User: user, Payload: payload})
	return true, nil
}

func (c *Client) MemberRoles(ctx context.Context, user model.PlayerID) ([]model.RoleID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.RoleErr != nil {
		return nil, c.RoleErr
	}
	roles, ok := c.roles[user]
	if !ok {
		return nil, model.ErrMemberNotFound
	}
	return append([]model.RoleID(nil), roles...), nil
}

func (c *Client) AddMemberRole(ctx context.Context, user model.PlayerID, role model.RoleID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.RoleErr != nil {
		return c.RoleErr
	}
	roles, ok := c.roles[user]
	if !ok {
		return model.ErrMemberNotFound
	}
	for _, r := range roles {
		if r == role {
			return nil
		}
	}
	c.roles[user] = append(roles, role)
	return nil
}

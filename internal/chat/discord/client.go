package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/mcoot/leaguebot-go/internal/chat"
	"github.com/mcoot/leaguebot-go/internal/model"
)

// Channel types that can carry bot messages
var messageableChannelTypes = map[int]bool{
	0:  true, // guild text
	5:  true, // announcement
	10: true, // announcement thread
	11: true, // public thread
	12: true, // private thread
}

// Error code Discord returns when the recipient has DMs disabled
const codeCannotSendToUser = 50007

// Client is a REST implementation of the chat.Client interface against
// the Discord HTTP API
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure Client implements the interface
var _ chat.Client = (*Client)(nil)

// New creates a new Discord REST client
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Wire types

type wireChannel struct {
	ID   string `json:"id"`
	Type int    `json:"type"`
	Name string `json:"name"`
}

type wireMessage struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
}

type wireMember struct {
	Roles []string `json:"roles"`
}

type wireError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type wireEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type wireEmbed struct {
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	Color       int              `json:"color,omitempty"`
	Fields      []wireEmbedField `json:"fields,omitempty"`
}

type wireComponent struct {
	Type       int             `json:"type"`
	Style      int             `json:"style,omitempty"`
	Label      string          `json:"label,omitempty"`
	URL        string          `json:"url,omitempty"`
	CustomID   string          `json:"custom_id,omitempty"`
	Emoji      *wireEmoji      `json:"emoji,omitempty"`
	Components []wireComponent `json:"components,omitempty"`
}

type wireEmoji struct {
	Name string `json:"name"`
}

type wireMessageBody struct {
	Embeds     []wireEmbed     `json:"embeds,omitempty"`
	Components []wireComponent `json:"components,omitempty"`
}

// encodePayload converts a MessagePayload to the Discord wire format
func encodePayload(p chat.MessagePayload) wireMessageBody {
	body := wireMessageBody{
		Embeds: []wireEmbed{{
			Title:       p.Embed.Title,
			Description: p.Embed.Description,
			Color:       p.Embed.Color,
		}},
	}
	for _, f := range p.Embed.Fields {
		body.Embeds[0].Fields = append(body.Embeds[0].Fields, wireEmbedField(f))
	}

	if len(p.Buttons) > 0 {
		row := wireComponent{Type: 1} // action row
		for _, b := range p.Buttons {
			btn := wireComponent{
				Type:     2, // button
				Style:    b.Style,
				Label:    b.Label,
				URL:      b.URL,
				CustomID: b.CustomID,
			}
			if b.Emoji != "" {
				btn.Emoji = &wireEmoji{Name: b.Emoji}
			}
			row.Components = append(row.Components, btn)
		}
		body.Components = []wireComponent{row}
	}
	return body
}

// do performs an authenticated request and decodes the response into out.
// A nil out discards the body. Responses matching any status in okMissing
// are reported via the returned bool without being treated as errors.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, okMissing ...int) (found bool, err error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return false, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bot "+c.cfg.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	for _, status := range okMissing {
		if resp.StatusCode == status {
			return false, nil
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr wireError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return false, &requestError{Status: resp.StatusCode, Code: apiErr.Code, Message: apiErr.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, err
		}
	}
	return true, nil
}

// requestError is a non-2xx Discord API response
type requestError struct {
	Status  int
	Code    int
	Message string
}

func (e *requestError) Error() string {
	return fmt.Sprintf("discord api: status %d code %d: %s", e.Status, e.Code, e.Message)
}

// chat.Client implementation

func (c *Client) Channel(ctx context.Context, id model.ChannelID) (*chat.Channel, error) {
	var ch wireChannel
	found, err := c.do(ctx, http.MethodGet, "/channels/"+string(id), nil, &ch, http.StatusNotFound)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &chat.Channel{
		ID:          model.ChannelID(ch.ID),
		Name:        ch.Name,
		Messageable: messageableChannelTypes[ch.Type],
	}, nil
}

func (c *Client) SendMessage(ctx context.Context, channel model.ChannelID, payload chat.MessagePayload) (model.MessageID, error) {
	var msg wireMessage
	if _, err := c.do(ctx, http.MethodPost, "/channels/"+string(channel)+"/messages", encodePayload(payload), &msg); err != nil {
		return "", err
	}
	return model.MessageID(msg.ID), nil
}

func (c *Client) Message(ctx context.Context, channel model.ChannelID, id model.MessageID) (*chat.Message, error) {
	var msg wireMessage
	found, err := c.do(ctx, http.MethodGet, "/channels/"+string(channel)+"/messages/"+string(id), nil, &msg, http.StatusNotFound)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &chat.Message{ID: model.MessageID(msg.ID), Channel: model.ChannelID(msg.ChannelID)}, nil
}

func (c *Client) EditMessage(ctx context.Context, channel model.ChannelID, id model.MessageID, payload chat.MessagePayload) error {
	_, err := c.do(ctx, http.MethodPatch, "/channels/"+string(channel)+"/messages/"+string(id), encodePayload(payload), nil)
	return err
}

func (c *Client) DeleteMessage(ctx context.Context, channel model.ChannelID, id model.MessageID) error {
	// Already-deleted is success
	_, err := c.do(ctx, http.MethodDelete, "/channels/"+string(channel)+"/messages/"+string(id), nil, nil, http.StatusNotFound)
	return err
}

func (c *Client) SendDirectMessage(ctx context.Context, user model.PlayerID, payload chat.MessagePayload) (bool, error) {
	var dm wireChannel
	if _, err := c.do(ctx, http.MethodPost, "/users/@me/channels", map[string]string{"recipient_id": string(user)}, &dm); err != nil {
		return false, err
	}

	_, err := c.do(ctx, http.MethodPost, "/channels/"+dm.ID+"/messages", encodePayload(payload), nil)
	if err != nil {
		var reqErr *requestError
		if errors.As(err, &reqErr) && reqErr.Code == codeCannotSendToUser {
			c.logger.Debug("recipient has DMs disabled", slog.String("user", string(user)))
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *Client) MemberRoles(ctx context.Context, user model.PlayerID) ([]model.RoleID, error) {
	var member wireMember
	found, err := c.do(ctx, http.MethodGet, "/guilds/"+c.cfg.GuildID+"/members/"+string(user), nil, &member, http.StatusNotFound)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, model.ErrMemberNotFound
	}
	roles := make([]model.RoleID, 0, len(member.Roles))
	for _, r := range member.Roles {
		roles = append(roles, model.RoleID(r))
	}
	return roles, nil
}

func (c *Client) AddMemberRole(ctx context.Context, user model.PlayerID, role model.RoleID) error {
	found, err := c.do(ctx, http.MethodPut, "/guilds/"+c.cfg.GuildID+"/members/"+string(user)+"/roles/"+string(role), nil, nil, http.StatusNotFound)
	if err != nil {
		return err
	}
	if !found {
		return model.ErrMemberNotFound
	}
	return nil
}

package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mcoot/leaguebot-go/internal/model"
)

// Config holds stats API client settings
type Config struct {
	// BaseURL is the API root (e.g. https://api.brawlstars.com/v1)
	BaseURL string
	// Token is the API bearer token
	Token string
	// Timeout bounds each HTTP request
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for the stats client
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://api.brawlstars.com/v1",
		Timeout: 10 * time.Second,
	}
}

// Client is an HTTP implementation of Provider against the game's
// official stats API
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Ensure Client implements the interface
var _ Provider = (*Client)(nil)

// New creates a new stats API client
func New(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// wireProfile is the API's player profile representation
type wireProfile struct {
	Tag              string `json:"tag"`
	Name             string `json:"name"`
	Trophies         int    `json:"trophies"`
	HighestTrophies  int    `json:"highestTrophies"`
	SoloVictories    int    `json:"soloVictories"`
	DuoVictories     int    `json:"duoVictories"`
	TrioVictories    int    `json:"3vs3Victories"`
	Club             *struct {
		Tag  string `json:"tag"`
		Name string `json:"name"`
	} `json:"club"`
}

// FetchProfile fetches a player profile by tag. An unknown tag maps to
// model.ErrProfileNotFound; any other non-2xx response is a transport
// error.
func (c *Client) FetchProfile(ctx context.Context, tag string) (*model.PlayerStats, error) {
	// Tags carry a leading '#', which must be escaped in the path
	reqURL := c.cfg.BaseURL + "/players/" + url.PathEscape(tag)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, model.ErrProfileNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats api: unexpected status %d", resp.StatusCode)
	}

	var profile wireProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("stats api: decoding profile: %w", err)
	}

	out := &model.PlayerStats{
		Tag:             profile.Tag,
		Name:            profile.Name,
		Trophies:        profile.Trophies,
		HighestTrophies: profile.HighestTrophies,
		SoloVictories:   profile.SoloVictories,
		DuoVictories:    profile.DuoVictories,
		TrioVictories:   profile.TrioVictories,
	}
	if profile.Club != nil {
		out.Club = &model.ClubRef{Tag: profile.Club.Tag, Name: profile.Club.Name}
	}
	return out, nil
}

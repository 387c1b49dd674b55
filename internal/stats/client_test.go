package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/leaguebot-go/internal/model"
)

type ClientSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) newClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	cfg := DefaultConfig()
	cfg.BaseURL = server.URL
	cfg.Token = "test-token"
	return New(cfg), server
}

func (s *ClientSuite) TestFetchProfile() {
	client, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/players/%23AB12CD", r.URL.EscapedPath())
		s.Equal("Bearer test-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"tag":             "#AB12CD",
			"name":            "Alice",
			"trophies":        12000,
			"highestTrophies": 13000,
			"soloVictories":   400,
			"3vs3Victories":   2500,
			"club":            map[string]string{"tag": "#CLUB", "name": "The Regulars"},
		})
	})
	defer server.Close()

	profile, err := client.FetchProfile(context.Background(), "#AB12CD")
	s.Require().NoError(err)
	s.Equal("Alice", profile.Name)
	s.Equal(12000, profile.Trophies)
	s.Equal(2500, profile.TrioVictories)
	s.Require().NotNil(profile.Club)
	s.Equal("The Regulars", profile.Club.Name)
}

func (s *ClientSuite) TestFetchProfileUnknownTag() {
	client, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	_, err := client.FetchProfile(context.Background(), "#NOBODY")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *ClientSuite) TestFetchProfileServerError() {
	client, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := client.FetchProfile(context.Background(), "#AB12CD")
	s.Error(err)
	s.NotErrorIs(err, model.ErrProfileNotFound)
}

func (s *ClientSuite) TestFetchProfileWithoutClub() {
	client, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"tag": "#AB12CD", "name": "Alice"})
	})
	defer server.Close()

	profile, err := client.FetchProfile(context.Background(), "#AB12CD")
	s.Require().NoError(err)
	s.Nil(profile.Club)
}

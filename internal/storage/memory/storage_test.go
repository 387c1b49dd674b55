package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/leaguebot-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "123456789",
		DisplayName: "Alice",
		GameTag:     "#AB12CD",
		Verified:    true,
		CreatedAt:   time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	got, err := s.storage.GetPlayer(s.ctx, "123456789")
	s.Require().NoError(err)
	s.Equal(player.DisplayName, got.DisplayName)
	s.Equal(player.GameTag, got.GameTag)
	s.True(got.Verified)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "missing")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSaveOverwritesFullRecord() {
	expiry := time.Now().Add(time.Hour)
	msgID := model.MessageID("m-1")
	player := &model.Player{
		ID:                 "123",
		IsFreeAgent:        true,
		FreeAgentExpiresAt: &expiry,
		FreeAgentMessageID: &msgID,
	}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	player.ClearFreeAgent()
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	got, err := s.storage.GetPlayer(s.ctx, "123")
	s.Require().NoError(err)
	s.False(got.IsFreeAgent)
	s.Nil(got.FreeAgentExpiresAt)
	s.Nil(got.FreeAgentMessageID)
}

func (s *StorageSuite) TestSavedPlayerIsIsolatedFromCallerMutation() {
	player := &model.Player{ID: "123", DisplayName: "Alice"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	player.DisplayName = "Mallory"

	got, err := s.storage.GetPlayer(s.ctx, "123")
	s.Require().NoError(err)
	s.Equal("Alice", got.DisplayName)
}

func (s *StorageSuite) TestSavedPlayerPointerTargetsAreIsolated() {
	expiry := time.Now().Add(time.Hour)
	msgID := model.MessageID("m-1")
	teamID := model.TeamID("team-1")
	player := &model.Player{
		ID:                 "123",
		IsFreeAgent:        true,
		TeamID:             &teamID,
		FreeAgentExpiresAt: &expiry,
		FreeAgentMessageID: &msgID,
	}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	// Mutating through the caller's pointers must not reach the snapshot
	*player.TeamID = "team-2"
	*player.FreeAgentExpiresAt = expiry.Add(24 * time.Hour)
	*player.FreeAgentMessageID = "m-2"

	got, err := s.storage.GetPlayer(s.ctx, "123")
	s.Require().NoError(err)
	s.Equal(model.TeamID("team-1"), *got.TeamID)
	s.True(got.FreeAgentExpiresAt.Equal(expiry))
	s.Equal(model.MessageID("m-1"), *got.FreeAgentMessageID)

	// And the same isolation applies to fetched records
	*got.FreeAgentMessageID = "m-3"
	again, err := s.storage.GetPlayer(s.ctx, "123")
	s.Require().NoError(err)
	s.Equal(model.MessageID("m-1"), *again.FreeAgentMessageID)
}

func (s *StorageSuite) TestListPlayersOrderedByID() {
	for _, id := range []model.PlayerID{"3", "1", "2"} {
		s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: id}))
	}

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.PlayerID("1"), players[0].ID)
	s.Equal(model.PlayerID("2"), players[1].ID)
	s.Equal(model.PlayerID("3"), players[2].ID)
}

func (s *StorageSuite) TestSaveAndGetTeam() {
	team := &model.Team{
		ID:   "team-1",
		Name: "The Regulars",
		Members: []model.TeamMember{
			{PlayerID: "123", Role: "captain"},
			{PlayerID: "456", Role: "member"},
		},
	}
	s.Require().NoError(s.storage.SaveTeam(s.ctx, team))

	got, err := s.storage.GetTeam(s.ctx, "team-1")
	s.Require().NoError(err)
	s.Equal("The Regulars", got.Name)
	s.Len(got.Members, 2)
	s.True(got.HasMember("123"))
	s.False(got.HasMember("789"))
}

func (s *StorageSuite) TestGetTeamNotFound() {
	_, err := s.storage.GetTeam(s.ctx, "missing")
	s.ErrorIs(err, model.ErrTeamNotFound)
}

func (s *StorageSuite) TestListTeams() {
	s.Require().NoError(s.storage.SaveTeam(s.ctx, &model.Team{ID: "b"}))
	s.Require().NoError(s.storage.SaveTeam(s.ctx, &model.Team{ID: "a"}))

	teams, err := s.storage.ListTeams(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(teams, 2)
	s.Equal(model.TeamID("a"), teams[0].ID)
}

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/leaguebot-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndGetPlayer() {
	expiry := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	msgID := model.MessageID("msg-1")
	player := &model.Player{
		ID:                 "123456789",
		DisplayName:        "Alice",
		GameTag:            "#AB12CD",
		Verified:           true,
		IsFreeAgent:        true,
		FreeAgentExpiresAt: &expiry,
		FreeAgentMessageID: &msgID,
	}

	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	got, err := s.storage.GetPlayer(s.ctx, "123456789")
	s.Require().NoError(err)
	s.Equal(player.GameTag, got.GameTag)
	s.True(got.IsFreeAgent)
	s.Require().NotNil(got.FreeAgentExpiresAt)
	s.True(got.FreeAgentExpiresAt.Equal(expiry))
	s.Require().NotNil(got.FreeAgentMessageID)
	s.Equal(msgID, *got.FreeAgentMessageID)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "missing")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayers() {
	for _, id := range []model.PlayerID{"222", "111", "333"} {
		s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: id}))
	}

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.PlayerID("111"), players[0].ID)
	s.Equal(model.PlayerID("333"), players[2].ID)
}

func (s *StorageSuite) TestListPlayersSkipsDanglingIndexEntries() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: "111"}))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: "222"}))

	// Remove a record out-of-band, leaving the index entry behind
	s.mini.Del(playerKey("111"))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(model.PlayerID("222"), players[0].ID)
}

func (s *StorageSuite) TestSaveAndGetTeam() {
	team := &model.Team{
		ID:   "team-1",
		Name: "The Regulars",
		Members: []model.TeamMember{
			{PlayerID: "123", Role: "captain"},
		},
	}
	s.Require().NoError(s.storage.SaveTeam(s.ctx, team))

	got, err := s.storage.GetTeam(s.ctx, "team-1")
	s.Require().NoError(err)
	s.Equal("The Regulars", got.Name)
	s.Require().Len(got.Members, 1)
	s.Equal(model.PlayerID("123"), got.Members[0].PlayerID)
}

func (s *StorageSuite) TestGetTeamNotFound() {
	_, err := s.storage.GetTeam(s.ctx, "missing")
	s.ErrorIs(err, model.ErrTeamNotFound)
}

func (s *StorageSuite) TestListTeams() {
	s.Require().NoError(s.storage.SaveTeam(s.ctx, &model.Team{ID: "beta"}))
	s.Require().NoError(s.storage.SaveTeam(s.ctx, &model.Team{ID: "alpha"}))

	teams, err := s.storage.ListTeams(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(teams, 2)
	s.Equal(model.TeamID("alpha"), teams[0].ID)
}

package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/leaguebot-go/internal/model"
	"github.com/mcoot/leaguebot-go/internal/services/freeagent"
)

// IntegrationSuite exercises the wired application end to end against
// the in-memory fakes.
type IntegrationSuite struct {
	suite.Suite

	app *TestApp
	ctx context.Context
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) registerProfile(tag, name string) {
	s.app.StatsFake.Profiles[tag] = &model.PlayerStats{Tag: tag, Name: name, Trophies: 15000}
}

func (s *IntegrationSuite) TestVerifyThenRenewThenExpire() {
	s.registerProfile("#AAA111", "Slugger")
	s.app.ChatFake.AddMember("user-1")

	// Verification creates the player record and posts a staff notice.
	player, err := s.app.VerificationService.Verify(s.ctx, "user-1", "aaa111")
	s.Require().NoError(err)
	s.Equal("#AAA111", player.GameTag)
	s.True(player.Verified)
	s.Len(s.app.ChatFake.MessagesIn(TestStaffChannel), 1)

	// Renewing publishes an advertisement and stamps the expiry.
	player, err = s.app.Reconciler.Renew(s.ctx, "user-1")
	s.Require().NoError(err)
	s.True(player.IsFreeAgent)
	s.Require().NotNil(player.FreeAgentMessageID)
	s.Len(s.app.ChatFake.MessagesIn(TestAdvertChannel), 1)

	// A sweep before expiry keeps the advertisement in place.
	s.app.MockClock.Advance(24 * time.Hour)
	s.Require().NoError(s.app.Reconciler.Sweep(s.ctx))
	s.Len(s.app.ChatFake.MessagesIn(TestAdvertChannel), 1)

	// Once the window passes, the sweep clears the flag, removes the
	// advertisement, and notifies the player.
	s.app.MockClock.Advance(freeagent.DefaultRenewWindow)
	s.Require().NoError(s.app.Reconciler.Sweep(s.ctx))

	player, err = s.app.Storage.GetPlayer(s.ctx, "user-1")
	s.Require().NoError(err)
	s.False(player.IsFreeAgent)
	s.Nil(player.FreeAgentExpiresAt)
	s.Nil(player.FreeAgentMessageID)
	s.Empty(s.app.ChatFake.MessagesIn(TestAdvertChannel))
	s.Require().Len(s.app.ChatFake.DMs, 1)
	s.Equal(model.PlayerID("user-1"), s.app.ChatFake.DMs[0].User)
}

func (s *IntegrationSuite) TestJoiningTeamWithdrawsAdvertisement() {
	s.registerProfile("#BBB222", "Anchor")
	s.app.ChatFake.AddMember("user-2")

	_, err := s.app.VerificationService.Verify(s.ctx, "user-2", "#bbb222")
	s.Require().NoError(err)
	_, err = s.app.Reconciler.Renew(s.ctx, "user-2")
	s.Require().NoError(err)

	player, err := s.app.Storage.GetPlayer(s.ctx, "user-2")
	s.Require().NoError(err)
	teamID := model.TeamID("team-1")
	player.TeamID = &teamID
	s.Require().NoError(s.app.Storage.SavePlayer(s.ctx, player))

	s.Require().NoError(s.app.Reconciler.Sweep(s.ctx))

	player, err = s.app.Storage.GetPlayer(s.ctx, "user-2")
	s.Require().NoError(err)
	s.False(player.IsFreeAgent)
	s.Empty(s.app.ChatFake.MessagesIn(TestAdvertChannel))
}

func (s *IntegrationSuite) TestRoleSyncAcrossTeams() {
	for _, id := range []model.PlayerID{"user-1", "user-2", "user-3"} {
		s.app.ChatFake.AddMember(id)
	}
	s.Require().NoError(s.app.Storage.SaveTeam(s.ctx, &model.Team{
		ID:   "team-1",
		Name: "Alphas",
		Members: []model.TeamMember{
			{PlayerID: "user-1", Role: "captain"},
			{PlayerID: "user-2", Role: "member"},
		},
	}))
	s.Require().NoError(s.app.Storage.SaveTeam(s.ctx, &model.Team{
		ID:      "team-2",
		Name:    "Betas",
		Members: []model.TeamMember{{PlayerID: "user-3", Role: "captain"}},
	}))

	report, err := s.app.RolesyncService.SyncPingRoles(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, report.TeamsProcessed)
	s.Equal(3, report.MembersChecked)
	s.Equal(3, report.RolesGranted)
	s.Empty(report.Errors)

	s.Contains(s.app.ChatFake.MemberRolesHeld("user-1"), TestPingRole)
	s.Contains(s.app.ChatFake.MemberRolesHeld("user-3"), TestPingRole)
}

func (s *IntegrationSuite) TestScheduledTasksCoverSweepAndRoleSync() {
	s.registerProfile("#DDD444", "Keeper")
	s.app.ChatFake.AddMember("user-5")
	s.app.ChatFake.AddMember("user-6")

	// user-5 is an expired free agent, user-6 sits on a roster without
	// the ping role
	_, err := s.app.VerificationService.Verify(s.ctx, "user-5", "ddd444")
	s.Require().NoError(err)
	_, err = s.app.Reconciler.Renew(s.ctx, "user-5")
	s.Require().NoError(err)
	s.app.MockClock.Advance(freeagent.DefaultRenewWindow + time.Hour)

	s.Require().NoError(s.app.Storage.SaveTeam(s.ctx, &model.Team{
		ID:      "team-9",
		Name:    "Gammas",
		Members: []model.TeamMember{{PlayerID: "user-6", Role: "captain"}},
	}))

	tasks := s.app.ScheduledTasks()
	s.Require().Len(tasks, 2)
	s.Equal("free-agent-sweep", tasks[0].Name)
	s.Equal("ping-role-sync", tasks[1].Name)

	// One pass over the task list reconciles both concerns
	for _, task := range tasks {
		s.Require().NoError(task.Run(s.ctx))
	}

	player, err := s.app.Storage.GetPlayer(s.ctx, "user-5")
	s.Require().NoError(err)
	s.False(player.IsFreeAgent)
	s.Contains(s.app.ChatFake.MemberRolesHeld("user-6"), TestPingRole)
}

func (s *IntegrationSuite) TestToggleLifecycle() {
	s.registerProfile("#CCC333", "Dasher")

	_, err := s.app.VerificationService.Verify(s.ctx, "user-4", "ccc333")
	s.Require().NoError(err)

	player, err := s.app.Reconciler.Toggle(s.ctx, "user-4")
	s.Require().NoError(err)
	s.True(player.IsFreeAgent)
	s.Require().NotNil(player.FreeAgentExpiresAt)
	s.Equal(s.app.MockClock.Now().Add(freeagent.DefaultToggleWindow), *player.FreeAgentExpiresAt)

	player, err = s.app.Reconciler.Toggle(s.ctx, "user-4")
	s.Require().NoError(err)
	s.False(player.IsFreeAgent)
	s.Empty(s.app.ChatFake.MessagesIn(TestAdvertChannel))
}

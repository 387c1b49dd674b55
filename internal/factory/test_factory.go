package factory

import (
	"context"
	"time"

	"github.com/mcoot/leaguebot-go/internal/chat/chattest"
	"github.com/mcoot/leaguebot-go/internal/dependencies/mocks"
	"github.com/mcoot/leaguebot-go/internal/model"
	"github.com/mcoot/leaguebot-go/internal/services/freeagent"
	"github.com/mcoot/leaguebot-go/internal/services/rolesync"
	"github.com/mcoot/leaguebot-go/internal/services/verification"
	"github.com/mcoot/leaguebot-go/internal/storage/memory"
	"github.com/mcoot/leaguebot-go/internal/testutil"
)

// Channel and role identifiers used by the test app's fake chat platform
const (
	TestAdvertChannel = model.ChannelID("chan-advert")
	TestStaffChannel  = model.ChannelID("chan-staff")
	TestPingRole      = model.RoleID("role-ping")
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	MockClock *mocks.MockClock
	ChatFake  *chattest.Client
	StatsFake *StatsFake
}

// StatsFake is a canned in-memory stats provider for tests
type StatsFake struct {
	Profiles map[string]*model.PlayerStats
	Err      error
}

func (s *StatsFake) FetchProfile(_ context.Context, tag string) (*model.PlayerStats, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	profile, ok := s.Profiles[tag]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return profile, nil
}

// NewTestApp creates an App configured for testing with fakes and a mock clock
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	chatFake := chattest.New()
	chatFake.AddChannel(TestAdvertChannel, true)
	chatFake.AddChannel(TestStaffChannel, true)

	statsFake := &StatsFake{Profiles: map[string]*model.PlayerStats{}}

	app := newWithDependencies(store, chatFake, statsFake, mockClock,
		freeagent.Config{ChannelID: TestAdvertChannel},
		verification.Config{StaffLogChannelID: TestStaffChannel},
		rolesync.Config{PingRoleID: TestPingRole},
		testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		ChatFake:  chatFake,
		StatsFake: statsFake,
	}
}

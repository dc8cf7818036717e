package factory

import (
	"context"
	"time"

	"github.com/oakhall/teambot/internal/dependencies/mocks"
	"github.com/oakhall/teambot/internal/dependencies/random"
	"github.com/oakhall/teambot/internal/gateway/local"
	"github.com/oakhall/teambot/internal/model"
	"github.com/oakhall/teambot/internal/perms"
	"github.com/oakhall/teambot/internal/testutil"
)

// TestApp is an App wired with a mock clock and a local gateway session
type TestApp struct {
	*App

	MockClock *mocks.MockClock
	Local     *local.Session
}

// NewTestApp creates a fully wired App for tests
func NewTestApp() *TestApp {
	logger := testutil.NopLogger()
	clk := mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	rnd := random.New()
	session := local.NewSession(rnd)

	return &TestApp{
		App:       newWithDependencies(session, clk, rnd, perms.DefaultConfig(), logger),
		MockClock: clk,
		Local:     session,
	}
}

// SeedGuild sets up a guild in the local gateway with a Host role granted
// to hostUser, then runs the guild sync path so the gate is configured.
// Returns the minted host role.
func (a *TestApp) SeedGuild(guild model.GuildID, hostUser model.UserID) model.Role {
	ctx := context.Background()

	hostRole := a.Local.CreateRole(guild, a.Gate.RoleName(), model.Color{})
	a.Local.GrantRole(guild, hostUser, hostRole.ID)

	roles, err := a.Local.GuildRoles(ctx, guild)
	if err != nil {
		panic(err)
	}
	a.Dispatcher.HandleGuildSync(ctx, guild, roles)

	return hostRole
}

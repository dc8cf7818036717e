package local

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/oakhall/teambot/internal/dependencies/mocks"
	"github.com/oakhall/teambot/internal/gateway"
	"github.com/oakhall/teambot/internal/model"
)

const testGuild = model.GuildID("guild-1")

type LocalSessionSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	session *Session
	ctx     context.Context
}

func TestLocalSessionSuite(t *testing.T) {
	suite.Run(t, new(LocalSessionSuite))
}

func (s *LocalSessionSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.session = NewSession(s.random)
	s.ctx = context.Background()
}

func (s *LocalSessionSuite) TestCreateRoleMintsID() {
	s.random.QueueDigits("123456789012345678")

	role := s.session.CreateRole(testGuild, "Red Team", model.Color{R: 200})
	s.Equal(model.RoleID("123456789012345678"), role.ID)
	s.Equal("Red Team", role.Name)
	s.Equal(model.Color{R: 200}, role.Color)
}

func (s *LocalSessionSuite) TestGuildRolesCreationOrder() {
	s.random.QueueDigits("1", "2", "3")
	s.session.CreateRole(testGuild, "Charlie", model.Color{})
	s.session.CreateRole(testGuild, "Alpha", model.Color{})
	s.session.CreateRole(testGuild, "Bravo", model.Color{})

	roles, err := s.session.GuildRoles(s.ctx, testGuild)
	s.Require().NoError(err)
	s.Require().Len(roles, 3)
	s.Equal("Charlie", roles[0].Name)
	s.Equal("Alpha", roles[1].Name)
	s.Equal("Bravo", roles[2].Name)
}

func (s *LocalSessionSuite) TestGuildRolesUnknownGuild() {
	_, err := s.session.GuildRoles(s.ctx, "nope")
	s.ErrorIs(err, model.ErrGuildNotFound)
}

func (s *LocalSessionSuite) TestHasRole() {
	role := s.session.CreateRole(testGuild, "Host", model.Color{})
	s.session.GrantRole(testGuild, "user-1", role.ID)

	has, err := s.session.HasRole(s.ctx, testGuild, "user-1", role.ID)
	s.Require().NoError(err)
	s.True(has)

	has, err = s.session.HasRole(s.ctx, testGuild, "user-2", role.ID)
	s.Require().NoError(err)
	s.False(has)
}

func (s *LocalSessionSuite) TestHasRoleUnknownGuild() {
	_, err := s.session.HasRole(s.ctx, "nope", "user-1", "role-1")
	s.ErrorIs(err, model.ErrGuildNotFound)
}

func (s *LocalSessionSuite) TestEditRoleName() {
	role := s.session.CreateRole(testGuild, "Red Team", model.Color{R: 200})

	name := "Crimson Team"
	updated, err := s.session.EditRole(s.ctx, testGuild, role.ID, gateway.RoleEdit{Name: &name})
	s.Require().NoError(err)
	s.Equal("Crimson Team", updated.Name)
	s.Equal(model.Color{R: 200}, updated.Color)

	roles, err := s.session.GuildRoles(s.ctx, testGuild)
	s.Require().NoError(err)
	s.Equal("Crimson Team", roles[0].Name)
}

func (s *LocalSessionSuite) TestEditRoleColor() {
	role := s.session.CreateRole(testGuild, "Red Team", model.Color{R: 200})

	color := model.Color{R: 1, G: 2, B: 3}
	updated, err := s.session.EditRole(s.ctx, testGuild, role.ID, gateway.RoleEdit{Color: &color})
	s.Require().NoError(err)
	s.Equal("Red Team", updated.Name)
	s.Equal(color, updated.Color)
}

func (s *LocalSessionSuite) TestEditRoleUnknownRole() {
	s.session.CreateRole(testGuild, "Red Team", model.Color{})

	name := "x"
	_, err := s.session.EditRole(s.ctx, testGuild, "missing", gateway.RoleEdit{Name: &name})
	s.ErrorIs(err, model.ErrRoleNotFound)
}

func (s *LocalSessionSuite) TestEditRoleUnknownGuild() {
	name := "x"
	_, err := s.session.EditRole(s.ctx, "nope", "role-1", gateway.RoleEdit{Name: &name})
	s.ErrorIs(err, model.ErrGuildNotFound)
}

func (s *LocalSessionSuite) TestRegisterCommands() {
	commands := []gateway.CommandSpec{{Name: "ping"}}
	s.Require().NoError(s.session.RegisterCommands(s.ctx, testGuild, commands))

	registered := s.session.RegisteredCommands(testGuild)
	s.Require().Len(registered, 1)
	s.Equal("ping", registered[0].Name)

	s.Nil(s.session.RegisteredCommands("nope"))
}

func (s *LocalSessionSuite) TestRespondRecords() {
	inv := &model.Invocation{ID: "inv-1", GuildID: testGuild, Command: "ping"}
	s.Require().NoError(s.session.Respond(s.ctx, inv, "pong"))

	responses := s.session.Responses()
	s.Require().Len(responses, 1)
	s.Equal("inv-1", responses[0].InvocationID)
	s.Equal("pong", responses[0].Content)
}

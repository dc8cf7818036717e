package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/oakhall/teambot/internal/api"
	"github.com/oakhall/teambot/internal/api/apierr"
	"github.com/oakhall/teambot/internal/api/handler"
	"github.com/oakhall/teambot/internal/factory"
	"github.com/oakhall/teambot/internal/model"
	"github.com/oakhall/teambot/internal/testutil"
)

const (
	testGuild   = model.GuildID("guild-1")
	testHostID  = model.UserID("user-host")
	testChannel = model.ChannelID("chan-general")
)

type APISuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.app = factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:     testutil.NopLogger(),
		Registry:   s.app.Registry,
		Gate:       s.app.Gate,
		Dispatcher: s.app.Dispatcher,
	})
	s.server = httptest.NewServer(router)
}

func (s *APISuite) TearDownTest() {
	s.server.Close()
}

func (s *APISuite) get(path string, out any) *http.Response {
	resp, err := http.Get(s.server.URL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()
	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (s *APISuite) postJSON(path string, body any, out any) *http.Response {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	resp, err := http.Post(s.server.URL+path, "application/json", bytes.NewReader(payload))
	s.Require().NoError(err)
	defer resp.Body.Close()
	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (s *APISuite) TestHealth() {
	var body map[string]string
	resp := s.get("/api/v1/health", &body)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("ok", body["status"])
}

func (s *APISuite) TestListTeamsEmpty() {
	var body handler.TeamList
	resp := s.get("/api/v1/teams", &body)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Empty(body.Teams)
}

func (s *APISuite) TestListTeams() {
	s.app.Registry.Create(testChannel, model.Role{ID: "r1", Name: "Red Team"})

	var body handler.TeamList
	resp := s.get("/api/v1/teams", &body)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Require().Len(body.Teams, 1)
	s.Equal(testChannel, body.Teams[0].Channel)
}

func (s *APISuite) TestGetTeam() {
	s.app.Registry.Create(testChannel, model.Role{ID: "r1", Name: "Red Team"})
	s.app.Registry.AdjustScore(testChannel, 3)

	var team model.Team
	resp := s.get("/api/v1/teams/"+string(testChannel), &team)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("Red Team", team.Role.Name)
	s.Equal(int64(3), team.Score)
}

func (s *APISuite) TestGetTeamNotFound() {
	var body apierr.ErrorResponse
	resp := s.get("/api/v1/teams/nope", &body)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal(apierr.CodeTeamNotFound, body.Error.Code)
}

func (s *APISuite) TestHostRole() {
	hostRole := s.app.SeedGuild(testGuild, testHostID)

	var body handler.HostRoleInfo
	resp := s.get(fmt.Sprintf("/api/v1/guilds/%s/host-role", testGuild), &body)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(testGuild, body.Guild)
	s.Equal(hostRole.ID, body.Role)
}

func (s *APISuite) TestHostRoleNotConfigured() {
	var body apierr.ErrorResponse
	resp := s.get("/api/v1/guilds/unseeded/host-role", &body)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal(apierr.CodeHostRoleNotConfigured, body.Error.Code)
}

func (s *APISuite) TestInvokePing() {
	inv := model.Invocation{ID: "inv-1", GuildID: testGuild, Command: "ping"}

	var body handler.InvokeResult
	resp := s.postJSON("/api/v1/invoke", inv, &body)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("pong", body.Response)
}

func (s *APISuite) TestInvokeCreateTeamAsHost() {
	s.app.SeedGuild(testGuild, testHostID)
	teamRole := s.app.Local.CreateRole(testGuild, "Red Team", model.Color{R: 200})

	inv := model.Invocation{
		ID:        "inv-1",
		GuildID:   testGuild,
		ChannelID: testChannel,
		Member: &model.Member{
			User: model.User{ID: testHostID, Username: "alice", Discriminator: "0420"},
		},
		Command: "team",
		Options: []model.Option{
			{
				Name: "create",
				Type: model.OptionTypeSubCommand,
				Options: []model.Option{
					{Name: "channel", Type: model.OptionTypeChannel, Channel: testChannel},
					{Name: "role", Type: model.OptionTypeRole, Role: &teamRole},
				},
			},
		},
	}

	var body handler.InvokeResult
	resp := s.postJSON("/api/v1/invoke", inv, &body)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("Created new team", body.Response)

	team, ok := s.app.Registry.Get(testChannel)
	s.Require().True(ok)
	s.Equal(teamRole.ID, team.Role.ID)
}

func (s *APISuite) TestInvokeMissingCommand() {
	var body apierr.ErrorResponse
	resp := s.postJSON("/api/v1/invoke", model.Invocation{ID: "inv-1"}, &body)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal(apierr.CodeInvalidRequest, body.Error.Code)
}

func (s *APISuite) TestInvokeMalformedBody() {
	resp, err := http.Post(s.server.URL+"/api/v1/invoke", "application/json", bytes.NewReader([]byte("{not json")))
	s.Require().NoError(err)
	defer resp.Body.Close()

	var body apierr.ErrorResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal(apierr.CodeInvalidRequest, body.Error.Code)
}

func (s *APISuite) TestRequestIDHeader() {
	resp := s.get("/api/v1/health", nil)
	s.NotEmpty(resp.Header.Get("X-Request-Id"))
}

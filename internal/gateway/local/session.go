// Package local provides an in-memory gateway Session used for local
// development and integration tests. It models just enough of the
// platform (guilds, roles, memberships) for the core to run end to end
// without a real gateway connection.
package local

import (
	"context"
	"sync"

	"github.com/oakhall/teambot/internal/dependencies/random"
	"github.com/oakhall/teambot/internal/gateway"
	"github.com/oakhall/teambot/internal/model"
)

const roleIDLength = 18

type guildState struct {
	roles      map[model.RoleID]model.Role
	roleOrder  []model.RoleID
	membership map[model.UserID]map[model.RoleID]bool
	commands   []gateway.CommandSpec
}

// Session is an in-memory implementation of gateway.Session
type Session struct {
	mu        sync.Mutex
	random    random.Random
	guilds    map[model.GuildID]*guildState
	responses []DeliveredResponse
}

// DeliveredResponse is one response recorded by Respond
type DeliveredResponse struct {
	InvocationID string
	Content      string
}

// Ensure Session implements the gateway interface
var _ gateway.Session = (*Session)(nil)

// NewSession creates an empty local session
func NewSession(rnd random.Random) *Session {
	return &Session{
		random: rnd,
		guilds: make(map[model.GuildID]*guildState),
	}
}

func (s *Session) guild(id model.GuildID) *guildState {
	g, ok := s.guilds[id]
	if !ok {
		g = &guildState{
			roles:      make(map[model.RoleID]model.Role),
			membership: make(map[model.UserID]map[model.RoleID]bool),
		}
		s.guilds[id] = g
	}
	return g
}

// CreateRole mints a role in the guild and returns it
func (s *Session) CreateRole(guild model.GuildID, name string, color model.Color) model.Role {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.guild(guild)
	role := model.Role{
		ID:    model.RoleID(s.random.Digits(roleIDLength)),
		Name:  name,
		Color: color,
	}
	g.roles[role.ID] = role
	g.roleOrder = append(g.roleOrder, role.ID)
	return role
}

// GrantRole adds the role to the user's memberships in the guild
func (s *Session) GrantRole(guild model.GuildID, user model.UserID, role model.RoleID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.guild(guild)
	if g.membership[user] == nil {
		g.membership[user] = make(map[model.RoleID]bool)
	}
	g.membership[user][role] = true
}

// HasRole reports whether the user holds the role
func (s *Session) HasRole(_ context.Context, guild model.GuildID, user model.UserID, role model.RoleID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guilds[guild]
	if !ok {
		return false, model.ErrGuildNotFound
	}
	return g.membership[user][role], nil
}

// EditRole applies a partial update to a role
func (s *Session) EditRole(_ context.Context, guild model.GuildID, role model.RoleID, edit gateway.RoleEdit) (model.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guilds[guild]
	if !ok {
		return model.Role{}, model.ErrGuildNotFound
	}
	r, ok := g.roles[role]
	if !ok {
		return model.Role{}, model.ErrRoleNotFound
	}
	if edit.Name != nil {
		r.Name = *edit.Name
	}
	if edit.Color != nil {
		r.Color = *edit.Color
	}
	g.roles[role] = r
	return r, nil
}

// GuildRoles lists the guild's roles in creation order
func (s *Session) GuildRoles(_ context.Context, guild model.GuildID) ([]model.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guilds[guild]
	if !ok {
		return nil, model.ErrGuildNotFound
	}
	roles := make([]model.Role, 0, len(g.roleOrder))
	for _, id := range g.roleOrder {
		roles = append(roles, g.roles[id])
	}
	return roles, nil
}

// RegisterCommands stores the registered schema for the guild
func (s *Session) RegisterCommands(_ context.Context, guild model.GuildID, commands []gateway.CommandSpec) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.guild(guild).commands = commands
	return nil
}

// RegisteredCommands returns the schema last registered for the guild
func (s *Session) RegisteredCommands(guild model.GuildID) []gateway.CommandSpec {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guilds[guild]
	if !ok {
		return nil
	}
	return g.commands
}

// Respond records the response for later inspection
func (s *Session) Respond(_ context.Context, inv *model.Invocation, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responses = append(s.responses, DeliveredResponse{
		InvocationID: inv.ID,
		Content:      content,
	})
	return nil
}

// Responses returns all responses delivered so far
func (s *Session) Responses() []DeliveredResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]DeliveredResponse, len(s.responses))
	copy(out, s.responses)
	return out
}

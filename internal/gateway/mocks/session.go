package mocks

import (
	"context"
	"sync"

	"github.com/oakhall/teambot/internal/gateway"
	"github.com/oakhall/teambot/internal/model"
)

// RoleEditCall records one EditRole invocation
type RoleEditCall struct {
	Guild model.GuildID
	Role  model.RoleID
	Edit  gateway.RoleEdit
}

// Response records one delivered response
type Response struct {
	InvocationID string
	Content      string
}

// MockSession is a scriptable Session for unit tests. Zero value denies
// all membership checks and succeeds on everything else.
type MockSession struct {
	mu sync.Mutex

	// HasRoleResult is returned from HasRole when HasRoleErr is nil
	HasRoleResult bool
	HasRoleErr    error

	// EditRoleErr, when set, fails EditRole
	EditRoleErr error

	// RespondErr, when set, fails Respond
	RespondErr error

	// Roles is returned from GuildRoles
	Roles []model.Role

	RoleEdits  []RoleEditCall
	Responses  []Response
	Registered map[model.GuildID][]gateway.CommandSpec
}

// Ensure MockSession implements Session
var _ gateway.Session = (*MockSession)(nil)

// NewMockSession creates a new MockSession
func NewMockSession() *MockSession {
	return &MockSession{
		Registered: make(map[model.GuildID][]gateway.CommandSpec),
	}
}

// HasRole returns the scripted result
func (s *MockSession) HasRole(_ context.Context, _ model.GuildID, _ model.UserID, _ model.RoleID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.HasRoleErr != nil {
		return false, s.HasRoleErr
	}
	return s.HasRoleResult, nil
}

// EditRole records the call and echoes the edit back as the updated role
func (s *MockSession) EditRole(_ context.Context, guild model.GuildID, role model.RoleID, edit gateway.RoleEdit) (model.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.EditRoleErr != nil {
		return model.Role{}, s.EditRoleErr
	}
	s.RoleEdits = append(s.RoleEdits, RoleEditCall{Guild: guild, Role: role, Edit: edit})

	updated := model.Role{ID: role}
	if edit.Name != nil {
		updated.Name = *edit.Name
	}
	if edit.Color != nil {
		updated.Color = *edit.Color
	}
	return updated, nil
}

// GuildRoles returns the scripted role list
func (s *MockSession) GuildRoles(_ context.Context, _ model.GuildID) ([]model.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	roles := make([]model.Role, len(s.Roles))
	copy(roles, s.Roles)
	return roles, nil
}

// RegisterCommands records the registered schema
func (s *MockSession) RegisterCommands(_ context.Context, guild model.GuildID, commands []gateway.CommandSpec) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Registered[guild] = commands
	return nil
}

// Respond records the delivered response
func (s *MockSession) Respond(_ context.Context, inv *model.Invocation, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.RespondErr != nil {
		return s.RespondErr
	}
	s.Responses = append(s.Responses, Response{InvocationID: inv.ID, Content: content})
	return nil
}

// LastResponse returns the most recently delivered response, or false if
// nothing was delivered
func (s *MockSession) LastResponse() (Response, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Responses) == 0 {
		return Response{}, false
	}
	return s.Responses[len(s.Responses)-1], true
}

// Package gateway defines the seam between the core and the chat-platform
// adapter. The core never talks to the platform directly: membership
// checks, role mutation, command registration and response delivery all
// go through a Session.
package gateway

import (
	"context"

	"github.com/oakhall/teambot/internal/model"
)

// RoleEdit describes a partial update to a platform role. Nil fields are
// left unchanged.
type RoleEdit struct {
	Name  *string
	Color *model.Color
}

// CommandSpec describes one command to register with the platform for a
// guild. Registration is a configuration artifact: the platform validates
// incoming invocations against this schema before the core sees them.
type CommandSpec struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Options     []OptionSpec `json:"options,omitempty"`
}

// OptionSpec describes one option (possibly a nested subcommand) of a
// registered command
type OptionSpec struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Type        model.OptionType `json:"type"`
	Required    bool             `json:"required,omitempty"`
	Options     []OptionSpec     `json:"options,omitempty"`
}

// Session is the platform connection the core borrows for a single
// operation. Implementations own retries, rate limits and wire concerns;
// the core treats every call as a plain fallible RPC.
type Session interface {
	// HasRole reports whether the user currently holds the role in the guild
	HasRole(ctx context.Context, guild model.GuildID, user model.UserID, role model.RoleID) (bool, error)

	// EditRole applies a partial update to a role and returns the updated role
	EditRole(ctx context.Context, guild model.GuildID, role model.RoleID, edit RoleEdit) (model.Role, error)

	// GuildRoles lists the guild's roles
	GuildRoles(ctx context.Context, guild model.GuildID) ([]model.Role, error)

	// RegisterCommands registers the command schema for the guild
	RegisterCommands(ctx context.Context, guild model.GuildID, commands []CommandSpec) error

	// Respond delivers the response text for an invocation
	Respond(ctx context.Context, inv *model.Invocation, content string) error
}

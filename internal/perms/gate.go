// Package perms decides whether an actor may perform a privileged
// operation. Membership itself is a platform query; the gate owns the
// decision point and the per-guild host role configuration.
package perms

import (
	"context"
	"log/slog"
	"sync"

	"github.com/oakhall/teambot/internal/gateway"
	"github.com/oakhall/teambot/internal/model"
)

// HostRoleName is the default display name that designates the host role.
// Matching is case-sensitive with no normalization.
const HostRoleName = "Host"

// Config holds gate configuration
type Config struct {
	// RoleName is the role display name that designates hosts
	RoleName string
}

// DefaultConfig returns the default gate configuration
func DefaultConfig() Config {
	return Config{
		RoleName: HostRoleName,
	}
}

// Gate authorizes privileged operations against each guild's host role.
// Host roles are recorded per guild, so serving multiple guilds from one
// process never clobbers another guild's configuration.
type Gate struct {
	mu        sync.RWMutex
	roleName  string
	hostRoles map[model.GuildID]model.RoleID
	logger    *slog.Logger
}

// NewGate creates a Gate with no host roles configured
func NewGate(cfg Config, logger *slog.Logger) *Gate {
	if cfg.RoleName == "" {
		cfg.RoleName = HostRoleName
	}
	return &Gate{
		roleName:  cfg.RoleName,
		hostRoles: make(map[model.GuildID]model.RoleID),
		logger:    logger,
	}
}

// RoleName returns the role display name this gate resolves hosts by
func (g *Gate) RoleName() string {
	return g.roleName
}

// SetHostRole records the guild's host role. Later syncs overwrite
// earlier ones (last sync wins).
func (g *Gate) SetHostRole(guild model.GuildID, role model.RoleID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.hostRoles[guild] = role
}

// HostRole returns the guild's host role, or false if never resolved
func (g *Gate) HostRole(guild model.GuildID) (model.RoleID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	role, ok := g.hostRoles[guild]
	return role, ok
}

// Sync scans the guild's role list for the host role and records it.
// If no role carries the configured name the guild stays unconfigured
// and privileged commands degrade until a later sync finds one.
func (g *Gate) Sync(guild model.GuildID, roles []model.Role) {
	role, ok := FindHostRole(roles, g.roleName)
	if !ok {
		g.logger.Warn("no host role in guild role list",
			slog.String("guild", string(guild)),
			slog.String("wanted", g.roleName),
		)
		return
	}

	g.SetHostRole(guild, role)
	g.logger.Info("host role resolved",
		slog.String("guild", string(guild)),
		slog.String("role", string(role)),
	)
}

// Authorize reports whether the user may perform a privileged operation
// in the guild. It returns model.ErrHostRoleNotConfigured when the host
// role was never resolved (deny, but distinguishable from a denial),
// model.ErrPermissionDenied when the membership check says no, and the
// gateway error when the check itself fails.
func (g *Gate) Authorize(ctx context.Context, session gateway.Session, guild model.GuildID, user model.UserID) error {
	hostRole, ok := g.HostRole(guild)
	if !ok {
		return model.ErrHostRoleNotConfigured
	}

	isHost, err := session.HasRole(ctx, guild, user, hostRole)
	if err != nil {
		return err
	}
	if !isHost {
		return model.ErrPermissionDenied
	}
	return nil
}

// FindHostRole returns the first role whose name matches name exactly
func FindHostRole(roles []model.Role, name string) (model.RoleID, bool) {
	for _, role := range roles {
		if role.Name == name {
			return role.ID, true
		}
	}
	return "", false
}

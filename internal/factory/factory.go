// Package factory wires the application components together.
package factory

import (
	"io"
	"log/slog"

	"github.com/oakhall/teambot/internal/dependencies/clock"
	"github.com/oakhall/teambot/internal/dependencies/random"
	"github.com/oakhall/teambot/internal/dispatch"
	"github.com/oakhall/teambot/internal/gateway"
	"github.com/oakhall/teambot/internal/gateway/local"
	"github.com/oakhall/teambot/internal/perms"
	"github.com/oakhall/teambot/internal/registry"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Gateway session (a real platform adapter, or the local one)
	Session gateway.Session

	// Core components
	Registry   *registry.Registry
	Gate       *perms.Gate
	Dispatcher *dispatch.Dispatcher
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Session is the gateway session (optional)
	// If nil, an in-memory local session is used
	Session gateway.Session
	// HostRoleName overrides the role name that designates hosts (optional)
	// If empty, perms.HostRoleName is used
	HostRoleName string
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()
	rnd := random.New()

	session := cfg.Session
	if session == nil {
		session = local.NewSession(rnd)
	}

	permsCfg := perms.DefaultConfig()
	if cfg.HostRoleName != "" {
		permsCfg.RoleName = cfg.HostRoleName
	}

	return newWithDependencies(session, clk, rnd, permsCfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(session gateway.Session, clk clock.Clock, rnd random.Random, permsCfg perms.Config, logger *slog.Logger) *App {
	reg := registry.New(clk)
	gate := perms.NewGate(permsCfg, logger)
	dispatcher := dispatch.NewDispatcher(reg, gate, session, logger)

	return &App{
		Clock:      clk,
		Random:     rnd,
		Session:    session,
		Registry:   reg,
		Gate:       gate,
		Dispatcher: dispatcher,
	}
}

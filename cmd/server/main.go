package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/oakhall/teambot/internal/api"
	"github.com/oakhall/teambot/internal/config"
	"github.com/oakhall/teambot/internal/factory"
	"github.com/oakhall/teambot/internal/gateway/local"
	"github.com/oakhall/teambot/internal/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	// Create application factory. Without a platform adapter configured
	// the app runs against the in-memory local gateway; invocations
	// arrive through the debug endpoint.
	app := factory.New(factory.Config{
		Logger:       logger,
		HostRoleName: cfg.HostRoleName,
	})

	// Seed a development guild if configured
	if cfg.DevGuild != "" {
		seedDevGuild(app, cfg)
		logger.Info("seeded development guild", slog.String("guild", cfg.DevGuild))
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:     logger,
		Registry:   app.Registry,
		Gate:       app.Gate,
		Dispatcher: app.Dispatcher,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// seedDevGuild creates a Host role in the local gateway's development
// guild and runs the sync path, so privileged commands work out of the box
func seedDevGuild(app *factory.App, cfg config.Config) {
	session, ok := app.Session.(*local.Session)
	if !ok {
		return
	}

	ctx := context.Background()
	guild := model.GuildID(cfg.DevGuild)

	hostRole := session.CreateRole(guild, app.Gate.RoleName(), model.Color{})
	if cfg.DevHostUser != "" {
		session.GrantRole(guild, model.UserID(cfg.DevHostUser), hostRole.ID)
	}

	roles, err := session.GuildRoles(ctx, guild)
	if err != nil {
		return
	}
	app.Dispatcher.HandleGuildSync(ctx, guild, roles)
}

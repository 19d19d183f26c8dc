package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ericogr/laro-arcade/internal/api"
	"github.com/ericogr/laro-arcade/internal/constants"
	"github.com/ericogr/laro-arcade/internal/logging"
	"github.com/ericogr/laro-arcade/internal/room"
	"github.com/ericogr/laro-arcade/internal/service"
	"github.com/ericogr/laro-arcade/internal/version"
	"golang.org/x/oauth2"
)

func main() {
	env := loadEnvOrExit()
	warnMissingEnv(env)

	cfg := loadConfigOrExit(env.ConfigPath)
	repo := createRepositoryOrExit(env.DBPath)

	rooms := room.NewManager(service.Factory(cfg.Games), room.Options{
		TickHz:      cfg.Server.TickHz,
		BroadcastHz: cfg.Server.BroadcastHz,
		OnFinish:    service.ResultRecorder(repo, cfg.Games),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Background reaper: stop rooms nobody has played in for a while so
	// abandoned tabs do not keep goroutines ticking.
	service.StartIdleReaper(ctx, rooms, cfg.Server.ReapEvery.Duration, cfg.Server.IdleTimeout.Duration)

	sessions, err := api.NewSessions(env.SessionSecret, env.SecureCookie)
	if err != nil {
		logging.Fatal("Failed to initialize sessions", err, nil)
	}
	var googleConf *oauth2.Config
	if env.GoogleEnabled() {
		googleConf = api.NewGoogleConfig(env.GoogleClientID, env.GoogleClientSecret)
	}
	handler := api.NewGameHandler(repo, rooms, env.AllowedOrigins)
	authHandler := api.NewAuthHandler(repo, sessions, googleConf)
	router := api.NewRouter(handler, authHandler, sessions)

	// LARO_ADDR overrides the configured address.
	addr := cfg.Server.Address
	if env.Addr != "" {
		addr = env.Addr
	}
	logging.Info("Starting laro-arcade", logging.Fields{"version": version.Current().String(), constants.LogFieldAddr: addr, constants.LogFieldDB: env.DBPath})
	if err := serve(ctx, addr, router, rooms); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

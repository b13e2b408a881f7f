// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/veilpost/veilpost-go/internal/adapter"
	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/crypto"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/service"
	"github.com/veilpost/veilpost-go/internal/store"
	"github.com/veilpost/veilpost-go/internal/tui"
	"github.com/veilpost/veilpost-go/internal/workers"
	"github.com/veilpost/veilpost-go/models"
)

// Startup probe backoff. Fibonacci over a half-second base keeps the
// total wait under ten seconds when the server never answers.
const (
	versionProbeRetries = 4
	versionProbeBase    = 500 * time.Millisecond
)

// App is the client application: services, storage, background workers,
// and the terminal UI assembled into one runnable unit.
type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	api      adapter.AccountAPI
	runner   *workers.DeriveRunner
	workers  *workers.Workers
	services *service.ClientServices
	ui       *tui.TUI
}

// NewApp assembles the client from configuration. Local persistence (the
// keyring session store and the SQLite login history) is optional: when it
// cannot be opened the client still runs, it just forgets everything on
// exit. A bad config or an unusable server address is fatal.
func NewApp(info models.BuildInfo, log *logger.Logger) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Warn().Err(err).Msg("local persistence unavailable, sessions will not survive restarts")
		storages = &store.ClientStorages{}
	}

	api, err := adapter.NewHTTPAccountAPI(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("account API: %w", err)
	}

	runner := workers.NewDeriveRunner(crypto.NewKeyDeriver(), cfg.Workers.DeriveQueueSize, log)
	services := service.NewClientServices(api, storages.Secrets, storages.Accounts, runner, cfg.App, log)

	return &App{
		cfg:      cfg,
		logger:   log,
		api:      api,
		runner:   runner,
		workers:  workers.NewWorkers(runner),
		services: services,
		ui:       tui.New(services, storages.Accounts, info, log),
	}, nil
}

// Run starts the derivation worker, probes the server, restores any
// persisted session, and hands the terminal to the UI. Blocks until the
// user quits or the process receives a termination signal.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	a.workers.Run()
	defer a.runner.Stop()

	a.probeServer(ctx)
	a.restoreSession(ctx)

	return a.ui.Run(ctx)
}

// probeServer fetches the server build metadata with a short backoff so a
// server that is still starting does not greet the user with an error.
// Failure only logs: every flow reports connectivity problems on its own.
func (a *App) probeServer(ctx context.Context) {
	backoff := retry.WithMaxRetries(versionProbeRetries, retry.NewFibonacci(versionProbeBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		info, err := a.api.Version(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		a.logger.Info().
			Str("server_version", info.Version).
			Msg("server reachable")
		return nil
	})
	if err != nil {
		a.logger.Warn().Err(err).
			Str("address", a.cfg.Adapter.HTTPAddress).
			Msg("server did not answer the version probe")
	}
}

// restoreSession tries to pick up the session persisted by a previous run.
// The UI checks the session manager afterwards to choose its start screen.
func (a *App) restoreSession(ctx context.Context) {
	session, err := a.services.Login.Restore(ctx)
	switch {
	case err == nil:
		a.logger.Info().Str("email", session.Email).Msg("session restored")
	case errors.Is(err, service.ErrNoSession):
		a.logger.Debug().Msg("no persisted session")
	default:
		a.logger.Warn().Err(err).Msg("session restore failed")
	}
}

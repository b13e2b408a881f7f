// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/store"
	"github.com/veilpost/veilpost-go/models"
)

// Services bundles the development server's service layer.
type Services struct {
	AccountService AccountService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the server services over the given stores. info is
// the binary's build metadata; a configured version takes precedence.
func NewServices(storages store.Storages, cfg *config.ServerConfig, info models.BuildInfo, log *logger.Logger) (*Services, error) {
	if cfg.Version != "" {
		info.Version = cfg.Version
	}
	appInfo, err := NewAppInfoService(info, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		AccountService: NewAccountService(storages.Directory, cfg.Auth, log),
		AuthService:    NewAuthService(storages.Directory, storages.Challenges, cfg.Auth, log),
		AppInfoService: appInfo,
	}, nil
}

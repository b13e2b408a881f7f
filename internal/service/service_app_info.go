// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package service

import (
	"context"

	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/models"
)

type appInfoService struct {
	info models.BuildInfo

	log *logger.Logger
}

// NewAppInfoService wires an [AppInfoService] for a build. The version
// must be set; date and commit may be absent on local builds.
func NewAppInfoService(info models.BuildInfo, log *logger.Logger) (AppInfoService, error) {
	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: info,
		log:  log,
	}, nil
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.BuildInfo {
	return s.info
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package config

import "strings"

// validate checks that the client view satisfies all invariants before it
// is used at startup. Defaults have already been applied, so a failure
// here means a source explicitly set a bad value.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Keyring.ServiceName == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.MinPasswordScore < 0 || cfg.App.MinPasswordScore > 4 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.DeriveQueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validate checks the development server view.
func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.HashKey == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}

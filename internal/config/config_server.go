package config

import (
	"fmt"
	"time"
)

// Development server defaults. The sign and hash keys are deliberately
// recognizable so nobody mistakes an unconfigured instance for a hardened
// one.
const (
	defaultServerAddress = "localhost:8080"
	defaultServerTimeout = 30 * time.Second
	defaultTokenIssuer   = "veilpost"
	defaultTokenDuration = 720 * time.Hour
	defaultOTPIssuer     = "Veilpost"
	defaultDevSignKey    = "dev-insecure-token-sign-key"
	defaultDevVerifyKey  = "dev-insecure-verification-key"
)

// ServerAuth holds token and verification settings for the development
// server.
type ServerAuth struct {
	// TokenSignKey signs and verifies session JWTs.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the default session token lifetime.
	TokenDuration time.Duration
	// OTPIssuer is the issuer label in TOTP provisioning URIs.
	OTPIssuer string
	// HashKey keys the HMAC over address verification tokens.
	HashKey string
}

// ServerConfig is the development server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// Auth contains token and verification settings.
	Auth ServerAuth
	// Version is reported by the /api/version endpoint.
	Version string
}

// GetServerConfig builds and validates the development server config view
// from the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		Auth: ServerAuth{
			TokenSignKey:  cfg.Auth.TokenSignKey,
			TokenIssuer:   cfg.Auth.TokenIssuer,
			TokenDuration: cfg.Auth.TokenDuration,
			OTPIssuer:     cfg.Auth.OTPIssuer,
			HashKey:       cfg.Auth.HashKey,
		},
		Version: cfg.App.Version,
	}
	serverCfg.applyDefaults()

	return serverCfg, serverCfg.validate()
}

func (cfg *ServerConfig) applyDefaults() {
	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = defaultServerAddress
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultServerTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.Auth.OTPIssuer == "" {
		cfg.Auth.OTPIssuer = defaultOTPIssuer
	}
	if cfg.Auth.TokenSignKey == "" {
		cfg.Auth.TokenSignKey = defaultDevSignKey
	}
	if cfg.Auth.HashKey == "" {
		cfg.Auth.HashKey = defaultDevVerifyKey
	}
}

package config

import (
	"fmt"
	"time"
)

// Client defaults applied to fields no configuration source set.
const (
	defaultAdapterAddress   = "http://localhost:8080"
	defaultAdapterTimeout   = 15 * time.Second
	defaultClientDSN        = "veilpost-client.db"
	defaultKeyringService   = "veilpost"
	defaultMinPasswordScore = 3
	defaultDeriveQueueSize  = 4
)

// ClientApp holds client-side application settings derived from the
// shared structured config.
type ClientApp struct {
	// MinPasswordScore is the minimum acceptable zxcvbn score (0..4)
	// a registration password must reach.
	MinPasswordScore int
	// CaptchaRequired makes registration and login refuse to start
	// without a captcha token.
	CaptchaRequired bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the account server endpoint used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite path used for the known-accounts database.
	DSN string
}

// ClientKeyring contains OS keyring settings for the session secret store.
type ClientKeyring struct {
	// ServiceName is the keyring service label.
	ServiceName string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Keyring holds OS keyring settings.
	Keyring ClientKeyring
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// DeriveQueueSize is the buffer size of the derivation worker's
	// job queue.
	DeriveQueueSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the account server endpoint and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the
// fields relevant to the client runtime, fills unset fields with
// defaults, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			MinPasswordScore: cfg.App.MinPasswordScore,
			CaptchaRequired:  cfg.App.CaptchaRequired,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Keyring: ClientKeyring{
				ServiceName: cfg.Storage.Keyring.ServiceName,
			},
		},
		Workers: ClientWorkers{DeriveQueueSize: cfg.Workers.DeriveQueueSize},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

// applyDefaults fills every unset field so that a zero-config invocation
// talks to a local development server out of the box.
func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultClientDSN
	}
	if cfg.Storage.Keyring.ServiceName == "" {
		cfg.Storage.Keyring.ServiceName = defaultKeyringService
	}
	if cfg.App.MinPasswordScore == 0 {
		cfg.App.MinPasswordScore = defaultMinPasswordScore
	}
	if cfg.Workers.DeriveQueueSize == 0 {
		cfg.Workers.DeriveQueueSize = defaultDeriveQueueSize
	}
}

package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilpost/veilpost-go/internal/config"
	"github.com/veilpost/veilpost-go/internal/logger"
)

func TestNewServer_RequiresAddress(t *testing.T) {
	_, err := NewServer(http.NewServeMux(), &config.ServerConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoAddressConfigured)

	_, err = NewServer(http.NewServeMux(), nil, logger.Nop())
	assert.ErrorIs(t, err, errNoAddressConfigured)
}

func TestNewServer_BindsConfiguredAddress(t *testing.T) {
	cfg := &config.ServerConfig{
		HTTPAddress:    "localhost:18080",
		RequestTimeout: 5 * time.Second,
	}

	srv, err := NewServer(http.NewServeMux(), cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, srv)

	dev, ok := srv.(*devServer)
	require.True(t, ok)
	assert.Equal(t, cfg.HTTPAddress, dev.http.server.Addr)
	assert.Equal(t, cfg.RequestTimeout, dev.http.server.ReadTimeout)
	assert.Equal(t, cfg.RequestTimeout, dev.http.server.WriteTimeout)
}

package client

import (
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-notes-client/internal/config"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		Adapter: config.ClientAdapter{APIURL: "http://127.0.0.1:1"},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "session.db")}},
		Cache:   config.ClientCache{Size: 8},
	}
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(testConfig(t), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.NoError(t, app.storages.Close())
}

func TestNewApp_InvalidCacheSize(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Size = -1

	app, err := NewApp(cfg, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestNewApp_InvalidAPIURL(t *testing.T) {
	cfg := testConfig(t)
	cfg.Adapter.APIURL = "://bad"

	_, err := NewApp(cfg, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)
}

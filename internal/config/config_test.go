package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")
	t.Setenv("DB_TYPE", "sqlite-pure")
	t.Setenv("DB_DATABASE", "swipefile.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 10, cfg.DBConnectionLimit)
	assert.Equal(t, "v21.0", cfg.FacebookGraphVersion)
	assert.True(t, cfg.IsFileDB())
	assert.False(t, cfg.AuthorizationEnabled())
	assert.False(t, cfg.GoogleEnabled())
}

func TestLoadRequiresDatabase(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")
	t.Setenv("DB_DATABASE", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_DATABASE")
}

func TestValidate(t *testing.T) {
	cfg := &Config{DBType: "postgres", DBDatabase: "swipe"}
	assert.ErrorContains(t, cfg.Validate(), "DB_USER")

	cfg.DBUser = "swipe"
	cfg.AuthzURL = "http://authorizer:8080"
	assert.ErrorContains(t, cfg.Validate(), "AUTHZ_CLIENT_ID")

	cfg.AuthzClientID = "client"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.ScanWorkers)
	assert.Equal(t, 1, cfg.FacebookSyncConcurrency)
}

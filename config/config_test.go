package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: lifelink
http:
  port: 8080
  timeouts:
    readTimeout: 10s
database:
  sqlite:
    path: data/test.db
secretKey:
  access: a
  refresh: r
codes:
  seedCount: 3
admin:
  emails:
    - ops@example.com
`

func writeConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv(t *testing.T) {
	writeConfig(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_SQLITE_PATH", "/var/lib/lifelink.db")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "/var/lib/lifelink.db", cfg.Database.SQLite.Path)
	assert.Equal(t, 3, cfg.Codes.SeedCount)
	assert.Equal(t, []string{"ops@example.com"}, cfg.Admin.Emails)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, defaultSQLitePath, cfg.Database.SQLite.Path)
	assert.Equal(t, "LL-", cfg.Codes.Prefix)
	assert.Equal(t, 8, cfg.Codes.Length)
	assert.Equal(t, 10, cfg.Codes.PageSize)
	assert.NotNil(t, cfg.ScanAlert)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.SecretKey.Access = "a"
		cfg.SecretKey.Refresh = "r"
		applyDefaults(cfg)

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: true},
		{name: "postgres without settings", mutate: func(c *Config) { c.Database.Driver = DriverPostgres }, wantErr: true},
		{name: "missing secret", mutate: func(c *Config) { c.SecretKey.Refresh = "" }, wantErr: true},
		{name: "alert without key", mutate: func(c *Config) { c.ScanAlert.Enabled = true }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsAdminEmail(t *testing.T) {
	cfg := &Config{}
	cfg.Admin.Emails = []string{"Ops@Example.com"}

	assert.True(t, cfg.IsAdminEmail("ops@example.com"))
	assert.False(t, cfg.IsAdminEmail("someone@example.com"))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "sqlite", c.StoreDriver)
	assert.Equal(t, "krishi.db", c.StoreDSN)
	assert.Equal(t, 7*24*time.Hour, c.SessionTTL)
	assert.Equal(t, 1500*time.Millisecond, c.LoginDelay)
	assert.Equal(t, 2*time.Second, c.SignupDelay)
	assert.Equal(t, 30*time.Second, c.SecurityCheckInterval)
	assert.Equal(t, "127.0.0.1", c.ClientIP)
	assert.True(t, c.DynamicTranslation)
}

func TestLoadConfig_NoSources(t *testing.T) {
	cfg, err := LoadConfig(nil, map[string]string{})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"store_dsn": "json.db",
		"login_delay": "0s",
		"client_ip": "10.0.0.1",
		"log_level": 0
	}`), 0o600))

	cfg, err := LoadConfig(
		[]string{"-c", path, "-d", "flag.db", "-unknown", "x"},
		map[string]string{
			"KS_STORE_DSN":   "env.db",
			"KS_CLIENT_IP":   "10.0.0.2",
			"KS_SESSION_TTL": "1h",
			"LANG":           "ml_IN.UTF-8",
		},
	)
	require.NoError(t, err)

	want := defaults()
	want.StoreDSN = "flag.db"
	want.LoginDelay = 0
	want.ClientIP = "10.0.0.2"
	want.LogLevel = 0
	want.SessionTTL = time.Hour
	want.AmbientLanguage = "ml_IN.UTF-8"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig([]string{"-c", filepath.Join(t.TempDir(), "missing.json")}, nil)
	require.Error(t, err)

	_, err = LoadConfig(nil, map[string]string{"KS_LOGIN_DELAY": "soon"})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-l", "loud"}, nil)
	require.Error(t, err)
}

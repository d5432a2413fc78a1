package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	var c Config
	c.LoadDefaults()
	return &c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ":8000", c.Addr)
	assert.Equal(t, []string{"dev-token"}, c.Tokens)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, time.Hour, c.TokenTTL)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
	assert.Empty(t, c.FixturesPath)
	require.NoError(t, c.Validate())
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.json")
	b, err := json.Marshal(map[string]any{
		"addr":      ":9000",
		"fixtures":  "/srv/fixtures.yaml",
		"tokens":    []string{"json-token"},
		"token_ttl": "30m",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	t.Setenv("PAYROLL_SERVER_ADDR", ":9100")
	t.Setenv("PAYROLL_SERVER_TOKENS", "env-a,env-b")

	cfg, err := Load([]string{"-c", path, "-s", "flag-secret", "-unrelated", "x"})
	require.NoError(t, err)

	want := defaults()
	want.Addr = ":9100"
	want.FixturesPath = "/srv/fixtures.yaml"
	want.Tokens = []string{"env-a", "env-b"}
	want.TokenTTL = 30 * time.Minute
	want.SecretKey = "flag-secret"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoad_TokenFlag(t *testing.T) {
	cfg, err := Load([]string{"-k", " a, ,b "})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, cfg.Tokens)
}

func TestValidate(t *testing.T) {
	c := defaults()
	c.TokenTTL = 0
	assert.Error(t, c.Validate())

	c = defaults()
	c.SecretKey = ""
	assert.Error(t, c.Validate())

	c = defaults()
	c.Addr = ""
	assert.Error(t, c.Validate())
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err := Load([]string{"-config", path})
	assert.Error(t, err)
}

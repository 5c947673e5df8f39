package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_grpc":       "www.example:9000",
		"database_dsn":             "postgres://elsewhere/keywarden",
		"srp_session_ttl":          "2m",
		"forgot_token_ttl":         "45m",
		"forgot_token_tries":       7,
		"confirm_sessions_enabled": false,
		"confirm_sample_rate":      0.25,
		"min_password_score":       3,
		"blocker_endpoint":         "http://blocker:7000",
		"cas_max_attempts":         9,
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{ConfirmSessionsEnabled: true}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://elsewhere/keywarden", cfg.DatabaseDSN)
		assert.Equal(t, 2*time.Minute, cfg.SRPSessionTTL)
		assert.Equal(t, 45*time.Minute, cfg.ForgotTokenTTL)
		assert.Equal(t, 7, cfg.ForgotTokenTries)
		assert.Equal(t, false, cfg.ConfirmSessionsEnabled)
		assert.Equal(t, 0.25, cfg.ConfirmSampleRate)
		assert.Equal(t, 3, cfg.MinPasswordScore)
		assert.Equal(t, "http://blocker:7000", cfg.BlockerEndpoint)
		assert.Equal(t, 9, cfg.CASMaxAttempts)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			EndpointAddrGRPC:       "defaults:1234",
			DatabaseDSN:            "postgres://local/keywarden",
			SRPSessionTTL:          5 * time.Minute,
			ForgotTokenTTL:         15 * time.Minute,
			ForgotTokenTries:       3,
			ConfirmSessionsEnabled: true,
			ConfirmSampleRate:      0.1,
			MinPasswordScore:       2,
			BlockerEndpoint:        "http://blocker",
			CASMaxAttempts:         5,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://local/keywarden", cfg.DatabaseDSN)
		assert.Equal(t, 5*time.Minute, cfg.SRPSessionTTL)
		assert.Equal(t, 15*time.Minute, cfg.ForgotTokenTTL)
		assert.Equal(t, 3, cfg.ForgotTokenTries)
		assert.Equal(t, true, cfg.ConfirmSessionsEnabled)
		assert.Equal(t, 0.1, cfg.ConfirmSampleRate)
		assert.Equal(t, 2, cfg.MinPasswordScore)
		assert.Equal(t, "http://blocker", cfg.BlockerEndpoint)
		assert.Equal(t, 5, cfg.CASMaxAttempts)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

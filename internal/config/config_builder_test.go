package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_FirstSourceWins verifies the merge priority: a field set by an
// earlier source is not overridden by a later one.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:1111"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:2222", RequestTimeout: 10 * time.Second}},
	)
	b = b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:1111", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "aion", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.Equal(t, 30*time.Second, cfg.AI.RequestTimeout)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b = b.withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileFails(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b = b.withJSON()
	assert.Error(t, b.err)

	_, err := b.build()
	assert.Error(t, err)
}

func TestWithJSON_ParsesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"token_sign_key": "from-json", "token_duration": "2h"},
		"server": {"http_address": "localhost:4444", "request_timeout": "15s"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b = b.withJSON().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:4444", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestValidate_AIKeyRequiresBaseURLAndModel(t *testing.T) {
	cfg := &StructuredConfig{
		App:    App{TokenSignKey: "k", TokenIssuer: "aion", TokenDuration: time.Hour},
		AI:     AI{APIKey: "sk-test"},
		Server: Server{HTTPAddress: "localhost:8080"},
	}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAIConfigs)

	cfg.AI.BaseURL = "https://api.openai.com/v1"
	cfg.AI.Model = "gpt-4o"
	assert.NoError(t, cfg.validate())
}

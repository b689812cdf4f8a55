package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "token")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Discord.Token)
	assert.Equal(t, "p.", cfg.Prefix())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 100, cfg.Game.MaxGames)
	assert.Equal(t, 2, cfg.Game.MinPlayers)
	assert.Equal(t, 20, cfg.Game.MaxPlayers)
	assert.Equal(t, 2*time.Second, cfg.Game.CardTimeout)
	assert.False(t, cfg.Game.AllowNSFW)
	assert.False(t, cfg.Discord.SendInputErrors)
	assert.Equal(t, "cards", cfg.Cards.Dir)
	assert.True(t, cfg.Cards.Import)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "")
	os.Unsetenv("DISCORD_BOT_TOKEN")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadFromEnvFile(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "from-env")
	t.Setenv("MAX_PLAYERS", "")
	os.Unsetenv("MAX_PLAYERS")
	t.Setenv("CARD_TIMEOUT", "")
	os.Unsetenv("CARD_TIMEOUT")

	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("DISCORD_BOT_TOKEN=from-file\nMAX_PLAYERS=8\nCARD_TIMEOUT=500ms\n"), 0o600))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Discord.Token)
	assert.Equal(t, 8, cfg.Game.MaxPlayers)
	assert.Equal(t, 500*time.Millisecond, cfg.Game.CardTimeout)
}

func TestApplicationPrefixWins(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "token")
	t.Setenv("PREFIX", "!")
	t.Setenv("APPLICATION_PREFIX", "d.")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "d.", cfg.Prefix())
}

func TestValidate(t *testing.T) {
	cfg := &Config{Game: GameConfig{MinPlayers: 3, MaxPlayers: 2, MaxGames: 1}}
	assert.Error(t, cfg.Validate())

	cfg.Game.MaxPlayers = 3
	assert.NoError(t, cfg.Validate())

	cfg.Game.MaxGames = 0
	assert.Error(t, cfg.Validate())
}

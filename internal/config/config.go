package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every setting of the bot process
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Game    GameConfig
	Cards   CardsConfig
	Log     LogConfig

	// MetricsAddr is where /metrics is served, empty disables it
	MetricsAddr string `envconfig:"METRICS_ADDR" default:":9090"`
}

// DiscordConfig holds the Discord connection settings
type DiscordConfig struct {
	Token string `envconfig:"DISCORD_BOT_TOKEN" required:"true"`

	// Prefix starts every command. APPLICATION_PREFIX wins over PREFIX.
	Prefix            string `envconfig:"PREFIX" default:"p."`
	ApplicationPrefix string `envconfig:"APPLICATION_PREFIX"`

	// PlayerRole is the role id given to participants
	PlayerRole string `envconfig:"PLAYER_ROLE"`

	SendInputErrors bool `envconfig:"SEND_INPUT_ERRORS" default:"false"`
}

// RedisConfig holds the Redis connection settings
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// GameConfig holds the session limits
type GameConfig struct {
	MaxGames    int           `envconfig:"MAX_GAMES" default:"100"`
	MinPlayers  int           `envconfig:"MIN_PLAYERS" default:"2"`
	MaxPlayers  int           `envconfig:"MAX_PLAYERS" default:"20"`
	CardTimeout time.Duration `envconfig:"CARD_TIMEOUT" default:"2s"`
	AllowNSFW   bool          `envconfig:"ALLOW_NSFW" default:"false"`
}

// CardsConfig controls the card import on startup
type CardsConfig struct {
	Dir    string `envconfig:"CARDS_DIR" default:"cards"`
	Import bool   `envconfig:"IMPORT_CARDS" default:"true"`
}

// LogConfig controls the logger
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"DEVELOPMENT" default:"false"`
}

// Load reads the optional env files and then the environment
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		// existing variables win over the file
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Prefix returns the effective command prefix
func (c *Config) Prefix() string {
	if c.Discord.ApplicationPrefix != "" {
		return c.Discord.ApplicationPrefix
	}
	return c.Discord.Prefix
}

// Validate checks values envconfig cannot
func (c *Config) Validate() error {
	if c.Game.MinPlayers < 1 {
		return errors.New("MIN_PLAYERS must be at least 1")
	}
	if c.Game.MaxPlayers < c.Game.MinPlayers {
		return errors.New("MAX_PLAYERS must not be lower than MIN_PLAYERS")
	}
	if c.Game.MaxGames < 1 {
		return errors.New("MAX_GAMES must be at least 1")
	}
	if c.Game.CardTimeout < 0 {
		return errors.New("CARD_TIMEOUT cannot be negative")
	}
	return nil
}

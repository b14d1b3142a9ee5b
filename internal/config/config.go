package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Game GameConfig
	Log  LogConfig
	UI   UIConfig
}

// GameConfig holds deal settings.
type GameConfig struct {
	// Seed fixes the shuffle order when non-zero; zero means a fresh
	// random order per run.
	Seed int64
	// Ordered deals an unshuffled deck, suit then rank. Debug/test knob.
	Ordered bool
}

// LogConfig holds debug log settings. The TUI owns the terminal, so
// logs only go to a file; an empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
}

// Load reads configuration from file and env. Env var overrides use
// prefix KLONDIKE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.ordered", false)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.theme", "dark")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("KLONDIKE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "klondike"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("KLONDIKE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

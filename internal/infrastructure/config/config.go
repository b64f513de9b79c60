package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string       `mapstructure:"environment"`
	LogLevel    string       `mapstructure:"log_level"`
	Server      ServerConfig `mapstructure:"server"`
	Game        GameConfig   `mapstructure:"game"`
}

type ServerConfig struct {
	Port            int      `mapstructure:"port"`
	Host            string   `mapstructure:"host"`
	ReadTimeout     int      `mapstructure:"read_timeout"`
	WriteTimeout    int      `mapstructure:"write_timeout"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	RateLimitPerMin int      `mapstructure:"rate_limit_per_min"`
}

// GameConfig describes one deployment of the game's CSV exports.
type GameConfig struct {
	// DataDir is the directory holding the CSV exports.
	DataDir string `mapstructure:"data_dir"`
	// GameID names the leaderboard file: "Rankings - <GameID>.csv".
	GameID string `mapstructure:"game_id"`
	// StartingCapital is the baseline every player began with.
	StartingCapital float64 `mapstructure:"starting_capital"`
	// BumpMaxPoints bounds the number of dates the rank-over-time
	// series returns before downsampling kicks in.
	BumpMaxPoints int `mapstructure:"bump_max_points"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	setDefaults()

	// Read from config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.read_timeout", 30)
	viper.SetDefault("server.write_timeout", 30)
	viper.SetDefault("server.allowed_origins", []string{"*"})
	viper.SetDefault("server.rate_limit_per_min", 100)

	// Game defaults
	viper.SetDefault("game.data_dir", "./data")
	viper.SetDefault("game.game_id", "MREtest")
	viper.SetDefault("game.starting_capital", 100000)
	viper.SetDefault("game.bump_max_points", 60)
}

func validate(cfg *Config) error {
	if cfg.Game.DataDir == "" {
		return fmt.Errorf("game.data_dir is required")
	}
	if cfg.Game.GameID == "" {
		return fmt.Errorf("game.game_id is required")
	}
	if cfg.Game.StartingCapital <= 0 {
		return fmt.Errorf("game.starting_capital must be positive")
	}
	if cfg.Game.BumpMaxPoints <= 0 {
		return fmt.Errorf("game.bump_max_points must be positive")
	}
	return nil
}

package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the config file looked up in Home when none is given.
const ConfigFileName = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string `yaml:"home"       env:"DOCKET_HOME"`       // data directory, e.g. $HOME/.docket
	LogLevel  string `yaml:"log_level"  env:"DOCKET_LOG_LEVEL"`  // zerolog level name
	ServerURL string `yaml:"server_url" env:"DOCKET_SERVER_URL"` // remote docketd, e.g. http://127.0.0.1:8080
	CourtsDir string `yaml:"courts_dir" env:"DOCKET_COURTS_DIR"` // extra court profiles; default <home>/courts
	DBPath    string `yaml:"db_path"    env:"DOCKET_DB_PATH"`    // routing log; default <home>/routing.db

	ReadmeThreshold float64 `yaml:"readme_threshold" env:"DOCKET_README_THRESHOLD"`

	Router RouterConfig `yaml:"router"`
	Server ServerConfig `yaml:"server"`
}

// RouterConfig throttles model attempts.
type RouterConfig struct {
	RatePerSecond float64 `yaml:"rate_per_second" env:"DOCKET_ROUTER_RATE"`
	Burst         int     `yaml:"burst"           env:"DOCKET_ROUTER_BURST"`
}

// ServerConfig configures docketd.
type ServerConfig struct {
	ListenAddr     string        `yaml:"listen_addr"     env:"DOCKET_LISTEN_ADDR"`
	ValidateLimit  int           `yaml:"validate_limit"  env:"DOCKET_VALIDATE_LIMIT"`
	ValidateWindow time.Duration `yaml:"validate_window" env:"DOCKET_VALIDATE_WINDOW"`
	Watch          bool          `yaml:"watch"           env:"DOCKET_WATCH"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
// home may be empty, in which case ~/.docket is used.
func DefaultConfig(home string) (Config, error) {
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		home = filepath.Join(dir, ".docket")
	}
	return Config{
		Home:            home,
		LogLevel:        "info",
		ReadmeThreshold: 0.9,
		Router:          RouterConfig{RatePerSecond: 5, Burst: 1},
		Server: ServerConfig{
			ListenAddr:     ":8080",
			ValidateLimit:  60,
			ValidateWindow: time.Minute,
			Watch:          true,
		},
	}, nil
}

// LoadConfig layers the config file and then the environment over the
// defaults. An explicit path must exist; otherwise <home>/config.yaml is read
// when present.
func LoadConfig(home, path string) (Config, error) {
	cfg, err := DefaultConfig(home)
	if err != nil {
		return Config{}, err
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(cfg.Home, ConfigFileName)
	}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.resolve()
	return cfg, nil
}

// resolve fills paths derived from Home.
func (c *Config) resolve() {
	if c.CourtsDir == "" {
		c.CourtsDir = filepath.Join(c.Home, "courts")
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.Home, "routing.db")
	}
}

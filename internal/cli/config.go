package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// defaultCacheTTL bounds how long API responses are served from disk.
const defaultCacheTTL = 15 * time.Minute

// Config holds optional settings from ~/.config/github-search/config.toml
// and the environment. Everything has a working default; the file is not
// required to exist.
type Config struct {
	// Token is a GitHub personal access token. Unset means unauthenticated
	// requests (lower rate limits). GITHUB_TOKEN in the environment wins
	// over the file.
	Token string

	// CacheTTL is how long cached API responses stay fresh.
	CacheTTL time.Duration

	// Demo makes the demo source the default, as if --demo were passed.
	Demo bool
}

// fileConfig is the on-disk TOML shape.
type fileConfig struct {
	Token    string `toml:"token"`
	CacheTTL string `toml:"cache_ttl"`
	Demo     bool   `toml:"demo"`
}

// LoadConfig reads the config file and environment. Missing or malformed
// sources degrade to defaults rather than failing: a bad config file should
// not stop a search.
func LoadConfig(logger *log.Logger) *Config {
	// .env is a convenience for development; absence is normal.
	_ = godotenv.Load()

	cfg := &Config{CacheTTL: defaultCacheTTL}

	if path, err := configPath(); err == nil {
		var fc fileConfig
		if _, err := toml.DecodeFile(path, &fc); err == nil {
			cfg.Token = fc.Token
			cfg.Demo = fc.Demo
			if fc.CacheTTL != "" {
				if d, err := time.ParseDuration(fc.CacheTTL); err == nil && d >= 0 {
					cfg.CacheTTL = d
				} else {
					logger.Warn("Ignoring invalid cache_ttl in config", "value", fc.CacheTTL)
				}
			}
		} else if !os.IsNotExist(err) {
			logger.Warn("Ignoring unreadable config file", "path", path, "err", err)
		}
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.Token = token
	}

	return cfg
}

// configPath returns the config file path using XDG standard
// (~/.config/github-search/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

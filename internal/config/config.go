package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all mailgrab configuration.
type Config struct {
	Fetch FetchConfig `toml:"fetch"`
	Gmail GmailConfig `toml:"gmail"`
}

// GmailConfig holds Gmail OAuth credentials.
// Users supply their own Google Cloud OAuth client via config file or env vars.
type GmailConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

// FetchConfig holds fetch defaults applied when flags are absent.
type FetchConfig struct {
	DefaultDays int  `toml:"default_days"`
	MaxResults  int  `toml:"max_results"`
	UnreadOnly  bool `toml:"unread_only"`
}

func defaults() Config {
	return Config{
		Fetch: FetchConfig{
			DefaultDays: 7,
			MaxResults:  100,
			UnreadOnly:  true,
		},
	}
}

// Load reads config from path. If path is empty or the file does not exist,
// returns defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// ConfigDir returns the mailgrab config directory path.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mailgrab")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mailgrab")
}

// DataDir returns the mailgrab data directory path.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "mailgrab")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "mailgrab")
}

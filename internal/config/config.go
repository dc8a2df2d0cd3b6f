// Package config loads the Duet client configuration from
// ~/.config/duet/config.toml: where the fambot service lives and who the
// caller is. The identity record stands in for the host-platform bridge a
// mini-app would get for free.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/duet-tui/duet/internal/fambot"
)

// Config captures everything the client needs to reach the service.
type Config struct {
	APIURL  string
	LogFile string
	User    User
}

// User is the caller identity sent with every command.
type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

const (
	defaultConfigPath = "~/.config/duet/config.toml"
	defaultAPIURL     = "http://127.0.0.1:8090"
	defaultLogFile    = "~/.local/state/duet/duet.log"
)

// Load locates and parses the config, falling back to defaults for
// everything except the user id, which has no sensible default.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIURL: defaultAPIURL, LogFile: mustExpand(defaultLogFile)}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL  string `toml:"api_url"`
		LogFile string `toml:"log_file"`
		User    struct {
			ID        int64  `toml:"id"`
			Username  string `toml:"username"`
			FirstName string `toml:"first_name"`
			LastName  string `toml:"last_name"`
		} `toml:"user"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIURL = strings.TrimSpace(raw.APIURL)
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}

	cfg.LogFile = strings.TrimSpace(raw.LogFile)
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile
	}
	cfg.LogFile = mustExpand(cfg.LogFile)

	cfg.User = User{
		ID:        raw.User.ID,
		Username:  strings.TrimSpace(raw.User.Username),
		FirstName: strings.TrimSpace(raw.User.FirstName),
		LastName:  strings.TrimSpace(raw.User.LastName),
	}

	return cfg, nil
}

// Identity converts the configured user into the wire identity record.
func (c Config) Identity() fambot.Identity {
	return fambot.Identity{
		ID:        c.User.ID,
		Username:  c.User.Username,
		FirstName: c.User.FirstName,
		LastName:  c.User.LastName,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLocation is where the config file lives unless overridden with --config.
const DefaultLocation = "~/.config/oroddlokken/flameshot-helper.json"

var (
	ErrNotFound = errors.New("config file not found")
	ErrParse    = errors.New("config file is not valid JSON")
	ErrInvalid  = errors.New("config is missing a required field")
)

// SFTP holds the optional remote-publishing settings. A nil SFTP (or
// Enabled=false) disables everything remote.
type SFTP struct {
	Enabled   bool   `json:"enabled"`
	Host      string `json:"host"`
	User      string `json:"user"`
	Key       string `json:"key"`
	Port      int    `json:"port"`
	Directory string `json:"directory"`
	BaseURL   string `json:"baseurl"`
	Clipboard bool   `json:"clipboard"`
}

// Config is the static per-run configuration. It is loaded once and not
// mutated afterwards; the only normalization (the trailing separator on the
// remote base directory) happens inside Load.
type Config struct {
	Directory string `json:"directory"`
	FName     string `json:"fname"`
	Notify    bool   `json:"notify"`
	Open      bool   `json:"open"`
	SFTP      *SFTP  `json:"sftp"`
}

// SFTPEnabled reports whether remote publishing is configured and turned on.
func (c *Config) SFTPEnabled() bool {
	return c.SFTP != nil && c.SFTP.Enabled
}

// Load reads and parses the JSON config at path (with ~ expanded) and
// normalizes the remote base directory to end with exactly one "/".
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(ExpandUser(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if cfg.Directory == "" {
		return nil, fmt.Errorf("%w: directory", ErrInvalid)
	}
	if cfg.FName == "" {
		return nil, fmt.Errorf("%w: fname", ErrInvalid)
	}

	if cfg.SFTPEnabled() && !strings.HasSuffix(cfg.SFTP.Directory, "/") {
		cfg.SFTP.Directory += "/"
	}

	return &cfg, nil
}

// ExpandUser replaces a leading "~" with the current user's home directory.
func ExpandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

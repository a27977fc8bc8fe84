package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// AppName is used for the config directory, the log file and env prefixes
const AppName = "repo-depot"

// ErrNoHomeDir is returned when no clone directory is configured and the
// user's home directory cannot be resolved.
var ErrNoHomeDir = errors.New("cannot resolve home directory")

// userHomeDir is swapped in tests
var userHomeDir = os.UserHomeDir

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	CloneDir   string         `toml:"clone_dir"`
	Search     SearchSettings `toml:"search"`
	Clone      CloneSettings  `toml:"clone"`
	UISettings UISettings     `toml:"ui"`
}

// SearchSettings configures the repository search provider
type SearchSettings struct {
	APIURL    string `toml:"api_url"`
	PerPage   int    `toml:"per_page"`
	Timeout   string `toml:"timeout"`
	UserAgent string `toml:"user_agent"`
	Token     string `toml:"-"` // only ever read from the environment
}

// CloneSettings configures the follow-on clone
type CloneSettings struct {
	Parallel int `toml:"parallel"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	PageSize    int  `toml:"page_size"`
	CloneOnExit bool `toml:"clone_on_exit"`
	ReportPager bool `toml:"report_pager"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the per-user config file
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithPath creates a config service for an explicit file
func NewConfigServiceWithPath(path string) ConfigService {
	if path == "" {
		return NewConfigService()
	}
	return &configService{filePath: path}
}

// DefaultPath returns ~/.config/repo-depot/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = userHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, AppName, "config.toml")
}

// Load loads the configuration from file. A missing file yields the
// defaults, which are written back so the user has something to edit.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			log.Printf("Could not write default config to %s: %v", cs.filePath, err)
		}
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Printf("Loaded config from %s", path)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.Printf("Saved config to %s", path)
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Search: SearchSettings{
			APIURL:    "https://api.github.com",
			PerPage:   50,
			Timeout:   "15s",
			UserAgent: AppName,
		},
		Clone: CloneSettings{
			Parallel: 4,
		},
		UISettings: UISettings{
			PageSize:    10,
			CloneOnExit: true,
		},
	}
}

// Validate checks the settings that would otherwise fail at runtime
func (c *Config) Validate() error {
	if c.UISettings.PageSize <= 0 {
		return fmt.Errorf("ui.page_size must be positive, got %d", c.UISettings.PageSize)
	}
	if c.Search.PerPage < 1 || c.Search.PerPage > 100 {
		return fmt.Errorf("search.per_page must be between 1 and 100, got %d", c.Search.PerPage)
	}
	if c.Clone.Parallel < 1 {
		return fmt.Errorf("clone.parallel must be at least 1, got %d", c.Clone.Parallel)
	}
	if strings.TrimSpace(c.Search.APIURL) == "" {
		return errors.New("search.api_url must not be empty")
	}
	if _, err := c.SearchTimeout(); err != nil {
		return err
	}
	return nil
}

// SearchTimeout parses search.timeout
func (c *Config) SearchTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Search.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid search.timeout %q: %w", c.Search.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("search.timeout must be positive, got %s", d)
	}
	return d, nil
}

// ResolveCloneDir returns the directory clones are placed under: the
// configured clone_dir (with ~ expanded) or ~/.repo-depot.
func ResolveCloneDir(c *Config) (string, error) {
	dir := strings.TrimSpace(c.CloneDir)
	if dir != "" && !strings.HasPrefix(dir, "~") {
		return filepath.Clean(dir), nil
	}

	home, err := userHomeDir()
	if err != nil || home == "" {
		if err == nil {
			err = errors.New("$HOME is not defined")
		}
		return "", fmt.Errorf("%w: %v", ErrNoHomeDir, err)
	}

	if dir == "" {
		return filepath.Join(home, "."+AppName), nil
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~")), nil
}

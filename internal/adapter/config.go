package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Search  SearchConfig  `mapstructure:"search"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds catalog service configuration
type CatalogConfig struct {
	URL      string        `mapstructure:"url"`       // Service base URL
	PageSize int           `mapstructure:"page_size"` // Products per page
	Timeout  time.Duration `mapstructure:"timeout"`   // Per-query timeout
}

// SearchConfig holds the known filter values offered in the form
type SearchConfig struct {
	Categories   []string `mapstructure:"categories"`
	Availability []string `mapstructure:"availability"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	GridColumns   int    `mapstructure:"grid_columns"`
	Currency      string `mapstructure:"currency"`
	ShowInspector bool   `mapstructure:"show_inspector"`
	Browser       string `mapstructure:"browser"` // empty = system default
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			URL:      "http://localhost:5000",
			PageSize: 10,
			Timeout:  15 * time.Second,
		},
		Search: SearchConfig{
			Categories:   []string{"All Products", "Grocery", "Personal Care"},
			Availability: []string{"In Stock", "Out of Stock"},
		},
		UI: UIConfig{
			GridColumns:   3,
			Currency:      "$",
			ShowInspector: false,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "shopr", "shopr.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "shopr", "shopr.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "shopr")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "shopr")
	}
}

// envKeyReplacer maps nested keys to env names (catalog.url -> CATALOG_URL)
var envKeyReplacer = strings.NewReplacer(".", "_")

// newViper builds a viper instance seeded with defaults and env overrides
func newViper(dirs ...string) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	defaults := DefaultConfig()
	v.SetDefault("catalog.url", defaults.Catalog.URL)
	v.SetDefault("catalog.page_size", defaults.Catalog.PageSize)
	v.SetDefault("catalog.timeout", defaults.Catalog.Timeout)
	v.SetDefault("search.categories", defaults.Search.Categories)
	v.SetDefault("search.availability", defaults.Search.Availability)
	v.SetDefault("ui.grid_columns", defaults.UI.GridColumns)
	v.SetDefault("ui.currency", defaults.UI.Currency)
	v.SetDefault("ui.show_inspector", defaults.UI.ShowInspector)
	v.SetDefault("ui.browser", defaults.UI.Browser)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	// Environment variable overrides (SHOPR_CATALOG_URL, SHOPR_LOGGING_LEVEL, ...)
	v.SetEnvPrefix("SHOPR")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	return v
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	return loadConfigFrom(defaultConfigPath(), ".")
}

func loadConfigFrom(dirs ...string) (*Config, error) {
	v := newViper(dirs...)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize repairs values that would make the view unusable
func (c *Config) normalize() {
	defaults := DefaultConfig()
	if c.Catalog.PageSize < 1 {
		c.Catalog.PageSize = defaults.Catalog.PageSize
	}
	if c.Catalog.Timeout <= 0 {
		c.Catalog.Timeout = defaults.Catalog.Timeout
	}
	if c.UI.GridColumns < 1 {
		c.UI.GridColumns = 1
	}
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	return saveConfigTo(cfg, defaultConfigPath())
}

func saveConfigTo(cfg *Config, configPath string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("catalog.url", cfg.Catalog.URL)
	v.Set("catalog.page_size", cfg.Catalog.PageSize)
	v.Set("catalog.timeout", cfg.Catalog.Timeout.String())

	v.Set("search.categories", cfg.Search.Categories)
	v.Set("search.availability", cfg.Search.Availability)

	v.Set("ui.grid_columns", cfg.UI.GridColumns)
	v.Set("ui.currency", cfg.UI.Currency)
	v.Set("ui.show_inspector", cfg.UI.ShowInspector)
	v.Set("ui.browser", cfg.UI.Browser)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ConfigFileExists reports whether a config file has been written yet
func ConfigFileExists() bool {
	_, err := os.Stat(filepath.Join(defaultConfigPath(), "config.yaml"))
	return err == nil
}

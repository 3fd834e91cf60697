package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Fetcher engine names accepted by ScraperConfig.Fetcher.
const (
	FetcherHTTP    = "http"
	FetcherColly   = "colly"
	FetcherBrowser = "browser"
)

// Store driver names accepted by StoreConfig.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config represents the full configuration for scrape runs and the browse API
type Config struct {
	Scraper ScraperConfig `yaml:"scraper"`
	Store   StoreConfig   `yaml:"store"`
	Server  ServerConfig  `yaml:"server"`
	Sheets  SheetsConfig  `yaml:"sheets"`
}

// ScraperConfig controls pagination bounds, politeness and the fetch engine
type ScraperConfig struct {
	BaseURL       string   `yaml:"base_url"`
	MaxPages      int      `yaml:"max_pages"`
	MaxHikes      int      `yaml:"max_hikes"` // 0 means no limit
	Delay         Duration `yaml:"delay"`
	Timeout       Duration `yaml:"timeout"`
	UserAgent     string   `yaml:"user_agent"`
	Fetcher       string   `yaml:"fetcher"`
	RespectRobots bool     `yaml:"respect_robots"`
}

// StoreConfig selects the storage driver
type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"` // sqlite database file; postgres reads env vars
}

// ServerConfig controls the browse API
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// SheetsConfig controls the optional Google Sheets export
type SheetsConfig struct {
	SpreadsheetURL  string `yaml:"spreadsheet_url"`
	CredentialsPath string `yaml:"credentials_path"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// GetDefaultConfig returns a default configuration
func GetDefaultConfig() *Config {
	return &Config{
		Scraper: ScraperConfig{
			BaseURL:       "https://randoromandie.com",
			MaxPages:      200,
			MaxHikes:      0,
			Delay:         DurationFrom(800 * time.Millisecond),
			Timeout:       DurationFrom(30 * time.Second),
			UserAgent:     "RandoScraper/1.0 (hike catalogue; contact via site form)",
			Fetcher:       FetcherHTTP,
			RespectRobots: true,
		},
		Store: StoreConfig{
			Driver: DriverSQLite,
			Path:   "data/hikes.db",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Validate checks for values a run cannot work with.
func (c *Config) Validate() error {
	if c.Scraper.BaseURL == "" {
		return fmt.Errorf("scraper.base_url is required")
	}
	u, err := url.Parse(c.Scraper.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("scraper.base_url %q is not an absolute URL", c.Scraper.BaseURL)
	}
	switch c.Scraper.Fetcher {
	case FetcherHTTP, FetcherColly, FetcherBrowser:
	default:
		return fmt.Errorf("scraper.fetcher %q is not one of http, colly, browser", c.Scraper.Fetcher)
	}
	if c.Scraper.Delay.Duration < 0 {
		return fmt.Errorf("scraper.delay must not be negative")
	}
	switch c.Store.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("store.driver %q is not one of sqlite, postgres", c.Store.Driver)
	}
	if c.Store.Driver == DriverSQLite && c.Store.Path == "" {
		return fmt.Errorf("store.path is required for the sqlite driver")
	}
	return nil
}

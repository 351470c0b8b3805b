package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppName is used for config file names and environment variable prefixes
const AppName = "igosint"

// DefaultSites is the fixed list of domains probed for username presence
var DefaultSites = []string{
	"linkedin.com",
	"twitter.com",
	"tiktok.com",
	"facebook.com",
	"youtube.com",
	"github.com",
	"medium.com",
	"reddit.com",
}

// Config holds all configuration options for a profile analysis run
type Config struct {
	// Outbound request settings
	HTTP HTTPConfig `yaml:"http" json:"http"`

	// Output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Presence probing settings
	Presence PresenceConfig `yaml:"presence" json:"presence"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// HTTPConfig holds request headers and per-request timeouts
type HTTPConfig struct {
	UserAgent      string        `yaml:"user_agent" json:"user_agent"`
	AcceptLanguage string        `yaml:"accept_language" json:"accept_language"`
	ProfileTimeout time.Duration `yaml:"profile_timeout" json:"profile_timeout"`
	ProbeTimeout   time.Duration `yaml:"probe_timeout" json:"probe_timeout"`
	ImageTimeout   time.Duration `yaml:"image_timeout" json:"image_timeout"`
}

// OutputConfig holds output directory configuration
type OutputConfig struct {
	BaseDirectory string `yaml:"base_directory" json:"base_directory"`
	ImagesDir     string `yaml:"images_dir" json:"images_dir"`
	ReportsDir    string `yaml:"reports_dir" json:"reports_dir"`
	Markdown      bool   `yaml:"markdown" json:"markdown"`
}

// PresenceConfig holds the list of probed domains
type PresenceConfig struct {
	Sites []string `yaml:"sites" json:"sites"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// ImagesPath returns the directory profile images are written to
func (o OutputConfig) ImagesPath() string {
	return filepath.Join(o.BaseDirectory, o.ImagesDir)
}

// ReportsPath returns the directory reports are written to
func (o OutputConfig) ReportsPath() string {
	return filepath.Join(o.BaseDirectory, o.ReportsDir)
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	sites := make([]string, len(DefaultSites))
	copy(sites, DefaultSites)

	return &Config{
		HTTP: HTTPConfig{
			UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			AcceptLanguage: "en-US,en;q=0.9,ar;q=0.8",
			ProfileTimeout: 30 * time.Second,
			ProbeTimeout:   10 * time.Second,
			ImageTimeout:   30 * time.Second,
		},
		Output: OutputConfig{
			BaseDirectory: "output",
			ImagesDir:     "images",
			ReportsDir:    "reports",
			Markdown:      false,
		},
		Presence: PresenceConfig{
			Sites: sites,
		},
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if userAgent := os.Getenv("IGOSINT_USER_AGENT"); userAgent != "" {
		c.HTTP.UserAgent = userAgent
	}
	if lang := os.Getenv("IGOSINT_ACCEPT_LANGUAGE"); lang != "" {
		c.HTTP.AcceptLanguage = lang
	}

	timeouts := map[string]*time.Duration{
		"IGOSINT_PROFILE_TIMEOUT": &c.HTTP.ProfileTimeout,
		"IGOSINT_PROBE_TIMEOUT":   &c.HTTP.ProbeTimeout,
		"IGOSINT_IMAGE_TIMEOUT":   &c.HTTP.ImageTimeout,
	}
	for name, target := range timeouts {
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		*target = d
	}

	if outputDir := os.Getenv("IGOSINT_OUTPUT_DIR"); outputDir != "" {
		c.Output.BaseDirectory = outputDir
	}
	if md := os.Getenv("IGOSINT_MARKDOWN"); md != "" {
		enabled, err := strconv.ParseBool(md)
		if err != nil {
			return fmt.Errorf("invalid IGOSINT_MARKDOWN: %w", err)
		}
		c.Output.Markdown = enabled
	}

	if sites := os.Getenv("IGOSINT_SITES"); sites != "" {
		c.Presence.Sites = splitList(sites)
	}

	if logLevel := os.Getenv("IGOSINT_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv("IGOSINT_LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	for _, loc := range configLocations() {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// configLocations lists candidate config files in order of precedence
func configLocations() []string {
	home, _ := os.UserHomeDir()
	return []string{
		"." + AppName + ".yaml",
		"." + AppName + ".yml",
		filepath.Join(xdg.ConfigHome, AppName, "config.yaml"),
		filepath.Join(xdg.ConfigHome, AppName, "config.yml"),
		filepath.Join(home, "."+AppName+".yaml"),
		filepath.Join(home, "."+AppName+".yml"),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.HTTP.UserAgent == "" {
		errs = append(errs, errors.New("user agent is required"))
	}
	if c.HTTP.ProfileTimeout <= 0 {
		errs = append(errs, errors.New("profile timeout must be positive"))
	}
	if c.HTTP.ProbeTimeout <= 0 {
		errs = append(errs, errors.New("probe timeout must be positive"))
	}
	if c.HTTP.ImageTimeout <= 0 {
		errs = append(errs, errors.New("image timeout must be positive"))
	}

	if c.Output.BaseDirectory == "" {
		errs = append(errs, errors.New("output directory is required"))
	}

	for _, site := range c.Presence.Sites {
		if strings.Contains(site, "/") || strings.TrimSpace(site) == "" {
			errs = append(errs, fmt.Errorf("invalid presence site %q: must be a bare domain", site))
		}
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "disabled": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if outputDir, ok := flags["output"].(string); ok && outputDir != "" {
		c.Output.BaseDirectory = outputDir
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
	if markdown, ok := flags["markdown"].(bool); ok && markdown {
		c.Output.Markdown = true
	}
	if userAgent, ok := flags["user-agent"].(string); ok && userAgent != "" {
		c.HTTP.UserAgent = userAgent
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// .env files are optional
	home, _ := os.UserHomeDir()
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(home, "."+AppName+".env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

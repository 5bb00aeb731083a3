package opc

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains the configuration options for opening and saving
// packages.
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string `yaml:"log_level"`
	// Compression is the zip method used on save: "deflate" or "store".
	Compression string `yaml:"compression"`
	// CacheMaxSize is the maximum number of stored packages kept in the
	// reader cache. 0 disables caching.
	CacheMaxSize int `yaml:"cache_max_size"`
	// CacheTTL is the time-to-live of cached packages. 0 means no expiration.
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		Compression:  "deflate",
		CacheMaxSize: 0,
		CacheTTL:     0,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()
	applyEnvironment(config)
	return config
}

func applyEnvironment(config *Config) {
	// DOCX_LOG_LEVEL
	if val := os.Getenv("DOCX_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// DOCX_COMPRESSION
	if val := os.Getenv("DOCX_COMPRESSION"); val != "" {
		config.Compression = val
	}

	// DOCX_CACHE_MAX_SIZE
	if val := os.Getenv("DOCX_CACHE_MAX_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			config.CacheMaxSize = size
		}
	}

	// DOCX_CACHE_TTL
	if val := os.Getenv("DOCX_CACHE_TTL"); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			config.CacheTTL = duration
		}
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults.
// Environment variables override values from the file.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	applyEnvironment(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.CacheMaxSize < 0 {
		return errors.New("cache max size cannot be negative")
	}

	if c.CacheTTL < 0 {
		return errors.New("cache TTL cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.Compression != "deflate" && c.Compression != "store" {
		return errors.New("invalid compression: " + c.Compression)
	}

	return nil
}

// zipMethod returns the archive/zip method for Compression.
func (c *Config) zipMethod() uint16 {
	if c.Compression == "store" {
		return zip.Store
	}
	return zip.Deflate
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}

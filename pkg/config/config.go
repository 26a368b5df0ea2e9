package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	apperrors "github.com/killallgit/fanboy/pkg/errors"
)

// DefaultFile is the config file read by Init unless SetFile was called.
const DefaultFile = "./config/settings.yaml"

var (
	once       sync.Once
	initErr    error
	configFile = DefaultFile
)

// SetFile changes the config file read by Init. It has no effect after Init.
func SetFile(path string) {
	if path != "" {
		configFile = path
	}
}

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("FANBOY")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean(configFile)
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) && !errors.Is(err, fs.ErrNotExist) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// reset clears the loaded configuration so Init can run again.
func reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
	configFile = DefaultFile
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Set overrides a config value, typically from a command line flag
func Set(key string, value any) {
	viper.Set(key, value)
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	if err := validatePort(viper.GetInt("server.port")); err != nil {
		return err
	}

	if err := validateBaseURL(viper.GetString("fanboy.base_url")); err != nil {
		return err
	}

	// Auto-correct invalid upstream settings
	if viper.GetDuration("fanboy.timeout") <= 0 {
		viper.Set("fanboy.timeout", 10*time.Second)
	}
	if viper.GetInt("fanboy.requests_per_minute") <= 0 {
		viper.Set("fanboy.requests_per_minute", 600)
	}
	if viper.GetInt("fanboy.burst_size") <= 0 {
		viper.Set("fanboy.burst_size", 10)
	}

	// Auto-correct invalid gateway limits
	if viper.GetInt("rate_limiting.requests_per_second") <= 0 {
		viper.Set("rate_limiting.requests_per_second", 5)
	}
	if viper.GetInt("rate_limiting.burst") <= 0 {
		viper.Set("rate_limiting.burst", 10)
	}

	switch strings.ToLower(viper.GetString("logging.level")) {
	case "debug", "info", "warn", "warning", "error":
	default:
		slog.Warn("unknown log level, using info", "level", viper.GetString("logging.level"))
		viper.Set("logging.level", "info")
	}

	return nil
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return apperrors.ConfigError("fanboy.base_url", "is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return apperrors.ConfigError("fanboy.base_url", err.Error()).WithCause(err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperrors.ConfigError("fanboy.base_url", fmt.Sprintf("%q must be an absolute http(s) URL", raw))
	}
	return nil
}

func validatePort(port int) error {
	if port < 0 || port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("invalid server port: %d", port))
	}
	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if err := validatePort(c.Server.Port); err != nil {
		return err
	}

	if err := validateBaseURL(c.Fanboy.BaseURL); err != nil {
		return err
	}

	if c.Fanboy.Timeout <= 0 {
		c.Fanboy.Timeout = 10 * time.Second
	}
	if c.Fanboy.RequestsPerMinute <= 0 {
		c.Fanboy.RequestsPerMinute = 600
	}
	if c.Fanboy.BurstSize <= 0 {
		c.Fanboy.BurstSize = 10
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Upstream defaults
	viper.SetDefault("fanboy.base_url", "http://localhost:8383")
	viper.SetDefault("fanboy.timeout", 10*time.Second)
	viper.SetDefault("fanboy.requests_per_minute", 600)
	viper.SetDefault("fanboy.burst_size", 10)
	viper.SetDefault("fanboy.user_agent", "fanboy-go/1.0 (+https://github.com/killallgit/fanboy)")

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 5)
	viper.SetDefault("rate_limiting.burst", 10)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.enable_request_id", true)
	viper.SetDefault("security.max_request_bytes", 1048576)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.output", "stderr")

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
	viper.SetDefault("monitoring.enable_docs", true)
}

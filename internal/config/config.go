package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the task sync application
type Config struct {
	Database    DatabaseConfig
	Remote      RemoteConfig
	Server      ServerConfig
	Validation  ValidationConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// DatabaseConfig holds local store configuration
type DatabaseConfig struct {
	Dir            string        `env:"TS_DB_DIR"`
	Filename       string        `env:"TS_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TS_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `env:"TS_DB_DIR_PERMISSIONS"`
}

// RemoteConfig holds remote store client configuration
type RemoteConfig struct {
	BaseURL       string        `env:"TS_REMOTE_URL"`
	Timeout       time.Duration `env:"TS_REMOTE_TIMEOUT"`
	ProbeInterval time.Duration `env:"TS_REMOTE_PROBE_INTERVAL"`
}

// ServerConfig holds remote task API server configuration
type ServerConfig struct {
	Addr     string `env:"TS_SERVER_ADDR"`
	Filename string `env:"TS_SERVER_DB_FILENAME"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength int `env:"TS_VALIDATION_TITLE_MIN"`
	TitleMaxLength int `env:"TS_VALIDATION_TITLE_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `env:"TS_DISPLAY_TIME_FORMAT"`
	DateFormat string `env:"TS_DISPLAY_DATE_FORMAT"`
	PastLabel  string `env:"TS_DISPLAY_PAST_LABEL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TS_APP_TIMEOUT"`
	Verbose bool          `env:"TS_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".tasksync")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "tasks.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Remote: RemoteConfig{
			BaseURL:       "http://localhost:3000",
			Timeout:       10 * time.Second,
			ProbeInterval: 30 * time.Second,
		},
		Server: ServerConfig{
			Addr:     ":3000",
			Filename: "tasks-remote.db",
		},
		Validation: ValidationConfig{
			TitleMinLength: 1,
			TitleMaxLength: 255,
		},
		Display: DisplayConfig{
			TimeFormat: "15:04",
			DateFormat: "2006-01-02",
			PastLabel:  "past",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the local database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetServerDatabasePath returns the full path to the server database file
func (c *Config) GetServerDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Server.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TS_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TS_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TS_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if perms := os.Getenv("TS_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Remote configuration
	if url := os.Getenv("TS_REMOTE_URL"); url != "" {
		c.Remote.BaseURL = url
	}
	if timeout := os.Getenv("TS_REMOTE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Remote.Timeout = d
		}
	}
	if interval := os.Getenv("TS_REMOTE_PROBE_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Remote.ProbeInterval = d
		}
	}

	// Server configuration
	if addr := os.Getenv("TS_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if filename := os.Getenv("TS_SERVER_DB_FILENAME"); filename != "" {
		c.Server.Filename = filename
	}

	// Validation configuration
	if minLen := os.Getenv("TS_VALIDATION_TITLE_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TitleMinLength = n
		}
	}
	if maxLen := os.Getenv("TS_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}

	// Display configuration
	if format := os.Getenv("TS_DISPLAY_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if format := os.Getenv("TS_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if label := os.Getenv("TS_DISPLAY_PAST_LABEL"); label != "" {
		c.Display.PastLabel = label
	}

	// Application configuration
	if timeout := os.Getenv("TS_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TS_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	// Validate remote configuration
	if c.Remote.BaseURL == "" {
		return &ConfigError{Field: "remote.base_url", Message: "remote base URL cannot be empty"}
	}
	if c.Remote.Timeout <= 0 {
		return &ConfigError{Field: "remote.timeout", Message: "remote timeout must be positive"}
	}
	if c.Remote.ProbeInterval <= 0 {
		return &ConfigError{Field: "remote.probe_interval", Message: "probe interval must be positive"}
	}

	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "server address cannot be empty"}
	}

	// Validate validation configuration
	if c.Validation.TitleMinLength < 1 {
		return &ConfigError{Field: "validation.title_min_length", Message: "title minimum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be greater than minimum length"}
	}

	// Validate display configuration
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Display.PastLabel == "" {
		return &ConfigError{Field: "display.past_label", Message: "past label cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

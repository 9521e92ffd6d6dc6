package config

import (
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/vango-dev/navshell/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "navshell.json"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultShutdownTimeout is the default graceful shutdown window in seconds.
	DefaultShutdownTimeout = 10

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default log format.
	DefaultLogFormat = "json"

	// DefaultAssetsRegion is used when a bucket is set without a region.
	DefaultAssetsRegion = "us-east-1"
)

// Config represents the complete navshell configuration.
type Config struct {
	// Server contains listener settings.
	Server ServerConfig `json:"server,omitempty"`

	// Log contains logging settings.
	Log LogConfig `json:"log,omitempty"`

	// Assets selects where the stylesheet and client script come from.
	// With no bucket the embedded copies are served.
	Assets AssetsConfig `json:"assets,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" env:"NAVSHELL_HOST"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" env:"NAVSHELL_PORT"`

	// ShutdownTimeout is the graceful shutdown window in seconds.
	ShutdownTimeout int `json:"shutdownTimeout,omitempty" env:"NAVSHELL_SHUTDOWN_TIMEOUT"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" env:"NAVSHELL_LOG_LEVEL"`

	// Format is json or text.
	Format string `json:"format,omitempty" env:"NAVSHELL_LOG_FORMAT"`
}

// AssetsConfig contains remote asset settings.
type AssetsConfig struct {
	// Bucket is the S3 bucket holding index.css and nav.js.
	Bucket string `json:"bucket,omitempty" env:"NAVSHELL_ASSETS_BUCKET"`

	// Prefix is prepended to asset names inside the bucket.
	Prefix string `json:"prefix,omitempty" env:"NAVSHELL_ASSETS_PREFIX"`

	// Region is the bucket region.
	Region string `json:"region,omitempty" env:"NAVSHELL_ASSETS_REGION"`

	// Endpoint overrides the S3 endpoint (for S3-compatible stores).
	Endpoint string `json:"endpoint,omitempty" env:"NAVSHELL_ASSETS_ENDPOINT"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for navshell.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No " + filepath.Base(path) + " found in " + filepath.Dir(path)).
				WithSuggestion("Create the file or omit --config to run with defaults")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Override adjusts a resolved configuration before validation, e.g. from
// command-line flags.
type Override func(*Config)

// Resolve builds the effective configuration: defaults, then the config
// file, then a .env file in the working directory, then environment
// variables, then overrides. An explicit path must exist; otherwise
// navshell.json in dir is optional. The result is validated once, after
// every layer is applied.
func Resolve(dir, path string, overrides ...Override) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch {
	case path != "":
		cfg, err = LoadFile(path)
	case Exists(dir):
		cfg, err = Load(dir)
	default:
		cfg = New()
	}
	if err != nil {
		return nil, err
	}

	// A missing .env file is normal outside development.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	for _, override := range overrides {
		override(cfg)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from NAVSHELL_* environment variables.
// Unset variables leave the current values in place.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return errors.New("E121").Wrap(err).
			WithSuggestion("Check the NAVSHELL_* environment variables")
	}
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills zero values left by a partial file or environment.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
	if c.Assets.Bucket != "" && c.Assets.Region == "" {
		c.Assets.Region = DefaultAssetsRegion
	}
	c.Assets.Prefix = strings.Trim(c.Assets.Prefix, "/")
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetail("port " + strconv.Itoa(c.Server.Port) + " is out of range").
			WithSuggestion("Use a port between 1 and 65535")
	}
	if _, ok := logLevels[c.Log.Level]; !ok {
		return errors.New("E123").
			WithDetailf("%q", c.Log.Level).
			WithSuggestion("Use one of debug, info, warn, error")
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("E123").
			WithDetailf("unknown log format %q", c.Log.Format).
			WithSuggestion("Use json or text")
	}
	if c.Assets.Bucket == "" && (c.Assets.Prefix != "" || c.Assets.Endpoint != "") {
		return errors.New("E124").
			WithDetail("assets prefix or endpoint set without a bucket").
			WithSuggestion("Set NAVSHELL_ASSETS_BUCKET or remove the other asset settings")
	}
	return nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the configured level for log/slog.
func (c *Config) SlogLevel() slog.Level {
	return logLevels[c.Log.Level]
}

// Address returns the listen address.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ShutdownTimeout returns the graceful shutdown window.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeout) * time.Second
}

// RemoteAssets reports whether assets come from a bucket.
func (c *Config) RemoteAssets() bool {
	return c.Assets.Bucket != ""
}

// Exists checks if a navshell.json exists in the directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

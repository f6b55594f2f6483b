package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	geometry "github.com/inference-gateway/deskcast/internal/geometry"
	viper "github.com/spf13/viper"
	yaml "gopkg.in/yaml.v3"
)

const (
	// ConfigDirName is the project-local configuration directory
	ConfigDirName = ".deskcast"
	// ConfigFileName is the configuration file inside ConfigDirName
	ConfigFileName = "config.yaml"
	// DefaultConfigPath is used when no --config flag is given
	DefaultConfigPath = ConfigDirName + "/" + ConfigFileName
	// EnvPrefix prefixes environment overrides, e.g. DESKCAST_SERVER_PORT
	EnvPrefix = "DESKCAST"
)

// Config represents the deskcast configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Pointer PointerConfig `yaml:"pointer" mapstructure:"pointer"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// PointerConfig controls how viewer coordinates reach the host pointer
type PointerConfig struct {
	FitMode string `yaml:"fit_mode" mapstructure:"fit_mode"`
	Clamp   bool   `yaml:"clamp" mapstructure:"clamp"`
	Backend string `yaml:"backend" mapstructure:"backend"`
	Display string `yaml:"display" mapstructure:"display"`

	RateLimit RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// RateLimitConfig bounds how many button actions a viewer may replay per window.
// Moves are not counted.
type RateLimitConfig struct {
	Enabled       bool `yaml:"enabled" mapstructure:"enabled"`
	MaxActions    int  `yaml:"max_actions" mapstructure:"max_actions"`
	WindowSeconds int  `yaml:"window_seconds" mapstructure:"window_seconds"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Debug bool   `yaml:"debug" mapstructure:"debug"`
	Dir   string `yaml:"dir" mapstructure:"dir"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "127.0.0.1",
			Port:         8080,
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  120,
			CORS: CORSConfig{
				Enabled:        true,
				AllowedOrigins: []string{"http://localhost:3000"},
			},
		},
		Pointer: PointerConfig{
			FitMode: string(geometry.FitContain),
			Clamp:   true,
			Backend: "",
			Display: "",
			RateLimit: RateLimitConfig{
				Enabled:       true,
				MaxActions:    600,
				WindowSeconds: 60,
			},
		},
		Logging: LoggingConfig{
			Debug: false,
			Dir:   "",
		},
	}
}

// SetDefaults registers every default value with v so env overrides resolve
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.idle_timeout", d.Server.IdleTimeout)
	v.SetDefault("server.cors.enabled", d.Server.CORS.Enabled)
	v.SetDefault("server.cors.allowed_origins", d.Server.CORS.AllowedOrigins)
	v.SetDefault("pointer.fit_mode", d.Pointer.FitMode)
	v.SetDefault("pointer.clamp", d.Pointer.Clamp)
	v.SetDefault("pointer.backend", d.Pointer.Backend)
	v.SetDefault("pointer.display", d.Pointer.Display)
	v.SetDefault("pointer.rate_limit.enabled", d.Pointer.RateLimit.Enabled)
	v.SetDefault("pointer.rate_limit.max_actions", d.Pointer.RateLimit.MaxActions)
	v.SetDefault("pointer.rate_limit.window_seconds", d.Pointer.RateLimit.WindowSeconds)
	v.SetDefault("logging.debug", d.Logging.Debug)
	v.SetDefault("logging.dir", d.Logging.Dir)
}

// Load reads configuration from configPath with DESKCAST_* environment overrides.
// A missing file is not an error; defaults are used.
func Load(configPath string) (*Config, error) {
	return LoadWithViper(viper.New(), configPath)
}

// LoadWithViper is Load on a caller supplied viper instance, so flags bound to v apply
func LoadWithViper(v *viper.Viper, configPath string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if _, err := geometry.ParseFitMode(c.Pointer.FitMode); err != nil {
		return fmt.Errorf("invalid pointer.fit_mode: %w", err)
	}
	if rl := c.Pointer.RateLimit; rl.Enabled && (rl.MaxActions <= 0 || rl.WindowSeconds <= 0) {
		return fmt.Errorf("invalid pointer.rate_limit: max_actions and window_seconds must be positive when enabled")
	}
	return nil
}

// FitMode returns the parsed pointer fit mode, contain when unset or invalid
func (c *Config) FitMode() geometry.FitMode {
	mode, err := geometry.ParseFitMode(c.Pointer.FitMode)
	if err != nil {
		return geometry.FitContain
	}
	return mode
}

// Save writes the configuration as YAML with two-space indentation
func (c *Config) Save(configPath string) error {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close YAML encoder: %w", err)
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolvePath returns flagPath when set, otherwise DefaultConfigPath under the working directory
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	wd, err := os.Getwd()
	if err != nil {
		return DefaultConfigPath
	}
	return filepath.Join(wd, DefaultConfigPath)
}

package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Upload UploadConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Environment  string        `mapstructure:"environment"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in the production environment.
func (s ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Debug reports whether verbose logging is enabled.
func (l LogConfig) Debug() bool {
	return strings.EqualFold(l.Level, "debug")
}

// UploadConfig holds upload storage settings.
type UploadConfig struct {
	Dir       string `mapstructure:"dir"`
	MaxSizeMB int64  `mapstructure:"max_size_mb"`
}

// MaxBytes returns the upload size limit in bytes.
func (u UploadConfig) MaxBytes() int64 {
	return u.MaxSizeMB * 1024 * 1024
}

// Load reads configuration from environment variables with the DOC2MD_
// prefix and, when configFile is not empty, from that file. Environment
// variables take precedence over the file.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOC2MD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")

	// Log defaults
	v.SetDefault("log.level", "INFO")

	// Upload defaults
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_size_mb", 10)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("server.host"),
			Port:         v.GetInt("server.port"),
			Environment:  v.GetString("server.environment"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
		Upload: UploadConfig{
			Dir:       v.GetString("upload.dir"),
			MaxSizeMB: v.GetInt64("upload.max_size_mb"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Upload.Dir == "" {
		return fmt.Errorf("upload directory must not be empty")
	}
	if c.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("invalid upload size limit: %dMB", c.Upload.MaxSizeMB)
	}
	return nil
}

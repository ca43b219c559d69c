package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ougirez/motorquote/internal/pkg/constants"
)

const envPrefix = "MOTORQUOTE"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Session SessionConfig `mapstructure:"session"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type SessionConfig struct {
	Backend string        `mapstructure:"backend"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Addr           string `mapstructure:"addr"`
	Password       string `mapstructure:"password"`
	DB             int    `mapstructure:"db"`
	ConnectRetries uint64 `mapstructure:"connect_retries"`
}

// CatalogConfig points at an optional YAML file overriding the built-in catalog.
type CatalogConfig struct {
	File string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(constants.ViperServerAddrKey, ":8080")
	v.SetDefault(constants.ViperServerAllowedOriginsKey, []string{"http://localhost:3000"})
	v.SetDefault(constants.ViperServerShutdownTimeoutKey, 5*time.Second)

	v.SetDefault(constants.ViperLogLevelKey, "info")
	v.SetDefault(constants.ViperLogDevelopmentKey, false)

	v.SetDefault(constants.ViperSessionBackendKey, constants.SessionBackendMemory)
	v.SetDefault(constants.ViperSessionTTLKey, 30*time.Minute)

	v.SetDefault(constants.ViperRedisAddrKey, "localhost:6379")
	v.SetDefault(constants.ViperRedisPasswordKey, "")
	v.SetDefault(constants.ViperRedisDBKey, 0)
	v.SetDefault(constants.ViperRedisConnectRetriesKey, 5)

	v.SetDefault(constants.ViperCatalogFileKey, "")
}

// Load reads the configuration. path may be empty, in which case only
// defaults and MOTORQUOTE_* environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Backend {
	case constants.SessionBackendMemory, constants.SessionBackendRedis:
	default:
		return fmt.Errorf("unknown session backend %q", c.Session.Backend)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.Session.TTL)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr is empty")
	}
	return nil
}

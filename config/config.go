// Package config loads client configuration from defaults, an optional
// YAML file, and FIAS_-prefixed environment variables, in increasing
// order of priority.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	envprovider "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/addrkit/go-fias/fias"
	"github.com/addrkit/go-fias/retry"
)

// DefaultFile is the configuration file Load looks for when none is given.
const DefaultFile = "fias.yaml"

// envPrefix maps FIAS_RETRY_MAX to retry.max and so on.
const envPrefix = "FIAS_"

// Config holds every tunable of the client library.
type Config struct {
	API     APIConfig     `koanf:"api"`
	Token   TokenConfig   `koanf:"token"`
	Address AddressConfig `koanf:"address"`
	HTTP    HTTPConfig    `koanf:"http"`
	Retry   RetryConfig   `koanf:"retry"`
	Log     LogConfig     `koanf:"log"`

	k *koanf.Koanf
}

// APIConfig locates the SPAS API.
type APIConfig struct {
	URL string `koanf:"url" validate:"required,url"`
}

// TokenConfig locates the token-issuing endpoints.
type TokenConfig struct {
	Settings string `koanf:"settings" validate:"required,url"`
	Service  string `koanf:"service" validate:"required,url"`
}

// AddressConfig selects the default address representation.
type AddressConfig struct {
	Type int `koanf:"type" validate:"oneof=1 2"`
}

// HTTPConfig tunes the transport.
type HTTPConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// RetryConfig tunes the retry policy applied by callers who take theirs
// from configuration instead of hard-coding one.
type RetryConfig struct {
	Max        int           `koanf:"max" validate:"min=1"`
	Delay      time.Duration `koanf:"delay" validate:"min=0"`
	Multiplier float64       `koanf:"multiplier" validate:"gte=1"`
}

// LogConfig tunes the structured logger.
type LogConfig struct {
	Level  string `koanf:"level" validate:"required"`
	Pretty bool   `koanf:"pretty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load loads configuration from defaults, the default YAML file (if it
// exists), and environment variables, in that order of priority.
func Load() (*Config, error) {
	return LoadFrom(DefaultFile)
}

// LoadFrom behaves like Load with an explicit YAML file path. A missing
// file is not an error; defaults and environment still apply.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// The YAML file is optional.
	_ = k.Load(file.Provider(path), yaml.Parser())

	if err := loadEnv(k); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	return finish(k)
}

// LoadBytes loads configuration from defaults and an in-memory YAML
// document. Environment variables are not consulted.
func LoadBytes(doc []byte) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(rawbytes.Provider(doc), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return finish(k)
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"api.url":        fias.DefaultBaseURL,
		"token.settings": fias.DefaultSettingsURL,
		"token.service":  fias.DefaultServiceURL,

		"address.type": int(fias.Municipality),

		"http.timeout": "30s",

		"retry.max":        retry.DefaultMaxRetries,
		"retry.delay":      "500ms",
		"retry.multiplier": retry.DefaultBackoffMultiplier,

		"log.level":  "info",
		"log.pretty": false,
	}

	return k.Load(confmap.Provider(defaults, "."), nil)
}

func loadEnv(k *koanf.Koanf) error {
	return k.Load(envprovider.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "_", ".")
	}), nil)
}

func finish(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.k = k

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// RetryPolicy adapts the retry section into a policy value.
func (c *Config) RetryPolicy() retry.Policy {
	return retry.Policy{
		MaxRetries:        c.Retry.Max,
		InitialDelay:      c.Retry.Delay,
		BackoffMultiplier: c.Retry.Multiplier,
		RetryIf:           retry.IsTransient,
	}
}

// AddressType returns the configured default address representation.
func (c *Config) AddressType() fias.AddressType {
	return fias.AddressType(c.Address.Type)
}

// TokenRequest adapts the token section for fias.GetToken.
func (c *Config) TokenRequest() fias.TokenRequest {
	return fias.TokenRequest{
		SettingsURL: c.Token.Settings,
		ServiceURL:  c.Token.Service,
	}
}

// Get exposes raw access to any loaded key for settings outside the
// typed structure.
func (c *Config) Get(key string) any {
	return c.k.Get(key)
}

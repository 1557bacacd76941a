// Package config carga la configuración del servicio.
//
// Precedencia (menor a mayor): defaults, archivo YAML (ANIMALS_CONFIG),
// variables de entorno con prefijo ANIMALS_.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"animals-safety/internal/messages"
	"animals-safety/internal/platform/logger"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr string `koanf:"addr"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
	AppName   string `koanf:"app_name"`

	// Locale de los mensajes cuando el request no manda Accept-Language.
	Locale string `koanf:"locale"`

	SeedFile   string `koanf:"seed_file"`
	SeedSample bool   `koanf:"seed_sample"`

	MetricsEnabled bool `koanf:"metrics_enabled"`

	NotifyWebhookURL string `koanf:"notify_webhook_url"`
	NotifyTimeoutMS  int    `koanf:"notify_timeout_ms"`

	ReadTimeoutMS     int `koanf:"read_timeout_ms"`
	WriteTimeoutMS    int `koanf:"write_timeout_ms"`
	ShutdownTimeoutMS int `koanf:"shutdown_timeout_ms"`
}

func New() *Config {
	return &Config{
		Addr:              ":8080",
		LogLevel:          "info",
		LogFormat:         "text",
		AppName:           "animals-safety",
		Locale:            messages.DefaultLocale,
		MetricsEnabled:    true,
		NotifyTimeoutMS:   3000,
		ReadTimeoutMS:     5000,
		WriteTimeoutMS:    10000,
		ShutdownTimeoutMS: 10000,
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if !messages.Supported(c.Locale) {
		return fmt.Errorf("%w: unsupported locale %q", ErrInvalidConfig, c.Locale)
	}
	if c.NotifyWebhookURL != "" &&
		!strings.HasPrefix(c.NotifyWebhookURL, "http://") && !strings.HasPrefix(c.NotifyWebhookURL, "https://") {
		return fmt.Errorf("%w: notify_webhook_url must be http(s)", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) NotifyTimeout() time.Duration   { return ms(c.NotifyTimeoutMS) }
func (c *Config) ReadTimeout() time.Duration     { return ms(c.ReadTimeoutMS) }
func (c *Config) WriteTimeout() time.Duration    { return ms(c.WriteTimeoutMS) }
func (c *Config) ShutdownTimeout() time.Duration { return ms(c.ShutdownTimeoutMS) }

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

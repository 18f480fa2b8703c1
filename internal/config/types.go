package config

import (
	"path/filepath"
	"time"
)

// Config is the top-level sopmaster configuration, corresponding to
// sopmaster.yml.
type Config struct {
	Port            int        `yaml:"port" koanf:"port"`
	DataDir         string     `yaml:"data_dir" koanf:"data_dir"`
	BaseURL         string     `yaml:"base_url" koanf:"base_url"`
	GenerateDelayMS int        `yaml:"generate_delay_ms" koanf:"generate_delay_ms"`
	AllowAllOrigins bool       `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	SecureCookies   bool       `yaml:"secure_cookies" koanf:"secure_cookies"`
	Mail            MailConfig `yaml:"mail" koanf:"mail"`
}

// MailConfig holds the optional verification-code delivery settings.
// When disabled or misconfigured, codes are shown on-screen instead.
type MailConfig struct {
	Enabled    bool   `yaml:"enabled" koanf:"enabled"`
	Endpoint   string `yaml:"endpoint" koanf:"endpoint"`
	ServiceID  string `yaml:"service_id" koanf:"service_id"`
	TemplateID string `yaml:"template_id" koanf:"template_id"`
	PublicKey  string `yaml:"public_key" koanf:"public_key"`
	TimeoutMS  int    `yaml:"timeout_ms" koanf:"timeout_ms"`
}

// GenerateDelay returns the cosmetic drafting pause as a duration.
func (c *Config) GenerateDelay() time.Duration {
	return time.Duration(c.GenerateDelayMS) * time.Millisecond
}

// DatabasePath returns the SQLite file location under the data dir.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "sopmaster.db")
}

// Timeout returns the delivery timeout as a duration.
func (c *MailConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

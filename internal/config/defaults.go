package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:            8090,
		DataDir:         ".sopmaster",
		BaseURL:         "http://localhost:8090",
		GenerateDelayMS: 1800,
		Mail: MailConfig{
			Enabled:   false,
			TimeoutMS: 10000,
		},
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	s := strings.TrimSpace(value.Value)
	if s == "" || s == "null" {
		d.Duration = 0
		return nil
	}
	dd, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration must be a string like \"10s\": %w", err)
	}
	d.Duration = dd
	return nil
}

func defaultConfig() *Config {
	return &Config{
		Env: "development",
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ShutdownTimeout: Duration{Duration: 15 * time.Second},
			AllowOrigins: []string{
				"http://localhost:80",
				"http://localhost:3000",
				"http://localhost:5174",
			},
		},
		Postgres: PostgresConfig{
			Host: "localhost",
			Port: "5432",
			User: "postgres",
			Name: "moodstream",
		},
		Providers: ProvidersConfig{
			Search:       ProviderConfig{Path: "/search", Timeout: Duration{Duration: 10 * time.Second}},
			Conversation: ProviderConfig{Path: "/v1/chat/completions", Model: "gpt-4o", Timeout: Duration{Duration: 20 * time.Second}},
			Reflection:   ProviderConfig{Path: "/v1/chat/completions", Model: "claude-opus-4-1", Timeout: Duration{Duration: 20 * time.Second}},
			Quip:         ProviderConfig{Path: "/v1/chat/completions", Model: "grok-4", Timeout: Duration{Duration: 20 * time.Second}},
			Reasoning:    ProviderConfig{Path: "/v1/chat/completions", Model: "o3", Timeout: Duration{Duration: 30 * time.Second}},
			Image:        ProviderConfig{Path: "/", Timeout: Duration{Duration: 30 * time.Second}},
		},
	}
}

// Load reads the optional YAML config file, then applies env overrides.
// This happens exactly once at startup; request logic only ever sees the
// resulting struct.
func Load() (*Config, error) {
	cfg := defaultConfig()

	cfgPath := strings.TrimSpace(os.Getenv("MS_CONFIG_PATH"))
	if cfgPath == "" {
		if wd, err := os.Getwd(); err == nil {
			p := filepath.Join(wd, "config", "config.yaml")
			if _, err := os.Stat(p); err == nil {
				cfgPath = p
			}
		}
	}

	if cfgPath != "" {
		b, err := os.ReadFile(cfgPath)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		cfg.HTTP.Addr = ":8080"
	}

	providers := []*ProviderConfig{
		&cfg.Providers.Search,
		&cfg.Providers.Conversation,
		&cfg.Providers.Reflection,
		&cfg.Providers.Quip,
		&cfg.Providers.Reasoning,
		&cfg.Providers.Image,
	}
	for _, p := range providers {
		if p.Timeout.Duration <= 0 {
			p.Timeout = Duration{Duration: 20 * time.Second}
		}
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("LOG_MODE")); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.HTTP.Addr = ":" + v
	}
	if v := strings.TrimSpace(os.Getenv("MS_HTTP_ADDR")); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("POSTGRES_HOST")); v != "" {
		cfg.Postgres.Host = v
	}
	if v := strings.TrimSpace(os.Getenv("POSTGRES_PORT")); v != "" {
		cfg.Postgres.Port = v
	}
	if v := strings.TrimSpace(os.Getenv("POSTGRES_USER")); v != "" {
		cfg.Postgres.User = v
	}
	if v := strings.TrimSpace(os.Getenv("POSTGRES_PASSWORD")); v != "" {
		cfg.Postgres.Password = v
	}
	if v := strings.TrimSpace(os.Getenv("POSTGRES_NAME")); v != "" {
		cfg.Postgres.Name = v
	}
	if v := strings.TrimSpace(os.Getenv("JWT_SECRET_KEY")); v != "" {
		cfg.Auth.TokenSecret = v
	}

	overrideProvider := func(p *ProviderConfig, prefix string) {
		if v := strings.TrimSpace(os.Getenv(prefix + "_BASE_URL")); v != "" {
			p.BaseURL = v
		}
		if v := strings.TrimSpace(os.Getenv(prefix + "_API_KEY")); v != "" {
			p.APIKey = v
		}
		if v := strings.TrimSpace(os.Getenv(prefix + "_MODEL")); v != "" {
			p.Model = v
		}
	}
	overrideProvider(&cfg.Providers.Search, "MS_SEARCH")
	overrideProvider(&cfg.Providers.Conversation, "MS_CONVERSATION")
	overrideProvider(&cfg.Providers.Reflection, "MS_REFLECTION")
	overrideProvider(&cfg.Providers.Quip, "MS_QUIP")
	overrideProvider(&cfg.Providers.Reasoning, "MS_REASONING")
	overrideProvider(&cfg.Providers.Image, "MS_IMAGE")
}

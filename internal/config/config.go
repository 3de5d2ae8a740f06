package config

import "time"

type Duration struct {
	Duration time.Duration
}

type HTTPConfig struct {
	Addr            string   `yaml:"addr"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
	AllowOrigins    []string `yaml:"allow_origins"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type AuthConfig struct {
	// TokenSecret verifies caller bearer tokens when set. Tokens are only
	// used for note attribution; nothing is rejected without one.
	TokenSecret string `yaml:"token_secret"`
}

// ProviderConfig describes one upstream integration endpoint. Every provider
// call gets a single attempt bounded by Timeout; there is no retry policy.
type ProviderConfig struct {
	BaseURL string   `yaml:"base_url"`
	Path    string   `yaml:"path,omitempty"`
	APIKey  string   `yaml:"api_key,omitempty"`
	Model   string   `yaml:"model,omitempty"`
	Timeout Duration `yaml:"timeout,omitempty"`
}

type ProvidersConfig struct {
	// Search is the web-search endpoint used for the video, social and
	// article categories.
	Search ProviderConfig `yaml:"search"`

	// Conversation handles per-item explanations and the reflection endpoint.
	Conversation ProviderConfig `yaml:"conversation"`

	// Reflection generates the long-form weekly reflection text.
	Reflection ProviderConfig `yaml:"reflection"`

	// Quip is the alternate model used for witty one-liners.
	Quip ProviderConfig `yaml:"quip"`

	// Reasoning is the long-form analysis model behind mood patterns.
	Reasoning ProviderConfig `yaml:"reasoning"`

	// Image is the image-generation endpoint.
	Image ProviderConfig `yaml:"image"`
}

type Config struct {
	Env       string          `yaml:"env"`
	HTTP      HTTPConfig      `yaml:"http"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Auth      AuthConfig      `yaml:"auth"`
	Providers ProvidersConfig `yaml:"providers"`
}

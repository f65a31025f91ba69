package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Remote configures the remote analysis service. It is resolved once at
// startup and handed to the remote client constructor.
type Remote struct {
	Provider   string        `yaml:"provider"`
	Endpoint   string        `yaml:"endpoint"`
	Credential string        `yaml:"credential"`
	Model      string        `yaml:"model"`
	Prompt     string        `yaml:"prompt"`
	Timeout    time.Duration `yaml:"timeout"`
	RPM        int           `yaml:"rpm"`
}

// Enabled reports whether enough is configured to attempt a remote call.
func (r Remote) Enabled() bool {
	if r.Credential == "" {
		return false
	}
	return strings.EqualFold(r.Provider, "anthropic") || r.Endpoint != ""
}

type Config struct {
	Port            int           `yaml:"port"`
	LogLevel        string        `yaml:"log_level"`
	APIToken        string        `yaml:"api_token"`
	Remote          Remote        `yaml:"remote"`
	UploadDir       string        `yaml:"upload_dir"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	MaxUploadMB     int           `yaml:"max_upload_mb"`
	NatsURL         string        `yaml:"nats_url"`
	NatsToken       string        `yaml:"nats_token"`
	SlackBotToken   string        `yaml:"slack_bot_token"`
	SlackChannel    string        `yaml:"slack_alert_channel"`
}

func defaults() Config {
	return Config{
		Port:     3000,
		LogLevel: "info",
		Remote: Remote{
			Provider: "openai",
			Model:    "latest",
			Timeout:  60 * time.Second,
			RPM:      60,
		},
		UploadDir:       "uploads",
		CleanupInterval: 30 * time.Minute,
		MaxUploadMB:     10,
	}
}

// Load reads the configuration from the environment. When VIDOCQ_CONFIG names
// a YAML file it is applied first; environment variables override it.
func Load() (Config, error) {
	cfg := defaults()
	if path := os.Getenv("VIDOCQ_CONFIG"); path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// LoadFile decodes a YAML file over cfg. Fields absent from the file keep
// their current value.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Port = envInt("VIDOCQ_PORT", cfg.Port)
	cfg.LogLevel = envStr("LOG_LEVEL", cfg.LogLevel)
	cfg.APIToken = envStr("VIDOCQ_API_TOKEN", cfg.APIToken)

	cfg.Remote.Provider = envStr("REMOTE_PROVIDER", cfg.Remote.Provider)
	cfg.Remote.Endpoint = envStr("AZURE_AI_ENDPOINT", cfg.Remote.Endpoint)
	cfg.Remote.Credential = envStr("AZURE_AI_KEY", cfg.Remote.Credential)
	cfg.Remote.Model = envStr("AZURE_AI_MODEL_VERSION", cfg.Remote.Model)
	cfg.Remote.Prompt = envStr("REMOTE_PROMPT", cfg.Remote.Prompt)
	cfg.Remote.Timeout = envSeconds("REMOTE_TIMEOUT", cfg.Remote.Timeout)
	cfg.Remote.RPM = envInt("REMOTE_RPM", cfg.Remote.RPM)

	cfg.UploadDir = envStr("UPLOAD_DIR", cfg.UploadDir)
	cfg.CleanupInterval = envMinutes("CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.MaxUploadMB = envInt("MAX_UPLOAD_MB", cfg.MaxUploadMB)

	cfg.NatsURL = envStr("NATS_URL", cfg.NatsURL)
	cfg.NatsToken = envStr("NATS_TOKEN", cfg.NatsToken)
	cfg.SlackBotToken = envStr("SLACK_BOT_TOKEN", cfg.SlackBotToken)
	cfg.SlackChannel = envStr("SLACK_ALERT_CHANNEL", cfg.SlackChannel)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envSeconds(key string, fallback time.Duration) time.Duration {
	if n := envInt(key, -1); n > 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func envMinutes(key string, fallback time.Duration) time.Duration {
	if n := envInt(key, -1); n > 0 {
		return time.Duration(n) * time.Minute
	}
	return fallback
}

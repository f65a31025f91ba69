package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envKeys = []string{
	"VIDOCQ_CONFIG", "VIDOCQ_PORT", "LOG_LEVEL", "VIDOCQ_API_TOKEN",
	"REMOTE_PROVIDER", "AZURE_AI_ENDPOINT", "AZURE_AI_KEY", "AZURE_AI_MODEL_VERSION",
	"REMOTE_PROMPT", "REMOTE_TIMEOUT", "REMOTE_RPM",
	"UPLOAD_DIR", "CLEANUP_INTERVAL", "MAX_UPLOAD_MB",
	"NATS_URL", "NATS_TOKEN", "SLACK_BOT_TOKEN", "SLACK_ALERT_CHANNEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.Remote.Provider != "openai" {
		t.Errorf("expected default provider openai, got %s", cfg.Remote.Provider)
	}
	if cfg.Remote.Model != "latest" {
		t.Errorf("expected default model latest, got %s", cfg.Remote.Model)
	}
	if cfg.Remote.Timeout != 60*time.Second {
		t.Errorf("expected default timeout 60s, got %s", cfg.Remote.Timeout)
	}
	if cfg.Remote.Enabled() {
		t.Error("expected remote disabled without credentials")
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("expected default upload dir, got %s", cfg.UploadDir)
	}
	if cfg.CleanupInterval != 30*time.Minute {
		t.Errorf("expected default cleanup interval 30m, got %s", cfg.CleanupInterval)
	}
	if cfg.MaxUploadMB != 10 {
		t.Errorf("expected default max upload 10, got %d", cfg.MaxUploadMB)
	}
	if cfg.NatsURL != "" {
		t.Errorf("expected nats disabled by default, got %s", cfg.NatsURL)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("VIDOCQ_PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("VIDOCQ_API_TOKEN", "secret")
	t.Setenv("REMOTE_PROVIDER", "anthropic")
	t.Setenv("AZURE_AI_ENDPOINT", "https://example.test/openai/deployments/x")
	t.Setenv("AZURE_AI_KEY", "k-123")
	t.Setenv("AZURE_AI_MODEL_VERSION", "gpt-4o")
	t.Setenv("REMOTE_TIMEOUT", "15")
	t.Setenv("REMOTE_RPM", "6")
	t.Setenv("UPLOAD_DIR", "/tmp/up")
	t.Setenv("CLEANUP_INTERVAL", "5")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("SLACK_ALERT_CHANNEL", "C1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.APIToken != "secret" {
		t.Errorf("expected api token, got %s", cfg.APIToken)
	}
	if cfg.Remote.Provider != "anthropic" {
		t.Errorf("expected anthropic provider, got %s", cfg.Remote.Provider)
	}
	if cfg.Remote.Credential != "k-123" {
		t.Errorf("expected credential, got %s", cfg.Remote.Credential)
	}
	if cfg.Remote.Model != "gpt-4o" {
		t.Errorf("expected model gpt-4o, got %s", cfg.Remote.Model)
	}
	if cfg.Remote.Timeout != 15*time.Second {
		t.Errorf("expected 15s timeout, got %s", cfg.Remote.Timeout)
	}
	if cfg.Remote.RPM != 6 {
		t.Errorf("expected rpm 6, got %d", cfg.Remote.RPM)
	}
	if cfg.CleanupInterval != 5*time.Minute {
		t.Errorf("expected 5m interval, got %s", cfg.CleanupInterval)
	}
	if cfg.MaxUploadMB != 2 {
		t.Errorf("expected 2MB, got %d", cfg.MaxUploadMB)
	}
	if cfg.NatsURL != "nats://localhost:4222" {
		t.Errorf("expected nats url, got %s", cfg.NatsURL)
	}
	if cfg.SlackChannel != "C1" {
		t.Errorf("expected slack channel, got %s", cfg.SlackChannel)
	}
	if !cfg.Remote.Enabled() {
		t.Error("expected remote enabled")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("VIDOCQ_PORT", "notanumber")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("expected default port on invalid value, got %d", cfg.Port)
	}
}

func TestLoad_YAMLFileWithEnvOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "vidocq.yaml")
	content := `
port: 4000
log_level: warn
remote:
  endpoint: https://file.test/chat
  credential: from-file
  timeout: 20s
upload_dir: /var/vidocq
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VIDOCQ_CONFIG", path)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 4000 {
		t.Errorf("expected port from file, got %d", cfg.Port)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("expected env to override file, got %s", cfg.LogLevel)
	}
	if cfg.Remote.Endpoint != "https://file.test/chat" {
		t.Errorf("expected endpoint from file, got %s", cfg.Remote.Endpoint)
	}
	if cfg.Remote.Timeout != 20*time.Second {
		t.Errorf("expected 20s timeout from file, got %s", cfg.Remote.Timeout)
	}
	if cfg.Remote.Provider != "openai" {
		t.Errorf("expected default provider kept, got %s", cfg.Remote.Provider)
	}
	if cfg.UploadDir != "/var/vidocq" {
		t.Errorf("expected upload dir from file, got %s", cfg.UploadDir)
	}
}

func TestLoad_MissingYAMLFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("VIDOCQ_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestRemoteEnabled(t *testing.T) {
	tests := []struct {
		name   string
		remote Remote
		want   bool
	}{
		{"nothing", Remote{Provider: "openai"}, false},
		{"endpoint only", Remote{Provider: "openai", Endpoint: "https://x"}, false},
		{"openai complete", Remote{Provider: "openai", Endpoint: "https://x", Credential: "k"}, true},
		{"openai no endpoint", Remote{Provider: "openai", Credential: "k"}, false},
		{"anthropic default endpoint", Remote{Provider: "anthropic", Credential: "k"}, true},
	}

	for _, tt := range tests {
		if got := tt.remote.Enabled(); got != tt.want {
			t.Errorf("%s: Enabled() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

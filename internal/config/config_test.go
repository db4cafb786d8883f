package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/meridian-legal/counsel/internal/config"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.2.0"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "15m"
shutdown_timeout = "30s"

[database]
host = "localhost"
port = 5432
name = "counsel"
user = "counsel"
password = "counsel"
ssl_mode = "disable"

[storage]
container_name = "counsel"
connection_string = "DefaultEndpointsProtocol=http;AccountName=counselstore;AccountKey=key;"

[provider]
timeout = "60s"
temperature = 0.1
max_tokens = 2048

[agent]
name = "counsel"
model = "llama3.1:8b"

[agent.provider]
name = "ollama"
base_url = "http://localhost:11434"

[api]
base_path = "/api"

[api.pagination]
default_page_size = 25
max_page_size = 50

[prompts]
few_shot_cap = 8
`

const overlayConfig = `
[server]
port = 9090

[database]
host = "prodhost"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "counsel" {
		t.Errorf("database name: got %s, want counsel", cfg.Database.Name)
	}
	if cfg.Storage.ContainerName != "counsel" {
		t.Errorf("container name: got %s, want counsel", cfg.Storage.ContainerName)
	}
	if cfg.Version != "0.2.0" {
		t.Errorf("version: got %s, want 0.2.0", cfg.Version)
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("shutdown timeout: got %s, want 30s", cfg.ShutdownTimeoutDuration())
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	writeConfig(t, dir, "config.production.toml", overlayConfig)
	chdir(t, dir)
	t.Setenv(config.EnvCounselEnv, "production")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want overlay 9090", cfg.Server.Port)
	}
	if cfg.Database.Host != "prodhost" {
		t.Errorf("database host: got %s, want overlay prodhost", cfg.Database.Host)
	}
	if cfg.Database.Name != "counsel" {
		t.Errorf("database name: got %s, want base counsel", cfg.Database.Name)
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("COUNSEL_DB_NAME", "counsel")
	t.Setenv("COUNSEL_DB_USER", "counsel")
	t.Setenv("COUNSEL_STORAGE_CONNECTION_STRING", "conn")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want default 8080", cfg.Server.Port)
	}
	if cfg.Provider.MaxTokens != 2048 {
		t.Errorf("max tokens: got %d, want default 2048", cfg.Provider.MaxTokens)
	}
	if cfg.Prompts.FewShotCap != 8 {
		t.Errorf("few shot cap: got %d, want default 8", cfg.Prompts.FewShotCap)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)
	t.Setenv(config.EnvServerPort, "3000")
	t.Setenv("COUNSEL_PROVIDER_TEMPERATURE", "0.5")
	t.Setenv(config.EnvPromptsFewShotCap, "4")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server port: got %d, want env 3000", cfg.Server.Port)
	}
	if cfg.Provider.Temperature != 0.5 {
		t.Errorf("temperature: got %f, want env 0.5", cfg.Provider.Temperature)
	}
	if cfg.Prompts.FewShotCap != 4 {
		t.Errorf("few shot cap: got %d, want env 4", cfg.Prompts.FewShotCap)
	}
}

func TestAgentConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	agent := cfg.Agent.Build()
	if agent.Name != "counsel" {
		t.Errorf("agent name: got %s, want counsel", agent.Name)
	}
	if agent.Provider == nil || agent.Provider.Name != "ollama" {
		t.Fatalf("agent provider: got %+v, want ollama", agent.Provider)
	}
	if agent.Provider.BaseURL != "http://localhost:11434" {
		t.Errorf("base url: got %s", agent.Provider.BaseURL)
	}
	if agent.Model == nil || agent.Model.Name != "llama3.1:8b" {
		t.Fatalf("agent model: got %+v, want llama3.1:8b", agent.Model)
	}
}

func TestAgentEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)
	t.Setenv(config.EnvAgentProviderName, "azure")
	t.Setenv(config.EnvAgentBaseURL, "https://myendpoint.openai.azure.com")
	t.Setenv(config.EnvAgentToken, "secret")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	agent := cfg.Agent.Build()
	if agent.Provider.Name != "azure" {
		t.Errorf("provider name: got %s, want azure", agent.Provider.Name)
	}
	if agent.Provider.BaseURL != "https://myendpoint.openai.azure.com" {
		t.Errorf("base url: got %s", agent.Provider.BaseURL)
	}
	if agent.Provider.Options["token"] != "secret" {
		t.Errorf("token option: got %v, want secret", agent.Provider.Options["token"])
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad shutdown timeout", `shutdown_timeout = "never"`},
		{"bad port", "[server]\nport = 99999\n"},
		{"bad temperature", "[provider]\ntemperature = 3.5\n"},
		{"bad few shot cap", "[prompts]\nfew_shot_cap = -1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, "config.toml", tc.content)
			chdir(t, dir)
			t.Setenv("COUNSEL_DB_NAME", "counsel")
			t.Setenv("COUNSEL_DB_USER", "counsel")
			t.Setenv("COUNSEL_STORAGE_CONNECTION_STRING", "conn")

			if _, err := config.Load(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

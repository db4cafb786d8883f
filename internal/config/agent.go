package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvAgentName         = "COUNSEL_AGENT_NAME"
	EnvAgentProviderName = "COUNSEL_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "COUNSEL_AGENT_BASE_URL"
	EnvAgentToken        = "COUNSEL_AGENT_TOKEN"
	EnvAgentDeployment   = "COUNSEL_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "COUNSEL_AGENT_API_VERSION"
	EnvAgentAuthType     = "COUNSEL_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "COUNSEL_AGENT_MODEL_NAME"
)

// AgentConfig is the TOML-facing shape of the go-agents configuration.
// Build converts the finalized values into a gaconfig.AgentConfig.
type AgentConfig struct {
	Name     string              `toml:"name"`
	Model    string              `toml:"model"`
	Provider AgentProviderConfig `toml:"provider"`
}

// AgentProviderConfig holds the completion backend connection settings.
type AgentProviderConfig struct {
	Name    string         `toml:"name"`
	BaseURL string         `toml:"base_url"`
	Options map[string]any `toml:"options"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AgentConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AgentConfig) Merge(overlay *AgentConfig) {
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Provider.Name != "" {
		c.Provider.Name = overlay.Provider.Name
	}
	if overlay.Provider.BaseURL != "" {
		c.Provider.BaseURL = overlay.Provider.BaseURL
	}
	for k, v := range overlay.Provider.Options {
		if c.Provider.Options == nil {
			c.Provider.Options = make(map[string]any)
		}
		c.Provider.Options[k] = v
	}
}

// Build produces the go-agents configuration from the finalized values.
func (c *AgentConfig) Build() gaconfig.AgentConfig {
	options := make(map[string]any, len(c.Provider.Options))
	for k, v := range c.Provider.Options {
		options[k] = v
	}

	return gaconfig.AgentConfig{
		Name: c.Name,
		Provider: &gaconfig.ProviderConfig{
			Name:    c.Provider.Name,
			BaseURL: c.Provider.BaseURL,
			Options: options,
		},
		Model: &gaconfig.ModelConfig{
			Name: c.Model,
		},
	}
}

func (c *AgentConfig) loadDefaults() {
	if c.Name == "" {
		c.Name = "counsel"
	}
	if c.Model == "" {
		c.Model = "llama3.1:8b"
	}
	if c.Provider.Name == "" {
		c.Provider.Name = "ollama"
	}
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = "http://localhost:11434"
	}
}

func (c *AgentConfig) loadEnv() {
	if v := os.Getenv(EnvAgentName); v != "" {
		c.Name = v
	}
	if v := os.Getenv(EnvAgentProviderName); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModelName); v != "" {
		c.Model = v
	}

	setOption := func(envVar, key string) {
		if v := os.Getenv(envVar); v != "" {
			if c.Provider.Options == nil {
				c.Provider.Options = make(map[string]any)
			}
			c.Provider.Options[key] = v
		}
	}

	setOption(EnvAgentToken, "token")
	setOption(EnvAgentDeployment, "deployment")
	setOption(EnvAgentAPIVersion, "api_version")
	setOption(EnvAgentAuthType, "auth_type")
}

func (c *AgentConfig) validate() error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Model == "" {
		return fmt.Errorf("model name required")
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvPromptsTemplatesDir = "COUNSEL_PROMPTS_TEMPLATES_DIR"
	EnvPromptsFewShotCap   = "COUNSEL_PROMPTS_FEW_SHOT_CAP"
)

// PromptsConfig holds prompt template and optimization settings.
type PromptsConfig struct {
	// TemplatesDir optionally points at a directory of prompt template
	// overrides. Empty means only embedded defaults and stored versions
	// are used.
	TemplatesDir string `toml:"templates_dir"`
	FewShotCap   int    `toml:"few_shot_cap"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *PromptsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *PromptsConfig) Merge(overlay *PromptsConfig) {
	if overlay.TemplatesDir != "" {
		c.TemplatesDir = overlay.TemplatesDir
	}
	if overlay.FewShotCap != 0 {
		c.FewShotCap = overlay.FewShotCap
	}
}

func (c *PromptsConfig) loadDefaults() {
	if c.FewShotCap == 0 {
		c.FewShotCap = 8
	}
}

func (c *PromptsConfig) loadEnv() {
	if v := os.Getenv(EnvPromptsTemplatesDir); v != "" {
		c.TemplatesDir = v
	}
	if v := os.Getenv(EnvPromptsFewShotCap); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FewShotCap = n
		}
	}
}

func (c *PromptsConfig) validate() error {
	if c.FewShotCap < 1 {
		return fmt.Errorf("few_shot_cap must be positive")
	}
	return nil
}

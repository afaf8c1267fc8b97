package openapi

import "os"

// Config holds the document title and description shown by API clients.
// Output, when set, is the file the generated document is written to at startup.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Output      string `toml:"output"`
}

type ConfigEnv struct {
	Title       string
	Description string
	Output      string
}

func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.Output != "" {
		c.Output = overlay.Output
	}
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "Account Lab API"
	}
	if c.Description == "" {
		c.Description = "Account ledger service backing the account, transaction and admin views."
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env.Title != "" {
		if v := os.Getenv(env.Title); v != "" {
			c.Title = v
		}
	}
	if env.Description != "" {
		if v := os.Getenv(env.Description); v != "" {
			c.Description = v
		}
	}
	if env.Output != "" {
		if v := os.Getenv(env.Output); v != "" {
			c.Output = v
		}
	}
}

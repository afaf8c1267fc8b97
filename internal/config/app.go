package config

import "os"

// AppConfig configures the server-rendered web application.
type AppConfig struct {
	BasePath string `toml:"base_path"`
	Title    string `toml:"title"`
}

func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return validateBasePath(c.BasePath)
}

func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if c.Title == "" {
		c.Title = "Account Lab"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv("APP_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("APP_TITLE"); v != "" {
		c.Title = v
	}
}

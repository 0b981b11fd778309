package utils

import "github.com/knadh/koanf/v2"

// Defaults holds the settings applied before any file, env or flag.
var Defaults = map[string]any{
	"app":         "buddy",
	"apollo.apps": "",
	"steam.exec":  "",
	"log.format":  "",
	"log.output":  "stderr",
}

type Config struct {
	*koanf.Koanf
}

func NewConfig() *Config {
	return &Config{
		Koanf: koanf.New("."),
	}
}

func (c *Config) Reset() {
	c.Koanf = koanf.New(".")
}

// AppsFile is the configured apps.json, empty to use the Apollo default.
func (c *Config) AppsFile() string {
	return c.String("apollo.apps")
}

// SteamExec returns the configured Steam executable or fallback.
func (c *Config) SteamExec(fallback string) string {
	if exec := c.String("steam.exec"); exec != "" {
		return exec
	}

	return fallback
}

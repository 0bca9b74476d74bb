package config

import "os"

// parseEnv overlays Config fields from environment variables.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("NOTEKEEP_SERVER_ADDR"); ok {
		cfg.ServerEndpointAddr = v
	}
}

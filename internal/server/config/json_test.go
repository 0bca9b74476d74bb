package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_JsonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.json")
	content := `{
		"endpoint_addr": ":6060",
		"secret_key": "json-secret",
		"access_token_validity_duration": "45m"
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	withArgs(t, "-c", path)

	cfg := LoadConfig()

	if cfg.EndpointAddr != ":6060" {
		t.Fatalf("address not taken from file: %q", cfg.EndpointAddr)
	}
	if cfg.SecretKey != "json-secret" {
		t.Fatalf("secret not taken from file: %q", cfg.SecretKey)
	}
	if cfg.AccessTokenValidityDuration != 45*time.Minute {
		t.Fatalf("token TTL not taken from file: %v", cfg.AccessTokenValidityDuration)
	}
	// Fields absent from the file keep their defaults.
	if cfg.DatabaseDSN == "" {
		t.Fatal("absent field should keep its default")
	}
}

func TestLoadConfig_JsonMissingFilePanics(t *testing.T) {
	withArgs(t, "-c", filepath.Join(t.TempDir(), "nope.json"))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing config file")
		}
	}()
	LoadConfig()
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	c, err := FromEnv(env(nil))
	if err != nil {
		t.Fatal(err)
	}
	if c.Addr() != ":8080" || c.StaticDir != "./static" || c.AllowedOrigin != "*" {
		t.Errorf("defaults = %+v", c)
	}
	if c.RateLimit != 5 || c.RateBurst != 10 || c.TLS() {
		t.Errorf("defaults = %+v", c)
	}
}

func TestFromEnv(t *testing.T) {
	c, err := FromEnv(env(map[string]string{
		"PORT":       "443",
		"TLS_CERT":   "server.crt",
		"TLS_KEY":    "server.key",
		"RATE_LIMIT": "1",
		"RATE_BURST": "3",
		"LOG_LEVEL":  "DEBUG",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !c.TLS() || c.Port != "443" || c.RateLimit != 1 || c.RateBurst != 3 || c.LogLevel != "DEBUG" {
		t.Errorf("config = %+v", c)
	}
}

func TestFromEnvRejects(t *testing.T) {
	tests := map[string]map[string]string{
		"bad rate":      {"RATE_LIMIT": "fast"},
		"zero burst":    {"RATE_BURST": "0"},
		"cert only":     {"TLS_CERT": "server.crt"},
		"negative rate": {"RATE_LIMIT": "-1"},
	}
	for name, m := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := FromEnv(env(m)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("STATIC_DIR=/srv/site\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STATIC_DIR", "")
	os.Unsetenv("STATIC_DIR")
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.StaticDir != "/srv/site" {
		t.Errorf("static dir = %q", c.StaticDir)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

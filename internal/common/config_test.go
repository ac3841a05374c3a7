package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	if config.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", config.Server.Port)
	}
	if config.Upload.MaxSizeMB != 10 {
		t.Errorf("default upload limit = %d MB, want 10", config.Upload.MaxSizeMB)
	}
	if config.Clients.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("default model = %q", config.Clients.Gemini.Model)
	}
	if config.IsProduction() {
		t.Error("default config should not be production")
	}
}

func TestLoadConfig_FileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carteira.toml")
	content := `
environment = "production"

[server]
port = 9090

[upload]
max_size_mb = 25

[clients.gemini]
model = "gemini-2.5-pro"
timeout = "45s"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if !config.IsProduction() {
		t.Error("environment override not applied")
	}
	if config.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", config.Server.Port)
	}
	if config.Upload.MaxSizeMB != 25 {
		t.Errorf("upload limit = %d, want 25", config.Upload.MaxSizeMB)
	}
	if config.Clients.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("model = %q, want gemini-2.5-pro", config.Clients.Gemini.Model)
	}
	if config.Clients.Gemini.GetTimeout() != 45*time.Second {
		t.Errorf("timeout = %v, want 45s", config.Clients.Gemini.GetTimeout())
	}

	// Unset fields keep defaults.
	if config.Server.Host != "0.0.0.0" {
		t.Errorf("host = %q, want default", config.Server.Host)
	}
}

func TestLoadConfig_MissingFileSkipped(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Server.Port != 8080 {
		t.Errorf("port = %d, want default 8080", config.Server.Port)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CARTEIRA_ENV", "prod")
	t.Setenv("CARTEIRA_PORT", "3000")
	t.Setenv("CARTEIRA_LOG_LEVEL", "debug")
	t.Setenv("CARTEIRA_GEMINI_MODEL", "gemini-2.0-flash")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if !config.IsProduction() {
		t.Error("CARTEIRA_ENV=prod not treated as production")
	}
	if config.Server.Port != 3000 {
		t.Errorf("port = %d, want 3000", config.Server.Port)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", config.Logging.Level)
	}
	if config.Clients.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("model = %q, want gemini-2.0-flash", config.Clients.Gemini.Model)
	}
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CARTEIRA_GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	if _, err := ResolveAPIKey(""); err == nil {
		t.Error("expected error when no key is configured")
	}

	if key, err := ResolveAPIKey("from-config"); err != nil || key != "from-config" {
		t.Errorf("config fallback = %q, %v", key, err)
	}

	t.Setenv("GEMINI_API_KEY", "from-env")
	if key, err := ResolveAPIKey("from-config"); err != nil || key != "from-env" {
		t.Errorf("env key = %q, %v; environment should win over config", key, err)
	}
}

func TestUploadConfigMaxSizeBytes(t *testing.T) {
	c := UploadConfig{MaxSizeMB: 5}
	if got := c.MaxSizeBytes(); got != 5<<20 {
		t.Errorf("MaxSizeBytes = %d, want %d", got, 5<<20)
	}

	c = UploadConfig{}
	if got := c.MaxSizeBytes(); got != 10<<20 {
		t.Errorf("zero config MaxSizeBytes = %d, want 10 MB default", got)
	}
}

func TestGetTimeout_InvalidFallsBack(t *testing.T) {
	c := GeminiConfig{Timeout: "not-a-duration"}
	if got := c.GetTimeout(); got != 30*time.Second {
		t.Errorf("GetTimeout = %v, want 30s fallback", got)
	}
}

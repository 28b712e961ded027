package cliparse

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "AUTOCLOSE_INTERVAL", "BASE_URL"} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 3327 {
		t.Errorf("Expected default port 3327, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" || cfg.DatabaseURL != "quickvote.db" {
		t.Errorf("Expected sqlite/quickvote.db, got %s/%s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.AutoCloseInterval != 30*time.Second {
		t.Errorf("Expected 30s sweep interval, got %v", cfg.AutoCloseInterval)
	}
	if cfg.BaseURL != "http://localhost:3327" {
		t.Errorf("Expected base URL derived from the port, got %q", cfg.BaseURL)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_TYPE", "memory")

	cfg, err := ParseFlags([]string{"-p", "8080", "-t", "sqlite", "-d", "/tmp/test.db"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected flag port 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" || cfg.DatabaseURL != "/tmp/test.db" {
		t.Errorf("Expected flag values, got %s/%s", cfg.DatabaseType, cfg.DatabaseURL)
	}
}

func TestEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4000")
	t.Setenv("DATABASE_TYPE", "memory")
	t.Setenv("AUTOCLOSE_INTERVAL", "5s")
	t.Setenv("BASE_URL", "https://vote.example.com")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 4000 || cfg.DatabaseType != "memory" {
		t.Errorf("Expected env values, got %d/%s", cfg.Port, cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("Expected no database URL for memory, got %q", cfg.DatabaseURL)
	}
	if cfg.AutoCloseInterval != 5*time.Second {
		t.Errorf("Expected 5s interval, got %v", cfg.AutoCloseInterval)
	}
	if cfg.BaseURL != "https://vote.example.com" {
		t.Errorf("Expected env base URL, got %q", cfg.BaseURL)
	}
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad PORT env", nil, map[string]string{"PORT": "not-a-number"}},
		{"bad AUTOCLOSE_INTERVAL env", nil, map[string]string{"AUTOCLOSE_INTERVAL": "soon"}},
		{"interval below one second", []string{"-autoclose-interval", "100ms"}, nil},
		{"postgres without URL", []string{"-t", "postgres"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestPostgresWithURL(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-t", "postgres", "-d", "postgres://localhost/quickvote"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.DatabaseURL != "postgres://localhost/quickvote" {
		t.Errorf("Expected the connection string, got %q", cfg.DatabaseURL)
	}
}

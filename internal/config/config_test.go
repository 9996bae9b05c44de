package config

import (
	"strings"
	"testing"
	"time"
)

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Seed: SeedConfig{
			File:  "./data/reservations.json",
			Delay: 800 * time.Millisecond,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_MissingSeedFile(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Seed.File = ""

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "SEED_FILE") {
		t.Errorf("expected SEED_FILE error, got: %v", err)
	}
}

func TestConfig_Validate_NegativeSeedDelay(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Seed.Delay = -time.Second

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "SEED_DELAY") {
		t.Errorf("expected SEED_DELAY error, got: %v", err)
	}
}

func TestConfig_Load_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Seed.Delay != 800*time.Millisecond {
		t.Errorf("expected default seed delay 800ms, got %v", cfg.Seed.Delay)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got: %v", err)
	}
}

func TestConfig_Load_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SEED_FILE", "/tmp/seed.json")
	t.Setenv("SEED_DELAY", "50ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Seed.File != "/tmp/seed.json" {
		t.Errorf("expected overridden seed file, got %q", cfg.Seed.File)
	}
	if cfg.Seed.Delay != 50*time.Millisecond {
		t.Errorf("expected 50ms delay, got %v", cfg.Seed.Delay)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.Server.AllowedOrigins)
	}
}

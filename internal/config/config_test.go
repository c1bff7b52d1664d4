package config

import "testing"

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected an error when GEMINI_API_KEY is unset")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("DUNGEONEER_SAVE_DIR", "")
	t.Setenv("DUNGEONEER_PLAYER", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("Expected the API key, got %q", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("Expected the default model, got %q", cfg.GeminiModel)
	}
	if cfg.SaveDir != ".saves" {
		t.Errorf("Expected the default save dir, got %q", cfg.SaveDir)
	}
	if cfg.PlayerName != "adventurer" {
		t.Errorf("Expected the default player name, got %q", cfg.PlayerName)
	}
	if cfg.Telemetry {
		t.Error("Expected telemetry off without an OTLP endpoint")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("DUNGEONEER_SAVE_DIR", "/tmp/saves")
	t.Setenv("DUNGEONEER_PLAYER", "rina")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.GeminiModel != "gemini-2.5-pro" || cfg.SaveDir != "/tmp/saves" || cfg.PlayerName != "rina" {
		t.Errorf("Expected the overrides, got %+v", cfg)
	}
	if !cfg.Telemetry {
		t.Error("Expected telemetry on with an OTLP endpoint")
	}
}

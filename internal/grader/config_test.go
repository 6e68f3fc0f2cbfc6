package grader

import "testing"

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"RECAP_LLM_PROVIDER",
		"RECAP_GEMINI_API_KEY", "RECAP_OPENAI_API_KEY", "RECAP_ANTHROPIC_API_KEY",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("RECAP_LLM_PROVIDER", "openai")
	t.Setenv("RECAP_OPENAI_API_KEY", "sk-test")
	t.Setenv("RECAP_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("OpenAI config = %+v", cfg.OpenAI)
	}
	// Unset fields keep defaults.
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("Gemini.Model = %q, want default gemini-flash", cfg.Gemini.Model)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("DiscoverConfig() ok = false, want true")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini (highest priority)", cfg.Provider)
	}
}

func TestDiscoverConfig_NoneFound(t *testing.T) {
	clearKeyEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Error("DiscoverConfig() ok = true, want false with no keys set")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"gemini missing key", Config{Provider: "gemini"}, true},
		{"openai missing key", Config{Provider: "openai"}, true},
		{"anthropic missing key", Config{Provider: "anthropic"}, true},
		{"unknown provider", Config{Provider: "bard"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

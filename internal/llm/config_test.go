package llm

import "testing"

func TestDefaultConfig_ProviderOrder(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Providers) != 2 || cfg.Providers[0] != "groq" || cfg.Providers[1] != "gemini" {
		t.Fatalf("expected [groq gemini], got %v", cfg.Providers)
	}
	if cfg.Groq.Model != "llama-3.3-70b-versatile" {
		t.Errorf("unexpected default Groq model: %q", cfg.Groq.Model)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gk-test")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("POLEGION_GROQ_MODEL", "llama-3.1-8b-instant")
	t.Setenv("POLEGION_AI_PROVIDERS", "gemini, groq")

	cfg := ConfigFromEnv()
	if cfg.Groq.APIKey != "gk-test" {
		t.Errorf("expected Groq key from env, got %q", cfg.Groq.APIKey)
	}
	if cfg.Groq.Model != "llama-3.1-8b-instant" {
		t.Errorf("expected model override, got %q", cfg.Groq.Model)
	}
	if len(cfg.Providers) != 2 || cfg.Providers[0] != "gemini" || cfg.Providers[1] != "groq" {
		t.Errorf("expected provider order [gemini groq], got %v", cfg.Providers)
	}
}

func TestHasCredentials(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.HasCredentials() {
		t.Fatal("no keys set: expected no credentials")
	}

	cfg.Gemini.APIKey = "k"
	if !cfg.HasCredentials() {
		t.Fatal("gemini key set: expected credentials")
	}

	// A key for a provider outside the priority list does not count.
	cfg.Gemini.APIKey = ""
	cfg.Anthropic.APIKey = "k"
	if cfg.HasCredentials() {
		t.Fatal("anthropic not in provider list: expected no credentials")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cfg.Providers = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty provider list should fail validation")
	}

	cfg.Providers = []string{"groq", "chatgtp"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown provider name should fail validation")
	}
}

package llm

import (
	"context"
	"testing"
	"time"
)

func TestParsePolarity(t *testing.T) {
	cases := []struct {
		reply   string
		want    float64
		wantErr bool
	}{
		{"0.7", 0.7, false},
		{"-0.4", -0.4, false},
		{"0", 0, false},
		{" 0.25\n", 0.25, false},
		{"0.9.", 0.9, false},
		{"Polarity: 0.3", 0.3, false},
		{"2.5", 1.0, false},   // clamped
		{"-3.0", -1.0, false}, // clamped
		{"", 0, true},
		{"very positive", 0, true},
	}

	for _, tc := range cases {
		got, err := parsePolarity(tc.reply)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parsePolarity(%q): expected error, got %v", tc.reply, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePolarity(%q) failed: %v", tc.reply, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parsePolarity(%q) = %v, want %v", tc.reply, got, tc.want)
		}
	}
}

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(Config{Provider: ""})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if provider != nil {
		t.Error("Expected nil provider when disabled")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(Config{Provider: "skynet"})
	if err == nil {
		t.Fatal("Expected error for unknown provider, got nil")
	}
}

func TestNewProvider_WrapsWithLimiter(t *testing.T) {
	provider, err := NewProvider(Config{Provider: "ollama", Model: "llama3.1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := provider.(*Limited); !ok {
		t.Errorf("Expected provider wrapped in Limited, got %T", provider)
	}
}

// countingProvider counts delegated calls
type countingProvider struct {
	calls int
}

func (c *countingProvider) Name() string { return "counting" }

func (c *countingProvider) Translate(_ context.Context, text, _ string) (string, error) {
	c.calls++
	return text, nil
}

func (c *countingProvider) Polarity(_ context.Context, _ string) (float64, error) {
	c.calls++
	return 0, nil
}

func (c *countingProvider) IsAvailable(_ context.Context) bool { return true }

func TestLimited_Delegates(t *testing.T) {
	inner := &countingProvider{}
	limited := NewLimited(inner, 100, 10)

	ctx := context.Background()
	if _, err := limited.Translate(ctx, "hello", "en"); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if _, err := limited.Polarity(ctx, "hello"); err != nil {
		t.Fatalf("Polarity failed: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("Expected 2 delegated calls, got %d", inner.calls)
	}
	if limited.Name() != "counting" {
		t.Errorf("Unexpected name: %s", limited.Name())
	}
}

func TestLimited_CancelledContext(t *testing.T) {
	inner := &countingProvider{}
	// A single burst token plus a near-zero refill rate forces the
	// second Wait to block until the context dies
	limited := NewLimited(inner, 0.001, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// First call consumes the burst token
	if _, err := limited.Translate(ctx, "one", "en"); err != nil {
		t.Fatalf("First call failed: %v", err)
	}

	// Second call cannot get a token before the deadline
	if _, err := limited.Translate(ctx, "two", "en"); err == nil {
		t.Fatal("Expected context error, got nil")
	}
	if inner.calls != 1 {
		t.Errorf("Expected 1 delegated call, got %d", inner.calls)
	}
}

package lang

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"suggestbox/internal/cache"
	"suggestbox/internal/model"
)

// stubDetector returns a fixed verdict
type stubDetector struct {
	code     string
	reliable bool
}

func (d stubDetector) Detect(_ string) (string, bool) {
	return d.code, d.reliable
}

// stubTranslator is an llm.Provider that records Translate calls
type stubTranslator struct {
	result string
	err    error
	calls  int
}

func (s *stubTranslator) Name() string { return "stub" }

func (s *stubTranslator) Translate(_ context.Context, _, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.result, nil
}

func (s *stubTranslator) Polarity(_ context.Context, _ string) (float64, error) {
	return 0, nil
}

func (s *stubTranslator) IsAvailable(_ context.Context) bool { return true }

func testConfig() model.LanguageConfig {
	return model.LanguageConfig{Target: "en", Timeout: time.Second}
}

func TestNormalizer_Normalize_AlreadyTarget(t *testing.T) {
	translator := &stubTranslator{result: "should not be used"}
	n := New(testConfig(), translator, nil, 0, zap.NewNop())
	n.detector = stubDetector{code: "en", reliable: true}

	text := "I love the office chairs"
	if got := n.Normalize(context.Background(), text); got != text {
		t.Errorf("Expected identity for target-language text, got %q", got)
	}
	if translator.calls != 0 {
		t.Errorf("Expected no translation call, got %d", translator.calls)
	}
}

func TestNormalizer_Normalize_Empty(t *testing.T) {
	translator := &stubTranslator{result: "should not be used"}
	n := New(testConfig(), translator, nil, 0, zap.NewNop())
	n.detector = stubDetector{code: "es", reliable: true}

	for _, text := range []string{"", "   ", "\n\t"} {
		if got := n.Normalize(context.Background(), text); got != text {
			t.Errorf("Normalize(%q) = %q, want unchanged", text, got)
		}
	}
	if translator.calls != 0 {
		t.Errorf("Expected no translation call for empty input, got %d", translator.calls)
	}
}

func TestNormalizer_Normalize_Translates(t *testing.T) {
	translator := &stubTranslator{result: "I would like more plants in the office"}
	n := New(testConfig(), translator, nil, 0, zap.NewNop())
	n.detector = stubDetector{code: "es", reliable: true}

	got := n.Normalize(context.Background(), "Me gustaría más plantas en la oficina")
	if got != "I would like more plants in the office" {
		t.Errorf("Unexpected normalized text: %q", got)
	}
	if translator.calls != 1 {
		t.Errorf("Expected exactly one translation call, got %d", translator.calls)
	}
}

func TestNormalizer_Normalize_TranslationFailure(t *testing.T) {
	translator := &stubTranslator{err: errors.New("api unreachable")}
	n := New(testConfig(), translator, nil, 0, zap.NewNop())
	n.detector = stubDetector{code: "es", reliable: true}

	text := "Me gustaría más plantas en la oficina"
	if got := n.Normalize(context.Background(), text); got != text {
		t.Errorf("Expected original text on translation failure, got %q", got)
	}
	if translator.calls != 1 {
		t.Errorf("Expected exactly one translation attempt, got %d", translator.calls)
	}
}

func TestNormalizer_Normalize_UnreliableDetection(t *testing.T) {
	translator := &stubTranslator{result: "should not be used"}
	n := New(testConfig(), translator, nil, 0, zap.NewNop())
	n.detector = stubDetector{code: "es", reliable: false}

	text := "ok"
	if got := n.Normalize(context.Background(), text); got != text {
		t.Errorf("Expected original text for unreliable detection, got %q", got)
	}
	if translator.calls != 0 {
		t.Errorf("Expected no translation call, got %d", translator.calls)
	}
}

func TestNormalizer_Normalize_NoProvider(t *testing.T) {
	n := New(testConfig(), nil, nil, 0, zap.NewNop())
	n.detector = stubDetector{code: "es", reliable: true}

	text := "Me gustaría más plantas en la oficina"
	if got := n.Normalize(context.Background(), text); got != text {
		t.Errorf("Expected original text with translation disabled, got %q", got)
	}
}

func TestNormalizer_Normalize_CacheShortCircuit(t *testing.T) {
	translator := &stubTranslator{result: "translated once"}
	memo := cache.NewMemory(time.Minute, time.Minute)
	n := New(testConfig(), translator, memo, time.Minute, zap.NewNop())
	n.detector = stubDetector{code: "es", reliable: true}

	text := "Me gustaría más plantas en la oficina"
	first := n.Normalize(context.Background(), text)
	second := n.Normalize(context.Background(), text)

	if first != second {
		t.Errorf("Cache returned different text: %q vs %q", first, second)
	}
	if translator.calls != 1 {
		t.Errorf("Expected one translation call with warm cache, got %d", translator.calls)
	}
}

func TestWhatlangDetector_Empty(t *testing.T) {
	_, reliable := whatlangDetector{}.Detect("")
	if reliable {
		t.Error("Expected unreliable detection for empty text")
	}
}

func TestWhatlangDetector_English(t *testing.T) {
	code, reliable := whatlangDetector{}.Detect(
		"The new meeting schedule has made it much easier for everyone to plan their work during the week")
	if !reliable {
		t.Skip("detector not confident on sample text")
	}
	if code != "en" {
		t.Errorf("Expected en, got %q", code)
	}
}

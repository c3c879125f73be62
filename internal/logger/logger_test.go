package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, mode := range []string{"development", "production", ""} {
		l, err := New(mode, "debug")
		if err != nil {
			t.Fatalf("New(%q) returned error: %v", mode, err)
		}
		if !l.SugaredLogger.Desugar().Core().Enabled(zap.DebugLevel) {
			t.Fatalf("mode %q: expected debug level enabled", mode)
		}
	}

	l, err := New("production", "nonsense")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.SugaredLogger.Desugar().Core().Enabled(zap.DebugLevel) {
		t.Fatalf("unknown level should fall back to info")
	}
}

func TestRedaction(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.Info("configured", "OPENAI_API_KEY", "sk-live", "model", "gpt-4o-mini")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["OPENAI_API_KEY"] != "[REDACTED]" {
		t.Fatalf("api key not redacted: %v", fields["OPENAI_API_KEY"])
	}
	if fields["model"] != "gpt-4o-mini" {
		t.Fatalf("unexpected model field: %v", fields["model"])
	}
}

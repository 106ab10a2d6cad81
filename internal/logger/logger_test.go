package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWritesStructuredField(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := New(zap.New(core))

	log.InfoObj("item server request", "request", map[string]any{"method": "GET"})

	entries := logs.FilterMessage("item server request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if _, ok := entries[0].ContextMap()["request"]; !ok {
		t.Fatalf("expected request field, got %#v", entries[0].ContextMap())
	}
}

func TestNewWithNilReturnsNop(t *testing.T) {
	if _, ok := New(nil).(NopLogger); !ok {
		t.Fatalf("expected NopLogger for nil zap logger")
	}
}

func TestPackageHelpersCarryAppField(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := S
	t.Cleanup(func() { S = prev })

	log := install(zap.New(core), "samvad-item-client")
	log.InfoObj("from instance", "k", 1)
	InfoObj("from package", "k", 2)

	for _, msg := range []string{"from instance", "from package"} {
		entries := logs.FilterMessage(msg).All()
		if len(entries) != 1 {
			t.Fatalf("%s: expected 1 entry, got %d", msg, len(entries))
		}
		if app := entries[0].ContextMap()["app"]; app != "samvad-item-client" {
			t.Fatalf("%s: app = %v", msg, app)
		}
	}
}

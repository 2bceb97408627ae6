package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizesSecretsAndPersonIDs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	log.Warn("lookup", "person_id", "12345", "api_key", "abc", "registration", "ABC123")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries=%d", len(entries))
	}
	fields := entries[0].ContextMap()
	if got := fields["api_key"]; got != "[REDACTED]" {
		t.Fatalf("api_key=%v", got)
	}
	pid, _ := fields["person_id"].(string)
	if !strings.HasPrefix(pid, "hash:") || strings.Contains(pid, "12345") {
		t.Fatalf("person_id=%q", pid)
	}
	if got := fields["registration"]; got != "ABC123" {
		t.Fatalf("registration=%v", got)
	}
}

func TestWithCarriesSanitizedFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromZap(zap.New(core)).With("service", "insurance", "password", "x")
	log.Info("hello")
	log.Debug("dropped")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries=%d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["service"] != "insurance" || fields["password"] != "[REDACTED]" {
		t.Fatalf("fields=%v", fields)
	}
}

func TestOddKeyValueCountKeepsTrailingValue(t *testing.T) {
	out := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	if len(out) != 3 || out[2] != "dangling" {
		t.Fatalf("out=%v", out)
	}
}

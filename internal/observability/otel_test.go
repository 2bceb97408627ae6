package observability

import "testing"

func TestOtelEnvParsing(t *testing.T) {
	t.Setenv("OTEL_SAMPLER_RATIO", "7")
	if got := otelSampleRatio(); got != 1 {
		t.Fatalf("ratio=%v", got)
	}
	t.Setenv("OTEL_SAMPLER_RATIO", "junk")
	if got := otelSampleRatio(); got != 0.1 {
		t.Fatalf("ratio fallback=%v", got)
	}
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-api=abc, broken, =v,k=")
	h := otelHeaders()
	if len(h) != 1 || h["x-api"] != "abc" {
		t.Fatalf("headers=%v", h)
	}
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	if otelHeaders() != nil {
		t.Fatal("expected nil headers")
	}
}

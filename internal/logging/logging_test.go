package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "test", "info")

	log.WithField("activity", "Chess Club").Info("participant signed up")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if line["component"] != "test" || line["activity"] != "Chess Club" {
		t.Fatalf("unexpected log line: %v", line)
	}
	if line["message"] != "participant signed up" {
		t.Fatalf("unexpected message: %v", line["message"])
	}
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "test", "warn")

	log.Info("suppressed")
	if buf.Len() != 0 {
		t.Fatalf("info line emitted at warn level: %s", buf.String())
	}

	log.Warn("emitted")
	if buf.Len() == 0 {
		t.Fatalf("warn line not emitted")
	}
}

func TestTraceIDContext(t *testing.T) {
	ctx := context.Background()
	if TraceIDFromContext(ctx) != "" {
		t.Fatalf("expected empty trace ID on fresh context")
	}

	id := NewTraceID()
	if id == "" {
		t.Fatalf("expected non-empty trace ID")
	}
	ctx = WithTraceID(ctx, id)
	if TraceIDFromContext(ctx) != id {
		t.Fatalf("trace ID round trip failed")
	}
}

func TestLogRequestIncludesTraceID(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "http", "info")

	ctx := WithTraceID(context.Background(), "trace-123")
	log.LogRequest(ctx, http.MethodGet, "/activities", http.StatusOK, 5*time.Millisecond)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if line["trace_id"] != "trace-123" || line["status"] != float64(http.StatusOK) {
		t.Fatalf("unexpected log line: %v", line)
	}
}

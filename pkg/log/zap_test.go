package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func newTestLogger(buf *bytes.Buffer, level string) Logger {
	z := newZap(ZapConfig{Level: level, Mode: ModeProduction, Encoding: EncodingJSON}, zapcore.AddSync(buf))
	return &zapLogger{sugar: z.Sugar()}
}

func TestInfoWithKeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug)

	ctx := WithRequestID(context.Background(), "req-1")
	l.Info(ctx, "reservation committed", "slot", "2025-12-25|19:30")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("unmarshal log line: %v (%s)", err, buf.String())
	}
	if line["msg"] != "reservation committed" {
		t.Errorf("msg = %v", line["msg"])
	}
	if line["slot"] != "2025-12-25|19:30" {
		t.Errorf("slot = %v", line["slot"])
	}
	if line["request_id"] != "req-1" {
		t.Errorf("request_id = %v", line["request_id"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelWarn)

	l.Infof(context.Background(), "hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %s", buf.String())
	}

	l.Warnf(context.Background(), "shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("expected warn line, got %s", buf.String())
	}
}

func TestOddKeyValuesArePadded(t *testing.T) {
	got := kv([]any{"msg", "dangling"})
	if len(got) != 2 || got[0] != "dangling" || got[1] != "" {
		t.Errorf("kv = %v", got)
	}
	if kv([]any{42, "x"}) != nil {
		t.Errorf("expected nil key values for non-string message")
	}
	if msg([]any{42, "x"}) != "42x" && msg([]any{42, "x"}) != "42 x" {
		t.Errorf("msg = %q", msg([]any{42, "x"}))
	}
}

func TestRequestID(t *testing.T) {
	if RequestID(context.Background()) != "" {
		t.Error("expected empty request id")
	}
	if RequestID(WithRequestID(context.Background(), "abc")) != "abc" {
		t.Error("expected stored request id")
	}
}

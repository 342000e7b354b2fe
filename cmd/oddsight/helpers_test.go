package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"pause", "3s", "3s"},
		{"sentry_dsn", "", ""},
		{"sentry_dsn", "https://abc123@o1.ingest.sentry.io/42", "****@o1.ingest.sentry.io/42"},
		{"sentry_dsn", "garbage", "****"},
	}
	for _, tt := range tests {
		if got := displayValue(tt.key, tt.value); got != tt.want {
			t.Errorf("displayValue(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.want)
		}
	}
}

func TestCheckFormat(t *testing.T) {
	if err := checkFormat("yaml"); err != nil {
		t.Errorf("checkFormat(yaml) = %v", err)
	}
	if err := checkFormat("xml"); err == nil {
		t.Error("checkFormat(xml) should fail")
	}
}

func TestRenderWatched(t *testing.T) {
	var stdout, stderr bytes.Buffer
	renderWatched(&stdout, &stderr, "json", helloHash+"\n")
	if !strings.Contains(stdout.String(), `"score": 53`) {
		t.Errorf("stdout = %s", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %s", stderr.String())
	}
}

func TestRenderWatched_InvalidKeepsGoing(t *testing.T) {
	var stdout, stderr bytes.Buffer
	renderWatched(&stdout, &stderr, "json", "not a hash")
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	if !strings.Contains(stderr.String(), "invalid hash") || !strings.Contains(stderr.String(), hashHint) {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestSetupLogging_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	setupLogging(&buf, true)
	defer setupLogging(io.Discard, false)

	slog.Debug("config", "sentry_dsn", "https://secret@example.com/1", "pause", "3s")
	out := buf.String()
	if strings.Contains(out, "secret") {
		t.Errorf("dsn leaked into log: %s", out)
	}
	if !strings.Contains(out, "sentry_dsn=[REDACTED]") || !strings.Contains(out, "pause=3s") {
		t.Errorf("log = %s", out)
	}
}

func TestSetupLogging_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	setupLogging(&buf, false)
	defer setupLogging(io.Discard, false)

	slog.Debug("analysis", "score", 53)
	if buf.Len() != 0 {
		t.Errorf("debug logged without --verbose: %s", buf.String())
	}
}

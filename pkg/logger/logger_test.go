package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInitAndLevelString(t *testing.T) {
	Init("debug")
	if got := LevelString(); got != "debug" {
		t.Fatalf("LevelString() = %q, want %q", got, "debug")
	}
	Init("WARN")
	if got := LevelString(); got != "warn" {
		t.Fatalf("LevelString() = %q, want %q", got, "warn")
	}
	Init("Error")
	if got := LevelString(); got != "error" {
		t.Fatalf("LevelString() = %q, want %q", got, "error")
	}
	Init("nonsense")
	if got := LevelString(); got != "info" {
		t.Fatalf("LevelString() = %q, want %q for unknown input", got, "info")
	}
}

// swapOutput points the package logger at buf for the duration of a test.
func swapOutput(t *testing.T, buf *bytes.Buffer) {
	t.Helper()
	mu.Lock()
	orig := base
	base = newLogger(buf)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		base = orig
		mu.Unlock()
		Init("info")
	})
}

func TestLevelFilteringAndPrintln(t *testing.T) {
	var buf bytes.Buffer
	swapOutput(t, &buf)

	Init("warn")
	Debugf("debug-msg")
	Infof("info-msg")
	Warnf("warn-msg")
	Errorf("error-msg")

	out := buf.String()
	if strings.Contains(out, "debug-msg") {
		t.Fatalf("debug messages should be suppressed at warn level")
	}
	if strings.Contains(out, "info-msg") {
		t.Fatalf("info messages should be suppressed at warn level")
	}
	if !strings.Contains(out, "warn-msg") {
		t.Fatalf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "error-msg") {
		t.Fatalf("error message missing: %q", out)
	}

	buf.Reset()
	Println("hello")
	if strings.Contains(buf.String(), "hello") {
		t.Fatalf("Println should be suppressed at warn level")
	}

	Init("info")
	buf.Reset()
	Println("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("Println expected at info level, got: %q", buf.String())
	}
}

func TestSetEncodingJSON(t *testing.T) {
	SetEncoding("json")
	t.Cleanup(func() { SetEncoding("console") })

	var buf bytes.Buffer
	swapOutput(t, &buf)
	Infof("structured %d", 42)

	out := buf.String()
	if !strings.Contains(out, `"msg":"structured 42"`) {
		t.Fatalf("expected JSON output, got: %q", out)
	}
}

func TestCallerPointsAtCallSite(t *testing.T) {
	var buf bytes.Buffer
	swapOutput(t, &buf)

	Infof("from helper")
	L().Info("from structured")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, "logger/logger_test.go:") {
			t.Fatalf("caller should be the test file, got: %q", line)
		}
	}
}

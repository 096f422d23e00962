package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"Warning": LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
		"":        LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestLoggerFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", &buf)
	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("shown %d", 3)
	l.Errorf("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 3") || !strings.Contains(out, "[ERROR] shown 4") {
		t.Fatalf("expected warn and error lines, got %q", out)
	}
}

func TestDiscardDropsEverything(t *testing.T) {
	l := Discard()
	if l.Enabled(LevelError) {
		t.Fatal("discard logger must not enable any level")
	}
	l.Errorf("nothing")
}

func TestOpenAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.log")
	l, closeFn, err := Open("debug", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	l.Debugf("first")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "[DEBUG] first") {
		t.Fatalf("expected log line in file, got %q", data)
	}
}

func TestOpenReportsBadPath(t *testing.T) {
	_, closeFn, err := Open("info", filepath.Join(t.TempDir(), "missing", "heat.log"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if closeFn == nil {
		t.Fatal("close function must never be nil")
	}
}

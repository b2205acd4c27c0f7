package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestInit_DebugLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Output: buf})

	Debug("debug message", "key", "value")

	if !strings.Contains(buf.String(), "debug message") {
		t.Errorf("expected debug message in output, got %q", buf.String())
	}
}

func TestInit_QuietSuppressesInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Quiet: true, Output: buf})

	Info("info message")
	if buf.Len() != 0 {
		t.Errorf("expected no output in quiet mode, got %q", buf.String())
	}

	Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Errorf("expected error message in quiet mode, got %q", buf.String())
	}
}

func TestInit_JSONHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: true, Output: buf})

	Info("structured", "field", 42)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["msg"] != "structured" {
		t.Errorf("expected msg 'structured', got %v", entry["msg"])
	}
}

func TestInit_CustomLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	custom := slog.New(slog.NewTextHandler(buf, nil))
	Init(Options{Logger: custom})

	Info("via custom")

	if !strings.Contains(buf.String(), "via custom") {
		t.Errorf("expected message through custom logger, got %q", buf.String())
	}
}

func TestWith_CarriesAttributes(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})

	l := With("group", "contact")
	l.Info("scoped")

	out := buf.String()
	if !strings.Contains(out, "group=contact") {
		t.Errorf("expected attribute in output, got %q", out)
	}
}

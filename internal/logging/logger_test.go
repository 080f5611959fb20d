package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"scriptorium/internal/logging"
)

func TestNewConsoleIncludesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("record created", "number", "MS-100", "stage", "receipt")

	out := buf.String()
	for _, want := range []string{"INFO", "record created", "number=MS-100", "stage=receipt"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("suppressed")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("expected info suppressed at warn level, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("expected warn output, got %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithRunIDAppearsInJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logging.WithRunID(logger).Info("hello")

	if !strings.Contains(buf.String(), "run_id") {
		t.Fatalf("expected run_id attribute, got %q", buf.String())
	}
}

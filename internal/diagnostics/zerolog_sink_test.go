package diagnostics

import (
	"io"
	"os"
	"strings"
	"testing"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	original := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stderr = w
	defer func() { os.Stderr = original }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return string(out)
}

func TestZerologSinkDropsEventsBelowMinLevel(t *testing.T) {
	out := captureStderr(t, func() {
		sink := NewZerologSink("feagicore-test", LevelWarn)
		sink.Report(Event{Level: LevelInfo, Message: "should be dropped"})
	})
	if strings.Contains(out, "should be dropped") {
		t.Errorf("output contains suppressed info message: %q", out)
	}
}

func TestZerologSinkReportsEventsAtOrAboveMinLevel(t *testing.T) {
	out := captureStderr(t, func() {
		sink := NewZerologSink("feagicore-test", LevelWarn)
		sink.Report(Event{Level: LevelError, Message: "should be reported"})
	})
	if !strings.Contains(out, "should be reported") {
		t.Errorf("output missing reported error message: %q", out)
	}
}

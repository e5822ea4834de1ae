package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/hanimtuba/medication-tracking/pkg/result"
)

func newCaptureSink() (*Sink, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	return NewSinkWithLogger(logger), &buf
}

func TestFailureLogsKindAndMessage(t *testing.T) {
	sink, buf := newCaptureSink()

	sink.Failure("repository.List", result.NetworkFailure(""))

	out := buf.String()
	if !strings.Contains(out, "network") {
		t.Errorf("Log output missing failure kind: %q", out)
	}
	if !strings.Contains(out, "Network error occurred") {
		t.Errorf("Log output missing failure message: %q", out)
	}
	if !strings.Contains(out, "repository.List") {
		t.Errorf("Log output missing op: %q", out)
	}
}

func TestEvent(t *testing.T) {
	sink, buf := newCaptureSink()

	sink.Event("page mounted", "page", "medications")

	if !strings.Contains(buf.String(), "page mounted") {
		t.Errorf("Event missing from output: %q", buf.String())
	}
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	sink, _ := newCaptureSink()
	SetDefault(sink)
	if Default() != sink {
		t.Error("SetDefault did not replace the default sink")
	}

	SetDefault(nil)
	if Default() != sink {
		t.Error("SetDefault(nil) must be a no-op")
	}
}

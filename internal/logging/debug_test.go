package logging

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TS_DEBUG", "")
	if DebugEnabled() {
		t.Error("DebugEnabled() should return false when TS_DEBUG is empty")
	}

	t.Setenv("TS_DEBUG", "1")
	if !DebugEnabled() {
		t.Error("DebugEnabled() should return true when TS_DEBUG is set")
	}

	t.Setenv("TS_DEBUG", "true")
	if !DebugEnabled() {
		t.Error("DebugEnabled() should return true when TS_DEBUG is 'true'")
	}
}

func TestDebugfWritesWhenEnabled(t *testing.T) {
	t.Setenv("TS_DEBUG", "1")
	buf := captureLog(t)

	Debugf("probing %s", "remote")

	if !strings.Contains(buf.String(), "[debug] probing remote") {
		t.Errorf("expected debug output, got %q", buf.String())
	}
}

func TestDebugfQuietWhenDisabled(t *testing.T) {
	t.Setenv("TS_DEBUG", "")
	buf := captureLog(t)

	Debugf("probing %s", "remote")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestDebugln(t *testing.T) {
	t.Setenv("TS_DEBUG", "1")
	buf := captureLog(t)

	Debugln("pass", "complete")

	if !strings.Contains(buf.String(), "[debug] pass complete") {
		t.Errorf("expected debug output, got %q", buf.String())
	}
}

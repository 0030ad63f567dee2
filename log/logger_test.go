package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := map[string]LogLevel{
		"debug": Debug,
		"INFO":  Info,
		"":      Info,
		"warn":  Warn,
		"Error": Error,
		"off":   Off,
	}

	for input, expected := range tests {
		level, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		if level != expected {
			t.Errorf("Parse(%q): expected %v, got %v", input, expected, level)
		}
	}

	if _, err := Parse("verbose"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("view", Warn, &buf)

	logger.Debug("hidden %d", 1)
	logger.Info("hidden %d", 2)
	logger.Warn("shown %d", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown 3") || !strings.Contains(out, "[view]") {
		t.Errorf("Expected warn line with name, got %q", out)
	}
}

func TestLogger_NamedJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("fsattr", Debug, &buf)
	logger.JSON = true

	logger.Named("memory").Info("opened")

	var entry logEntry
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if entry.Service != "fsattr/memory" {
		t.Errorf("Expected service 'fsattr/memory', got %q", entry.Service)
	}
	if entry.Level != "INFO" || entry.Message != "opened" {
		t.Errorf("Unexpected entry: %+v", entry)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.Enabled(Error) {
		t.Error("Expected discard logger to be disabled")
	}
	logger.Error("nothing")
}

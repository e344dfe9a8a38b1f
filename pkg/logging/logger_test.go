package logging

import "testing"

func TestNew(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error", "bogus", ""}
	for _, level := range levels {
		logger := New(level)
		if logger == nil || logger.Logger == nil {
			t.Fatalf("New(%q) returned nil logger", level)
		}
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("Default returned nil")
	}
}

func TestWith(t *testing.T) {
	logger := NewText("debug").With("chat_id", int64(42))
	if logger == nil || logger.Logger == nil {
		t.Fatal("With returned nil logger")
	}
}

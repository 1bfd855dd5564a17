package logging

import "testing"

func TestNewDefault_Level(t *testing.T) {
	t.Setenv("RHISTO_LOG_LEVEL", "DEBUG")
	if l := NewDefault(); l.GetLevel() != LevelDebug {
		t.Errorf("Expected DEBUG level, got %d", l.GetLevel())
	}

	t.Setenv("RHISTO_LOG_LEVEL", "")
	if l := NewDefault(); l.GetLevel() != LevelWarn {
		t.Errorf("Expected default WARN level, got %d", l.GetLevel())
	}

	t.Setenv("RHISTO_LOG_LEVEL", "bogus")
	if l := NewDefault(); l.GetLevel() != LevelWarn {
		t.Errorf("Expected WARN for unknown level, got %d", l.GetLevel())
	}
}

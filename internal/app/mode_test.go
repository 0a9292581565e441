package app

import (
	"testing"

	"github.com/dshills/regect/internal/renderer"
)

func TestModeToggle(t *testing.T) {
	tests := []struct {
		mode  Mode
		next  Mode
		name  string
		focus renderer.Focus
		hint  string
	}{
		{ModePatternEdit, ModeBodyEdit, "pattern", renderer.FocusPattern, "Tab: edit body"},
		{ModeBodyEdit, ModePatternEdit, "body", renderer.FocusBody, "Tab: edit pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.Toggle(); got != tt.next {
				t.Errorf("Toggle() = %v, want %v", got, tt.next)
			}
			if got := tt.mode.Toggle().Toggle(); got != tt.mode {
				t.Errorf("Toggle().Toggle() = %v, want %v", got, tt.mode)
			}
			if got := tt.mode.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.mode.Focus(); got != tt.focus {
				t.Errorf("Focus() = %v, want %v", got, tt.focus)
			}
			if got := tt.mode.Hint(); got != tt.hint {
				t.Errorf("Hint() = %q, want %q", got, tt.hint)
			}
		})
	}
}

func TestModeUnknown(t *testing.T) {
	m := Mode(42)
	if m.String() != "unknown" {
		t.Errorf("String() = %q, want unknown", m.String())
	}
	if m.Toggle() != ModePatternEdit {
		t.Errorf("Toggle() = %v, want pattern", m.Toggle())
	}
}

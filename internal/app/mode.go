package app

import "github.com/dshills/regect/internal/renderer"

// Mode selects which text area receives keystrokes and how the body is shown.
type Mode int

const (
	// ModePatternEdit edits the pattern and shows the body highlighted.
	ModePatternEdit Mode = iota
	// ModeBodyEdit edits the raw body.
	ModeBodyEdit
)

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModePatternEdit {
		return ModeBodyEdit
	}
	return ModePatternEdit
}

func (m Mode) String() string {
	switch m {
	case ModePatternEdit:
		return "pattern"
	case ModeBodyEdit:
		return "body"
	default:
		return "unknown"
	}
}

// Focus returns the text area the renderer draws the cursor in.
func (m Mode) Focus() renderer.Focus {
	if m == ModeBodyEdit {
		return renderer.FocusBody
	}
	return renderer.FocusPattern
}

// Hint describes the key that leaves this mode.
func (m Mode) Hint() string {
	return "Tab: edit " + m.Toggle().String()
}

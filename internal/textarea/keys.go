package textarea

import "github.com/dshills/regect/internal/renderer/backend"

// pageLines is how far PageUp and PageDown move the cursor.
const pageLines = 10

// HandleKey applies a key event and reports whether the text changed.
// Cursor-only movement returns false.
func (t *TextArea) HandleKey(ev backend.Event) bool {
	if ev.Type != backend.EventKey {
		return false
	}

	switch ev.Key {
	case backend.KeyRune:
		if ev.Mod.Has(backend.ModAlt) || ev.Mod.Has(backend.ModCtrl) {
			return false
		}
		return t.InsertRune(ev.Rune)
	case backend.KeyEnter:
		return t.Newline()
	case backend.KeyBackspace:
		return t.Backspace()
	case backend.KeyDelete:
		return t.Delete()
	case backend.KeyCtrlK:
		return t.KillToEnd()
	case backend.KeyCtrlU:
		return t.KillToStart()
	case backend.KeyLeft:
		t.MoveLeft()
	case backend.KeyRight:
		t.MoveRight()
	case backend.KeyUp:
		t.MoveUp()
	case backend.KeyDown:
		t.MoveDown()
	case backend.KeyPageUp:
		t.MoveBy(-pageLines)
	case backend.KeyPageDown:
		t.MoveBy(pageLines)
	case backend.KeyHome, backend.KeyCtrlA:
		t.Home()
	case backend.KeyEnd, backend.KeyCtrlE:
		t.End()
	}
	return false
}

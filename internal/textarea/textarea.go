// Package textarea implements the small line editor used for both the
// pattern and the body input.
//
// Text is stored as a slice of lines without their newline characters.
// The cursor column is a byte offset into the current line that always
// sits on a grapheme cluster boundary.
package textarea

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/regect/internal/renderer/core"
)

// TextArea is an editable text buffer with a single cursor.
type TextArea struct {
	lines      []string
	row        int
	col        int
	goalCol    int // display column kept across vertical moves
	singleLine bool

	// Scroll offsets, maintained by ScrollTo.
	top  int
	left int
}

// New creates an empty multi-line text area.
func New() *TextArea {
	return &TextArea{lines: []string{""}}
}

// NewSingleLine creates an empty text area that never holds a newline.
func NewSingleLine() *TextArea {
	return &TextArea{lines: []string{""}, singleLine: true}
}

// SingleLine reports whether the text area rejects newlines.
func (t *TextArea) SingleLine() bool {
	return t.singleLine
}

// Text returns the full content with lines joined by '\n'.
func (t *TextArea) Text() string {
	return strings.Join(t.lines, "\n")
}

// SetText replaces the content and moves the cursor to the end.
// Carriage returns are dropped; a single-line area joins lines with spaces.
func (t *TextArea) SetText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if t.singleLine {
		s = strings.ReplaceAll(s, "\n", " ")
	}
	t.lines = strings.Split(s, "\n")
	t.row = len(t.lines) - 1
	t.col = len(t.lines[t.row])
	t.top, t.left = 0, 0
	t.syncGoal()
}

// Lines returns a copy of the lines.
func (t *TextArea) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// LineCount returns the number of lines.
func (t *TextArea) LineCount() int {
	return len(t.lines)
}

// Line returns line i, or "" when i is out of range.
func (t *TextArea) Line(i int) string {
	if i < 0 || i >= len(t.lines) {
		return ""
	}
	return t.lines[i]
}

// Cursor returns the cursor row and byte column.
func (t *TextArea) Cursor() (row, col int) {
	return t.row, t.col
}

// CursorColumn returns the display column of the cursor within its line.
func (t *TextArea) CursorColumn() int {
	return core.StringWidth(t.lines[t.row][:t.col])
}

// Offset returns the cursor position as a byte offset into Text().
func (t *TextArea) Offset() int {
	off := 0
	for i := 0; i < t.row; i++ {
		off += len(t.lines[i]) + 1
	}
	return off + t.col
}

// InsertRune inserts r at the cursor. A newline splits the line.
// It reports whether the content changed.
func (t *TextArea) InsertRune(r rune) bool {
	if r == '\n' || r == '\r' {
		return t.Newline()
	}
	return t.InsertString(string(r))
}

// InsertString inserts s at the cursor, splitting lines at newlines.
func (t *TextArea) InsertString(s string) bool {
	if s == "" {
		return false
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if t.singleLine {
		s = strings.ReplaceAll(s, "\n", " ")
	}

	line := t.lines[t.row]
	head, tail := line[:t.col], line[t.col:]
	parts := strings.Split(s, "\n")
	if len(parts) == 1 {
		t.lines[t.row] = head + s + tail
		t.col += len(s)
		t.syncGoal()
		return true
	}

	inserted := make([]string, len(parts))
	inserted[0] = head + parts[0]
	copy(inserted[1:], parts[1:])
	last := len(parts) - 1
	inserted[last] = parts[last] + tail

	lines := make([]string, 0, len(t.lines)+last)
	lines = append(lines, t.lines[:t.row]...)
	lines = append(lines, inserted...)
	lines = append(lines, t.lines[t.row+1:]...)
	t.lines = lines
	t.row += last
	t.col = len(parts[last])
	t.syncGoal()
	return true
}

// Newline splits the current line at the cursor.
// Single-line areas ignore it.
func (t *TextArea) Newline() bool {
	if t.singleLine {
		return false
	}
	return t.InsertString("\n")
}

// Backspace deletes the grapheme before the cursor, joining with the
// previous line at the start of a line.
func (t *TextArea) Backspace() bool {
	if t.col == 0 {
		if t.row == 0 {
			return false
		}
		prev := t.lines[t.row-1]
		t.lines[t.row-1] = prev + t.lines[t.row]
		t.lines = append(t.lines[:t.row], t.lines[t.row+1:]...)
		t.row--
		t.col = len(prev)
		t.syncGoal()
		return true
	}
	line := t.lines[t.row]
	start := prevBoundary(line, t.col)
	t.lines[t.row] = line[:start] + line[t.col:]
	t.col = start
	t.syncGoal()
	return true
}

// Delete deletes the grapheme under the cursor, joining with the next
// line at the end of a line.
func (t *TextArea) Delete() bool {
	line := t.lines[t.row]
	if t.col == len(line) {
		if t.row == len(t.lines)-1 {
			return false
		}
		t.lines[t.row] = line + t.lines[t.row+1]
		t.lines = append(t.lines[:t.row+1], t.lines[t.row+2:]...)
		return true
	}
	end := nextBoundary(line, t.col)
	t.lines[t.row] = line[:t.col] + line[end:]
	return true
}

// KillToEnd deletes from the cursor to the end of the line.
func (t *TextArea) KillToEnd() bool {
	line := t.lines[t.row]
	if t.col == len(line) {
		return false
	}
	t.lines[t.row] = line[:t.col]
	return true
}

// KillToStart deletes from the start of the line to the cursor.
func (t *TextArea) KillToStart() bool {
	if t.col == 0 {
		return false
	}
	t.lines[t.row] = t.lines[t.row][t.col:]
	t.col = 0
	t.syncGoal()
	return true
}

// MoveLeft moves one grapheme left, wrapping to the previous line.
func (t *TextArea) MoveLeft() {
	switch {
	case t.col > 0:
		t.col = prevBoundary(t.lines[t.row], t.col)
	case t.row > 0:
		t.row--
		t.col = len(t.lines[t.row])
	}
	t.syncGoal()
}

// MoveRight moves one grapheme right, wrapping to the next line.
func (t *TextArea) MoveRight() {
	switch {
	case t.col < len(t.lines[t.row]):
		t.col = nextBoundary(t.lines[t.row], t.col)
	case t.row < len(t.lines)-1:
		t.row++
		t.col = 0
	}
	t.syncGoal()
}

// MoveUp moves to the previous line, keeping the display column.
func (t *TextArea) MoveUp() {
	t.moveVertical(-1)
}

// MoveDown moves to the next line, keeping the display column.
func (t *TextArea) MoveDown() {
	t.moveVertical(1)
}

// MoveBy moves n lines; negative n moves up.
func (t *TextArea) MoveBy(n int) {
	t.moveVertical(n)
}

func (t *TextArea) moveVertical(n int) {
	row := min(max(t.row+n, 0), len(t.lines)-1)
	if row == t.row {
		return
	}
	t.row = row
	t.col = columnToOffset(t.lines[row], t.goalCol)
}

// Home moves to the start of the line.
func (t *TextArea) Home() {
	t.col = 0
	t.syncGoal()
}

// End moves to the end of the line.
func (t *TextArea) End() {
	t.col = len(t.lines[t.row])
	t.syncGoal()
}

func (t *TextArea) syncGoal() {
	t.goalCol = t.CursorColumn()
}

// ScrollTo adjusts the scroll offsets so the cursor is visible in a
// viewport of the given size, and returns the first visible line and
// the first visible display column.
func (t *TextArea) ScrollTo(height, width int) (top, left int) {
	if height > 0 {
		if t.row < t.top {
			t.top = t.row
		}
		if t.row >= t.top+height {
			t.top = t.row - height + 1
		}
	}
	if width > 0 {
		col := t.CursorColumn()
		if col < t.left {
			t.left = col
		}
		// Leave room for the cursor past the last character.
		if col >= t.left+width {
			t.left = col - width + 1
		}
	}
	return t.top, t.left
}

// prevBoundary returns the start of the grapheme cluster ending at col.
func prevBoundary(line string, col int) int {
	pos, last := 0, 0
	state := -1
	rest := line[:col]
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = pos
		pos += len(cluster)
	}
	return last
}

// nextBoundary returns the end of the grapheme cluster starting at col.
func nextBoundary(line string, col int) int {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(line[col:], -1)
	return col + len(cluster)
}

// columnToOffset returns the byte offset of the last grapheme boundary
// whose display column does not exceed target.
func columnToOffset(line string, target int) int {
	pos, width := 0, 0
	state := -1
	rest := line
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := core.StringWidth(cluster)
		if width+w > target {
			break
		}
		width += w
		pos += len(cluster)
	}
	return pos
}

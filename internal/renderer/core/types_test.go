package core

import (
	"testing"
)

func TestColorDefault(t *testing.T) {
	c := ColorDefault
	if !c.IsDefault() {
		t.Error("ColorDefault should be default")
	}
	if c.String() != "default" {
		t.Errorf("String() = %q, want 'default'", c.String())
	}
}

func TestColorEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{"both default", ColorDefault, Color{Default: true, R: 9}, true},
		{"default vs rgb", ColorDefault, ColorBlack, false},
		{"same rgb", ColorFromRGB(1, 2, 3), ColorFromRGB(1, 2, 3), true},
		{"different rgb", ColorFromRGB(1, 2, 3), ColorFromRGB(1, 2, 4), false},
		{"indexed ignores gb", Color{R: 4, G: 1, Indexed: true}, ColorFromIndex(4), true},
		{"indexed vs rgb", ColorFromIndex(4), ColorFromRGB(4, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.want {
				t.Errorf("Equals() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	if s := ColorFromRGB(255, 128, 0).String(); s != "#FF8000" {
		t.Errorf("String() = %q, want '#FF8000'", s)
	}
	if s := ColorFromIndex(12).String(); s != "idx(12)" {
		t.Errorf("String() = %q, want 'idx(12)'", s)
	}
}

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle().WithForeground(ColorRed).WithBackground(ColorBlack).Bold().Reverse()

	if !s.Foreground.Equals(ColorRed) {
		t.Errorf("Foreground = %v, want red", s.Foreground)
	}
	if !s.Background.Equals(ColorBlack) {
		t.Errorf("Background = %v, want black", s.Background)
	}
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) {
		t.Errorf("Attributes = %b, want bold and reverse", s.Attributes)
	}
	if s.Equals(DefaultStyle()) {
		t.Error("styled should not equal default")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'\t', 0},
		{'\n', 0},
		{0x7F, 0},
		{'中', 2},
		{'한', 2},
	}

	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestDisplayRune(t *testing.T) {
	tests := []struct {
		in    rune
		out   rune
		width int
	}{
		{'a', 'a', 1},
		{'\t', ' ', 1},
		{'\r', '.', 1},
		{'中', '中', 2},
	}

	for _, tt := range tests {
		out, w := DisplayRune(tt.in)
		if out != tt.out || w != tt.width {
			t.Errorf("DisplayRune(%q) = (%q, %d), want (%q, %d)", tt.in, out, w, tt.out, tt.width)
		}
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("ab中"); got != 4 {
		t.Errorf("StringWidth = %d, want 4", got)
	}
	if got := StringWidth("a\tb"); got != 3 {
		t.Errorf("StringWidth with tab = %d, want 3", got)
	}
	if got := StringWidth(""); got != 0 {
		t.Errorf("StringWidth(\"\") = %d, want 0", got)
	}
}

func TestScreenRect(t *testing.T) {
	r := NewScreenRect(1, 2, 11, 22)
	if r.Width() != 20 || r.Height() != 10 {
		t.Errorf("size = %dx%d, want 20x10", r.Width(), r.Height())
	}

	inner := r.Inset(1, 1, 1, 1)
	if inner != NewScreenRect(2, 3, 10, 21) {
		t.Errorf("Inset = %+v", inner)
	}

	collapsed := r.Inset(6, 0, 6, 0)
	if !collapsed.IsEmpty() {
		t.Error("over-inset rect should be empty")
	}
	if collapsed.Height() != 0 {
		t.Errorf("Height() = %d, want 0", collapsed.Height())
	}
}

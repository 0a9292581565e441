package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/regect/internal/renderer/core"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(40, 10)
	t.Cleanup(term.Shutdown)
	return term, sim
}

func TestTerminalSetCellStyle(t *testing.T) {
	term, sim := newSimTerminal(t)

	style := core.DefaultStyle().
		WithForeground(core.ColorFromRGB(10, 20, 30)).
		WithBackground(core.ColorFromIndex(3)).
		Bold()
	term.SetCell(2, 1, core.NewStyledCell('Q', style))
	term.Show()

	mainc, _, ts, _ := sim.GetContent(2, 1) //nolint:staticcheck // GetContent is the correct API
	if mainc != 'Q' {
		t.Errorf("rune = %q, want 'Q'", mainc)
	}
	fg, bg, attrs := ts.Decompose()
	if fg != tcell.NewRGBColor(10, 20, 30) {
		t.Errorf("fg = %v, want rgb(10,20,30)", fg)
	}
	if bg != tcell.PaletteColor(3) {
		t.Errorf("bg = %v, want palette 3", bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold attribute lost")
	}

	got := term.GetCell(2, 1)
	if !got.Style.Equals(style) {
		t.Errorf("GetCell style = %+v, want %+v", got.Style, style)
	}
}

func TestTerminalFill(t *testing.T) {
	term, sim := newSimTerminal(t)

	term.Fill(core.NewScreenRect(0, 0, 2, 3), core.NewStyledCell('#', core.DefaultStyle()))
	term.Show()

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			mainc, _, _, _ := sim.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
			if mainc != '#' {
				t.Errorf("cell (%d,%d) = %q, want '#'", x, y, mainc)
			}
		}
	}
}

func TestTerminalKeyEvents(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	sim.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	want := []Key{KeyRune, KeyTab, KeyEscape}
	for i, k := range want {
		ev := nextKey(term)
		if ev.Key != k {
			t.Errorf("event %d key = %v, want %v", i, ev.Key, k)
		}
		if k == KeyRune && ev.Rune != 'z' {
			t.Errorf("event %d rune = %q, want 'z'", i, ev.Rune)
		}
	}
}

func TestTerminalPostEvent(t *testing.T) {
	term, _ := newSimTerminal(t)

	term.PostEvent(KeyEvent(KeyCtrlC, 0, ModNone))
	ev := nextKey(term)
	if ev.Key != KeyCtrlC {
		t.Errorf("key = %v, want KeyCtrlC", ev.Key)
	}
}

func TestTerminalShutdownIdempotent(t *testing.T) {
	term, _ := newSimTerminal(t)
	term.Shutdown()
	term.Shutdown()

	if w, h := term.Size(); w != 0 || h != 0 {
		t.Errorf("Size after shutdown = (%d, %d), want (0, 0)", w, h)
	}
	if ev := term.PollEvent(); ev.Type != EventNone {
		t.Errorf("PollEvent after shutdown = %+v, want EventNone", ev)
	}
}

// nextKey skips non-key events such as the initial resize.
func nextKey(term *Terminal) Event {
	for {
		ev := term.PollEvent()
		if ev.Type == EventKey {
			return ev
		}
	}
}

func TestConvertMod(t *testing.T) {
	m := convertMod(tcell.ModCtrl | tcell.ModShift)
	if !m.Has(ModCtrl) || !m.Has(ModShift) || m.Has(ModAlt) {
		t.Errorf("convertMod = %b", m)
	}
	if back := convertToTcellMod(m); back != tcell.ModCtrl|tcell.ModShift {
		t.Errorf("convertToTcellMod = %v", back)
	}
}

func TestTerminalWakeEvent(t *testing.T) {
	term, _ := newSimTerminal(t)

	term.PostEvent(Event{Type: EventNone})
	term.PostEvent(RuneEvent('x'))

	// The initial resize may come first; the wake event must arrive
	// before the key and report EventNone.
	sawNone := false
	for {
		ev := term.PollEvent()
		if ev.Type == EventNone {
			sawNone = true
		}
		if ev.Type == EventKey {
			break
		}
	}
	if !sawNone {
		t.Error("wake event was not delivered as EventNone")
	}
}

func TestTerminalSkipsContinuationCells(t *testing.T) {
	term, sim := newSimTerminal(t)

	term.SetCell(0, 0, core.NewStyledCell('中', core.DefaultStyle()))
	term.SetCell(1, 0, core.Cell{Rune: 0, Width: 0, Style: core.DefaultStyle()})
	term.Show()

	mainc, _, _, width := sim.GetContent(0, 0) //nolint:staticcheck // GetContent is the correct API
	if mainc != '中' || width != 2 {
		t.Errorf("cell = (%q, %d), want ('中', 2)", mainc, width)
	}
}

package renderer

import (
	"fmt"
	"sync"

	"github.com/dshills/regect/internal/renderer/backend"
	"github.com/dshills/regect/internal/renderer/core"
	"github.com/dshills/regect/internal/renderer/highlight"
	"github.com/dshills/regect/internal/textarea"
)

// Title is the banner text drawn on the first row.
const Title = "Regect"

// Focus identifies the text area receiving keystrokes.
type Focus int

const (
	// FocusPattern means the pattern is edited and the body is shown highlighted.
	FocusPattern Focus = iota
	// FocusBody means the raw body is edited.
	FocusBody
)

// Frame is everything drawn in one frame.
type Frame struct {
	Pattern *textarea.TextArea
	Body    *textarea.TextArea

	// Runs is the highlighted body, drawn while the pattern has focus.
	Runs []highlight.Run

	// Invalid marks a non-empty pattern that does not compile.
	Invalid bool

	Focus Focus

	// Hint is drawn in the body box title, before the match count.
	Hint string
}

// Layout holds the regions of the screen.
type Layout struct {
	Banner     core.ScreenRect
	PatternBox core.ScreenRect
	BodyBox    core.ScreenRect
}

// ComputeLayout splits a screen of the given size into regions.
// Regions that do not fit are empty.
func ComputeLayout(width, height int) Layout {
	clip := func(top, bottom int) core.ScreenRect {
		if bottom > height {
			bottom = height
		}
		return core.NewScreenRect(top, 0, bottom, width)
	}
	return Layout{
		Banner:     clip(0, 1),
		PatternBox: clip(1, 4),
		BodyBox:    clip(4, height),
	}
}

// Renderer draws frames to a backend.
type Renderer struct {
	mu      sync.Mutex
	backend backend.Backend
	theme   *highlight.Theme
}

// New creates a renderer. A nil theme selects the default theme.
func New(b backend.Backend, theme *highlight.Theme) *Renderer {
	if theme == nil {
		theme = highlight.DefaultTheme()
	}
	return &Renderer{backend: b, theme: theme}
}

// SetTheme replaces the theme used by later frames.
func (r *Renderer) SetTheme(theme *highlight.Theme) {
	if theme == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.theme = theme
}

// Theme returns the current theme.
func (r *Renderer) Theme() *highlight.Theme {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.theme
}

// Render draws f and shows it.
func (r *Renderer) Render(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.backend.Size()
	r.backend.Clear()
	r.backend.HideCursor()
	if width <= 0 || height <= 0 {
		r.backend.Show()
		return
	}

	l := ComputeLayout(width, height)
	r.drawBanner(l.Banner)
	r.drawPattern(l.PatternBox, f)
	r.drawBody(l.BodyBox, f)

	r.backend.Show()
}

func (r *Renderer) drawBanner(area core.ScreenRect) {
	if area.IsEmpty() {
		return
	}
	w := core.StringWidth(Title)
	x := area.Right - w - 1
	if x < area.Left {
		x = area.Left
	}
	r.drawString(x, area.Top, area.Right, Title, r.theme.Banner)
}

func (r *Renderer) drawPattern(box core.ScreenRect, f Frame) {
	border := r.theme.Border
	if f.Invalid {
		border = r.theme.Invalid
	}
	inner := r.drawBox(box, "Pattern", "", border)
	if inner.IsEmpty() || f.Pattern == nil {
		return
	}

	_, left := f.Pattern.ScrollTo(1, inner.Width())
	segs := []segment{{text: f.Pattern.Line(0), style: r.theme.Plain}}
	r.drawSegments(inner.Top, inner, left, segs)

	if f.Focus == FocusPattern {
		r.backend.ShowCursor(inner.Left+f.Pattern.CursorColumn()-left, inner.Top)
	}
}

func (r *Renderer) drawBody(box core.ScreenRect, f Frame) {
	inner := r.drawBox(box, "Body", r.bodyStatus(f), r.theme.Border)
	if inner.IsEmpty() || f.Body == nil {
		return
	}

	top, left := f.Body.ScrollTo(inner.Height(), inner.Width())

	if f.Focus == FocusBody {
		for i := 0; i < inner.Height(); i++ {
			line := top + i
			if line >= f.Body.LineCount() {
				break
			}
			segs := []segment{{text: f.Body.Line(line), style: r.theme.Plain}}
			r.drawSegments(inner.Top+i, inner, left, segs)
		}
		row, _ := f.Body.Cursor()
		r.backend.ShowCursor(inner.Left+f.Body.CursorColumn()-left, inner.Top+row-top)
		return
	}

	runs := f.Runs
	if runs == nil {
		runs = highlight.RenderSpans(nil, f.Body.Text())
	}
	lines := highlight.SplitLines(runs)
	for i := 0; i < inner.Height(); i++ {
		line := top + i
		if line >= len(lines) {
			break
		}
		segs := make([]segment, 0, len(lines[line]))
		for _, run := range lines[line] {
			segs = append(segs, segment{text: run.Text, style: r.theme.StyleFor(run)})
		}
		r.drawSegments(inner.Top+i, inner, left, segs)
	}
}

// bodyStatus is the right-hand title of the body box.
func (r *Renderer) bodyStatus(f Frame) string {
	if f.Focus == FocusBody {
		return f.Hint
	}
	n := highlight.Count(f.Runs)
	count := fmt.Sprintf("%d matches", n)
	if n == 1 {
		count = "1 match"
	}
	if f.Hint == "" {
		return count
	}
	return f.Hint + " | " + count
}

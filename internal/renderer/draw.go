package renderer

import "github.com/dshills/regect/internal/renderer/core"

// Box drawing runes.
const (
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
)

// segment is a piece of a line drawn in one style.
type segment struct {
	text  string
	style core.Style
}

// drawBox draws a border around rect with title on the left of the top
// edge and status on the right, and returns the inner area.
func (r *Renderer) drawBox(rect core.ScreenRect, title, status string, style core.Style) core.ScreenRect {
	if rect.Width() < 2 || rect.Height() < 2 {
		return core.ScreenRect{}
	}

	top, bottom := rect.Top, rect.Bottom-1
	left, right := rect.Left, rect.Right-1

	for x := left + 1; x < right; x++ {
		r.backend.SetCell(x, top, core.NewStyledCell(boxHorizontal, style))
		r.backend.SetCell(x, bottom, core.NewStyledCell(boxHorizontal, style))
	}
	for y := top + 1; y < bottom; y++ {
		r.backend.SetCell(left, y, core.NewStyledCell(boxVertical, style))
		r.backend.SetCell(right, y, core.NewStyledCell(boxVertical, style))
	}
	r.backend.SetCell(left, top, core.NewStyledCell(boxTopLeft, style))
	r.backend.SetCell(right, top, core.NewStyledCell(boxTopRight, style))
	r.backend.SetCell(left, bottom, core.NewStyledCell(boxBottomLeft, style))
	r.backend.SetCell(right, bottom, core.NewStyledCell(boxBottomRight, style))

	// Titles sit inside the corners with one cell of padding.
	end := right - 1
	if status != "" {
		label := " " + status + " "
		x := right - 1 - core.StringWidth(label)
		if x > left+1 {
			r.drawString(x, top, right-1, label, r.theme.Status)
			end = x
		}
	}
	if title != "" {
		r.drawString(left+1, top, end, " "+title+" ", style)
	}

	return rect.Inset(1, 1, 1, 1)
}

// drawString draws s from column x on row y, stopping before maxX.
// It returns the column after the last cell drawn.
func (r *Renderer) drawString(x, y, maxX int, s string, style core.Style) int {
	for _, ch := range s {
		out, w := core.DisplayRune(ch)
		if x+w > maxX {
			break
		}
		r.setRune(x, y, out, w, style)
		x += w
	}
	return x
}

// drawSegments draws a line of segments into row y of area, scrolled
// left by the given number of display columns. A wide rune cut by either
// edge is drawn as spaces so cells never hold half a character.
func (r *Renderer) drawSegments(y int, area core.ScreenRect, left int, segs []segment) {
	col := 0
	for _, s := range segs {
		for _, ch := range s.text {
			out, w := core.DisplayRune(ch)
			x := area.Left + col - left
			col += w

			if x >= area.Right {
				return
			}
			if x+w <= area.Left {
				continue
			}
			if x < area.Left || x+w > area.Right {
				for cx := max(x, area.Left); cx < min(x+w, area.Right); cx++ {
					r.backend.SetCell(cx, y, core.Cell{Rune: ' ', Width: 1, Style: s.style})
				}
				continue
			}
			r.setRune(x, y, out, w, s.style)
		}
	}
}

// setRune writes a rune and, for wide runes, its continuation cells.
func (r *Renderer) setRune(x, y int, ch rune, width int, style core.Style) {
	r.backend.SetCell(x, y, core.Cell{Rune: ch, Width: width, Style: style})
	for i := 1; i < width; i++ {
		r.backend.SetCell(x+i, y, core.Cell{Rune: 0, Width: 0, Style: style})
	}
}

package highlight

import (
	"strings"

	"github.com/dshills/regect/internal/pattern"
)

// Run is a contiguous slice of the body tagged as matched or plain.
type Run struct {
	Text    string
	Start   int // byte offset of Text in the body
	Matched bool
}

// End returns the byte offset just past the run.
func (r Run) End() int {
	return r.Start + len(r.Text)
}

// Render partitions body into runs according to the matches of m.
//
// Concatenating the Text of the returned runs always reproduces body.
// With a nil matcher, or when nothing matches, the result is a single
// plain run covering the whole body (including the empty body).
// Zero-length gaps between adjacent matches produce no run.
func Render(m pattern.Matcher, body string) []Run {
	return RenderSpans(Spans(m, body), body)
}

// RenderSpans builds runs from precomputed spans. The spans must be
// ordered, non-overlapping and within body, as returned by Spans.
func RenderSpans(spans []Span, body string) []Run {
	if len(spans) == 0 {
		return []Run{{Text: body}}
	}

	runs := make([]Run, 0, 2*len(spans)+1)
	pos := 0
	for _, s := range spans {
		if s.Start > pos {
			runs = append(runs, Run{Text: body[pos:s.Start], Start: pos})
		}
		runs = append(runs, Run{Text: body[s.Start:s.End], Start: s.Start, Matched: true})
		pos = s.End
	}
	if pos < len(body) {
		runs = append(runs, Run{Text: body[pos:], Start: pos})
	}
	return runs
}

// Text concatenates the runs back into the body they were built from.
func Text(runs []Run) string {
	n := 0
	for _, r := range runs {
		n += len(r.Text)
	}
	var b strings.Builder
	b.Grow(n)
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Count returns the number of matched runs.
func Count(runs []Run) int {
	n := 0
	for _, r := range runs {
		if r.Matched {
			n++
		}
	}
	return n
}

// SplitLines splits runs at newline characters for line-by-line drawing.
// The result has one entry per body line; newlines themselves are dropped.
// A match spanning several lines contributes a matched run to each line.
func SplitLines(runs []Run) [][]Run {
	lines := [][]Run{nil}
	for _, r := range runs {
		text, start := r.Text, r.Start
		for {
			i := strings.IndexByte(text, '\n')
			if i < 0 {
				break
			}
			if i > 0 {
				last := len(lines) - 1
				lines[last] = append(lines[last], Run{Text: text[:i], Start: start, Matched: r.Matched})
			}
			lines = append(lines, nil)
			text = text[i+1:]
			start += i + 1
		}
		if text != "" {
			last := len(lines) - 1
			lines[last] = append(lines[last], Run{Text: text, Start: start, Matched: r.Matched})
		}
	}
	return lines
}

// Package highlight computes which parts of a body of text match the
// current pattern and turns them into styled runs for display.
package highlight

import (
	"github.com/dshills/regect/internal/pattern"
)

// Span is a half-open byte range [Start, End) into the body.
type Span struct {
	Start int
	End   int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true for a zero-length span.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Spans returns the non-empty matches of m in body, ordered by Start and
// never overlapping. A nil matcher yields no spans.
//
// Iteration is delegated to the matcher. A zero-length match contributes
// no span, and the matcher is expected to step one character past it
// before searching again. Spans that would break ordering, overlap an
// earlier span, or fall outside body are discarded. Offsets are kept as
// the matcher reports them; a body with invalid UTF-8 is matched one
// byte per invalid byte, so boundaries need not fall on rune starts.
func Spans(m pattern.Matcher, body string) []Span {
	if m == nil || body == "" {
		return nil
	}

	indices := findAll(m, body)
	if len(indices) == 0 {
		return nil
	}

	spans := make([]Span, 0, len(indices))
	pos := 0
	for _, idx := range indices {
		if len(idx) < 2 {
			continue
		}
		start, end := idx[0], idx[1]
		if start < pos || end > len(body) || end <= start {
			continue
		}
		spans = append(spans, Span{Start: start, End: end})
		pos = end
	}
	return spans
}

// findAll runs the matcher, treating an engine panic as no matches.
func findAll(m pattern.Matcher, body string) (indices [][]int) {
	defer func() {
		if recover() != nil {
			indices = nil
		}
	}()
	return m.FindAllStringIndex(body, -1)
}

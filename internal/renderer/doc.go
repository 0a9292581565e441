// Package renderer draws the regect screen.
//
// The screen has three regions stacked top to bottom:
//
//	                                    Regect    <- banner
//	┌ Pattern ─────────────────────────────────┐
//	│ (a|b)+                                   │
//	└──────────────────────────────────────────┘
//	┌ Body ────────────── Tab: edit body | 3 ──┐
//	│ text with matched runs highlighted       │
//	│ ...                                      │
//	└──────────────────────────────────────────┘
//
// Each call to Render redraws the whole frame from a Frame value.
// The renderer keeps no state about the text other than the theme, so
// the caller decides what is shown and the renderer only decides where.
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, highlight.DefaultTheme())
//	r.Render(frame)
package renderer

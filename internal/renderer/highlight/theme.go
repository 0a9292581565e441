package highlight

import (
	"sort"

	"github.com/dshills/regect/internal/renderer/core"
)

// Theme defines the styles used to draw the screen.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Plain styles body text outside any match.
	Plain core.Style

	// Matched styles body text inside a match.
	Matched core.Style

	// Banner styles the title row.
	Banner core.Style

	// Border styles box borders and titles.
	Border core.Style

	// Invalid styles the pattern box border while the pattern does not compile.
	Invalid core.Style

	// Status styles the hint text in the body box title.
	Status core.Style
}

// StyleFor returns the style for a run.
func (t *Theme) StyleFor(r Run) core.Style {
	if r.Matched {
		return t.Matched
	}
	return t.Plain
}

// DefaultTheme returns the default theme: matches on a yellow background.
func DefaultTheme() *Theme {
	return &Theme{
		Name:    "default",
		Plain:   core.DefaultStyle(),
		Matched: core.DefaultStyle().WithForeground(core.ColorBlack).WithBackground(core.ColorYellow),
		Banner:  core.DefaultStyle().WithForeground(core.ColorCyan),
		Border:  core.DefaultStyle(),
		Invalid: core.DefaultStyle().WithForeground(core.ColorRed),
		Status:  core.DefaultStyle().WithForeground(core.ColorGray),
	}
}

// MonoTheme returns a theme that uses only attributes, for terminals
// without color.
func MonoTheme() *Theme {
	return &Theme{
		Name:    "mono",
		Plain:   core.DefaultStyle(),
		Matched: core.DefaultStyle().Reverse(),
		Banner:  core.DefaultStyle().Bold(),
		Border:  core.DefaultStyle(),
		Invalid: core.DefaultStyle().Bold(),
		Status:  core.DefaultStyle(),
	}
}

// SolarizedTheme returns a theme based on the Solarized dark palette.
func SolarizedTheme() *Theme {
	base0 := core.ColorFromRGB(131, 148, 150)
	yellow := core.ColorFromRGB(181, 137, 0)
	cyan := core.ColorFromRGB(42, 161, 152)
	red := core.ColorFromRGB(220, 50, 47)
	base03 := core.ColorFromRGB(0, 43, 54)

	return &Theme{
		Name:    "solarized",
		Plain:   core.DefaultStyle().WithForeground(base0),
		Matched: core.DefaultStyle().WithForeground(base03).WithBackground(yellow).Bold(),
		Banner:  core.DefaultStyle().WithForeground(cyan),
		Border:  core.DefaultStyle().WithForeground(base0),
		Invalid: core.DefaultStyle().WithForeground(red),
		Status:  core.DefaultStyle().WithForeground(core.ColorGray),
	}
}

// ThemeRegistry holds the built-in themes by name.
type ThemeRegistry struct {
	themes map[string]*Theme
}

// NewThemeRegistry creates a registry with the built-in themes.
func NewThemeRegistry() *ThemeRegistry {
	r := &ThemeRegistry{themes: make(map[string]*Theme)}
	r.Register(DefaultTheme())
	r.Register(MonoTheme())
	r.Register(SolarizedTheme())
	return r
}

// Register adds a theme, replacing any theme with the same name.
func (r *ThemeRegistry) Register(theme *Theme) {
	r.themes[theme.Name] = theme
}

// Get returns a copy of the named theme.
func (r *ThemeRegistry) Get(name string) (*Theme, bool) {
	t, ok := r.themes[name]
	if !ok {
		return nil, false
	}
	cp := *t
	return &cp, true
}

// Names returns the registered theme names in sorted order.
func (r *ThemeRegistry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

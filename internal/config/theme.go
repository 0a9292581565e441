package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/regect/internal/renderer/core"
	"github.com/dshills/regect/internal/renderer/highlight"
)

// namedColors maps the color names accepted in config files to the
// terminal palette.
var namedColors = map[string]core.Color{
	"black":   core.ColorFromIndex(0),
	"red":     core.ColorFromIndex(1),
	"green":   core.ColorFromIndex(2),
	"yellow":  core.ColorFromIndex(3),
	"blue":    core.ColorFromIndex(4),
	"magenta": core.ColorFromIndex(5),
	"cyan":    core.ColorFromIndex(6),
	"white":   core.ColorFromIndex(7),
	"gray":    core.ColorFromIndex(8),
	"grey":    core.ColorFromIndex(8),
}

// ParseColor parses a hex color, a palette name, or "default".
func ParseColor(s string) (core.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "default" {
		return core.ColorDefault, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return core.Color{}, fmt.Errorf("unknown color %q", s)
	}
	switch len(s) {
	case 4:
		s = "#" + string([]byte{s[1], s[1], s[2], s[2], s[3], s[3]})
	case 7:
	default:
		return core.Color{}, fmt.Errorf("invalid hex color %q: want #rgb or #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return core.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return core.ColorFromRGB(r, g, b), nil
}

// BuildTheme resolves the configured theme and applies color overrides.
func (c *Config) BuildTheme() (*highlight.Theme, error) {
	registry := highlight.NewThemeRegistry()

	name := c.Theme.Name
	if name == "" {
		name = "default"
	}
	theme, ok := registry.Get(name)
	if !ok {
		return nil, &ValidationError{
			Path:    "theme.name",
			Value:   name,
			Message: fmt.Sprintf("must be one of %s", strings.Join(registry.Names(), ", ")),
		}
	}

	overrides := []struct {
		path  string
		value string
		apply func(core.Color)
	}{
		{"theme.match_foreground", c.Theme.MatchForeground, func(col core.Color) { theme.Matched = theme.Matched.WithForeground(col) }},
		{"theme.match_background", c.Theme.MatchBackground, func(col core.Color) { theme.Matched = theme.Matched.WithBackground(col) }},
		{"theme.banner", c.Theme.Banner, func(col core.Color) { theme.Banner = theme.Banner.WithForeground(col) }},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		col, err := ParseColor(o.value)
		if err != nil {
			return nil, &ValidationError{Path: o.path, Value: o.value, Message: err.Error()}
		}
		o.apply(col)
	}

	return theme, nil
}

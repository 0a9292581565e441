package pattern

import (
	"fmt"
	"runtime/debug"
)

// Options configures how patterns are compiled.
type Options struct {
	// Engine selects the matching implementation.
	Engine Engine

	// CaseInsensitive compiles every pattern with the (?i) flag.
	CaseInsensitive bool
}

// Validator owns the current pattern text and its compiled matcher.
//
// The matcher is rebuilt from scratch on every Update and is non-nil
// exactly when the most recent pattern compiled. An empty pattern never
// yields a matcher, so an empty pattern highlights nothing.
//
// Validator is not safe for concurrent use.
type Validator struct {
	opts    Options
	compile compileFunc

	source  string
	matcher Matcher
	err     error
}

// NewValidator creates a validator holding the empty pattern.
func NewValidator(opts Options) *Validator {
	if opts.Engine == "" {
		opts.Engine = EngineStd
	}
	return &Validator{
		opts:    opts,
		compile: compilerFor(opts.Engine),
	}
}

// Update replaces the pattern and recompiles it.
func (v *Validator) Update(source string) {
	v.source = source
	v.matcher, v.err = v.build(source)
}

// build never panics; an engine panic counts as a compile failure.
func (v *Validator) build(source string) (m Matcher, err error) {
	if source == "" {
		return nil, nil
	}
	if v.opts.CaseInsensitive {
		source = "(?i)" + source
	}

	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = fmt.Errorf("%s engine panicked: %v\n%s", v.opts.Engine, r, debug.Stack())
		}
	}()

	return v.compile(source)
}

// Pattern returns the current pattern text.
func (v *Validator) Pattern() string {
	return v.source
}

// Matcher returns the compiled matcher, or nil if the pattern is empty or invalid.
func (v *Validator) Matcher() Matcher {
	return v.matcher
}

// Valid reports whether the current pattern produced a matcher.
func (v *Validator) Valid() bool {
	return v.matcher != nil
}

// Empty reports whether the current pattern is the empty string.
func (v *Validator) Empty() bool {
	return v.source == ""
}

// Err returns the last compile error, if any. It exists for diagnostics
// and is never shown in the interface.
func (v *Validator) Err() error {
	return v.err
}

// Options returns the compile options.
func (v *Validator) Options() Options {
	return v.opts
}

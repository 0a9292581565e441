// Package pattern keeps a compiled matcher in step with the pattern text
// the user is editing.
//
// A pattern that fails to compile is a normal state while the user is
// typing, so nothing in this package returns an error to its caller:
// an invalid or empty pattern simply leaves the validator without a matcher.
package pattern

import (
	"fmt"
	"regexp"
	"regexp/syntax"
	"strings"

	"github.com/coregx/coregex"
)

// Matcher finds all successive non-overlapping matches of a compiled pattern.
// The result follows regexp.Regexp.FindAllStringIndex: n < 0 means all
// matches, and each element is a [start, end) byte offset pair.
type Matcher interface {
	FindAllStringIndex(s string, n int) [][]int
}

// Engine identifies a pattern-matching implementation.
type Engine string

const (
	// EngineStd uses Go's regexp package (RE2 syntax).
	EngineStd Engine = "std"
	// EngineCoregex uses github.com/coregx/coregex, which accepts the same syntax.
	// Case-insensitive patterns are run by regexp instead, since coregex
	// does not apply case folding.
	EngineCoregex Engine = "coregex"
)

// Engines lists the supported engines.
func Engines() []Engine {
	return []Engine{EngineStd, EngineCoregex}
}

// ParseEngine converts a name to an Engine.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case EngineStd, "":
		return EngineStd, nil
	case EngineCoregex:
		return EngineCoregex, nil
	default:
		return "", fmt.Errorf("unknown pattern engine %q", name)
	}
}

// String returns the engine name.
func (e Engine) String() string {
	return string(e)
}

// compileFunc compiles source into a Matcher.
type compileFunc func(source string) (Matcher, error)

func compilerFor(e Engine) compileFunc {
	switch e {
	case EngineCoregex:
		return compileCoregex
	default:
		return compileStd
	}
}

func compileStd(source string) (Matcher, error) {
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, err
	}
	return re, nil
}

func compileCoregex(source string) (Matcher, error) {
	parsed, err := syntax.Parse(source, syntax.Perl)
	if err != nil {
		return nil, err
	}
	if foldsCase(parsed) {
		return compileStd(source)
	}

	re, err := coregex.Compile(source)
	if err != nil {
		return nil, err
	}
	return re, nil
}

// foldsCase reports whether any part of re matches case-insensitively,
// through a leading (?i) or an inline (?i:...) group.
func foldsCase(re *syntax.Regexp) bool {
	if re.Flags&syntax.FoldCase != 0 {
		return true
	}
	for _, sub := range re.Sub {
		if foldsCase(sub) {
			return true
		}
	}
	return false
}

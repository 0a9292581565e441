package pattern

import (
	"errors"
	"regexp/syntax"
	"testing"
)

func TestValidatorStartsEmpty(t *testing.T) {
	v := NewValidator(Options{})

	if v.Valid() {
		t.Error("new validator should have no matcher")
	}
	if !v.Empty() {
		t.Error("new validator should hold the empty pattern")
	}
	if v.Options().Engine != EngineStd {
		t.Errorf("default engine = %q, want %q", v.Options().Engine, EngineStd)
	}
}

func TestValidatorUpdate(t *testing.T) {
	for _, engine := range Engines() {
		t.Run(engine.String(), func(t *testing.T) {
			tests := []struct {
				name    string
				pattern string
				valid   bool
			}{
				{"literal", "ab", true},
				{"class", `[a-z]+\d`, true},
				{"nullable", "a*", true},
				{"unbalanced paren", "(", false},
				{"dangling bracket", "[a-", false},
				{"bad repeat", "*a", false},
				{"backreference", `(a)\1`, false},
				{"empty", "", false},
			}

			v := NewValidator(Options{Engine: engine})
			for _, tt := range tests {
				v.Update(tt.pattern)
				if v.Valid() != tt.valid {
					t.Errorf("%s: Valid() = %v, want %v (err: %v)", tt.name, v.Valid(), tt.valid, v.Err())
				}
				if v.Pattern() != tt.pattern {
					t.Errorf("%s: Pattern() = %q, want %q", tt.name, v.Pattern(), tt.pattern)
				}
				if (v.Matcher() != nil) != tt.valid {
					t.Errorf("%s: Matcher() presence does not agree with Valid()", tt.name)
				}
			}
		})
	}
}

func TestValidatorRederivesOnEveryUpdate(t *testing.T) {
	v := NewValidator(Options{})

	v.Update("a")
	first := v.Matcher()
	if first == nil {
		t.Fatal("expected matcher for 'a'")
	}

	v.Update("(")
	if v.Matcher() != nil {
		t.Error("invalid pattern must clear the previous matcher")
	}
	if v.Err() == nil {
		t.Error("invalid pattern should record a compile error")
	}

	v.Update("a")
	if v.Matcher() == nil {
		t.Fatal("expected matcher after fixing the pattern")
	}
	if v.Err() != nil {
		t.Errorf("Err() = %v, want nil after a valid pattern", v.Err())
	}
}

func TestValidatorEmptyPatternPolicy(t *testing.T) {
	v := NewValidator(Options{})
	v.Update("x")
	v.Update("")

	if v.Valid() {
		t.Error("empty pattern must not produce a matcher")
	}
	if v.Err() != nil {
		t.Errorf("empty pattern is not an error, got %v", v.Err())
	}
}

func TestValidatorCaseInsensitive(t *testing.T) {
	tests := []struct {
		pattern string
		body    string
		want    [][]int
	}{
		{"hello", "Hello hello", [][]int{{0, 5}, {6, 11}}},
		{"ab", "xabxAB", [][]int{{1, 3}, {4, 6}}},
		{"a", "aA", [][]int{{0, 1}, {1, 2}}},
	}

	for _, engine := range Engines() {
		t.Run(engine.String(), func(t *testing.T) {
			v := NewValidator(Options{Engine: engine, CaseInsensitive: true})
			for _, tt := range tests {
				v.Update(tt.pattern)
				m := v.Matcher()
				if m == nil {
					t.Fatalf("%q: expected matcher", tt.pattern)
				}
				got := m.FindAllStringIndex(tt.body, -1)
				if !sameIndices(got, tt.want) {
					t.Errorf("%q on %q = %v, want %v", tt.pattern, tt.body, got, tt.want)
				}
				if v.Pattern() != tt.pattern {
					t.Errorf("Pattern() = %q, flags must not leak into the source", v.Pattern())
				}
			}
		})
	}
}

func sameIndices(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i][0] != b[i][0] || a[i][1] != b[i][1] {
			return false
		}
	}
	return true
}

func TestFoldsCase(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"hello", false},
		{"[A-Z]+", false},
		{"(?i)hello", true},
		{"x(?i:ab)y", true},
		{"(?i)[a-z]", true},
		{"ab|(?i)cd", true},
	}

	for _, tt := range tests {
		re, err := syntax.Parse(tt.pattern, syntax.Perl)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.pattern, err)
		}
		if got := foldsCase(re); got != tt.want {
			t.Errorf("foldsCase(%q) = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}

func TestCoregexRejectsInvalidPattern(t *testing.T) {
	if _, err := compileCoregex("(?i)("); err == nil {
		t.Error("expected error for unbalanced pattern")
	}
}

func TestValidatorRecoversEnginePanic(t *testing.T) {
	v := NewValidator(Options{})
	v.compile = func(string) (Matcher, error) {
		panic("boom")
	}

	v.Update("anything")
	if v.Valid() {
		t.Error("panicking engine must leave no matcher")
	}
	if v.Err() == nil {
		t.Error("panic should be recorded as a compile error")
	}
}

func TestValidatorCompileError(t *testing.T) {
	sentinel := errors.New("nope")
	v := NewValidator(Options{})
	v.compile = func(string) (Matcher, error) {
		return nil, sentinel
	}

	v.Update("x")
	if !errors.Is(v.Err(), sentinel) {
		t.Errorf("Err() = %v, want %v", v.Err(), sentinel)
	}
}

func TestParseEngine(t *testing.T) {
	tests := []struct {
		in      string
		want    Engine
		wantErr bool
	}{
		{"std", EngineStd, false},
		{"", EngineStd, false},
		{" COREGEX ", EngineCoregex, false},
		{"pcre", "", true},
	}

	for _, tt := range tests {
		got, err := ParseEngine(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseEngine(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseEngine(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEngine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnginesAgreeOnMatches(t *testing.T) {
	patterns := []string{"ab", `\d+`, "[aeiou]", "x|yz", "(?i)hello", "(?i)ab", "(?i)a", "x(?i:AB)"}
	body := "xabyz 123 Hello hello ab 9 xAB aA"

	for _, fold := range []bool{false, true} {
		for _, p := range patterns {
			std := NewValidator(Options{Engine: EngineStd, CaseInsensitive: fold})
			cx := NewValidator(Options{Engine: EngineCoregex, CaseInsensitive: fold})
			std.Update(p)
			cx.Update(p)

			a := std.Matcher().FindAllStringIndex(body, -1)
			b := cx.Matcher().FindAllStringIndex(body, -1)
			if !sameIndices(a, b) {
				t.Errorf("%q fold=%v: std=%v coregex=%v", p, fold, a, b)
			}
		}
	}
}

package process

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// RegexPrefix marks a process pattern as a regular expression
const RegexPrefix = "re:"

// Matcher tests process names against a single pattern.
// Plain patterns match as a case-insensitive substring of the name.
type Matcher struct {
	re *regexp2.Regexp
}

// NewMatcher compiles a process name pattern
func NewMatcher(pattern string) (*Matcher, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("empty process pattern")
	}

	expr := regexp2.Escape(pattern)
	if raw, ok := strings.CutPrefix(pattern, RegexPrefix); ok {
		expr = raw
	}

	re, err := regexp2.Compile(expr, regexp2.IgnoreCase)
	if err != nil {
		return nil, fmt.Errorf("invalid process pattern %q: %w", pattern, err)
	}

	return &Matcher{re: re}, nil
}

// Match reports whether name matches the pattern
func (m *Matcher) Match(name string) bool {
	ok, err := m.re.MatchString(name)
	return err == nil && ok
}

// ArgsContain reports whether any argument contains needle, ignoring case
func ArgsContain(args []string, needle string) bool {
	if needle == "" {
		return false
	}
	needle = strings.ToLower(needle)
	for _, arg := range args {
		if strings.Contains(strings.ToLower(arg), needle) {
			return true
		}
	}
	return false
}

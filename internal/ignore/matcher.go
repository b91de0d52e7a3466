package ignore

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/lumipallolabs/codemap/internal/logging"
)

// Matcher tells whether a directory child is covered by the ignore file.
// Lines match literally or as glob patterns; comments and negations are skipped.
type Matcher struct {
	literal map[string]bool
	globs   []glob.Glob
}

// LoadMatcher builds a matcher for dir. An unreadable or missing file
// yields a matcher that matches nothing.
func LoadMatcher(dir string) *Matcher {
	lines, err := Lines(dir)
	if err != nil {
		logging.Debug.WithError(err).WithField("dir", dir).Debug("cannot read ignore file")
	}
	return NewMatcher(lines)
}

// NewMatcher compiles ignore lines
func NewMatcher(lines []string) *Matcher {
	m := &Matcher{literal: make(map[string]bool)}
	for _, line := range lines {
		pattern := strings.TrimSpace(line)
		if pattern == "" || strings.HasPrefix(pattern, "#") || strings.HasPrefix(pattern, "!") {
			continue
		}
		pattern = strings.TrimPrefix(strings.TrimSuffix(pattern, "/"), "/")
		m.literal[pattern] = true

		if !strings.ContainsAny(pattern, "*?[{") {
			continue
		}
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			continue
		}
		m.globs = append(m.globs, g)
	}
	return m
}

// Match reports whether name is ignored
func (m *Matcher) Match(name string) bool {
	if m == nil {
		return false
	}
	if m.literal[name] {
		return true
	}
	for _, g := range m.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

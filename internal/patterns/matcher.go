package patterns

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// lightMapPatterns are the file names removed by the light-map exclusion
var lightMapPatterns = []string{"lodlights*.ymap", "vw_*.ymap"}

// Matcher decides whether a lower-cased file name takes part in a scan
type Matcher struct {
	patterns          []string
	lightMapExclusion bool
}

// NewMatcher validates and snapshots the include patterns
func NewMatcher(patterns []string, lightMapExclusion bool) (*Matcher, error) {
	snapshot := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if err := ValidatePattern(p); err != nil {
			return nil, err
		}
		snapshot = append(snapshot, p)
	}

	return &Matcher{
		patterns:          snapshot,
		lightMapExclusion: lightMapExclusion,
	}, nil
}

// ValidatePattern checks glob syntax. Patterns apply to file names only, so
// path separators are rejected. Only *, ? and [seq] are supported; brace
// alternation is rejected.
func ValidatePattern(pattern string) error {
	if strings.ContainsAny(pattern, `/\`) {
		return fmt.Errorf("pattern %q must not contain path separators", pattern)
	}
	if strings.ContainsAny(pattern, "{}") {
		return fmt.Errorf("pattern %q must not contain braces", pattern)
	}
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid pattern %q", pattern)
	}
	return nil
}

// Patterns returns a copy of the include patterns
func (m *Matcher) Patterns() []string {
	out := make([]string, len(m.patterns))
	copy(out, m.patterns)
	return out
}

// LightMapExclusion reports whether light maps are excluded
func (m *Matcher) LightMapExclusion() bool {
	return m.lightMapExclusion
}

// Matches reports whether lowerName should be included
func (m *Matcher) Matches(lowerName string) bool {
	return Match(lowerName, m.patterns, m.lightMapExclusion)
}

// Match reports whether lowerName matches any include pattern. Light-map
// exclusion wins over every include pattern.
func Match(lowerName string, patterns []string, lightMapExclusion bool) bool {
	if lightMapExclusion && IsLightMap(lowerName) {
		return false
	}

	for _, p := range patterns {
		if ok, err := doublestar.Match(p, lowerName); err == nil && ok {
			return true
		}
	}
	return false
}

// IsLightMap reports whether lowerName is a lodlights or vw_ map file
func IsLightMap(lowerName string) bool {
	if !strings.HasSuffix(lowerName, ".ymap") {
		return false
	}
	for _, p := range lightMapPatterns {
		if ok, _ := doublestar.Match(p, lowerName); ok {
			return true
		}
	}
	return false
}

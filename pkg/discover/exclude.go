package discover

import (
	"path"
	"strings"
)

// Matcher holds a set of normalized exclusion fragments and decides whether
// a root-relative path falls under any of them.
type Matcher struct {
	fragments []string // Normalized, slash-separated, root-relative fragments.
}

// NewMatcher compiles a Matcher from raw exclusion fragments as given on the
// command line. Fragments are cleaned to slash-separated root-relative form;
// empty fragments (and fragments that clean to the root itself) are dropped.
func NewMatcher(fragments []string) *Matcher {
	m := &Matcher{}
	for _, fragment := range fragments {
		normalized := normalizeFragment(fragment)
		if normalized == "" {
			continue
		}
		m.fragments = append(m.fragments, normalized)
	}
	return m
}

// MatchesPath reports whether relPath (slash-separated, relative to the
// traversal root) is one of the excluded fragments or lies under an excluded
// directory. A fragment matches itself and everything below it; it never
// matches a sibling that merely shares a name prefix.
func (m *Matcher) MatchesPath(relPath string) bool {
	for _, fragment := range m.fragments {
		if relPath == fragment || strings.HasPrefix(relPath, fragment+"/") {
			return true
		}
	}
	return false
}

// Len returns the number of compiled fragments.
func (m *Matcher) Len() int {
	return len(m.fragments)
}

// normalizeFragment reduces a raw fragment to clean slash-separated form
// relative to the root: backslashes become slashes, leading "./" and "/"
// and any trailing "/" are stripped.
func normalizeFragment(fragment string) string {
	normalized := strings.ReplaceAll(fragment, "\\", "/")
	normalized = path.Clean(normalized)
	normalized = strings.TrimPrefix(normalized, "/")
	if normalized == "." || normalized == "" {
		return ""
	}
	return normalized
}

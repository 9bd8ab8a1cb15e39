package paramsync

import "strings"

// splitLocation splits a raw URL into the part before the query, the query
// string, and the fragment. hasFragment reports whether a "#" was present, so
// a present-but-empty fragment survives reassembly.
func splitLocation(raw string) (prefix, query, fragment string, hasFragment bool) {
	if i := strings.Index(raw, "#"); i >= 0 {
		fragment = raw[i+1:]
		raw = raw[:i]
		hasFragment = true
	}
	if i := strings.Index(raw, "?"); i >= 0 {
		query = raw[i+1:]
		raw = raw[:i]
	}
	return raw, query, fragment, hasFragment
}

// joinLocation is the inverse of splitLocation. An empty query emits no "?".
func joinLocation(prefix, query, fragment string, hasFragment bool) string {
	var b strings.Builder
	b.WriteString(prefix)
	if query != "" {
		b.WriteString("?")
		b.WriteString(query)
	}
	if hasFragment {
		b.WriteString("#")
		b.WriteString(fragment)
	}
	return b.String()
}

// hashPath returns the pseudo-path portion of a hash fragment: everything
// before the first "?", or the whole fragment when there is none.
func hashPath(fragment string) string {
	if i := strings.Index(fragment, "?"); i >= 0 {
		return fragment[:i]
	}
	return fragment
}

// hashQuery returns the parameter portion of a hash fragment: everything
// after the first "?", or "" when there is none.
func hashQuery(fragment string) string {
	if i := strings.Index(fragment, "?"); i >= 0 {
		return fragment[i+1:]
	}
	return ""
}

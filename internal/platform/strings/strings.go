// Package strings has the few string and slice helpers the std library lacks
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// Or returns the first value that is not blank
func Or(vals ...string) string {
	for _, v := range vals {
		if std.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// SplitTrim splits s on sep and drops blank parts, nil when nothing is left
func SplitTrim(s, sep string) []string {
	var out []string
	for _, p := range std.Split(s, sep) {
		if v := std.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// MustString panics with "<name> is required" when s is blank
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a module mount path to one leading slash and no trailing one
// the bare root is not a prefix and panics
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), "/")
	if s == "/" {
		panic("module prefix is required")
	}
	return s
}

// Package testkit holds assertions shared by the stapibridge test suites
package testkit

import (
	"fmt"
	"strings"
	"testing"
)

// MustPanic fails the test unless fn panics and returns the recovered value rendered as text
// startup code panics on bad config, so the message is usually worth checking too
func MustPanic(t *testing.T, fn func()) (msg string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic")
		}
		msg = fmt.Sprint(r)
	}()
	fn()
	return ""
}

// MustNotPanic fails the test if fn panics
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails unless haystack contains every needle
func MustContain(t *testing.T, haystack string, needles ...string) {
	t.Helper()
	for _, n := range needles {
		if !strings.Contains(haystack, n) {
			t.Fatalf("missing %q in:\n%s", n, haystack)
		}
	}
}

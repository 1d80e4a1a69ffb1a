// Package time contains time related helpers
package time

import "time"

// Clock yields the current instant; services take one so tests can pin "now"
type Clock func() time.Time

// System is the wall clock in UTC
func System() Clock { return func() time.Time { return time.Now().UTC() } }

// Fixed always returns t
func Fixed(t time.Time) Clock { return func() time.Time { return t } }

// Now calls c, falling back to the system clock for a nil Clock
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c()
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

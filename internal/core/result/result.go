// Package result models single resource lookups without overloading errors
package result

import perr "stapibridge/internal/platform/errors"

// Kind discriminates a Lookup
type Kind uint8

// Lookup kinds
const (
	KindAbsent Kind = iota
	KindFound
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindFound:
		return "found"
	case KindFailed:
		return "failed"
	default:
		return "absent"
	}
}

// Lookup is Found(v), Absent or Failed(err)
// the zero value is Absent
type Lookup[T any] struct {
	kind  Kind
	value T
	err   error
}

// Found wraps a located value
func Found[T any](v T) Lookup[T] { return Lookup[T]{kind: KindFound, value: v} }

// Absent reports that nothing exists under the key
func Absent[T any]() Lookup[T] { return Lookup[T]{} }

// Failed reports that the lookup itself could not complete
// a nil err still yields a Failed lookup carrying an unknown error
func Failed[T any](err error) Lookup[T] {
	if err == nil {
		err = perr.Internalf("lookup failed without a cause")
	}
	return Lookup[T]{kind: KindFailed, err: err}
}

// From folds a (value, error) pair into a Lookup; a nil error means Found
func From[T any](v T, err error) Lookup[T] {
	if err != nil {
		return Failed[T](err)
	}
	return Found(v)
}

// Kind returns the discriminator
func (l Lookup[T]) Kind() Kind { return l.kind }

// Get returns the value and whether it was found
func (l Lookup[T]) Get() (T, bool) { return l.value, l.kind == KindFound }

// Err returns the failure cause, nil unless Failed
func (l Lookup[T]) Err() error { return l.err }

// Map transforms a found value and leaves Absent and Failed as they are
func Map[T, U any](l Lookup[T], fn func(T) (U, error)) Lookup[U] {
	switch l.kind {
	case KindFound:
		v, err := fn(l.value)
		return From(v, err)
	case KindFailed:
		return Failed[U](l.err)
	default:
		return Absent[U]()
	}
}

// Require collapses the lookup for transports: Absent becomes a not found error built by notFound
func (l Lookup[T]) Require(notFound func() error) (T, error) {
	switch l.kind {
	case KindFound:
		return l.value, nil
	case KindFailed:
		var zero T
		return zero, l.err
	default:
		var zero T
		return zero, notFound()
	}
}

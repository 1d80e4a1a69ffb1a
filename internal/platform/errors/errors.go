// Package errors is the coded error every layer returns; import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
)

// ErrorCode classifies an error for callers and for the HTTP envelope
// values go out on the wire, so only append
type ErrorCode uint16

const (
	ErrorCodeUnknown ErrorCode = iota
	// ErrorCodePanic marks a panic recovered by middleware
	ErrorCodePanic
	// ErrorCodeUnavailable is a dependency that is down or timed out, retrying may help
	ErrorCodeUnavailable
	ErrorCodeTooManyRequests
	ErrorCodeConflict
	// ErrorCodeUnauthorized covers a missing bearer and a provider 401
	ErrorCodeUnauthorized
	ErrorCodeForbidden
	// ErrorCodeInvalidArgument is well formed input the domain cannot accept
	ErrorCodeInvalidArgument
	// ErrorCodeValidation is malformed input: ids, cursors, limits, struct tags
	ErrorCodeValidation
	// ErrorCodeJSON is a body that does not decode
	ErrorCodeJSON
	ErrorCodeNotFound
	// ErrorCodeUpstream is a non-success reply from the provider API
	ErrorCodeUpstream
	// ErrorCodeUpstreamSchema is a provider payload we cannot map: bad shape or unknown status
	ErrorCodeUpstreamSchema
)

// Error carries a code, a caller facing message, and optionally the input field,
// the operation and the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return e.msg + ": " + e.orig.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.orig }

// Code is the classification
func (e *Error) Code() ErrorCode { return e.code }

// Field names the offending input, if any
func (e *Error) Field() string { return e.field }

// Op names the operation, e.g. a provider call, if set
func (e *Error) Op() string { return e.op }

// As finds the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf is the code of the first *Error in the chain, Unknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// WithField returns a copy of err naming field; foreign errors pass through
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp returns a copy of err naming op; foreign errors pass through
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap classifies orig; the message stays caller facing, orig only shows in Error()
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

func Unauthorizedf(format string, a ...any) error { return Newf(ErrorCodeUnauthorized, format, a...) }

func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

func Upstreamf(format string, a ...any) error { return Newf(ErrorCodeUpstream, format, a...) }

func UpstreamSchemaf(format string, a ...any) error {
	return Newf(ErrorCodeUpstreamSchema, format, a...)
}

func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }

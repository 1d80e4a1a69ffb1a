package errors

// Mapping of provider API replies onto project ErrorCode values

import (
	"fmt"
	"net/http"
)

// UpstreamCode classifies a non-2xx provider status
// Auth and not-found replies keep their meaning for the caller; everything else is a gateway failure
func UpstreamCode(status int) ErrorCode {
	switch {
	case status == http.StatusNotFound:
		return ErrorCodeNotFound
	case status == http.StatusUnauthorized:
		return ErrorCodeUnauthorized
	case status == http.StatusForbidden:
		return ErrorCodeForbidden
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrorCodeInvalidArgument
	case status == http.StatusConflict:
		return ErrorCodeConflict
	case status == http.StatusTooManyRequests:
		return ErrorCodeTooManyRequests
	case status == http.StatusServiceUnavailable, status == http.StatusGatewayTimeout:
		return ErrorCodeUnavailable
	default:
		return ErrorCodeUpstream
	}
}

// FromUpstreamStatus builds an *Error for a non-2xx provider reply
func FromUpstreamStatus(status int, format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	return &Error{code: UpstreamCode(status), msg: fmt.Sprintf("%s (upstream status %d)", msg, status)}
}

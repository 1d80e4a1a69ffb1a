// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyAuthorization ctxKey = "authorization"

// WithRequest stores reqID where chimw.GetReqID can find it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// WithAuthorization stores the caller's Authorization header for forwarding upstream
// The value is kept verbatim; nothing here inspects or verifies it
func WithAuthorization(ctx context.Context, header string) context.Context {
	if header == "" {
		return ctx
	}
	return context.WithValue(ctx, keyAuthorization, header)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// Authorization returns the forwarded Authorization header if present
func Authorization(ctx context.Context) string {
	if v, ok := ctx.Value(keyAuthorization).(string); ok {
		return v
	}
	return ""
}

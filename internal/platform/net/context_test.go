package net_test

import (
	"context"
	"testing"

	pnet "stapibridge/internal/platform/net"
)

func TestWithRequest(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithRequest(base, "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID got %q want %q", got, "req-123")
	}

	if same := pnet.WithRequest(base, ""); same != base {
		t.Fatalf("expected ctx to be unchanged for empty id")
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID got %q want empty", got)
	}
}

func TestWithAuthorization(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithAuthorization(base, "Bearer abc.def")
	if got := pnet.Authorization(ctx); got != "Bearer abc.def" {
		t.Fatalf("Authorization got %q", got)
	}
	if same := pnet.WithAuthorization(base, ""); same != base {
		t.Fatalf("expected ctx to be unchanged for empty header")
	}
	if got := pnet.Authorization(base); got != "" {
		t.Fatalf("Authorization got %q want empty", got)
	}
}

package testkit

import (
	"bytes"
	"encoding/json"
	"testing"
)

// MustJSON marshals v or fails the test
func MustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %T: %v", v, err)
	}
	return b
}

// Decode unmarshals b into a fresh T or fails the test
func Decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(bytes.NewReader(b)).Decode(&out); err != nil {
		t.Fatalf("decode %T: %v\nbody: %s", out, err, b)
	}
	return out
}

// Env sets every key for the duration of the test
func Env(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

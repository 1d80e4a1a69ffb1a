package config

import (
	"testing"
	"time"

	kit "stapibridge/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	stapi := root.Prefix("STAPI_")
	if got := stapi.key("PORT"); got != "STAPI_PORT" {
		t.Fatalf("key() = %q, want %q", got, "STAPI_PORT")
	}
	nested := stapi.Prefix("REDIS_")
	if got := nested.key("ADDR"); got != "STAPI_REDIS_ADDR" {
		t.Fatalf("nested key() = %q, want %q", got, "STAPI_REDIS_ADDR")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_HOST", "  0.0.0.0 ")
	if got := c.MustString("HOST"); got != "0.0.0.0" {
		t.Fatalf("MustString = %q, want %q", got, "0.0.0.0")
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_LIMIT", " 8 ")
	if got := c.MustInt("LIMIT"); got != 8 {
		t.Fatalf("MustInt = %d, want %d", got, 8)
	}
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestMustDuration(t *testing.T) {
	c := New().Prefix("D_")
	t.Setenv("D_TIMEOUT", " 250ms ")
	if got := c.MustDuration("TIMEOUT"); got != 250*time.Millisecond {
		t.Fatalf("MustDuration = %v, want %v", got, 250*time.Millisecond)
	}
	t.Setenv("D_BAD", "nope")
	kit.MustPanic(t, func() { _ = c.MustDuration("BAD") })
}

func TestMustURL(t *testing.T) {
	c := New().Prefix("TARA_")
	t.Setenv("TARA_BASEURL", "https://tara.example.com/")
	u := c.MustURL("BASEURL")
	if !u.IsAbs() || u.String() != "https://tara.example.com" {
		t.Fatalf("MustURL = %q", u.String())
	}
	t.Setenv("TARA_BAD1", "://bad")
	kit.MustPanic(t, func() { _ = c.MustURL("BAD1") })
	t.Setenv("TARA_BAD2", "/relative")
	kit.MustPanic(t, func() { _ = c.MustURL("BAD2") })
}

func TestMustPort(t *testing.T) {
	c := New()
	t.Setenv("CFGTEST_PORT", "8000")
	if got := c.MustPort("CFGTEST_PORT"); got != "8000" {
		t.Fatalf("MustPort = %q, want %q", got, "8000")
	}
	t.Setenv("CFGTEST_BAD", "abc")
	kit.MustPanic(t, func() { _ = c.MustPort("CFGTEST_BAD") })
	t.Setenv("CFGTEST_OOB", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("CFGTEST_OOB") })
}

func TestMustPath(t *testing.T) {
	c := New().Prefix("MP_")
	cases := map[string]string{
		"/":       "/",
		"/stapi/": "/stapi",
		" /a/b ":  "/a/b",
		"/v1///":  "/v1",
	}
	for in, want := range cases {
		t.Setenv("MP_ROOT", in)
		if got := c.MustPath("ROOT"); got != want {
			t.Fatalf("MustPath(%q) = %q, want %q", in, got, want)
		}
	}
	t.Setenv("MP_BAD", "stapi")
	kit.MustPanic(t, func() { _ = c.MustPath("BAD") })
	kit.MustPanic(t, func() { _ = c.MustPath("MISSING") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("REQ_")
	t.Setenv("REQ_A", "x")
	t.Setenv("REQ_B", "y")
	kit.MustNotPanic(t, func() { c.Require("A", "B") })
	kit.MustPanic(t, func() { c.Require("A", "C") })

	t.Setenv("REQ_WS", "   ")
	kit.MustPanic(t, func() { c.Require("WS") })
}

// May* fallbacks

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q, want %q", got, "def")
	}
	t.Setenv("S_NAME", " stapibridge ")
	if got := c.MayString("NAME", "x"); got != "stapibridge" {
		t.Fatalf("MayString value = %q, want %q", got, "stapibridge")
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt default = %d, want %d", got, 9)
	}
	t.Setenv("I_OK", " 7 ")
	if got := c.MayInt("OK", 0); got != 7 {
		t.Fatalf("MayInt ok = %d, want %d", got, 7)
	}
	t.Setenv("I_BAD", "x")
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad -> default = %d, want %d", got, 3)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool default true expected")
	}
	t.Setenv("B_T", "true")
	if !c.MayBool("T", false) {
		t.Fatalf("MayBool true expected")
	}
	t.Setenv("B_BAD", "nope")
	if c.MayBool("BAD", false) {
		t.Fatalf("MayBool bad -> default false expected")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("DUR_")
	if got := c.MayDuration("MISS", 5*time.Second); got != 5*time.Second {
		t.Fatalf("MayDuration default expected")
	}
	t.Setenv("DUR_OK", "150ms")
	if got := c.MayDuration("OK", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration ok = %v, want %v", got, 150*time.Millisecond)
	}
	t.Setenv("DUR_ZERO", "0")
	if got := c.MayDuration("ZERO", time.Second); got != 0 {
		t.Fatalf("MayDuration zero = %v, want 0", got)
	}
	t.Setenv("DUR_BAD", "nope")
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad -> default expected")
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	def := []string{"a", "b"}
	if got := c.MayCSV("MISS", def); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("MayCSV default mismatch: %#v", got)
	}
	t.Setenv("CSV_VALS", " one, two , ,three ,, ")
	got := c.MayCSV("VALS", nil)
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("MayCSV len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	t.Setenv("CSV_EMPTY", " , ,  ,")
	if got := c.MayCSV("EMPTY", []string{"fallback"}); len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("MayCSV all-empty -> default mismatch: %#v", got)
	}
}

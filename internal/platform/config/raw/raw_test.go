package raw

import "testing"

func TestGet_PrefixAndTrim(t *testing.T) {
	c := From(map[string]string{
		"LOG_LEVEL":    " info ",
		"LOG_SERVICE":  "   ",
		"STAPI_LEVEL":  "debug",
		"LOG_FMT_MODE": "console",
	})
	log := c.Prefix("LOG_")

	if got := log.Get("LEVEL", "x"); got != "info" {
		t.Fatalf("LEVEL = %q", got)
	}
	if got := log.Get("SERVICE", "stapibridge"); got != "stapibridge" {
		t.Fatalf("blank should use the default, got %q", got)
	}
	if got := log.Prefix("FMT_").Get("MODE", ""); got != "console" {
		t.Fatalf("nested prefix MODE = %q", got)
	}
	if got := c.Prefix("STAPI_").Get("LEVEL", ""); got != "debug" {
		t.Fatalf("sibling prefix LEVEL = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	c := From(map[string]string{
		"T1": "true", "T2": "1", "T3": "YES", "T4": " on ",
		"F1": "false", "F2": "0", "F3": "nope",
	})
	tests := []struct {
		key  string
		def  bool
		want bool
	}{
		{"T1", false, true},
		{"T2", false, true},
		{"T3", false, true},
		{"T4", false, true},
		{"F1", true, false},
		{"F2", true, false},
		{"F3", true, false},
		{"MISSING", true, true},
		{"MISSING", false, false},
	}
	for _, tt := range tests {
		if got := c.GetBool(tt.key, tt.def); got != tt.want {
			t.Fatalf("GetBool(%q, %v) = %v", tt.key, tt.def, got)
		}
	}
}

func TestGetInt(t *testing.T) {
	c := From(map[string]string{"OK": "42", "WS": " 7 ", "BAD": "12x", "NEG": "-5"})
	tests := []struct {
		key       string
		def, want int
	}{
		{"OK", 0, 42},
		{"WS", 1, 7},
		{"BAD", 9, 9},
		{"NEG", 3, 3},
		{"MISSING", 11, 11},
	}
	for _, tt := range tests {
		if got := c.GetInt(tt.key, tt.def); got != tt.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestNew_ReadsEnvironment(t *testing.T) {
	t.Setenv("RAWTEST_SAMPLE_EVERY", "5")
	if got := New().Prefix("RAWTEST_").GetInt("SAMPLE_EVERY", 0); got != 5 {
		t.Fatalf("SAMPLE_EVERY = %d", got)
	}
}

func TestZeroConf_UsesDefaults(t *testing.T) {
	var c Conf
	if got := c.Get("ANY", "d"); got != "d" {
		t.Fatalf("zero Conf Get = %q", got)
	}
}

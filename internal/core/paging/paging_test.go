package paging

import (
	"testing"

	perr "stapibridge/internal/platform/errors"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate(t *testing.T) {
	items := seq(150)

	cases := []struct {
		name      string
		cursor    string
		limit     int
		wantLen   int
		wantFirst int
		wantNext  string
	}{
		{"limit clamps to max", "", 500, 100, 0, "100"},
		{"tail page has no next", "100", 100, 50, 100, ""},
		{"exact end has no next", "140", 10, 10, 140, ""},
		{"middle page", "20", 10, 10, 20, "30"},
		{"offset past end is empty", "400", 10, 0, -1, ""},
		{"offset at end is empty", "150", 10, 0, -1, ""},
		{"whitespace cursor is start", "  ", 5, 5, 0, "5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Paginate(items, tc.cursor, tc.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got.Items) != tc.wantLen {
				t.Fatalf("len=%d want %d", len(got.Items), tc.wantLen)
			}
			if tc.wantFirst >= 0 && got.Items[0] != tc.wantFirst {
				t.Fatalf("first=%d want %d", got.Items[0], tc.wantFirst)
			}
			if got.Next != tc.wantNext {
				t.Fatalf("next=%q want %q", got.Next, tc.wantNext)
			}
			if got.HasNext() != (tc.wantNext != "") {
				t.Fatalf("HasNext mismatch")
			}
		})
	}
}

func TestPaginate_Errors(t *testing.T) {
	items := seq(5)

	cases := []struct {
		name   string
		cursor string
		limit  int
		field  string
	}{
		{"zero limit", "3", 0, "limit"},
		{"negative limit", "", -1, "limit"},
		{"non integer cursor", "abc", 10, "next"},
		{"negative cursor", "-5", 10, "next"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Paginate(items, tc.cursor, tc.limit)
			if err == nil {
				t.Fatal("expected error")
			}
			if !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("expected validation code got %v", err)
			}
			if e, ok := perr.As(err); !ok || e.Field() != tc.field {
				t.Fatalf("expected field %q got %v", tc.field, err)
			}
		})
	}
}

func TestPaginate_EmptyList(t *testing.T) {
	got, err := Paginate([]string{}, "", 10)
	if err != nil || len(got.Items) != 0 || got.HasNext() {
		t.Fatalf("got %+v err %v", got, err)
	}
	if got.Items == nil {
		t.Fatal("empty page should serialize as [] not null")
	}
}

func TestParseLimit(t *testing.T) {
	if n, err := ParseLimit(""); err != nil || n != DefaultLimit {
		t.Fatalf("default got %d %v", n, err)
	}
	if n, err := ParseLimit("500"); err != nil || n != 500 {
		t.Fatalf("large got %d %v", n, err)
	}
	for _, bad := range []string{"0", "-3", "ten"} {
		if _, err := ParseLimit(bad); !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("expected validation error for %q, got %v", bad, err)
		}
	}
}

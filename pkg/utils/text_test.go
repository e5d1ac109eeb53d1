package utils

import "testing"

func TestTitleCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"dave lee", "Dave Lee"},
		{"PARIS", "Paris"},
		{"  new   york  ", "New York"},
		{"o'neill", "O'neill"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := TitleCase(tc.in); got != tc.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseChoice(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		ok   bool
	}{
		{"1", 1, true},
		{"3", 3, true},
		{"12", 12, true},
		{"0", 0, true}, // bounds are the caller's business
		{"", 0, false},
		{"+1", 0, false},
		{"-1", 0, false},
		{" 1", 0, false},
		{"1.5", 0, false},
		{"one", 0, false},
	}
	for _, tc := range cases {
		n, ok := ParseChoice(tc.in)
		if n != tc.n || ok != tc.ok {
			t.Errorf("ParseChoice(%q) = (%d, %v), want (%d, %v)", tc.in, n, ok, tc.n, tc.ok)
		}
	}
}

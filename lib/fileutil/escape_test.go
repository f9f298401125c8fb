package fileutil

import (
	"testing"
)

func TestEscapeName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already safe", "my-app.1", "my-app.1"},
		{"path separators", "my/app:1?", "my_app_1_"},
		{"all unsafe", "!@#", "___"},
		{"backslash and traversal characters", `..\evil`, ".._evil"},
		{"spaces", "my app", "my_app"},
		{"mixed", "my/app:name?*|<>", "my_app_name_____"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EscapeName(tc.in); got != tc.want {
				t.Errorf("EscapeName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// Every output rune must be in [A-Za-z0-9.-] or be the underscore
// replacement, and the rune count must match the input.
func TestEscapeNameTotal(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"with spaces and\ttabs",
		"/////",
		"unicode-é世界",
		"null\x00byte",
	}
	for _, in := range inputs {
		got := EscapeName(in)
		inRunes := []rune(in)
		gotRunes := []rune(got)
		if len(gotRunes) != len(inRunes) {
			t.Errorf("EscapeName(%q): rune count %d, want %d", in, len(gotRunes), len(inRunes))
		}
		for i, r := range gotRunes {
			if !isSafeRune(r) && r != '_' {
				t.Errorf("EscapeName(%q): unsafe rune %q at index %d", in, r, i)
			}
		}
	}
}

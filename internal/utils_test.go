package internal

import "testing"

func TestEllipsize(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a longer piece of text", 8, "a longer…"},
		{"многоязычный", 5, "много…"},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		if got := Ellipsize(tt.in, tt.max); got != tt.want {
			t.Errorf("Ellipsize(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

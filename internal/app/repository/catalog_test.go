package repository

import "testing"

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"thermo", `%thermo%`},
		{"EV_8", `%EV\_8%`},
		{"50%", `%50\%%`},
		{`a\b`, `%a\\b%`},
	}
	for _, tt := range tests {
		if got := containsPattern(tt.query); got != tt.want {
			t.Errorf("containsPattern(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

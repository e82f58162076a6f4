package billing

import "testing"

func TestNextNumber(t *testing.T) {
	tests := []struct {
		name string
		last string
		want string
	}{
		{"no prior number", "", "INV-0001"},
		{"increments", "INV-0001", "INV-0002"},
		{"zero padding kept", "INV-0041", "INV-0042"},
		{"unparsable resets", "garbage", "INV-0001"},
		{"unparsable suffix resets", "INV-abc", "INV-0001"},
		{"grows past padding", "INV-9999", "INV-10000"},
		{"keeps growing", "INV-10000", "INV-10001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextNumber(tt.last); got != tt.want {
				t.Errorf("NextNumber(%q) = %q, want %q", tt.last, got, tt.want)
			}
		})
	}
}

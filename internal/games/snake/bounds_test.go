package snake

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		name       string
		coordinate int
		limit      int
		want       int
	}{
		{"inside", 100, 480, 100},
		{"zero", 0, 480, 0},
		{"at limit", 480, 480, 480},
		{"negative", -8, 480, 472},
		{"past limit", 488, 480, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.coordinate, tt.limit); got != tt.want {
				t.Errorf("Wrap(%d, %d) = %d, want %d", tt.coordinate, tt.limit, got, tt.want)
			}
		})
	}
}

func TestIsOutOfBounds(t *testing.T) {
	tests := []struct {
		coordinate int
		want       bool
	}{
		{-1, true},
		{0, false},
		{240, false},
		{320, false},
		{321, true},
	}

	for _, tt := range tests {
		if got := IsOutOfBounds(tt.coordinate, 320); got != tt.want {
			t.Errorf("IsOutOfBounds(%d, 320) = %v, want %v", tt.coordinate, got, tt.want)
		}
	}
}

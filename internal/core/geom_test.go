package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Point
		name     string
	}{
		{DirUp, Point{0, -1}, "up"},
		{DirDown, Point{0, 1}, "down"},
		{DirLeft, Point{-1, 0}, "left"},
		{DirRight, Point{1, 0}, "right"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.dir.Delta(); got != tc.expected {
				t.Errorf("Delta() = %v, expected %v", got, tc.expected)
			}
			if got := tc.dir.String(); got != tc.name {
				t.Errorf("String() = %q, expected %q", got, tc.name)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: 4}.Add(DirLeft.Delta())
	if p != (Point{X: 2, Y: 4}) {
		t.Errorf("Add() = %v, expected (2, 4)", p)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 20)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 9, 19, true},
		{"right edge (exclusive)", 10, 5, false},
		{"bottom edge (exclusive)", 5, 20, false},
		{"negative x", -1, 5, false},
		{"negative y", 5, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 100, 5},     // within range
		{-5, 0, 100, 0},    // below min
		{150, 0, 100, 100}, // above max
		{0, 0, 100, 0},     // at min
		{100, 0, 100, 100}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

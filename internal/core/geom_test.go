package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestDistance(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		expected       float64
	}{
		{"same point", 3, 4, 3, 4, 0},
		{"3-4-5 triangle", 0, 0, 3, 4, 5},
		{"negative coordinates", -1, -1, 2, 3, 5},
		{"horizontal", 10, 7, 2, 7, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance(tc.x1, tc.y1, tc.x2, tc.y2)
			if math.Abs(got-tc.expected) > eps {
				t.Errorf("Distance() = %f, expected %f", got, tc.expected)
			}
			// Symmetric
			back := Distance(tc.x2, tc.y2, tc.x1, tc.y1)
			if math.Abs(back-got) > eps {
				t.Errorf("Distance() not symmetric: %f vs %f", got, back)
			}
		})
	}
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		expect Vec2
	}{
		{"east", 0, Vec2{X: 1, Y: 0}},
		{"up", math.Pi / 2, Vec2{X: 0, Y: -1}},
		{"west", math.Pi, Vec2{X: -1, Y: 0}},
		{"down", 3 * math.Pi / 2, Vec2{X: 0, Y: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := FromAngle(tc.angle)
			if math.Abs(v.X-tc.expect.X) > eps || math.Abs(v.Y-tc.expect.Y) > eps {
				t.Errorf("FromAngle(%f) = %+v, expected %+v", tc.angle, v, tc.expect)
			}
			if math.Abs(v.Len()-1) > eps {
				t.Errorf("FromAngle(%f) should be a unit vector, length %f", tc.angle, v.Len())
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -4}

	if got := a.Add(b); got != (Vec2{X: 4, Y: -2}) {
		t.Errorf("Add() = %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: -2, Y: 6}) {
		t.Errorf("Sub() = %+v", got)
	}
	if got := b.Scale(0.5); got != (Vec2{X: 1.5, Y: -2}) {
		t.Errorf("Scale() = %+v", got)
	}
	if got := b.Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"touching edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContainsAndCenter(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	if !r.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(30, 25) {
		t.Error("bottom-right edge is exclusive")
	}
	cx, cy := r.Center()
	if cx != 20 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (20, 17)", cx, cy)
	}
}

func TestClampHelpers(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp returned an out-of-range value")
	}
	if ClampF(1.5, 0, 1) != 1 || ClampF(-0.1, 0, 1) != 0 {
		t.Error("ClampF returned an out-of-range value")
	}
	if Abs(-3) != 3 || Min(2, 7) != 2 || Max(2, 7) != 7 {
		t.Error("Abs/Min/Max mismatch")
	}
}

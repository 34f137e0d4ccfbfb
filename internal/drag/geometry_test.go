package drag

import (
	"math"
	"testing"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{2, 3}, true},
		{Point{5, 4}, true},
		{Point{6, 4}, false}, // right edge is exclusive
		{Point{5, 5}, false}, // bottom edge is exclusive
		{Point{1, 3}, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRect_IntersectionRatio(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 1}

	if got := a.IntersectionRatio(a); got != 1 {
		t.Errorf("self ratio = %v, want 1", got)
	}
	if got := a.IntersectionRatio(Rect{X: 0, Y: 1, W: 10, H: 1}); got != 0 {
		t.Errorf("adjacent ratio = %v, want 0", got)
	}
	got := a.IntersectionRatio(Rect{X: 5, Y: 0, W: 10, H: 1})
	if math.Abs(got-5.0/15.0) > 1e-9 {
		t.Errorf("half overlap ratio = %v, want %v", got, 5.0/15.0)
	}
}

func TestClosestCenter(t *testing.T) {
	targets := []Target{
		{ID: "top", Rect: Rect{X: 0, Y: 0, W: 10, H: 2}},
		{ID: "bottom", Rect: Rect{X: 0, Y: 10, W: 10, H: 2}},
	}

	got, ok := closestCenter(Rect{X: 0, Y: 8, W: 10, H: 1}, targets)
	if !ok || got.ID != "bottom" {
		t.Errorf("expected bottom, got %q", got.ID)
	}

	if _, ok := closestCenter(Rect{}, nil); ok {
		t.Error("expected no result for empty targets")
	}
}

func TestPointerWithin_NearestFirst(t *testing.T) {
	targets := []Target{
		{ID: "container", Rect: Rect{X: 0, Y: 0, W: 20, H: 10}},
		{ID: "row", Rect: Rect{X: 0, Y: 4, W: 20, H: 1}},
		{ID: "elsewhere", Rect: Rect{X: 30, Y: 0, W: 5, H: 5}},
	}

	hits := pointerWithin(Point{X: 10, Y: 4}, targets)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].ID != "row" {
		t.Errorf("expected row first, got %q", hits[0].ID)
	}
}

func TestRectIntersection_LargestOverlapFirst(t *testing.T) {
	targets := []Target{
		{ID: "small", Rect: Rect{X: 0, Y: 0, W: 2, H: 1}},
		{ID: "large", Rect: Rect{X: 0, Y: 0, W: 10, H: 1}},
	}

	hits := rectIntersection(Rect{X: 0, Y: 0, W: 10, H: 1}, targets)
	if len(hits) != 2 || hits[0].ID != "large" {
		t.Errorf("unexpected order %v", hits)
	}
}

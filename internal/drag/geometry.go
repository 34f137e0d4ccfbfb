package drag

import (
	"cmp"
	"math"
	"slices"
)

// Point is a position in terminal cells.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the geometric center of r.
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// MidY returns the vertical midpoint of r.
func (r Rect) MidY() float64 {
	_, y := r.Center()
	return y
}

// Area returns the area of r.
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// IntersectionRatio returns the overlap of r and o relative to their union.
func (r Rect) IntersectionRatio(o Rect) float64 {
	left := max(r.X, o.X)
	right := min(r.X+r.W, o.X+o.W)
	top := max(r.Y, o.Y)
	bottom := min(r.Y+r.H, o.Y+o.H)
	if left >= right || top >= bottom {
		return 0
	}
	overlap := (right - left) * (bottom - top)
	union := r.Area() + o.Area() - overlap
	if union <= 0 {
		return 0
	}
	return float64(overlap) / float64(union)
}

func centerDistance(a, b Rect) float64 {
	ax, ay := a.Center()
	bx, by := b.Center()
	return math.Hypot(ax-bx, ay-by)
}

func pointDistance(p Point, r Rect) float64 {
	cx, cy := r.Center()
	return math.Hypot(float64(p.X)+0.5-cx, float64(p.Y)+0.5-cy)
}

// closestCenter returns the target whose center is nearest to the center of active.
func closestCenter(active Rect, targets []Target) (Target, bool) {
	if len(targets) == 0 {
		return Target{}, false
	}
	return slices.MinFunc(targets, func(a, b Target) int {
		return cmp.Compare(centerDistance(active, a.Rect), centerDistance(active, b.Rect))
	}), true
}

// pointerWithin returns the targets containing p, nearest center first.
func pointerWithin(p Point, targets []Target) []Target {
	var hits []Target
	for _, t := range targets {
		if t.Rect.Contains(p) {
			hits = append(hits, t)
		}
	}
	slices.SortStableFunc(hits, func(a, b Target) int {
		return cmp.Compare(pointDistance(p, a.Rect), pointDistance(p, b.Rect))
	})
	return hits
}

// rectIntersection returns the targets overlapping active, largest overlap first.
func rectIntersection(active Rect, targets []Target) []Target {
	type scored struct {
		target Target
		ratio  float64
	}
	var hits []scored
	for _, t := range targets {
		if ratio := active.IntersectionRatio(t.Rect); ratio > 0 {
			hits = append(hits, scored{t, ratio})
		}
	}
	slices.SortStableFunc(hits, func(a, b scored) int {
		return cmp.Compare(b.ratio, a.ratio)
	})

	result := make([]Target, len(hits))
	for i, h := range hits {
		result[i] = h.target
	}
	return result
}

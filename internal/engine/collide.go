package engine

import (
	"math"

	"github.com/solarlune/resolv"
)

// Rect is an axis-aligned rectangle anchored at its minimum corner.
type Rect struct {
	X, Y, W, H float64
}

// Circle is positioned by its centre.
type Circle struct {
	X, Y, R float64
}

func (r Rect) shape() *resolv.ConvexPolygon {
	return resolv.NewRectangle(r.X, r.Y, r.W, r.H)
}

func (r Rect) center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (c Circle) shape() *resolv.Circle {
	return resolv.NewCircle(c.X, c.Y, c.R)
}

func (c Circle) contains(x, y float64) bool {
	return math.Hypot(x-c.X, y-c.Y) <= c.R
}

// resolv builds contacts from crossing outlines, so a shape lying entirely
// inside the other is caught by the centre checks.

// CirclesOverlap reports whether two circles intersect.
func CirclesOverlap(a, b Circle) bool {
	if a.shape().Intersection(0, 0, b.shape()) != nil {
		return true
	}
	return a.contains(b.X, b.Y) || b.contains(a.X, a.Y)
}

// CircleRectOverlap reports whether a circle intersects a rectangle.
func CircleRectOverlap(c Circle, r Rect) bool {
	if c.shape().Intersection(0, 0, r.shape()) != nil {
		return true
	}
	return r.contains(c.X, c.Y) || c.contains(r.center())
}

// RectsOverlap reports whether two rectangles intersect.
func RectsOverlap(a, b Rect) bool {
	if a.shape().Intersection(0, 0, b.shape()) != nil {
		return true
	}
	return a.contains(b.center()) || b.contains(a.center())
}

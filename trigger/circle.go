package trigger

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Circle is a round zone defined by its centre and radius.
type Circle struct {
	center cp.Vector
	radius float64
}

// NewCircle creates a circle. A negative radius is clamped to zero.
func NewCircle(cx, cy, radius float64) *Circle {
	c := &Circle{center: cp.Vector{X: cx, Y: cy}}
	c.SetRadius(radius)
	return c
}

func (c *Circle) sealed() {}

// Kind returns ShapeCircle.
func (c *Circle) Kind() ShapeKind { return ShapeCircle }

// TestPoint compares squared distances, boundary inclusive.
func (c *Circle) TestPoint(x, y float64) bool {
	if c == nil {
		return false
	}
	return c.center.DistanceSq(cp.Vector{X: x, Y: y}) <= c.radius*c.radius
}

// Bounds is the square of side 2r around the centre.
func (c *Circle) Bounds() Bounds {
	if c == nil {
		return Bounds{}
	}
	return boundsFromBB(cp.NewBBForCircle(c.center, c.radius))
}

func (c *Circle) Center() (float64, float64) {
	if c == nil {
		return 0, 0
	}
	return c.center.X, c.center.Y
}

func (c *Circle) SetCenter(cx, cy float64) {
	if c == nil {
		return
	}
	c.center = cp.Vector{X: cx, Y: cy}
}

func (c *Circle) Radius() float64 {
	if c == nil {
		return 0
	}
	return c.radius
}

func (c *Circle) SetRadius(radius float64) {
	if c == nil {
		return
	}
	c.radius = max(radius, 0)
}

// DistanceToPoint returns the signed distance from (x, y) to the circle's
// edge: negative inside, zero on the boundary, -radius at the centre.
func (c *Circle) DistanceToPoint(x, y float64) float64 {
	if c == nil {
		return 0
	}
	return c.center.Distance(cp.Vector{X: x, Y: y}) - c.radius
}

func (c *Circle) Area() float64 {
	if c == nil {
		return 0
	}
	return math.Pi * c.radius * c.radius
}

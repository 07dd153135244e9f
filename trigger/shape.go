package trigger

import "github.com/jakecoffman/cp"

// ShapeKind identifies which geometric variant a trigger uses.
type ShapeKind uint8

const (
	ShapeRectangle ShapeKind = iota + 1
	ShapeCircle
	ShapePolygon
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "rectangle"
	case ShapeCircle:
		return "circle"
	case ShapePolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Shape is the geometry wrapped by a Trigger. The set of shapes is closed:
// *Rectangle, *Circle and *Polygon are the only implementations.
type Shape interface {
	// TestPoint reports whether (x, y) lies inside the shape. Boundaries are
	// inclusive for rectangles and circles.
	TestPoint(x, y float64) bool
	// Bounds returns the axis-aligned box enclosing the shape.
	Bounds() Bounds
	Kind() ShapeKind

	sealed()
}

// Bounds is an axis-aligned box with its top-left corner at X, Y.
type Bounds struct {
	X float64
	Y float64
	W float64
	H float64
}

// BB converts the box to a Chipmunk bounding box. B/T hold the min/max y.
func (b Bounds) BB() cp.BB {
	return cp.BB{L: b.X, B: b.Y, R: b.X + b.W, T: b.Y + b.H}
}

// Overlaps reports whether two boxes touch or intersect.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.BB().Intersects(o.BB())
}

// ContainsPoint reports whether (x, y) lies in the box, edges included.
func (b Bounds) ContainsPoint(x, y float64) bool {
	return b.BB().ContainsVect(cp.Vector{X: x, Y: y})
}

func boundsFromBB(bb cp.BB) Bounds {
	return Bounds{X: bb.L, Y: bb.B, W: bb.R - bb.L, H: bb.T - bb.B}
}

package trigger

import "github.com/jakecoffman/cp"

// Rectangle is an axis-aligned box zone anchored at its top-left corner.
type Rectangle struct {
	x      float64
	y      float64
	width  float64
	height float64
}

// NewRectangle creates a rectangle. Negative sizes are clamped to zero.
func NewRectangle(x, y, width, height float64) *Rectangle {
	r := &Rectangle{x: x, y: y}
	r.SetSize(width, height)
	return r
}

func (r *Rectangle) sealed() {}

// Kind returns ShapeRectangle.
func (r *Rectangle) Kind() ShapeKind { return ShapeRectangle }

// TestPoint includes all four edges.
func (r *Rectangle) TestPoint(x, y float64) bool {
	if r == nil {
		return false
	}
	return r.bb().ContainsVect(cp.Vector{X: x, Y: y})
}

// Bounds is the rectangle itself.
func (r *Rectangle) Bounds() Bounds {
	if r == nil {
		return Bounds{}
	}
	return Bounds{X: r.x, Y: r.y, W: r.width, H: r.height}
}

func (r *Rectangle) Position() (float64, float64) {
	if r == nil {
		return 0, 0
	}
	return r.x, r.y
}

func (r *Rectangle) SetPosition(x, y float64) {
	if r == nil {
		return
	}
	r.x = x
	r.y = y
}

func (r *Rectangle) Size() (float64, float64) {
	if r == nil {
		return 0, 0
	}
	return r.width, r.height
}

// SetSize updates width and height, clamping negative values to zero.
func (r *Rectangle) SetSize(width, height float64) {
	if r == nil {
		return
	}
	r.width = max(width, 0)
	r.height = max(height, 0)
}

// Center returns the midpoint of the rectangle.
func (r *Rectangle) Center() (float64, float64) {
	if r == nil {
		return 0, 0
	}
	return r.x + r.width/2, r.y + r.height/2
}

// SetCenter moves the rectangle so its midpoint is (cx, cy).
func (r *Rectangle) SetCenter(cx, cy float64) {
	if r == nil {
		return
	}
	r.x = cx - r.width/2
	r.y = cy - r.height/2
}

func (r *Rectangle) Area() float64 {
	if r == nil {
		return 0
	}
	return r.width * r.height
}

func (r *Rectangle) bb() cp.BB {
	return cp.BB{L: r.x, B: r.y, R: r.x + r.width, T: r.y + r.height}
}

package trigger

import (
	"math"
	"slices"

	"github.com/jakecoffman/cp"
)

// Polygon is an arbitrary zone given by an ordered, open list of vertices; the
// last vertex implicitly connects back to the first. Self-intersecting
// outlines are accepted and tested with the even-odd rule.
type Polygon struct {
	vertices []cp.Vector

	bounds      Bounds
	boundsDirty bool
}

// NewPolygon creates a polygon from the given vertices.
func NewPolygon(vertices ...cp.Vector) *Polygon {
	return &Polygon{
		vertices:    slices.Clone(vertices),
		boundsDirty: true,
	}
}

func (p *Polygon) sealed() {}

// Kind returns ShapePolygon.
func (p *Polygon) Kind() ShapeKind { return ShapePolygon }

// TestPoint rejects points outside the cached bounds, then casts a horizontal
// ray from (x, y) and counts edge crossings. An odd count means inside.
func (p *Polygon) TestPoint(x, y float64) bool {
	if !p.IsValid() {
		return false
	}
	if !p.Bounds().ContainsPoint(x, y) {
		return false
	}

	inside := false
	n := len(p.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi := p.vertices[i]
		vj := p.vertices[j]
		// one endpoint strictly above, the other at or below: a shared vertex
		// is only counted for one of its two edges
		if (vi.Y > y) != (vj.Y > y) {
			crossX := (vj.X-vi.X)*(y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if x < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// Bounds returns the cached bounding box, recomputing it after a mutation.
func (p *Polygon) Bounds() Bounds {
	if p == nil {
		return Bounds{}
	}
	if p.boundsDirty {
		p.bounds = p.computeBounds()
		p.boundsDirty = false
	}
	return p.bounds
}

func (p *Polygon) computeBounds() Bounds {
	if len(p.vertices) == 0 {
		return Bounds{}
	}
	first := p.vertices[0]
	bb := cp.BB{L: first.X, B: first.Y, R: first.X, T: first.Y}
	for _, v := range p.vertices[1:] {
		bb = bb.Expand(v)
	}
	return boundsFromBB(bb)
}

func (p *Polygon) invalidate() {
	p.boundsDirty = true
}

// IsValid reports whether the polygon has at least three vertices. It does
// not detect self-intersection.
func (p *Polygon) IsValid() bool {
	return p != nil && len(p.vertices) >= 3
}

func (p *Polygon) VertexCount() int {
	if p == nil {
		return 0
	}
	return len(p.vertices)
}

// Vertex returns the vertex at index i.
func (p *Polygon) Vertex(i int) (cp.Vector, bool) {
	if p == nil || i < 0 || i >= len(p.vertices) {
		return cp.Vector{}, false
	}
	return p.vertices[i], true
}

// Vertices returns a copy of the vertex list.
func (p *Polygon) Vertices() []cp.Vector {
	if p == nil {
		return nil
	}
	return slices.Clone(p.vertices)
}

func (p *Polygon) AddVertex(x, y float64) {
	if p == nil {
		return
	}
	p.vertices = append(p.vertices, cp.Vector{X: x, Y: y})
	p.invalidate()
}

// InsertVertex inserts before index i. i == VertexCount appends.
func (p *Polygon) InsertVertex(i int, x, y float64) bool {
	if p == nil || i < 0 || i > len(p.vertices) {
		return false
	}
	p.vertices = slices.Insert(p.vertices, i, cp.Vector{X: x, Y: y})
	p.invalidate()
	return true
}

func (p *Polygon) SetVertex(i int, x, y float64) bool {
	if p == nil || i < 0 || i >= len(p.vertices) {
		return false
	}
	p.vertices[i] = cp.Vector{X: x, Y: y}
	p.invalidate()
	return true
}

func (p *Polygon) RemoveVertex(i int) bool {
	if p == nil || i < 0 || i >= len(p.vertices) {
		return false
	}
	p.vertices = slices.Delete(p.vertices, i, i+1)
	p.invalidate()
	return true
}

// SetVertices replaces the whole outline.
func (p *Polygon) SetVertices(vertices []cp.Vector) {
	if p == nil {
		return
	}
	p.vertices = slices.Clone(vertices)
	p.invalidate()
}

func (p *Polygon) ClearVertices() {
	if p == nil {
		return
	}
	p.vertices = p.vertices[:0]
	p.invalidate()
}

// Centroid is the arithmetic mean of the vertices. This is not the
// area-weighted centroid; the two differ for unevenly spaced vertices.
func (p *Polygon) Centroid() cp.Vector {
	if p == nil || len(p.vertices) == 0 {
		return cp.Vector{}
	}
	var sum cp.Vector
	for _, v := range p.vertices {
		sum = sum.Add(v)
	}
	return sum.Mult(1 / float64(len(p.vertices)))
}

// Area uses the shoelace formula and is always non-negative.
func (p *Polygon) Area() float64 {
	if !p.IsValid() {
		return 0
	}
	var twice float64
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		twice += p.vertices[i].Cross(p.vertices[(i+1)%n])
	}
	return math.Abs(twice) / 2
}

// IsConvex reports whether every turn along the outline goes the same way.
// Collinear vertices (zero cross product) are ignored.
func (p *Polygon) IsConvex() bool {
	if !p.IsValid() {
		return false
	}
	n := len(p.vertices)
	sign := 0
	for i := 0; i < n; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%n]
		c := p.vertices[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}

func (p *Polygon) Translate(dx, dy float64) {
	if p == nil || len(p.vertices) == 0 {
		return
	}
	offset := cp.Vector{X: dx, Y: dy}
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].Add(offset)
	}
	p.invalidate()
}

// Scale resizes the polygon uniformly around its centroid.
func (p *Polygon) Scale(factor float64) {
	p.ScaleXY(factor, factor)
}

// ScaleXY resizes the polygon around its centroid with separate x/y factors.
func (p *Polygon) ScaleXY(sx, sy float64) {
	if p == nil || len(p.vertices) == 0 {
		return
	}
	c := p.Centroid()
	for i, v := range p.vertices {
		d := v.Sub(c)
		p.vertices[i] = cp.Vector{X: c.X + d.X*sx, Y: c.Y + d.Y*sy}
	}
	p.invalidate()
}

// Rotate turns the polygon by angle radians around its centroid.
func (p *Polygon) Rotate(angle float64) {
	if p == nil || len(p.vertices) == 0 {
		return
	}
	c := p.Centroid()
	rot := cp.ForAngle(angle)
	for i, v := range p.vertices {
		p.vertices[i] = c.Add(v.Sub(c).Rotate(rot))
	}
	p.invalidate()
}

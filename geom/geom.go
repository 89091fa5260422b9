package geom

// Pt is a 2D point. It is a plain value type: copy freely, compare with ==.
type Pt struct {
	X, Y float64
}

// P is shorthand for constructing a Pt.
func P(x, y float64) Pt { return Pt{X: x, Y: y} }

// Add returns the component-wise sum p + q.
func (p Pt) Add(q Pt) Pt { return Pt{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the component-wise difference p - q.
func (p Pt) Sub(q Pt) Pt { return Pt{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p with both components multiplied by s.
func (p Pt) Scale(s float64) Pt { return Pt{X: p.X * s, Y: p.Y * s} }

// Bound is an axis-aligned bounding box described by its Min (top-left in a
// screen coordinate system) and Max (bottom-right) corners. The zero Bound
// has zero width and height.
type Bound struct {
	Min, Max Pt
}

// NewBound constructs a Bound from two opposite corners. The corners may be
// given in any order; they are normalized so that Min ≤ Max per axis.
func NewBound(a, b Pt) Bound {
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}

	return Bound{Min: a, Max: b}
}

// BoundOf returns the axis-aligned bounding box of the given points.
// Degenerate inputs are handled without error: no points yields the zero
// Bound; a single point or collinear points yield a box whose width and/or
// height is 0.
func BoundOf(pts ...Pt) Bound {
	if len(pts) == 0 {
		return Bound{}
	}

	b := Bound{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
	}

	return b
}

// Width returns the horizontal extent of the box.
func (b Bound) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of the box.
func (b Bound) Height() float64 { return b.Max.Y - b.Min.Y }

// Center returns the midpoint of the box.
func (b Bound) Center() Pt {
	return Pt{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Contains reports whether p lies inside the box, borders included.
func (b Bound) Contains(p Pt) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

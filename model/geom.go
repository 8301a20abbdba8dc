package model

import "math"

// Vec is a 2D point or velocity in map units. Y grows downward.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// WrapX maps x onto the toroidal horizontal extent [0, width).
func WrapX(x, width float64) float64 {
	x = math.Mod(x, width)
	if x < 0 {
		x += width
	}
	return x
}

// DeltaX returns the shortest signed horizontal distance from a to b on a
// torus of the given width. The result lies in [-width/2, width/2).
func DeltaX(a, b, width float64) float64 {
	d := math.Mod(b-a, width)
	if d < -width/2 {
		d += width
	} else if d >= width/2 {
		d -= width
	}
	return d
}

// Rect is an axis-aligned box. Min is the top-left corner.
type Rect struct {
	Min, Max Vec
}

func RectAt(center Vec, w, h float64) Rect {
	return Rect{
		Min: Vec{center.X - w/2, center.Y - h/2},
		Max: Vec{center.X + w/2, center.Y + h/2},
	}
}

func (r Rect) W() float64      { return r.Max.X - r.Min.X }
func (r Rect) H() float64      { return r.Max.Y - r.Min.Y }
func (r Rect) Center() Vec     { return Vec{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2} }
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Overlaps reports whether the two boxes intersect, treating the horizontal
// axis as toroidal with the given width. Width <= 0 disables wrapping.
func (r Rect) Overlaps(o Rect, width float64) bool {
	if r.Max.Y <= o.Min.Y || o.Max.Y <= r.Min.Y {
		return false
	}
	if width <= 0 {
		return r.Max.X > o.Min.X && o.Max.X > r.Min.X
	}
	d := math.Abs(DeltaX(r.Center().X, o.Center().X, width))
	return d < (r.W()+o.W())/2
}

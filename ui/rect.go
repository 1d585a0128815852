package ui

import (
	"math"

	"github.com/gogpu/gg"
)

// Rect is an axis-aligned rectangle in screen space (y down).
type Rect struct {
	Min, Max gg.Point
}

// RectFromSize returns the rectangle with top-left corner pos and the given size.
func RectFromSize(pos gg.Point, w, h float64) Rect {
	return Rect{Min: pos, Max: gg.Pt(pos.X+w, pos.Y+h)}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the geometric center.
func (r Rect) Center() gg.Point {
	return gg.Pt(r.Min.X+r.Width()/2, r.Max.Y-r.Height()/2)
}

// Shrink returns r inset by d on every side.
func (r Rect) Shrink(d float64) Rect {
	return Rect{
		Min: gg.Pt(r.Min.X+d, r.Min.Y+d),
		Max: gg.Pt(r.Max.X-d, r.Max.Y-d),
	}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Min: gg.Pt(r.Min.X+dx, r.Min.Y+dy),
		Max: gg.Pt(r.Max.X+dx, r.Max.Y+dy),
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p gg.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects reports whether r and o overlap. Touching edges count.
// Rectangles with NaN coordinates never intersect anything.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// IsFinite reports whether all coordinates are finite.
func (r Rect) IsFinite() bool {
	for _, v := range [...]float64{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

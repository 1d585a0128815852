package gauge

import (
	"math"

	"github.com/gogpu/gg"
)

// Dial angles in degrees. 0° points east and angles grow counter-clockwise;
// the range maps onto the 270° arc from StartAngle down to EndAngle,
// leaving a 90° gap at the bottom of the dial.
const (
	StartAngle = 225 // angle of the minimum value
	EndAngle   = -45 // angle of the maximum value
	SweepAngle = StartAngle - EndAngle

	// TickSteps is the number of intervals between tick labels.
	TickSteps = 6

	// maxDegrees bounds angles computed from non-finite or far out of
	// range values so that integer conversion stays defined.
	maxDegrees = 1_000_000
)

// AngleF maps v onto the dial without truncation. It is linear in v and
// extrapolates outside [lo, hi].
func AngleF(v, lo, hi float64) float64 {
	return (SweepAngle - fraction(v, lo, hi)*SweepAngle) + float64(EndAngle)
}

// fraction returns (v-lo)/(hi-lo). Finite bounds whose difference
// overflows are halved first so the endpoints still map to 0 and 1.
func fraction(v, lo, hi float64) float64 {
	if span := hi - lo; math.IsInf(span, 0) && isFinite(lo) && isFinite(hi) {
		return (v/2 - lo/2) / (hi/2 - lo/2)
	}
	return (v - lo) / (hi - lo)
}

// Angle maps v onto the dial in whole degrees, truncated toward zero:
// Angle(lo) == 225 and Angle(hi) == -45. Values outside the range
// extrapolate. NaN maps to StartAngle.
func Angle(v, lo, hi float64) int {
	return truncDegrees(AngleF(v, lo, hi))
}

func truncDegrees(d float64) int {
	switch {
	case math.IsNaN(d):
		return StartAngle
	case d > maxDegrees:
		return maxDegrees
	case d < -maxDegrees:
		return -maxDegrees
	}
	return int(d)
}

// PolarPoint returns the point at angle degrees and distance radius from
// center, in screen space (y down).
func PolarPoint(center gg.Point, angle int, radius float64) gg.Point {
	rad := float64(angle) * math.Pi / 180
	return gg.Pt(center.X+math.Cos(rad)*radius, center.Y-math.Sin(rad)*radius)
}

// SectorPoints returns the fan of points on the circle of radius around
// center from angle from to angle to inclusive, one per degree. When
// includeCenter is set the center is appended, closing the fan into a
// pie slice. An empty span (from > to) yields only the center, if
// requested. Spans longer than a full turn are cut to 360°.
func SectorPoints(center gg.Point, radius float64, from, to int, includeCenter bool) []gg.Point {
	if to-from > 360 {
		to = from + 360
	}
	n := 0
	if to >= from {
		n = to - from + 1
	}
	points := make([]gg.Point, 0, n+1)
	for a := from; a <= to; a++ {
		points = append(points, PolarPoint(center, a, radius))
	}
	if includeCenter {
		points = append(points, center)
	}
	return points
}

// TickValues returns the tick positions from lo to hi: lo, lo+step, ...
// with step (hi-lo)/TickSteps. A tick closer than 1.0 to hi is replaced by
// hi itself so float drift never leaves a near-duplicate of the last tick.
// At most TickSteps+1 ticks are returned and the last one is always hi.
func TickValues(lo, hi float64) []float64 {
	step := (hi - lo) / TickSteps
	if math.IsInf(step, 0) && isFinite(lo) && isFinite(hi) {
		step = hi/TickSteps - lo/TickSteps
	}
	ticks := make([]float64, 0, TickSteps+1)
	v := lo
	for i := 0; ; i++ {
		ticks = append(ticks, v)
		if v == hi || i == TickSteps {
			break
		}
		v += step
		if hi-v < 1 || i+1 == TickSteps {
			v = hi
		}
	}
	return ticks
}

// Geometry holds the dial measurements derived from the widget size.
type Geometry struct {
	// Center is the center of the allotted rectangle.
	Center gg.Point
	// Clearance is the margin kept free for tick labels and caption.
	Clearance float64
	// Inner is the diameter of the dial inside the clearance.
	Inner float64
	// Radius is the outer radius of the ring.
	Radius float64
	// Thickness is the width of the ring.
	Thickness float64
}

// NewGeometry computes the dial geometry for a widget of the given size
// centered at center.
func NewGeometry(size float64, center gg.Point) Geometry {
	clearance := size / 10
	inner := size - clearance*2
	return Geometry{
		Center:    center,
		Clearance: clearance,
		Inner:     inner,
		Radius:    inner / 2,
		Thickness: inner / 15,
	}
}

// Point returns the point at angle on the circle of radius r.
func (g Geometry) Point(angle int, r float64) gg.Point {
	return PolarPoint(g.Center, angle, r)
}

// MidRing returns the radius of the ring's center line.
func (g Geometry) MidRing() float64 {
	return g.Radius - g.Thickness/2
}

// InnerRadius returns the radius of the ring's inner edge.
func (g Geometry) InnerRadius() float64 {
	return g.Radius - g.Thickness
}

// LabelRadius returns the radius at which tick labels are centered.
func (g Geometry) LabelRadius() float64 {
	return g.Radius + g.Thickness
}

// ValueFontSize is the font size of the center value.
func (g Geometry) ValueFontSize() float64 { return g.Inner / 5 }

// TickFontSize is the font size of the tick labels.
func (g Geometry) TickFontSize() float64 { return g.Inner / 15 }

// CaptionFontSize is the font size of the caption.
func (g Geometry) CaptionFontSize() float64 { return g.Inner / 10 }

// CaptionWrapWidth is the width the caption is wrapped to.
func (g Geometry) CaptionWrapWidth() float64 { return g.Inner * 2 / 3 }

// CaptionOffset is the distance below the center of the caption's middle.
func (g Geometry) CaptionOffset() float64 { return g.Inner / 5 }

package gauge

import (
	"math"

	"github.com/gogpu/gauge/ui"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
)

// Number is any integer or floating point type a gauge can display.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range is an inclusive value range. Start <= End is the caller's
// responsibility.
type Range[N Number] struct {
	Start, End N
}

// RangeOf returns the inclusive range [start, end].
func RangeOf[N Number](start, end N) Range[N] {
	return Range[N]{Start: start, End: end}
}

// Gauge is a speedometer-style dial showing a value within a range.
//
// A Gauge is built fresh every frame and holds no state between frames.
// It is a value type: the With methods return modified copies and nothing
// is drawn until UI or Paint is called.
type Gauge struct {
	value   float64
	min     float64
	max     float64
	size    float32
	color   RGBA8
	caption string

	clamp  bool
	locale language.Tag
}

var _ ui.Widget = Gauge{}

// Option configures a Gauge during creation.
type Option func(*Gauge)

// WithClamp controls whether the value arc and indicator use the value
// clamped into the range (the default). Without clamping the indicator
// extrapolates beyond the dial ends; the value arc is still bounded by
// the dial.
func WithClamp(clamp bool) Option {
	return func(g *Gauge) { g.clamp = clamp }
}

// WithLocale formats the center value and tick labels with the number
// conventions of tag (grouping, decimal separator). language.Und keeps
// plain formatting.
func WithLocale(tag language.Tag) Option {
	return func(g *Gauge) { g.locale = tag }
}

// New creates a gauge displaying value within rng. size is the width and
// height of the widget; color is used for the value arc, the indicator
// outline and the start cap. The caption is empty.
func New[N Number](value N, rng Range[N], size float32, color RGBA8, opts ...Option) Gauge {
	g := Gauge{
		value: float64(value),
		min:   float64(rng.Start),
		max:   float64(rng.End),
		size:  size,
		color: color,
		clamp: true,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// WithCaption returns a copy of g showing text under the center value.
// An empty text removes the caption.
func (g Gauge) WithCaption(text string) Gauge {
	g.caption = text
	return g
}

// Value returns the displayed value.
func (g Gauge) Value() float64 { return g.value }

// Min returns the start of the range.
func (g Gauge) Min() float64 { return g.min }

// Max returns the end of the range.
func (g Gauge) Max() float64 { return g.max }

// Size returns the widget's width and height.
func (g Gauge) Size() float32 { return g.size }

// Color returns the accent color.
func (g Gauge) Color() RGBA8 { return g.color }

// Caption returns the caption, or "".
func (g Gauge) Caption() string { return g.caption }

// Angle maps v onto this gauge's dial. See the package-level Angle.
func (g Gauge) Angle(v float64) int {
	return Angle(v, g.min, g.max)
}

// ValueAngle returns the dial angle of the indicator, honoring WithClamp.
func (g Gauge) ValueAngle() int {
	return g.Angle(g.dialValue())
}

// Ticks returns the values labeled around the dial.
func (g Gauge) Ticks() []float64 {
	return TickValues(g.min, g.max)
}

// Geometry returns the dial geometry for the rectangle allotted to the
// widget.
func (g Gauge) Geometry(rect ui.Rect) Geometry {
	return NewGeometry(float64(g.size), rect.Center())
}

// Info returns the accessibility description of the gauge.
func (g Gauge) Info() ui.WidgetInfo {
	return ui.SliderInfo(true, g.value, g.caption)
}

// UI allocates the gauge's square footprint in f, publishes its widget
// info and paints it if the footprint is visible. The response is
// returned even when nothing was painted.
func (g Gauge) UI(f *ui.Frame) *ui.Response {
	side := float64(g.size)
	rect, resp := f.AllocateExactSize(side, side)

	resp.SetWidgetInfo(g.Info())

	if f.IsRectVisible(rect) {
		g.Paint(f.Painter(), rect, f.Visuals(), f.Fonts())
	} else {
		Logger().Debug("gauge: not visible, skipping paint",
			"id", resp.ID, "min_y", rect.Min.Y, "max_y", rect.Max.Y)
	}
	return resp
}

// dialValue is the value used for the value arc and indicator.
func (g Gauge) dialValue() float64 {
	if !g.clamp {
		return g.value
	}
	lo, hi := g.min, g.max
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(hi, g.value))
}

package gauge

import (
	"math"

	"github.com/gogpu/gauge/drawlist"
	"github.com/gogpu/gauge/ui"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// indicatorStroke is the outline width of the value indicator.
const indicatorStroke = 1

// skirtStroke is the outline width of the skirt mask. It covers the
// anti-aliased seam between the ring ends and the mask.
const skirtStroke = 2

// Paint appends the gauge's shapes for rect to dst, back to front:
//
//  1. background arc in the track color
//  2. value arc in the accent color
//  3. center mask, leaving a ring
//  4. skirt mask, squaring off the ring's open ends
//  5. end caps
//  6. value indicator
//  7. center value
//  8. tick labels
//  9. caption, if any
//
// Each layer is opaque and relies on the ones before it, so the order is
// fixed. fonts may be nil; the caption is then laid out on one line with
// an estimated width.
func (g Gauge) Paint(dst *drawlist.List, rect ui.Rect, theme ui.Theme, fonts *ui.Fonts) {
	geo := g.Geometry(rect)
	accent := g.color.Float()
	track := theme.Track()
	bg := theme.Background

	angle := g.ValueAngle()
	if !isFinite(geo.Radius) {
		Logger().Debug("gauge: degenerate geometry", "size", g.size)
	}

	paintBackgroundArc(dst, geo, track)
	paintValueArc(dst, geo, angle, accent)
	paintCenterMask(dst, geo, bg)
	paintSkirtMask(dst, geo, bg)
	paintEndCaps(dst, geo, accent, track)
	paintIndicator(dst, geo, angle, accent)

	f := newFormatter(g.locale)
	dst.Text(f.value(g.value), geo.Center, 0.5, 0.5, geo.ValueFontSize(), theme.Text)
	for _, v := range g.Ticks() {
		pos := geo.Point(g.Angle(v), geo.LabelRadius())
		dst.Text(f.tick(v), pos, 0.5, 0.5, geo.TickFontSize(), theme.Text)
	}

	if g.caption != "" {
		dst.Add(captionBlock(g.caption, geo, fonts, theme.Text))
	}
}

func paintBackgroundArc(dst *drawlist.List, geo Geometry, track gg.RGBA) {
	points := SectorPoints(geo.Center, geo.Radius, EndAngle, StartAngle, true)
	dst.Path(points, true, track, drawlist.NoStroke)
}

// paintValueArc fills the wedge from the value angle up to the start of
// the dial. The sweep start is kept on the dial so the wedge never inverts.
func paintValueArc(dst *drawlist.List, geo Geometry, angle int, accent gg.RGBA) {
	from := min(max(angle, EndAngle), StartAngle)
	points := SectorPoints(geo.Center, geo.Radius, from, StartAngle, true)
	dst.Path(points, true, accent, drawlist.NoStroke)
}

func paintCenterMask(dst *drawlist.List, geo Geometry, bg gg.RGBA) {
	points := SectorPoints(geo.Center, geo.InnerRadius(), EndAngle, StartAngle, false)
	dst.Path(points, true, bg, drawlist.NoStroke)
}

func paintSkirtMask(dst *drawlist.List, geo Geometry, bg gg.RGBA) {
	points := []gg.Point{
		geo.Point(EndAngle, geo.Radius),
		geo.Point(StartAngle, geo.Radius),
		geo.Point(StartAngle, geo.InnerRadius()),
		geo.Point(EndAngle, geo.InnerRadius()),
	}
	dst.Path(points, true, bg, drawlist.Stroke{Width: skirtStroke, Color: bg})
}

func paintEndCaps(dst *drawlist.List, geo Geometry, accent, track gg.RGBA) {
	r := geo.Thickness / 2
	dst.Circle(geo.Point(StartAngle, geo.MidRing()), r, accent, drawlist.NoStroke)
	dst.Circle(geo.Point(EndAngle, geo.MidRing()), r, track, drawlist.NoStroke)
}

func paintIndicator(dst *drawlist.List, geo Geometry, angle int, accent gg.RGBA) {
	dst.Circle(geo.Point(angle, geo.MidRing()), geo.Thickness/2, gg.White,
		drawlist.Stroke{Width: indicatorStroke, Color: accent})
}

// captionBlock wraps the caption and centers the block horizontally on
// the dial, with its middle CaptionOffset below the center.
func captionBlock(caption string, geo Geometry, fonts *ui.Fonts, col gg.RGBA) drawlist.TextBlockCommand {
	size := geo.CaptionFontSize()

	var lines []string
	var width, lineHeight float64
	if fonts != nil {
		lines = fonts.Wrap(caption, size, geo.CaptionWrapWidth())
		lineHeight = fonts.LineHeight(size)
		for _, line := range lines {
			if w, _ := fonts.Measure(line, size); w > width {
				width = w
			}
		}
	} else {
		lines = []string{caption}
		width = float64(len([]rune(caption))) * size * 0.6
		lineHeight = size * 1.2
	}

	block := drawlist.TextBlockCommand{
		Lines:      lines,
		Width:      width,
		LineHeight: lineHeight,
		Size:       size,
		Color:      col,
		Align:      text.AlignCenter,
	}
	block.Pos = gg.Pt(
		geo.Center.X-width/2,
		geo.Center.Y+geo.CaptionOffset()-block.Height()/2,
	)
	return block
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Package gauge draws a speedometer-style dial widget with gg.
//
// # Overview
//
// A Gauge shows a value within an inclusive range as a 270° ring: the
// colored part of the ring, a round indicator on it, the value in the
// middle, seven tick labels around the outside and an optional caption
// under the value. It is built fresh every frame and added to a ui.Frame:
//
//	fonts, _ := ui.DefaultFonts()
//	frame := ui.NewFrame(ui.RectFromSize(gg.Pt(0, 0), 320, 640), ui.WithFonts(fonts))
//
//	frame.Add(gauge.New(speed, gauge.RangeOf(0, 100), 200, gauge.Blue).
//	    WithCaption("km/h"))
//
//	b := drawlist.NewContextBackend(320, 640, fonts)
//	b.Clear(frame.Visuals().Background)
//	if err := frame.Render(b); err != nil {
//	    return err
//	}
//	b.SavePNG("gauge.png")
//
// # Angles
//
// Angles are whole degrees, 0° east, counter-clockwise positive. The
// minimum of the range sits at 225° and the maximum at -45°; see Angle.
//
// # Degenerate input
//
// Nothing in this package returns an error or panics for any numeric
// input. An empty or reversed range, NaN values and non-positive sizes
// produce degenerate shapes that backends skip.
//
// # Logging
//
// gauge is silent by default. Use SetLogger to route diagnostics to a
// log/slog logger.
package gauge

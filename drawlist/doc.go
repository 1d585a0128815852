// Package drawlist provides an ordered list of vector paint commands.
//
// Widgets build a List back to front during a frame and hand it to a
// Backend for playback. Commands carry fully resolved geometry (screen
// space points, radii, colors) so a List can be replayed any number of
// times against any backend with identical output.
//
// # Commands
//
//   - PathCommand: filled and/or stroked polygon
//   - CircleCommand: filled and/or stroked circle
//   - TextCommand: single line of text positioned by an anchor
//   - TextBlockCommand: pre-wrapped lines laid out from a top-left corner
//
// # Backends
//
// Backends are registered by name, following the database/sql driver
// pattern. Two are built in:
//
//	"raster"    draws onto a *gg.Context (software rasterizer)
//	"recording" captures commands into a gg recording.Recorder
//
// Example:
//
//	b, err := drawlist.NewBackend("raster", 400, 400, fonts)
//	if err != nil {
//	    return err
//	}
//	if err := drawlist.Playback(list, b); err != nil {
//	    return err
//	}
package drawlist

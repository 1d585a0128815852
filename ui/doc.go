// Package ui is a small immediate-mode host for gauge widgets.
//
// A Frame is created for every redraw. Widgets ask it for space with
// AllocateExactSize, check IsRectVisible, read theme colors from Visuals,
// shape text with Fonts and append paint commands to Painter. When all
// widgets are added, Render plays the draw list back onto a drawlist
// backend:
//
//	fonts, _ := ui.DefaultFonts()
//	frame := ui.NewFrame(ui.RectFromSize(gg.Pt(0, 0), 400, 800),
//	    ui.WithTheme(ui.DarkTheme()), ui.WithFonts(fonts))
//	frame.Add(widget)
//	err := frame.Render(backend)
//
// Nothing survives a frame: there is no widget state and no input
// handling.
package ui

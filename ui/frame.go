package ui

import (
	"math"

	"github.com/gogpu/gauge/drawlist"
	"github.com/gogpu/gg"
)

// DefaultSpacing is the vertical gap between widgets.
const DefaultSpacing = 8

// Frame is an immediate-mode UI frame. Widgets are laid out top to bottom
// from the viewport's top-left corner and paint into a shared draw list.
// A Frame lives for one redraw; build a new one for the next.
//
// Frame is not safe for concurrent use.
type Frame struct {
	viewport Rect
	cursor   gg.Point
	spacing  float64
	theme    Theme
	fonts    *Fonts
	painter  *drawlist.List

	nextID  int
	widgets []WidgetInfo
}

// FrameOption configures a Frame during creation.
type FrameOption func(*frameOptions)

type frameOptions struct {
	theme   Theme
	fonts   *Fonts
	scroll  float64
	spacing float64
	painter *drawlist.List
}

func defaultFrameOptions() frameOptions {
	return frameOptions{
		theme:   LightTheme(),
		spacing: DefaultSpacing,
	}
}

// WithTheme sets the frame's theme. Default is LightTheme.
func WithTheme(t Theme) FrameOption {
	return func(o *frameOptions) { o.theme = t }
}

// WithFonts sets the fonts used for text shaping.
// Frames without fonts still lay out text but cannot measure it.
func WithFonts(f *Fonts) FrameOption {
	return func(o *frameOptions) { o.fonts = f }
}

// WithScroll scrolls the content up by dy, moving widgets relative to
// the viewport.
func WithScroll(dy float64) FrameOption {
	return func(o *frameOptions) { o.scroll = dy }
}

// WithSpacing sets the vertical gap between widgets.
func WithSpacing(s float64) FrameOption {
	return func(o *frameOptions) { o.spacing = s }
}

// WithPainter reuses an existing draw list. The list is reset.
func WithPainter(l *drawlist.List) FrameOption {
	return func(o *frameOptions) { o.painter = l }
}

// NewFrame begins a frame covering viewport.
func NewFrame(viewport Rect, opts ...FrameOption) *Frame {
	o := defaultFrameOptions()
	for _, opt := range opts {
		opt(&o)
	}

	painter := o.painter
	if painter == nil {
		painter = drawlist.NewList(64)
	} else {
		painter.Reset()
	}

	return &Frame{
		viewport: viewport,
		cursor:   gg.Pt(viewport.Min.X, viewport.Min.Y-o.scroll),
		spacing:  o.spacing,
		theme:    o.theme,
		fonts:    o.fonts,
		painter:  painter,
	}
}

// AllocateExactSize reserves a w x h rectangle at the layout cursor and
// advances the cursor. Non-positive or non-finite sizes take no layout
// space but still return a response.
func (f *Frame) AllocateExactSize(w, h float64) (Rect, *Response) {
	rect := RectFromSize(f.cursor, w, h)
	f.cursor.Y += layoutExtent(h) + f.spacing

	resp := &Response{ID: f.nextID, Rect: rect, frame: f}
	f.nextID++
	f.widgets = append(f.widgets, WidgetInfo{})
	return rect, resp
}

// IsRectVisible reports whether any part of r is inside the viewport.
func (f *Frame) IsRectVisible(r Rect) bool {
	return f.viewport.Intersects(r)
}

// Add lays out and paints w.
func (f *Frame) Add(w Widget) *Response {
	return w.UI(f)
}

// Painter returns the frame's draw list.
func (f *Frame) Painter() *drawlist.List {
	return f.painter
}

// Visuals returns the frame's theme.
func (f *Frame) Visuals() Theme {
	return f.theme
}

// Fonts returns the frame's fonts, or nil.
func (f *Frame) Fonts() *Fonts {
	return f.fonts
}

// Viewport returns the visible area.
func (f *Frame) Viewport() Rect {
	return f.viewport
}

// Cursor returns the top-left corner of the next allocation.
func (f *Frame) Cursor() gg.Point {
	return f.cursor
}

// Widgets returns the info published by each allocated widget, indexed by
// Response.ID.
func (f *Frame) Widgets() []WidgetInfo {
	return f.widgets
}

// Render plays the frame's draw list back onto b.
func (f *Frame) Render(b drawlist.Backend) error {
	return drawlist.Playback(f.painter, b)
}

func (f *Frame) publish(id int, info WidgetInfo) {
	if id >= 0 && id < len(f.widgets) {
		f.widgets[id] = info
	}
}

func layoutExtent(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

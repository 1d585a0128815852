package drawlist

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// ErrNoFace is returned when a text command cannot be resolved to a font face.
var ErrNoFace = errors.New("drawlist: no font face")

// ContextBackend draws commands onto a gg.Context using its software
// rasterizer.
type ContextBackend struct {
	dc    *gg.Context
	faces FaceProvider
}

var _ Backend = (*ContextBackend)(nil)

// NewContextBackend creates a backend with a fresh width x height context.
func NewContextBackend(width, height int, faces FaceProvider) *ContextBackend {
	return WrapContext(gg.NewContext(width, height), faces)
}

// WrapContext creates a backend drawing onto an existing context.
// The context keeps its background; use Clear to repaint it.
func WrapContext(dc *gg.Context, faces FaceProvider) *ContextBackend {
	return &ContextBackend{dc: dc, faces: faces}
}

// Context returns the underlying drawing context.
func (b *ContextBackend) Context() *gg.Context {
	return b.dc
}

// Clear fills the whole canvas with col.
func (b *ContextBackend) Clear(col gg.RGBA) {
	b.dc.ClearWithColor(col)
}

// Image returns the rendered image.
func (b *ContextBackend) Image() image.Image {
	return b.dc.Image()
}

// SavePNG writes the rendered image to a PNG file.
func (b *ContextBackend) SavePNG(path string) error {
	return b.dc.SavePNG(path)
}

// EncodePNG writes the rendered image as PNG to w.
func (b *ContextBackend) EncodePNG(w io.Writer) error {
	return b.dc.EncodePNG(w)
}

// DrawPath implements Backend.
func (b *ContextBackend) DrawPath(cmd PathCommand) error {
	if len(cmd.Points) < 2 || !finitePoints(cmd.Points) {
		Logger().Debug("drawlist: skipping degenerate path", "points", len(cmd.Points))
		return nil
	}
	if cmd.Fill.A > 0 && len(cmd.Points) >= 3 {
		b.trace(cmd.Points, true)
		b.setColor(cmd.Fill)
		if err := b.dc.Fill(); err != nil {
			return fmt.Errorf("fill path: %w", err)
		}
	}
	if !cmd.Stroke.IsZero() {
		b.trace(cmd.Points, cmd.Closed)
		b.setColor(cmd.Stroke.Color)
		b.dc.SetLineWidth(cmd.Stroke.Width)
		if err := b.dc.Stroke(); err != nil {
			return fmt.Errorf("stroke path: %w", err)
		}
	}
	b.dc.ClearPath()
	return nil
}

// DrawCircle implements Backend.
func (b *ContextBackend) DrawCircle(cmd CircleCommand) error {
	if !finitePoint(cmd.Center) || !(cmd.Radius > 0) || math.IsInf(cmd.Radius, 0) {
		Logger().Debug("drawlist: skipping degenerate circle", "radius", cmd.Radius)
		return nil
	}
	if cmd.Fill.A > 0 {
		b.dc.ClearPath()
		b.dc.DrawCircle(cmd.Center.X, cmd.Center.Y, cmd.Radius)
		b.setColor(cmd.Fill)
		if err := b.dc.Fill(); err != nil {
			return fmt.Errorf("fill circle: %w", err)
		}
	}
	if !cmd.Stroke.IsZero() {
		b.dc.ClearPath()
		b.dc.DrawCircle(cmd.Center.X, cmd.Center.Y, cmd.Radius)
		b.setColor(cmd.Stroke.Color)
		b.dc.SetLineWidth(cmd.Stroke.Width)
		if err := b.dc.Stroke(); err != nil {
			return fmt.Errorf("stroke circle: %w", err)
		}
	}
	b.dc.ClearPath()
	return nil
}

// DrawText implements Backend.
func (b *ContextBackend) DrawText(cmd TextCommand) error {
	if cmd.Text == "" || !validSize(cmd.Size) || !finitePoint(cmd.Pos) {
		return nil
	}
	face, err := resolveFace(b.faces, cmd.Size)
	if err != nil {
		return err
	}
	b.dc.SetFont(face)
	b.setColor(cmd.Color)
	b.dc.DrawStringAnchored(cmd.Text, cmd.Pos.X, cmd.Pos.Y, cmd.AnchorX, cmd.AnchorY)
	return nil
}

// DrawTextBlock implements Backend.
func (b *ContextBackend) DrawTextBlock(cmd TextBlockCommand) error {
	if len(cmd.Lines) == 0 || !validSize(cmd.Size) || !finitePoint(cmd.Pos) {
		return nil
	}
	face, err := resolveFace(b.faces, cmd.Size)
	if err != nil {
		return err
	}
	b.dc.SetFont(face)
	b.setColor(cmd.Color)
	ascent := face.Metrics().Ascent
	for i, line := range cmd.Lines {
		w, _ := text.Measure(line, face)
		x := cmd.Pos.X + cmd.lineOffset(w)
		y := cmd.Pos.Y + float64(i)*cmd.LineHeight + ascent
		b.dc.DrawString(line, x, y)
	}
	return nil
}

func (b *ContextBackend) trace(points []gg.Point, closed bool) {
	b.dc.ClearPath()
	b.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		b.dc.LineTo(p.X, p.Y)
	}
	if closed {
		b.dc.ClosePath()
	}
}

// setColor sets the shared fill/stroke brush of the context.
func (b *ContextBackend) setColor(c gg.RGBA) {
	b.dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func resolveFace(faces FaceProvider, size float64) (text.Face, error) {
	if faces == nil {
		return nil, fmt.Errorf("%w: backend has no face provider", ErrNoFace)
	}
	face := faces.Face(size)
	if face == nil {
		return nil, fmt.Errorf("%w for size %.2f", ErrNoFace, size)
	}
	return face, nil
}

func validSize(size float64) bool {
	return size > 0 && !math.IsInf(size, 0)
}

func finitePoint(p gg.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func finitePoints(points []gg.Point) bool {
	for _, p := range points {
		if !finitePoint(p) {
			return false
		}
	}
	return true
}

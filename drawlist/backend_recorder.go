package drawlist

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// FontFamily is the family name attached to recorded text commands.
const FontFamily = "Go Mono"

// RecorderBackend captures commands into a gg recording so they can be
// replayed to any recording backend (raster, PDF, SVG).
type RecorderBackend struct {
	rec   *recording.Recorder
	faces FaceProvider
}

var _ Backend = (*RecorderBackend)(nil)

// NewRecorderBackend creates a backend recording onto a width x height canvas.
func NewRecorderBackend(width, height int, faces FaceProvider) *RecorderBackend {
	rec := recording.NewRecorder(width, height)
	rec.SetFontFamily(FontFamily)
	return &RecorderBackend{rec: rec, faces: faces}
}

// Recorder returns the underlying recorder.
func (b *RecorderBackend) Recorder() *recording.Recorder {
	return b.rec
}

// Finish ends the recording and returns it. The backend must not be used
// afterwards.
func (b *RecorderBackend) Finish() *recording.Recording {
	return b.rec.FinishRecording()
}

// DrawPath implements Backend.
func (b *RecorderBackend) DrawPath(cmd PathCommand) error {
	if len(cmd.Points) < 2 || !finitePoints(cmd.Points) {
		return nil
	}
	if cmd.Fill.A > 0 && len(cmd.Points) >= 3 {
		b.trace(cmd.Points, true)
		b.rec.SetFillRGBA(cmd.Fill.R, cmd.Fill.G, cmd.Fill.B, cmd.Fill.A)
		b.rec.Fill()
	}
	if !cmd.Stroke.IsZero() {
		b.trace(cmd.Points, cmd.Closed)
		c := cmd.Stroke.Color
		b.rec.SetStrokeRGBA(c.R, c.G, c.B, c.A)
		b.rec.SetLineWidth(cmd.Stroke.Width)
		b.rec.Stroke()
	}
	b.rec.ClearPath()
	return nil
}

// DrawCircle implements Backend.
func (b *RecorderBackend) DrawCircle(cmd CircleCommand) error {
	if !finitePoint(cmd.Center) || !validSize(cmd.Radius) {
		return nil
	}
	if cmd.Fill.A > 0 {
		b.rec.ClearPath()
		b.rec.DrawCircle(cmd.Center.X, cmd.Center.Y, cmd.Radius)
		b.rec.SetFillRGBA(cmd.Fill.R, cmd.Fill.G, cmd.Fill.B, cmd.Fill.A)
		b.rec.Fill()
	}
	if !cmd.Stroke.IsZero() {
		b.rec.ClearPath()
		b.rec.DrawCircle(cmd.Center.X, cmd.Center.Y, cmd.Radius)
		c := cmd.Stroke.Color
		b.rec.SetStrokeRGBA(c.R, c.G, c.B, c.A)
		b.rec.SetLineWidth(cmd.Stroke.Width)
		b.rec.Stroke()
	}
	b.rec.ClearPath()
	return nil
}

// DrawText implements Backend. The recorder stores baseline positions, so
// the anchor is resolved here.
func (b *RecorderBackend) DrawText(cmd TextCommand) error {
	if cmd.Text == "" || !validSize(cmd.Size) || !finitePoint(cmd.Pos) {
		return nil
	}
	b.setFont(cmd.Size)
	b.rec.SetFillRGBA(cmd.Color.R, cmd.Color.G, cmd.Color.B, cmd.Color.A)
	w, h := b.rec.MeasureString(cmd.Text)
	b.rec.DrawString(cmd.Text, cmd.Pos.X-w*cmd.AnchorX, cmd.Pos.Y+h*cmd.AnchorY)
	return nil
}

// DrawTextBlock implements Backend.
func (b *RecorderBackend) DrawTextBlock(cmd TextBlockCommand) error {
	if len(cmd.Lines) == 0 || !validSize(cmd.Size) || !finitePoint(cmd.Pos) {
		return nil
	}
	ascent := b.setFont(cmd.Size)
	b.rec.SetFillRGBA(cmd.Color.R, cmd.Color.G, cmd.Color.B, cmd.Color.A)
	for i, line := range cmd.Lines {
		w, _ := b.rec.MeasureString(line)
		x := cmd.Pos.X + cmd.lineOffset(w)
		y := cmd.Pos.Y + float64(i)*cmd.LineHeight + ascent
		b.rec.DrawString(line, x, y)
	}
	return nil
}

// setFont selects the face for size and returns its ascent. Without a
// face provider the recorder falls back to size based estimates.
func (b *RecorderBackend) setFont(size float64) (ascent float64) {
	b.rec.SetFontSize(size)
	if b.faces != nil {
		if face := b.faces.Face(size); face != nil {
			b.rec.SetFont(face)
			return face.Metrics().Ascent
		}
	}
	b.rec.SetFont(nil)
	return size * 0.8
}

func (b *RecorderBackend) trace(points []gg.Point, closed bool) {
	b.rec.ClearPath()
	b.rec.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		b.rec.LineTo(p.X, p.Y)
	}
	if closed {
		b.rec.ClosePath()
	}
}

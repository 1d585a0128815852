package drawlist

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// CommandType identifies the type of a paint command.
type CommandType uint8

const (
	CmdPath      CommandType = iota // Fill and/or stroke a polygon
	CmdCircle                       // Fill and/or stroke a circle
	CmdText                         // Draw a single anchored line of text
	CmdTextBlock                    // Draw pre-wrapped lines of text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdPath:      "Path",
	CmdCircle:    "Circle",
	CmdText:      "Text",
	CmdTextBlock: "TextBlock",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Stroke describes an outline. A zero width stroke is not drawn.
type Stroke struct {
	Width float64
	Color gg.RGBA
}

// IsZero reports whether the stroke draws nothing.
func (s Stroke) IsZero() bool {
	return s.Width <= 0 || s.Color.A == 0
}

// NoStroke is the stroke used by shapes without an outline.
var NoStroke = Stroke{}

// PathCommand fills a polygon and then strokes its outline.
type PathCommand struct {
	// Points are the polygon vertices in screen space.
	Points []gg.Point
	// Closed joins the last point back to the first when stroking.
	// Fills are always closed.
	Closed bool
	// Fill is the fill color. A transparent fill is skipped.
	Fill gg.RGBA
	// Stroke is the outline drawn over the fill.
	Stroke Stroke
}

// Type implements Command.
func (PathCommand) Type() CommandType { return CmdPath }

// CircleCommand fills a circle and then strokes its outline.
type CircleCommand struct {
	Center gg.Point
	Radius float64
	Fill   gg.RGBA
	Stroke Stroke
}

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }

// TextCommand draws one line of text with an anchor point.
// AnchorX and AnchorY are in [0, 1]: (0, 0) is top-left, (0.5, 0.5) center.
type TextCommand struct {
	Text    string
	Pos     gg.Point
	AnchorX float64
	AnchorY float64
	// Size is the font size in points.
	Size  float64
	Color gg.RGBA
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }

// TextBlockCommand draws lines that were wrapped by the caller.
type TextBlockCommand struct {
	Lines []string
	// Pos is the top-left corner of the block.
	Pos gg.Point
	// Width is the width of the widest line; lines are aligned within it.
	Width float64
	// LineHeight is the distance between consecutive baselines.
	LineHeight float64
	Size       float64
	Color      gg.RGBA
	Align      text.Alignment
}

// Type implements Command.
func (TextBlockCommand) Type() CommandType { return CmdTextBlock }

// Height returns the total height of the block.
func (c TextBlockCommand) Height() float64 {
	return float64(len(c.Lines)) * c.LineHeight
}

// lineOffset returns the horizontal offset of a line of width w within the block.
func (c TextBlockCommand) lineOffset(w float64) float64 {
	switch c.Align {
	case text.AlignCenter:
		return (c.Width - w) / 2
	case text.AlignRight:
		return c.Width - w
	default:
		return 0
	}
}

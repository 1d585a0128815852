package drawlist

import "github.com/gogpu/gg"

// List is an ordered sequence of paint commands, back to front.
// The zero value is an empty list ready to use.
//
// List is not safe for concurrent use; it is owned by the frame that
// builds it.
type List struct {
	commands []Command
}

// NewList creates an empty list with room for n commands.
func NewList(n int) *List {
	return &List{commands: make([]Command, 0, n)}
}

// Add appends a command.
func (l *List) Add(cmd Command) {
	l.commands = append(l.commands, cmd)
}

// Path appends a polygon fill with an optional outline.
func (l *List) Path(points []gg.Point, closed bool, fill gg.RGBA, stroke Stroke) {
	l.Add(PathCommand{Points: points, Closed: closed, Fill: fill, Stroke: stroke})
}

// Circle appends a circle fill with an optional outline.
func (l *List) Circle(center gg.Point, radius float64, fill gg.RGBA, stroke Stroke) {
	l.Add(CircleCommand{Center: center, Radius: radius, Fill: fill, Stroke: stroke})
}

// Text appends an anchored line of text.
func (l *List) Text(s string, pos gg.Point, ax, ay, size float64, col gg.RGBA) {
	l.Add(TextCommand{Text: s, Pos: pos, AnchorX: ax, AnchorY: ay, Size: size, Color: col})
}

// Commands returns the recorded commands. The returned slice must not be
// modified.
func (l *List) Commands() []Command {
	return l.commands
}

// Len returns the number of commands.
func (l *List) Len() int {
	return len(l.commands)
}

// Count returns the number of commands of the given type.
func (l *List) Count(t CommandType) int {
	n := 0
	for _, c := range l.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Reset empties the list, keeping its capacity for the next frame.
func (l *List) Reset() {
	clear(l.commands)
	l.commands = l.commands[:0]
}

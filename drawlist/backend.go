package drawlist

import (
	"errors"
	"fmt"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gogpu/gg/text"
)

// ErrNilBackend is returned by Playback when no backend is given.
var ErrNilBackend = errors.New("drawlist: nil backend")

// FaceProvider resolves a font face for a text size.
// ui.Fonts implements it.
type FaceProvider interface {
	Face(size float64) text.Face
}

// Backend receives paint commands and renders them to its output.
//
// # Implementation Contract
//
// Each backend must:
//  1. Draw fills before strokes for the same command
//  2. Skip fills with zero alpha and strokes for which Stroke.IsZero is true
//  3. Return errors instead of panicking on degenerate geometry
type Backend interface {
	DrawPath(cmd PathCommand) error
	DrawCircle(cmd CircleCommand) error
	DrawText(cmd TextCommand) error
	DrawTextBlock(cmd TextBlockCommand) error
}

// Playback replays every command of l onto b in order.
// It stops at the first backend error.
func Playback(l *List, b Backend) error {
	if b == nil {
		return ErrNilBackend
	}
	if l == nil {
		return nil
	}
	for i, cmd := range l.commands {
		if err := playOne(cmd, b); err != nil {
			Logger().Warn("drawlist: playback failed",
				"index", i, "type", cmd.Type().String(), "err", err)
			return fmt.Errorf("drawlist: command %d (%s): %w", i, cmd.Type(), err)
		}
		commandCounter(cmd.Type()).Inc()
	}
	return nil
}

func playOne(cmd Command, b Backend) error {
	switch c := cmd.(type) {
	case PathCommand:
		return b.DrawPath(c)
	case CircleCommand:
		return b.DrawCircle(c)
	case TextCommand:
		return b.DrawText(c)
	case TextBlockCommand:
		return b.DrawTextBlock(c)
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

// commandCounter returns the playback counter for a command type.
func commandCounter(t CommandType) *metrics.Counter {
	return metrics.GetOrCreateCounter(fmt.Sprintf(`gauge_drawlist_commands_total{type=%q}`, t.String()))
}

package ui

import (
	"fmt"
	"strconv"
)

// WidgetType classifies a widget for accessibility output.
type WidgetType uint8

const (
	WidgetUnknown WidgetType = iota
	WidgetLabel
	WidgetSlider
	WidgetProgressIndicator
)

var widgetTypeNames = [...]string{
	WidgetUnknown:           "Unknown",
	WidgetLabel:             "Label",
	WidgetSlider:            "Slider",
	WidgetProgressIndicator: "ProgressIndicator",
}

// String returns the name of the widget type.
func (t WidgetType) String() string {
	if int(t) < len(widgetTypeNames) {
		return widgetTypeNames[t]
	}
	return "Unknown"
}

// WidgetInfo describes a widget to assistive technology.
type WidgetInfo struct {
	Type    WidgetType
	Enabled bool
	// Value is the current value for value-carrying widgets.
	Value float64
	// Label is the widget's text; may be empty.
	Label string
}

// SliderInfo describes a slider-like control showing value.
func SliderInfo(enabled bool, value float64, label string) WidgetInfo {
	return WidgetInfo{Type: WidgetSlider, Enabled: enabled, Value: value, Label: label}
}

// String returns a short description, e.g. `Slider "speed" value=50`.
func (w WidgetInfo) String() string {
	s := w.Type.String()
	if w.Label != "" {
		s += " " + strconv.Quote(w.Label)
	}
	if w.Type == WidgetSlider || w.Type == WidgetProgressIndicator {
		s += fmt.Sprintf(" value=%s", strconv.FormatFloat(w.Value, 'g', -1, 64))
	}
	if !w.Enabled {
		s += " (disabled)"
	}
	return s
}

// Response is returned by widgets after layout.
type Response struct {
	// ID is the widget's position in the frame's allocation order.
	ID int
	// Rect is the space allocated to the widget.
	Rect Rect
	// Info is the last published widget info.
	Info WidgetInfo

	frame *Frame
}

// SetWidgetInfo publishes info for this widget to the frame.
// Calling it again replaces the previous info.
func (r *Response) SetWidgetInfo(info WidgetInfo) {
	r.Info = info
	if r.frame != nil {
		r.frame.publish(r.ID, info)
	}
}

// Widget is anything that can lay itself out and paint into a frame.
type Widget interface {
	UI(f *Frame) *Response
}

package ui

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestWidgetTypeString(t *testing.T) {
	tests := []struct {
		w    WidgetType
		want string
	}{
		{WidgetUnknown, "Unknown"},
		{WidgetLabel, "Label"},
		{WidgetSlider, "Slider"},
		{WidgetProgressIndicator, "ProgressIndicator"},
		{WidgetType(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("WidgetType(%d).String() = %q, want %q", tt.w, got, tt.want)
		}
	}
}

func TestWidgetInfoString(t *testing.T) {
	tests := []struct {
		info WidgetInfo
		want string
	}{
		{SliderInfo(true, 50, "speed"), `Slider "speed" value=50`},
		{SliderInfo(true, 0.5, ""), `Slider value=0.5`},
		{SliderInfo(false, -3, "rpm"), `Slider "rpm" value=-3 (disabled)`},
		{WidgetInfo{Type: WidgetLabel, Enabled: true, Label: "hi"}, `Label "hi"`},
	}
	for _, tt := range tests {
		if got := tt.info.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSetWidgetInfoReplaces(t *testing.T) {
	f := NewFrame(RectFromSize(gg.Pt(0, 0), 100, 100))
	_, resp := f.AllocateExactSize(10, 10)

	resp.SetWidgetInfo(SliderInfo(true, 1, "a"))
	resp.SetWidgetInfo(SliderInfo(true, 2, "b"))

	if resp.Info.Value != 2 || resp.Info.Label != "b" {
		t.Errorf("Info = %+v, want the second call", resp.Info)
	}
	if got := f.Widgets()[resp.ID]; got != resp.Info {
		t.Errorf("frame widget = %+v, want %+v", got, resp.Info)
	}
}

func TestSetWidgetInfoDetached(t *testing.T) {
	var resp Response
	resp.SetWidgetInfo(SliderInfo(true, 1, "x"))
	if resp.Info.Label != "x" {
		t.Errorf("Info = %+v", resp.Info)
	}
}

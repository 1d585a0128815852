package gauge

import (
	"math"
	"testing"

	"github.com/gogpu/gauge/drawlist"
	"github.com/gogpu/gauge/ui"
	"github.com/gogpu/gg"
	"golang.org/x/text/language"
)

func TestNew(t *testing.T) {
	g := New(50, RangeOf(0, 100), 200, Blue)
	if g.Value() != 50 || g.Min() != 0 || g.Max() != 100 {
		t.Errorf("New = value %v range [%v, %v], want 50 [0, 100]", g.Value(), g.Min(), g.Max())
	}
	if g.Size() != 200 {
		t.Errorf("Size = %v, want 200", g.Size())
	}
	if g.Color() != Blue {
		t.Errorf("Color = %+v, want Blue", g.Color())
	}
	if g.Caption() != "" {
		t.Errorf("Caption = %q, want empty", g.Caption())
	}
	if got := g.ValueAngle(); got != 90 {
		t.Errorf("ValueAngle = %d, want 90", got)
	}
}

func TestNewNumericTypes(t *testing.T) {
	if g := New(uint8(200), RangeOf[uint8](100, 200), 300, Red); g.ValueAngle() != EndAngle {
		t.Errorf("uint8 gauge angle = %d, want %d", g.ValueAngle(), EndAngle)
	}
	if g := New(int64(-5), RangeOf[int64](-10, 0), 100, Red); g.ValueAngle() != 90 {
		t.Errorf("int64 gauge angle = %d, want 90", g.ValueAngle())
	}
	if g := New(float32(0.25), RangeOf[float32](0, 1), 100, Red); g.Value() != 0.25 {
		t.Errorf("float32 gauge value = %v, want 0.25", g.Value())
	}
}

func TestWithCaptionReturnsCopy(t *testing.T) {
	base := New(10, RangeOf(0, 20), 100, Green)
	captioned := base.WithCaption("hello")
	if base.Caption() != "" {
		t.Errorf("base caption changed to %q", base.Caption())
	}
	if captioned.Caption() != "hello" {
		t.Errorf("Caption = %q, want hello", captioned.Caption())
	}
	if got := captioned.WithCaption("other").Caption(); got != "other" {
		t.Errorf("second WithCaption = %q, want other", got)
	}
	if got := captioned.WithCaption("").Caption(); got != "" {
		t.Errorf("empty WithCaption = %q, want empty", got)
	}
}

func TestValueAngleClamp(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		clamp bool
		want  int
	}{
		{"below min clamped", -50, true, StartAngle},
		{"above max clamped", 150, true, EndAngle},
		{"below min extrapolated", -10, false, 252},
		{"above max extrapolated", 110, false, -72},
		{"in range unaffected", 50, true, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.value, RangeOf(0.0, 100.0), 100, Blue, WithClamp(tt.clamp))
			if got := g.ValueAngle(); got != tt.want {
				t.Errorf("ValueAngle = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	g := New(42, RangeOf(0, 100), 100, Blue).WithCaption("rpm")
	info := g.Info()
	if info.Type != ui.WidgetSlider {
		t.Errorf("Type = %v, want Slider", info.Type)
	}
	if !info.Enabled || info.Value != 42 || info.Label != "rpm" {
		t.Errorf("Info = %+v", info)
	}
}

func newTestFonts(t *testing.T) *ui.Fonts {
	t.Helper()
	fonts, err := ui.DefaultFonts()
	if err != nil {
		t.Fatalf("DefaultFonts: %v", err)
	}
	t.Cleanup(func() { _ = fonts.Close() })
	return fonts
}

func TestUIAllocatesAndPaints(t *testing.T) {
	frame := ui.NewFrame(ui.RectFromSize(gg.Pt(0, 0), 400, 400), ui.WithFonts(newTestFonts(t)))
	resp := frame.Add(New(50, RangeOf(0, 100), 200, Blue).WithCaption("hello"))

	if resp.Rect.Width() != 200 || resp.Rect.Height() != 200 {
		t.Errorf("Rect = %+v, want 200x200", resp.Rect)
	}
	if resp.Info.Type != ui.WidgetSlider || resp.Info.Value != 50 || resp.Info.Label != "hello" {
		t.Errorf("Info = %+v", resp.Info)
	}
	if got := frame.Widgets(); len(got) != 1 || got[0] != resp.Info {
		t.Errorf("Widgets = %+v, want [%+v]", got, resp.Info)
	}
	if frame.Painter().Len() == 0 {
		t.Error("visible gauge painted nothing")
	}
}

func TestUISkipsInvisible(t *testing.T) {
	frame := ui.NewFrame(ui.RectFromSize(gg.Pt(0, 0), 400, 100), ui.WithSpacing(0))
	frame.Add(New(1, RangeOf(0, 10), 100, Blue))
	n := frame.Painter().Len()

	// A gauge starting at y=100 would touch the viewport edge and count as
	// visible; the spacer pushes the next one fully out of view.
	frame.AllocateExactSize(10, 50)
	resp := frame.Add(New(2, RangeOf(0, 10), 100, Red).WithCaption("hidden"))

	if frame.Painter().Len() != n {
		t.Errorf("invisible gauge painted %d commands", frame.Painter().Len()-n)
	}
	if resp.Rect.Height() != 100 {
		t.Errorf("invisible gauge rect = %+v", resp.Rect)
	}
	if resp.Info.Label != "hidden" || resp.Info.Value != 2 {
		t.Errorf("invisible gauge info = %+v, want published anyway", resp.Info)
	}
	if got := len(frame.Widgets()); got != 3 {
		t.Errorf("len(Widgets) = %d, want 3", got)
	}
}

func TestUIDegenerateInputsDoNotPanic(t *testing.T) {
	fonts := newTestFonts(t)
	gauges := []Gauge{
		New(5, RangeOf(5, 5), 100, Blue),
		New(math.NaN(), RangeOf(0.0, 1.0), 100, Blue),
		New(1, RangeOf(math.Inf(-1), math.Inf(1)), 100, Blue),
		New(1, RangeOf(10, 0), 100, Blue),
		New(1, RangeOf(0, 10), 0, Blue),
		New(1, RangeOf(0, 10), -50, Blue).WithCaption("negative"),
		New(1, RangeOf(0, 10), float32(math.NaN()), Blue).WithCaption("nan"),
		New(1e300, RangeOf(0.0, 1.0), 100, Blue, WithClamp(false)),
	}
	for i, g := range gauges {
		frame := ui.NewFrame(ui.RectFromSize(gg.Pt(0, 0), 200, 200), ui.WithFonts(fonts))
		frame.Add(g)
		b := drawlist.NewContextBackend(200, 200, fonts)
		if err := frame.Render(b); err != nil {
			t.Errorf("gauge %d: Render: %v", i, err)
		}
	}
}

func TestLocaleFormatting(t *testing.T) {
	g := New(1234.5, RangeOf(0.0, 6000.0), 200, Blue, WithLocale(language.German))
	var list drawlist.List
	g.Paint(&list, ui.RectFromSize(gg.Pt(0, 0), 200, 200), ui.LightTheme(), nil)

	texts := textsOf(&list)
	if len(texts) == 0 || texts[0] != "1.234,5" {
		t.Fatalf("center value = %v, want 1.234,5", texts)
	}
	if last := texts[len(texts)-1]; last != "6.000" {
		t.Errorf("last tick = %q, want 6.000", last)
	}
}

func textsOf(l *drawlist.List) []string {
	var out []string
	for _, c := range l.Commands() {
		if tc, ok := c.(drawlist.TextCommand); ok {
			out = append(out, tc.Text)
		}
	}
	return out
}

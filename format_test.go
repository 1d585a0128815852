package gauge

import (
	"math"
	"testing"

	"golang.org/x/text/language"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{50, "50"},
		{0, "0"},
		{-12, "-12"},
		{0.1, "0.1"},
		{1234.5, "1234.5"},
		{1e21, "1000000000000000000000"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{100, "100"},
		{116.66, "116"},
		{183.33, "183"},
		{-0.5, "0"},
		{-16.7, "-16"},
		{0.999, "0"},
		{1e12, "1000000000000"},
		{math.NaN(), "NaN"},
		{math.Inf(-1), "-Inf"},
	}
	for _, tt := range tests {
		if got := FormatTick(tt.v); got != tt.want {
			t.Errorf("FormatTick(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFormatterLocale(t *testing.T) {
	tests := []struct {
		tag       language.Tag
		value     float64
		wantValue string
		tick      float64
		wantTick  string
	}{
		{language.Und, 1234.5, "1234.5", 6000, "6000"},
		{language.English, 1234.5, "1,234.5", 6000, "6,000"},
		{language.German, 1234.5, "1.234,5", 6000, "6.000"},
		{language.German, 50, "50", 16.9, "16"},
		{language.English, 0.25, "0.25", -0.4, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			f := newFormatter(tt.tag)
			if got := f.value(tt.value); got != tt.wantValue {
				t.Errorf("value(%v) = %q, want %q", tt.value, got, tt.wantValue)
			}
			if got := f.tick(tt.tick); got != tt.wantTick {
				t.Errorf("tick(%v) = %q, want %q", tt.tick, got, tt.wantTick)
			}
		})
	}
}

func TestFormatterNonFinite(t *testing.T) {
	f := newFormatter(language.German)
	if got := f.value(math.NaN()); got != "NaN" {
		t.Errorf("value(NaN) = %q", got)
	}
	if got := f.tick(math.Inf(1)); got != "+Inf" {
		t.Errorf("tick(+Inf) = %q", got)
	}
}

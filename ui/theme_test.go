package ui

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestThemeTrack(t *testing.T) {
	light := LightTheme()
	if light.Dark {
		t.Error("LightTheme().Dark = true")
	}
	if got := light.Track(); got != Gray {
		t.Errorf("light Track() = %+v, want Gray", got)
	}

	dark := DarkTheme()
	if !dark.Dark {
		t.Error("DarkTheme().Dark = false")
	}
	if got := dark.Track(); got != gg.White {
		t.Errorf("dark Track() = %+v, want white", got)
	}

	custom := light
	custom.TrackLight = gg.Hex("#123456")
	if got := custom.Track(); got != gg.Hex("#123456") {
		t.Errorf("custom Track() = %+v", got)
	}
}

func TestThemeContrast(t *testing.T) {
	for _, th := range []Theme{LightTheme(), DarkTheme()} {
		if th.Background == th.Text {
			t.Errorf("theme dark=%v has identical background and text", th.Dark)
		}
		if th.Background.A != 1 {
			t.Errorf("theme dark=%v background is not opaque", th.Dark)
		}
	}
}

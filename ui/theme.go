package ui

import "github.com/gogpu/gg"

// Theme holds the colors widgets read from the frame.
//
// Track colors are supplied by the caller for both modes; Track picks the
// one matching Dark.
type Theme struct {
	Dark       bool
	Background gg.RGBA
	Text       gg.RGBA
	TrackLight gg.RGBA
	TrackDark  gg.RGBA
}

var (
	// Gray is the default track color on light themes.
	Gray = gg.Hex("#a0a0a0")

	lightBackground = gg.Hex("#f8f8f8")
	lightText       = gg.Hex("#505050")
	darkBackground  = gg.Hex("#1b1b1b")
	darkText        = gg.Hex("#8c8c8c")
)

// LightTheme returns the default light theme.
func LightTheme() Theme {
	return Theme{
		Dark:       false,
		Background: lightBackground,
		Text:       lightText,
		TrackLight: Gray,
		TrackDark:  gg.White,
	}
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Dark:       true,
		Background: darkBackground,
		Text:       darkText,
		TrackLight: Gray,
		TrackDark:  gg.White,
	}
}

// Track returns the neutral track color for the current mode.
func (t Theme) Track() gg.RGBA {
	if t.Dark {
		return t.TrackDark
	}
	return t.TrackLight
}

package ui

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/go-text/typesetting/language"
	"github.com/gogpu/gg/text"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// DefaultFaceCacheSize is the number of face sizes kept by DefaultFonts.
const DefaultFaceCacheSize = 32

// ErrNoFace is returned when font data cannot be turned into faces.
var ErrNoFace = errors.New("ui: no font face")

// Fonts resolves monospace font faces by size and performs text shaping
// for widgets. Faces are cached per size; sizes are quantized to 1/64 of a
// point so that float noise does not defeat the cache.
//
// Fonts is safe for concurrent use.
type Fonts struct {
	source *text.FontSource
	faces  *lru.Cache[float64, text.Face]

	complexWarned atomic.Bool
}

// NewFonts creates Fonts from TrueType or OpenType data.
func NewFonts(data []byte, cacheSize int) (*Fonts, error) {
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("%w: load font: %w", ErrNoFace, err)
	}
	if cacheSize <= 0 {
		cacheSize = DefaultFaceCacheSize
	}
	faces, err := lru.New[float64, text.Face](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("ui: face cache: %w", err)
	}
	return &Fonts{source: source, faces: faces}, nil
}

// DefaultFonts returns Fonts backed by the Go Mono typeface.
func DefaultFonts() (*Fonts, error) {
	return NewFonts(gomono.TTF, DefaultFaceCacheSize)
}

// Name returns the font family name.
func (f *Fonts) Name() string {
	return f.source.Name()
}

// Face returns the face for size, or nil if size is not a positive finite
// number.
func (f *Fonts) Face(size float64) text.Face {
	if !(size > 0) || math.IsInf(size, 0) {
		return nil
	}
	key := math.Round(size*64) / 64
	if face, ok := f.faces.Get(key); ok {
		return face
	}
	face := f.source.Face(key)
	f.faces.Add(key, face)
	return face
}

// CachedSizes returns the number of face sizes currently cached.
func (f *Fonts) CachedSizes() int {
	return f.faces.Len()
}

// Measure returns the advance width and line height of s at size.
func (f *Fonts) Measure(s string, size float64) (w, h float64) {
	face := f.Face(size)
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face)
}

// LineHeight returns the baseline-to-baseline distance at size.
func (f *Fonts) LineHeight(size float64) float64 {
	face := f.Face(size)
	if face == nil {
		return 0
	}
	return face.Metrics().LineHeight()
}

// Wrap breaks s into lines no wider than width at size. Words are kept
// whole where possible; words longer than width are broken between
// characters. Hard line breaks are respected.
func (f *Fonts) Wrap(s string, size, width float64) []string {
	if s == "" {
		return nil
	}
	f.checkShaping(s)
	face := f.Face(size)
	if face == nil || !(width > 0) {
		return []string{s}
	}
	results := text.WrapText(s, face, width, text.WrapWordChar)
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, strings.TrimRight(r.Text, " \t"))
	}
	return lines
}

// Close releases the font source.
func (f *Fonts) Close() error {
	f.faces.Purge()
	return f.source.Close()
}

// checkShaping warns once if s needs a complex shaper that is not installed.
func (f *Fonts) checkShaping(s string) {
	if ComplexShapingEnabled() || !NeedsComplexShaping(s) {
		return
	}
	if f.complexWarned.CompareAndSwap(false, true) {
		Logger().Warn("ui: text needs complex shaping; call EnableComplexShaping", "text", s)
	}
}

// NeedsComplexShaping reports whether s contains runes from scripts the
// builtin shaper does not handle well (anything outside Latin, Greek and
// Cyrillic).
func NeedsComplexShaping(s string) bool {
	for _, r := range s {
		switch language.LookupScript(r) {
		case language.Latin, language.Greek, language.Cyrillic, language.Common, language.Inherited:
		default:
			return true
		}
	}
	return false
}

// EnableComplexShaping installs the HarfBuzz shaper from go-text/typesetting
// for all text drawn through gg. The shaper is process global.
func EnableComplexShaping() {
	text.SetShaper(text.NewGoTextShaper())
}

// DisableComplexShaping restores gg's builtin shaper.
func DisableComplexShaping() {
	text.SetShaper(nil)
}

// ComplexShapingEnabled reports whether the HarfBuzz shaper is installed.
func ComplexShapingEnabled() bool {
	_, ok := text.GetShaper().(*text.GoTextShaper)
	return ok
}

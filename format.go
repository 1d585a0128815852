package gauge

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// formatter turns dial values into label text.
// The zero value formats without locale conventions.
type formatter struct {
	printer *message.Printer
}

func newFormatter(tag language.Tag) formatter {
	if tag == language.Und {
		return formatter{}
	}
	return formatter{printer: message.NewPrinter(tag)}
}

// FormatValue returns the shortest decimal form of v that round-trips,
// without an exponent: 50, 0.1, 1234.5.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatTick returns v truncated toward zero, as used for tick labels.
func FormatTick(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	t := math.Trunc(v)
	if t == 0 {
		t = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(t, 'f', 0, 64)
}

// value formats the center value.
func (f formatter) value(v float64) string {
	s := FormatValue(v)
	if f.printer == nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}
	digits := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		digits = len(s) - i - 1
	}
	return f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits)))
}

// tick formats a tick label.
func (f formatter) tick(v float64) string {
	if f.printer == nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return FormatTick(v)
	}
	t := math.Trunc(v)
	if t == 0 {
		t = 0
	}
	return f.printer.Sprint(number.Decimal(t, number.MaxFractionDigits(0)))
}

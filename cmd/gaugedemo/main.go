// Command gaugedemo renders two gauges to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/drawlist"
	"github.com/gogpu/gauge/ui"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster" // Built-in raster backend
	"golang.org/x/text/language"
)

func main() {
	var (
		width   = flag.Int("width", 320, "image width")
		height  = flag.Int("height", 560, "image height")
		output  = flag.String("output", "gauge.png", "output file")
		value   = flag.Float64("value", 50, "value of the first gauge; the second shows value+100")
		dark    = flag.Bool("dark", false, "use the dark theme")
		caption = flag.String("caption", "hello", "caption of the first gauge")
		locale  = flag.String("locale", "", "BCP 47 tag for number formatting, e.g. de")
		backend = flag.String("backend", "raster", "drawlist backend: raster or recording")
		shaping = flag.Bool("shaping", false, "shape text with HarfBuzz for complex scripts")
		stats   = flag.Bool("metrics", false, "print playback metrics to stdout")
		verbose = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		gauge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *shaping {
		ui.EnableComplexShaping()
	}

	var opts []gauge.Option
	if *locale != "" {
		tag, err := language.Parse(*locale)
		if err != nil {
			log.Fatalf("Invalid locale %q: %v", *locale, err)
		}
		opts = append(opts, gauge.WithLocale(tag))
	}

	fonts, err := ui.DefaultFonts()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	defer fonts.Close()

	theme := ui.LightTheme()
	if *dark {
		theme = ui.DarkTheme()
	}

	frame := ui.NewFrame(ui.RectFromSize(gg.Pt(0, 0), float64(*width), float64(*height)),
		ui.WithTheme(theme), ui.WithFonts(fonts))

	frame.Add(gauge.New(*value, gauge.RangeOf(0.0, 100.0), 200, gauge.Blue, opts...).
		WithCaption(*caption))
	frame.Add(gauge.New(*value+100, gauge.RangeOf(100.0, 200.0), 300, gauge.Red, opts...).
		WithCaption("some text"))

	for _, info := range frame.Widgets() {
		log.Printf("widget: %s", info)
	}

	switch *backend {
	case "raster":
		err = renderRaster(frame, fonts, *width, *height, *output)
	case "recording":
		err = renderRecording(frame, fonts, *width, *height, *output)
	default:
		err = fmt.Errorf("%w %q", drawlist.ErrUnknownBackend, *backend)
	}
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	log.Printf("Gauges saved to %s (%dx%d)\n", *output, *width, *height)

	if *stats {
		metrics.WritePrometheus(os.Stdout, false)
	}
}

func renderRaster(frame *ui.Frame, fonts *ui.Fonts, w, h int, path string) error {
	b, err := drawlist.NewBackend("raster", w, h, fonts)
	if err != nil {
		return err
	}
	cb := b.(*drawlist.ContextBackend)
	cb.Clear(frame.Visuals().Background)
	if err := frame.Render(cb); err != nil {
		return err
	}
	return cb.SavePNG(path)
}

// renderRecording records the frame and replays it onto gg's raster
// recording backend. That backend does not rasterize text, so only the
// shapes end up in the image.
func renderRecording(frame *ui.Frame, fonts *ui.Fonts, w, h int, path string) error {
	b, err := drawlist.NewBackend("recording", w, h, fonts)
	if err != nil {
		return err
	}
	rb := b.(*drawlist.RecorderBackend)

	bg := frame.Visuals().Background
	rec := rb.Recorder()
	rec.SetFillRGBA(bg.R, bg.G, bg.B, bg.A)
	rec.DrawRectangle(0, 0, float64(w), float64(h))
	rec.Fill()

	if err := frame.Render(rb); err != nil {
		return err
	}
	r := rb.Finish()
	log.Printf("Recording: %d commands, %d paths", len(r.Commands()), r.Resources().PathCount())

	out, err := recording.NewBackend("raster")
	if err != nil {
		return err
	}
	if err := r.Playback(out); err != nil {
		return err
	}
	fb, ok := out.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("recording backend %T cannot save files", out)
	}
	return fb.SaveToFile(path)
}

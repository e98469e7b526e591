package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneID  string
	width    int
	height   int
	fov      float64 // Degrees
	output   string
	workers  int
	tileSize int
	caption  bool
	verbose  bool
	help     bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, *flag.FlagSet, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.sceneID, "scene", scene.DefaultSceneID, "Scene to render (see -help for the list)")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.Float64Var(&opts.fov, "fov", 0, "Field of view in degrees (0 = scene default)")
	fs.StringVar(&opts.output, "out", "", "Output file; the extension selects png, ppm, bmp or tiff (default output/<scene>/render_<timestamp>.png)")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.IntVar(&opts.tileSize, "tile", renderer.DefaultTileSize, "Tile size in pixels")
	fs.BoolVar(&opts.caption, "caption", false, "Stamp the scene name and render time onto the image")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose logging")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}
	return opts, fs, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.help {
		printHelp(stdout, fs)
		return nil
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	renderer.SetLogger(logger)
	defer renderer.SetLogger(nil)

	selected, err := createScene(opts)
	if err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join("output", selected.Name, fmt.Sprintf("render_%s.png", timestamp))
	}
	// Fail on a bad extension before spending time on the render
	if _, err := canvas.FormatFromPath(outputPath); err != nil {
		return err
	}

	logger.Info("rendering scene", "scene", selected.Name,
		"width", selected.Camera.HSize(), "height", selected.Camera.VSize())

	img, stats := selected.Camera.RenderWithOptions(selected.World, renderer.RenderOptions{
		TileSize:   opts.tileSize,
		NumWorkers: opts.workers,
	})

	var output image.Image = img.Image()
	if opts.caption {
		output = canvas.Annotate(output, fmt.Sprintf("%s  %dx%d  %v", selected.Name, stats.Width, stats.Height, stats.Elapsed.Round(time.Millisecond)))
	}
	if err := canvas.SaveImage(outputPath, output); err != nil {
		return err
	}

	printSummary(stdout, outputPath, stats)
	return nil
}

// createScene builds the requested scene with any size and field-of-view overrides
func createScene(opts options) (*scene.Scene, error) {
	cfg := scene.Config{
		Width:  opts.width,
		Height: opts.height,
	}
	if opts.fov > 0 {
		cfg.FieldOfView = opts.fov * math.Pi / 180
	}
	return scene.Build(opts.sceneID, cfg)
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Whitted Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, s := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-14s %s\n", s.ID, s.Description)
	}
	fmt.Fprintln(w)
	formats := make([]string, 0, len(canvas.Formats()))
	for _, f := range canvas.Formats() {
		formats = append(formats, string(f))
	}
	fmt.Fprintf(w, "Output formats: %s\n", strings.Join(formats, ", "))
}

// printSummary reports the render with locale-aware number grouping
func printSummary(w io.Writer, path string, stats renderer.RenderStats) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Render completed in %v\n", stats.Elapsed.Round(time.Millisecond))
	p.Fprintf(w, "Pixels: %d (%d tiles, %d workers, %.0f pixels/s)\n",
		stats.TotalPixels, stats.Tiles, stats.Workers, stats.PixelsPerSecond())
	p.Fprintf(w, "Render saved as %s\n", path)
}

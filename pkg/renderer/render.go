package renderer

import (
	"image"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// RenderOptions configures a parallel render
type RenderOptions struct {
	TileSize   int // Edge length of each tile in pixels (0 = DefaultTileSize)
	NumWorkers int // Number of parallel workers (0 = use CPU count)

	// TileCallback, if set, is called once per finished tile from the
	// goroutine that called RenderWithOptions, in completion order.
	TileCallback func(TileCompletion)

	// Logger overrides the package logger for this render when non-nil
	Logger *slog.Logger
}

// DefaultRenderOptions returns sensible default values
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		TileSize:   DefaultTileSize,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// TileCompletion describes a finished tile
type TileCompletion struct {
	RenderID  string
	Tile      *Tile
	TileImage *image.RGBA // 8-bit copy of just this tile
	WorkerID  int

	// Progress information
	TileNumber int // Completion order (1-based)
	TotalTiles int
}

// Render renders the world with the default options
func (c *Camera) Render(w *world.World) *canvas.Canvas {
	img, _ := c.RenderWithOptions(w, DefaultRenderOptions())
	return img
}

// RenderWithOptions renders every pixel of the camera's image, spreading tiles
// across a worker pool. The world must not be modified until it returns.
func (c *Camera) RenderWithOptions(w *world.World, opts RenderOptions) (*canvas.Canvas, RenderStats) {
	start := time.Now()
	renderID := uuid.NewString()
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	log = log.With("render", renderID)

	target := canvas.New(c.hsize, c.vsize)
	tiles := NewTileGrid(c.hsize, c.vsize, opts.TileSize)

	pool := NewWorkerPool(c, w, target, len(tiles), opts.NumWorkers)
	log.Info("render started",
		"width", c.hsize,
		"height", c.vsize,
		"tiles", len(tiles),
		"workers", pool.NumWorkers(),
		"shapes", len(w.Shapes),
		"lights", len(w.Lights))

	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	// Tile callbacks are dispatched here so callers never see concurrent calls
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		tile := tiles[result.TaskID]
		log.Debug("tile completed",
			"tile", tile.ID,
			"worker", result.WorkerID,
			"pixels", result.Pixels,
			"elapsed", result.Elapsed)

		if opts.TileCallback != nil {
			opts.TileCallback(TileCompletion{
				RenderID:   renderID,
				Tile:       tile,
				TileImage:  target.Region(tile.Bounds),
				WorkerID:   result.WorkerID,
				TileNumber: i + 1,
				TotalTiles: len(tiles),
			})
		}
	}
	pool.Stop()

	stats := RenderStats{
		RenderID:         renderID,
		Width:            c.hsize,
		Height:           c.vsize,
		TotalPixels:      c.hsize * c.vsize,
		Tiles:            len(tiles),
		Workers:          pool.NumWorkers(),
		Lights:           len(w.Lights),
		Shapes:           len(w.Shapes),
		Elapsed:          time.Since(start),
		AverageLuminance: AverageLuminance(target),
	}
	log.Info("render completed",
		"elapsed", stats.Elapsed,
		"pixels_per_second", stats.PixelsPerSecond())

	return target, stats
}

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// TileUpdate represents a single tile update sent via SSE
type TileUpdate struct {
	// Pixel origin and size of the tile
	TileX      int    `json:"tileX"`
	TileY      int    `json:"tileY"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Completion order (1-based)
	TotalTiles int    `json:"totalTiles"`
	WorkerID   int    `json:"workerId"`
}

// CompleteUpdate is sent once the whole frame is rendered
type CompleteUpdate struct {
	Scene     string `json:"scene"`
	ImageData string `json:"imageData"` // Base64 encoded PNG of the full frame
	Stats     Stats  `json:"stats"`
}

// Stats represents render statistics
type Stats struct {
	RenderID         string  `json:"renderId"`
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	TotalPixels      int     `json:"totalPixels"`
	Tiles            int     `json:"tiles"`
	Workers          int     `json:"workers"`
	Shapes           int     `json:"shapes"`
	Lights           int     `json:"lights"`
	ElapsedMs        int64   `json:"elapsedMs"`
	PixelsPerSecond  float64 `json:"pixelsPerSecond"`
	AverageLuminance float64 `json:"averageLuminance"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "tile", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRender renders a scene and streams finished tiles via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Create unified SSE event channel for thread-safe writing
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(ctx, w, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Console messages are forwarded by their own goroutine and dropped
	// when the SSE queue is full
	consoleChan := make(chan ConsoleMessage, 50)
	var consoleWG sync.WaitGroup
	consoleWG.Add(1)
	go func() {
		defer consoleWG.Done()
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()
	logger := slog.New(NewConsoleHandler(consoleChan, slog.LevelInfo, s.logger.Handler()))

	update, err := s.render(ctx, req, logger, sseEventChan)

	close(consoleChan)
	consoleWG.Wait()

	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	data, err := json.Marshal(update)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Encoding result failed: %v", err))
		return
	}
	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: string(data)}:
	case <-ctx.Done():
	}
}

// render builds the requested scene and renders it, queueing a tile event
// for every finished tile
func (s *Server) render(ctx context.Context, req *RenderRequest, logger *slog.Logger, sseEventChan chan<- SSEEvent) (*CompleteUpdate, error) {
	sceneObj, err := scene.Build(req.Scene, req.sceneConfig())
	if err != nil {
		return nil, fmt.Errorf("scene setup failed: %w", err)
	}
	logger.Info("scene loaded",
		"scene", sceneObj.Name,
		"shapes", len(sceneObj.World.Shapes),
		"lights", len(sceneObj.World.Lights))

	opts := renderer.RenderOptions{
		TileSize:   req.TileSize,
		NumWorkers: req.Workers,
		Logger:     logger,
		TileCallback: func(tc renderer.TileCompletion) {
			s.handleTileUpdate(ctx, sseEventChan, tc)
		},
	}
	img, stats := sceneObj.Camera.RenderWithOptions(sceneObj.World, opts)

	imageData, err := imageToBase64PNG(img.Image())
	if err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	return &CompleteUpdate{
		Scene:     req.Scene,
		ImageData: imageData,
		Stats: Stats{
			RenderID:         stats.RenderID,
			Width:            stats.Width,
			Height:           stats.Height,
			TotalPixels:      stats.TotalPixels,
			Tiles:            stats.Tiles,
			Workers:          stats.Workers,
			Shapes:           stats.Shapes,
			Lights:           stats.Lights,
			ElapsedMs:        stats.Elapsed.Milliseconds(),
			PixelsPerSecond:  stats.PixelsPerSecond(),
			AverageLuminance: stats.AverageLuminance,
		},
	}, nil
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe).
// It drains sseEventChan until it is closed.
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan <-chan SSEEvent) {
	flusher, _ := w.(http.Flusher)
	disconnected := false

	for event := range sseEventChan {
		if disconnected {
			continue
		}

		// Check if client is still connected before writing
		select {
		case <-ctx.Done():
			disconnected = true
			continue
		default:
		}

		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			disconnected = true
			continue
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

// streamConsoleMessages forwards console messages to the SSE channel until consoleChan is closed
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			s.logger.Error("marshaling console message", "error", err)
			continue
		}

		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		default:
			// Channel full, skip message to avoid blocking
		}
	}
}

// handleTileUpdate encodes a finished tile and queues it
func (s *Server) handleTileUpdate(ctx context.Context, sseEventChan chan<- SSEEvent, tc renderer.TileCompletion) {
	// Check if client is still connected
	select {
	case <-ctx.Done():
		return
	default:
	}

	tileData, err := imageToBase64PNG(tc.TileImage)
	if err != nil {
		s.logger.Error("encoding tile image", "tile", tc.Tile.ID, "error", err)
		return
	}

	bounds := tc.Tile.Bounds
	update := TileUpdate{
		TileX:      bounds.Min.X,
		TileY:      bounds.Min.Y,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		ImageData:  tileData,
		TileNumber: tc.TileNumber,
		TotalTiles: tc.TotalTiles,
		WorkerID:   tc.WorkerID,
	}

	data, err := json.Marshal(update)
	if err != nil {
		s.logger.Error("marshaling tile update", "error", err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "tile", Data: string(data)}:
	case <-ctx.Done():
	}
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan<- SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}

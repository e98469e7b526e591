package server

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func newTestServer() *Server {
	return NewServer(0, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// readSSE splits an event stream body into events
func readSSE(t *testing.T, body string) []SSEEvent {
	t.Helper()
	var events []SSEEvent
	var current SSEEvent
	scanner := bufio.NewScanner(strings.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			current.Type = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			current.Data = strings.TrimPrefix(line, "data: ")
		case line == "":
			if current.Type != "" {
				events = append(events, current)
			}
			current = SSEEvent{}
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("Reading event stream: %v", err)
	}
	return events
}

func eventsOfType(events []SSEEvent, eventType string) []SSEEvent {
	var result []SSEEvent
	for _, e := range events {
		if e.Type == eventType {
			result = append(result, e)
		}
	}
	return result
}

func TestHandleHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", body["status"])
	}
}

func TestHandleScenes(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scenes", nil))

	var response scene.ScenesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(response.Groups) == 0 {
		t.Fatal("Expected at least one scene group")
	}

	found := false
	for _, group := range response.Groups {
		for _, s := range group.Scenes {
			if s.ID == scene.DefaultSceneID {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("Expected default scene %q in listing", scene.DefaultSceneID)
	}
}

func TestHandleSceneConfig(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
	}{
		{"default scene", "", http.StatusOK},
		{"named scene", "?scene=default-world", http.StatusOK},
		{"unknown scene", "?scene=nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scene-config"+tt.query, nil))
			if rec.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}

	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scene-config?scene=default-world", nil))
	var body struct {
		Defaults struct {
			Width       int     `json:"width"`
			Height      int     `json:"height"`
			FieldOfView float64 `json:"fieldOfView"`
		} `json:"defaults"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body.Defaults.Width != 11 || body.Defaults.Height != 11 {
		t.Errorf("Expected 11x11 defaults, got %dx%d", body.Defaults.Width, body.Defaults.Height)
	}
	if body.Defaults.FieldOfView < 89.99 || body.Defaults.FieldOfView > 90.01 {
		t.Errorf("Expected 90 degree field of view, got %f", body.Defaults.FieldOfView)
	}
}

func TestParseRenderRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		expectErr bool
		check     func(*testing.T, *RenderRequest)
	}{
		{
			name:  "defaults",
			query: "",
			check: func(t *testing.T, req *RenderRequest) {
				if req.Scene != scene.DefaultSceneID || req.Width != 0 || req.Height != 0 || req.FieldOfView != 0 {
					t.Errorf("Unexpected defaults %+v", req)
				}
			},
		},
		{
			name:  "overrides",
			query: "scene=plane&width=64&height=48&fov=60&tileSize=16&workers=2",
			check: func(t *testing.T, req *RenderRequest) {
				if req.Scene != "plane" || req.Width != 64 || req.Height != 48 || req.FieldOfView != 60 || req.TileSize != 16 || req.Workers != 2 {
					t.Errorf("Unexpected request %+v", req)
				}
			},
		},
		{name: "width not a number", query: "width=abc", expectErr: true},
		{name: "width too large", query: "width=5000", expectErr: true},
		{name: "fov out of range", query: "fov=180", expectErr: true},
		{name: "fov NaN", query: "fov=NaN", expectErr: true},
		{name: "tile too small", query: "tileSize=1", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/render?"+tt.query, nil)
			req, err := newTestServer().parseRenderRequest(r)
			if tt.expectErr {
				if err == nil {
					t.Errorf("Expected error for query %q", tt.query)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			tt.check(t, req)
		})
	}
}

func TestParseIntParam(t *testing.T) {
	values := url.Values{"n": {"12"}}
	if got, err := parseIntParam(values, "n", 5, 1, 20); err != nil || got != 12 {
		t.Errorf("Expected 12, got %d (%v)", got, err)
	}
	if got, err := parseIntParam(values, "missing", 5, 1, 20); err != nil || got != 5 {
		t.Errorf("Expected default 5, got %d (%v)", got, err)
	}
	if _, err := parseIntParam(values, "n", 5, 1, 10); err == nil {
		t.Error("Expected range error")
	}
}

func TestHandleRender_StreamsTilesAndResult(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/render?scene=default-world&width=20&height=12&tileSize=8&workers=2", nil)
	newTestServer().Handler().ServeHTTP(rec, r)

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected text/event-stream, got %q", ct)
	}

	events := readSSE(t, rec.Body.String())
	tiles := eventsOfType(events, "tile")
	if len(tiles) != 6 {
		t.Fatalf("Expected 6 tile events for a 20x12 image in 8px tiles, got %d", len(tiles))
	}
	if errs := eventsOfType(events, "error"); len(errs) != 0 {
		t.Fatalf("Unexpected error event: %s", errs[0].Data)
	}
	if len(eventsOfType(events, "console")) == 0 {
		t.Error("Expected console events")
	}

	var tile TileUpdate
	if err := json.Unmarshal([]byte(tiles[0].Data), &tile); err != nil {
		t.Fatalf("Invalid tile JSON: %v", err)
	}
	if tile.TotalTiles != 6 || tile.TileNumber != 1 {
		t.Errorf("Unexpected tile progress %d/%d", tile.TileNumber, tile.TotalTiles)
	}
	tileImg := decodePNG(t, tile.ImageData)
	if tileImg.Bounds().Dx() != tile.Width || tileImg.Bounds().Dy() != tile.Height {
		t.Errorf("Tile image %v does not match %dx%d", tileImg.Bounds(), tile.Width, tile.Height)
	}

	last := events[len(events)-1]
	if last.Type != "complete" {
		t.Fatalf("Expected final event 'complete', got %q", last.Type)
	}
	var complete CompleteUpdate
	if err := json.Unmarshal([]byte(last.Data), &complete); err != nil {
		t.Fatalf("Invalid complete JSON: %v", err)
	}
	if complete.Stats.Width != 20 || complete.Stats.Height != 12 || complete.Stats.Tiles != 6 || complete.Stats.Workers != 2 {
		t.Errorf("Unexpected stats %+v", complete.Stats)
	}
	if complete.Stats.RenderID == "" {
		t.Error("Expected a render ID")
	}
	img := decodePNG(t, complete.ImageData)
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 12 {
		t.Errorf("Expected 20x12 frame, got %v", img.Bounds())
	}
}

func TestHandleRender_Errors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contains string
	}{
		{"invalid parameter", "width=0", "Invalid request"},
		{"unknown scene", "scene=nope", "unknown scene"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/render?"+tt.query, nil))

			events := readSSE(t, rec.Body.String())
			errs := eventsOfType(events, "error")
			if len(errs) != 1 {
				t.Fatalf("Expected one error event, got %d", len(errs))
			}
			if !strings.Contains(errs[0].Data, tt.contains) {
				t.Errorf("Expected error containing %q, got %q", tt.contains, errs[0].Data)
			}
			if len(eventsOfType(events, "complete")) != 0 {
				t.Error("Failed render should not complete")
			}
		})
	}
}

func decodePNG(t *testing.T, data string) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		t.Fatalf("Invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Invalid PNG: %v", err)
	}
	return img
}

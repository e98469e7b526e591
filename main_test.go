package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		opts        options
		expectError bool
		width       int
		height      int
	}{
		{"default size", options{sceneID: "spheres"}, false, 100, 50},
		{"size override", options{sceneID: "plane", width: 32, height: 24}, false, 32, 24},
		{"fov override", options{sceneID: "patterns", fov: 90}, false, 400, 300},
		{"unknown scene", options{sceneID: "nonexistent"}, true, 0, 0},
		{"empty scene name", options{sceneID: ""}, true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.opts)
			if tt.expectError {
				if !errors.Is(err, scene.ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene, got %v", err)
				}
				if s != nil {
					t.Errorf("Expected nil scene, got %v", s.Name)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Camera.HSize() != tt.width || s.Camera.VSize() != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, s.Camera.HSize(), s.Camera.VSize())
			}
		})
	}
}

func TestCreateScene_FieldOfViewInDegrees(t *testing.T) {
	s, err := createScene(options{sceneID: "default-world", fov: 90})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := s.Camera.FieldOfView(); got < 1.5707 || got > 1.5709 {
		t.Errorf("Expected pi/2 radians, got %f", got)
	}
}

func TestRun_WritesImage(t *testing.T) {
	for _, ext := range []string{"png", "ppm", "bmp", "tiff"} {
		t.Run(ext, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "render."+ext)
			var stdout, stderr bytes.Buffer

			err := run([]string{"-scene", "default-world", "-out", out, "-workers", "2", "-caption"}, &stdout, &stderr)
			if err != nil {
				t.Fatalf("run failed: %v\n%s", err, stderr.String())
			}
			info, err := os.Stat(out)
			if err != nil || info.Size() == 0 {
				t.Fatalf("Expected output file, got %v", err)
			}
			if !strings.Contains(stdout.String(), "Render saved as") {
				t.Errorf("Missing summary in %q", stdout.String())
			}
			if !strings.Contains(stderr.String(), "render completed") {
				t.Errorf("Missing render log in %q", stderr.String())
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-scene", "plane", "-out", filepath.Join(t.TempDir(), "x.gif")}, &stdout, &stderr)
	if !errors.Is(err, canvas.ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}

	err = run([]string{"-scene", "missing"}, &stdout, &stderr)
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}

	if err := run([]string{"-bogus"}, &stdout, &stderr); err == nil {
		t.Error("Expected an error for an unknown flag")
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-help"}, &stdout, &stderr); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{"Usage:", "-scene", "spheres", "default-world", "tiff"} {
		if !strings.Contains(out, want) {
			t.Errorf("Help output missing %q", want)
		}
	}
}

package media

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a width x height PNG and returns its path.
func writeTestPNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image %s: %v", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("Failed to encode test image %s: %v", path, err)
	}
	return path
}

func TestGetImageDimensions(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "shot.png", 320, 240)

	dims, err := GetImageDimensions(path)
	if err != nil {
		t.Fatalf("GetImageDimensions() error: %v", err)
	}
	if dims.Width != 320 || dims.Height != 240 {
		t.Errorf("dimensions = %dx%d, want 320x240", dims.Width, dims.Height)
	}
}

func TestGetImageDimensionsMissingFile(t *testing.T) {
	if _, err := GetImageDimensions(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetImageDimensionsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(path, []byte("not an image at all"), 0o644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}
	if _, err := GetImageDimensions(path); err == nil {
		t.Error("expected error for corrupt image data")
	}
}

func TestAspectRatio(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		width  int
		height int
		want   float64
	}{
		{"wide.png", 400, 200, 2.0},
		{"tall.png", 100, 400, 0.25},
		{"square.png", 256, 256, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestPNG(t, dir, tt.name, tt.width, tt.height)
			ratio, ok := AspectRatio(path)
			if !ok {
				t.Fatal("AspectRatio() reported failure for a valid image")
			}
			if ratio != tt.want {
				t.Errorf("AspectRatio() = %v, want %v", ratio, tt.want)
			}
		})
	}
}

func TestAspectRatioFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.jpg")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	ratio, ok := AspectRatio(path)
	if ok {
		t.Error("AspectRatio() reported success for unreadable dimensions")
	}
	if ratio != 1.0 {
		t.Errorf("AspectRatio() fallback = %v, want 1.0", ratio)
	}
}

func TestReadCaptureTimeNoExif(t *testing.T) {
	// PNGs written by image/png carry no EXIF block, so the probe must
	// fail cleanly rather than invent a timestamp.
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "shot.png", 32, 32)

	if _, err := ReadCaptureTime(path); err == nil {
		t.Error("expected error reading capture time from EXIF-less image")
	}
}

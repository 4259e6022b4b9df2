package testutil

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

// CreateTestMedia writes a dummy media file of the given size. It's
// useful for testing file serving, retention, and size accounting.
func CreateTestMedia(t *testing.T, dir, name string, size int) string {
	t.Helper()
	filePath := filepath.Join(dir, name)
	if err := os.WriteFile(filePath, make([]byte, size), 0o644); err != nil {
		t.Fatalf("Failed to create test media file: %v", err)
	}
	return filePath
}

// CreateTestImage writes a small decodable JPEG, for code paths that
// actually read the image back (thumbnails, previews).
func CreateTestImage(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	filePath := filepath.Join(dir, name)
	file, err := os.Create(filePath)
	if err != nil {
		t.Fatalf("Failed to create test image file: %v", err)
	}
	defer file.Close()

	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: 85}); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return filePath
}

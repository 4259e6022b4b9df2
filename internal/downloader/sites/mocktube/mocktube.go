// A mock strategy for development and testing purposes. It simulates
// platform downloads without any network access: the URL path selects
// a scripted outcome, from clean completion with a real output file to
// failures and slow transfers that tests can cancel mid-flight.
package mocktube

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/saveloop/saveloop/internal/extract"
	"github.com/saveloop/saveloop/internal/models"
)

type MocktubeStrategy struct {
	tag string
}

func New() *MocktubeStrategy {
	return &MocktubeStrategy{tag: "mocktube"}
}

// ForTag returns the scripted strategy registered under another platform's
// tag. Tests that drive the full submit path need the identified platform
// to resolve to a strategy, and the real ones are never registered there.
func ForTag(tag string) *MocktubeStrategy {
	return &MocktubeStrategy{tag: tag}
}

func (s *MocktubeStrategy) Info() models.PlatformInfo {
	return models.PlatformInfo{
		Tag:  s.tag,
		Name: "Mocktube",
	}
}

// Download runs the outcome scripted in the URL path:
//
//	path contains "fail"  -> immediate extraction error
//	path contains "slow"  -> ~2s transfer, cancellable between steps
//	anything else         -> quick success with an output file in req.Dir
//
// Image requests produce a decodable JPEG so thumbnail generation can
// run against the result.
func (s *MocktubeStrategy) Download(ctx context.Context, req models.DownloadRequest) (string, error) {
	lower := strings.ToLower(req.URL)

	if strings.Contains(lower, "fail") {
		return "", errors.New("mocktube: video unavailable")
	}

	steps, pause := 4, 5*time.Millisecond
	if strings.Contains(lower, "slow") {
		steps, pause = 100, 20*time.Millisecond
	}

	if req.Hooks.OnStatus != nil {
		req.Hooks.OnStatus("Starting download...")
	}
	for i := 1; i <= steps; i++ {
		if req.Hooks.ShouldCancel != nil && req.Hooks.ShouldCancel() {
			return "", extract.ErrCancelled
		}
		if ctx.Err() != nil {
			return "", extract.ErrCancelled
		}
		if req.Hooks.OnProgress != nil {
			req.Hooks.OnProgress(i * 100 / steps)
		}
		time.Sleep(pause)
	}

	path, err := s.writeOutput(req)
	if err != nil {
		return "", err
	}
	if req.Hooks.OnStatus != nil {
		req.Hooks.OnStatus("Download finished, processing file...")
	}
	return path, nil
}

func (s *MocktubeStrategy) writeOutput(req models.DownloadRequest) (string, error) {
	stem := strings.Trim(filepath.Base(strings.TrimSuffix(req.URL, "/")), ".")
	if i := strings.IndexByte(stem, '?'); i >= 0 {
		stem = stem[:i]
	}
	if stem == "" {
		stem = "mocktube"
	}

	if req.Kind == models.ContentImage {
		path := filepath.Join(req.Dir, fmt.Sprintf("mocktube_%s.jpg", stem))
		if err := writeJPEG(path); err != nil {
			return "", err
		}
		return path, nil
	}

	path := filepath.Join(req.Dir, fmt.Sprintf("mocktube_%s.mp4", stem))
	if err := os.WriteFile(path, make([]byte, 4096), 0644); err != nil {
		return "", err
	}
	return path, nil
}

func writeJPEG(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	for y := 0; y < 480; y++ {
		for x := 0; x < 640; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: uint8((x + y) % 256), A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 85})
}

package media

import (
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"os"

	"github.com/nfnt/resize"
)

const thumbnailWidth uint = 320

// Thumbnail renders a JPEG preview of an image file at a fixed 320px
// width, keeping the aspect ratio. Only formats with a registered
// decoder (JPEG, PNG, GIF) are supported; anything else returns an
// error and the caller leaves the download without a thumbnail.
func Thumbnail(srcPath, destPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	resized := resize.Resize(thumbnailWidth, 0, img, resize.Lanczos3)

	dest, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create thumbnail file: %w", err)
	}
	defer dest.Close()

	// Quality 85 keeps previews crisp without rivaling the original's size.
	if err := jpeg.Encode(dest, resized, &jpeg.Options{Quality: 85}); err != nil {
		return fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return nil
}

package images

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"

	// webp sources; jpeg, png, gif, bmp and tiff come with imaging.
	_ "golang.org/x/image/webp"
)

// Thumbnail bounding box. Images are scaled down to fit, never up.
const (
	ThumbWidth  = 220
	ThumbHeight = 160
)

func decode(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(true))
}

func fitThumbnail(img image.Image) image.Image {
	return imaging.Fit(img, ThumbWidth, ThumbHeight, imaging.Lanczos)
}

// writeThumbnail encodes img to path in the format implied by its
// extension, falling back to PNG for formats imaging cannot write.
func writeThumbnail(img image.Image, path string) (err error) {
	format, ferr := imaging.FormatFromFilename(path)
	if ferr != nil {
		format = imaging.PNG
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err = imaging.Encode(f, fitThumbnail(img), format, imaging.JPEGQuality(90)); err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	return nil
}

package media

import (
	"image"
	"os"
	"time"

	"gallery-gen/internal/logging"

	// Image format decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // WebP format support
)

// ImageDimensions holds image width and height
type ImageDimensions struct {
	Width  int
	Height int
}

// GetImageDimensions returns image dimensions without fully decoding the image
func GetImageDimensions(path string) (*ImageDimensions, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.Warn("failed to close image file %s: %v", path, err)
		}
	}()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return nil, err
	}

	return &ImageDimensions{
		Width:  config.Width,
		Height: config.Height,
	}, nil
}

// AspectRatio returns width/height for an image file, or 1.0 when the
// dimensions cannot be read. The bool result reports whether the read
// succeeded.
func AspectRatio(path string) (float64, bool) {
	dims, err := GetImageDimensions(path)
	if err != nil || dims.Width <= 0 || dims.Height <= 0 {
		return 1.0, false
	}
	return float64(dims.Width) / float64(dims.Height), true
}

// ReadCaptureTime extracts the EXIF capture timestamp from an image file.
// Most screenshots carry no EXIF block, so callers should treat an error
// as an absent timestamp rather than a defect.
func ReadCaptureTime(path string) (time.Time, error) {
	file, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.Warn("failed to close image file %s: %v", path, err)
		}
	}()

	meta, err := exif.Decode(file)
	if err != nil {
		return time.Time{}, err
	}
	return meta.DateTime()
}

package media

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gallery-gen/internal/logging"

	"github.com/disintegration/imaging"
)

// ThumbnailExt is the extension of generated thumbnail files. Thumbnails
// are encoded as JPEG regardless of the source format.
const ThumbnailExt = ".jpg"

// Thumbnailer writes reduced-size copies of source images into a cache
// directory. It holds no per-image state; the cache key is the file name
// on disk, so a thumbnail that already exists is never regenerated.
type Thumbnailer struct {
	dir     string
	width   int
	height  int
	quality int
}

// NewThumbnailer creates a Thumbnailer writing into dir. The directory is
// created if absent; MkdirAll makes the call safe to repeat and to race.
func NewThumbnailer(dir string, width, height, quality int) (*Thumbnailer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create thumbnail directory: %w", err)
	}
	logging.Debug("Thumbnailer: cache dir %s, box %dx%d, quality %d", dir, width, height, quality)
	return &Thumbnailer{
		dir:     dir,
		width:   width,
		height:  height,
		quality: quality,
	}, nil
}

// ThumbName returns the thumbnail file name for a source file name: the
// base name with its extension replaced by ThumbnailExt.
func ThumbName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ThumbnailExt
}

// Ensure writes a thumbnail for sourcePath unless one already exists.
// It returns the thumbnail base name and whether a new file was written.
//
// Invalidation is existence-based only: a source edited in place keeps
// its stale thumbnail until the cached file is removed by hand.
func (t *Thumbnailer) Ensure(sourcePath string) (string, bool, error) {
	thumbName := ThumbName(sourcePath)
	destPath := filepath.Join(t.dir, thumbName)

	if _, err := os.Stat(destPath); err == nil {
		logging.Debug("Thumbnail cache hit: %s", thumbName)
		return thumbName, false, nil
	}

	img, err := imaging.Open(sourcePath, imaging.AutoOrientation(true))
	if err != nil {
		return "", false, fmt.Errorf("failed to decode %s: %w", filepath.Base(sourcePath), err)
	}

	// Fit constrains to the bounding box preserving aspect ratio and never
	// upscales past the source size.
	thumb := imaging.Fit(img, t.width, t.height, imaging.Lanczos)

	// JPEG has no alpha channel. Composite onto an opaque white background
	// so transparent and palette sources flatten predictably instead of
	// keeping whatever RGB values sat under the transparency.
	bounds := thumb.Bounds()
	flat := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	flat = imaging.Overlay(flat, thumb, bounds.Min, 1.0)

	if err := imaging.Save(flat, destPath, imaging.JPEGQuality(t.quality)); err != nil {
		// Don't leave a partial file behind to poison the cache.
		if removeErr := os.Remove(destPath); removeErr != nil && !os.IsNotExist(removeErr) {
			logging.Warn("failed to remove partial thumbnail %s: %v", destPath, removeErr)
		}
		return "", false, fmt.Errorf("failed to encode thumbnail for %s: %w", filepath.Base(sourcePath), err)
	}

	logging.Debug("Thumbnail generated: %s", thumbName)
	return thumbName, true, nil
}

// Path returns the on-disk location for a thumbnail base name.
func (t *Thumbnailer) Path(thumbName string) string {
	return filepath.Join(t.dir, thumbName)
}

package gallery

import (
	"crypto/md5" //nolint:gosec // MD5 used for short display ids, not security
	"encoding/hex"
	"path/filepath"
	"strings"
)

// ImageRecord holds the derived metadata for one source image.
type ImageRecord struct {
	Filename         string   `json:"filename"`
	PrimaryTag       string   `json:"primaryTag"`
	DisplayTimestamp string   `json:"displayTimestamp"`
	AutoTags         []string `json:"autoTags"`
	AspectRatio      float64  `json:"aspectRatio"`
	ShortID          string   `json:"shortId"`
	SourcePath       string   `json:"sourcePath"`

	// ThumbnailPath is empty when thumbnail generation failed for this
	// image; consumers must fall back to SourcePath rather than emit a
	// dangling reference.
	ThumbnailPath string `json:"thumbnailPath,omitempty"`

	// CapturedAt is the EXIF capture time in RFC3339 when the source
	// carries one. Independent of DisplayTimestamp, which is derived from
	// the filename alone.
	CapturedAt string `json:"capturedAt,omitempty"`
}

// Metadata is the aggregate output of one assembly run.
type Metadata struct {
	Images []ImageRecord `json:"images"`

	// Tags is the sorted union of every record's AutoTags.
	Tags []string `json:"tags"`

	TotalImages int `json:"totalImages"`
}

// ShortID derives a short display identifier from a filename. It is a
// truncated hash: deterministic and collision-tolerant, not unique.
func ShortID(filename string) string {
	sum := md5.Sum([]byte(filename)) //nolint:gosec // display id, not security
	return hex.EncodeToString(sum[:])[:8]
}

// imageExtensions maps recognized source extensions (lower case).
var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// IsImageFile reports whether a file name has a recognized image
// extension. The check is case-insensitive.
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gallery-gen/internal/logging"

	"github.com/joho/godotenv"
)

// Default tunables, matching the values the gallery has shipped with.
const (
	DefaultPageSize         = 20
	DefaultThumbnailWidth   = 400
	DefaultThumbnailHeight  = 300
	DefaultThumbnailQuality = 85
	DefaultGalleryTitle     = "Minecraft Server Gallery"
)

// DefaultTagVocabulary is the fixed list of topical keywords matched
// against filename segments during auto-tagging.
var DefaultTagVocabulary = []string{
	"builds",
	"redstone",
	"landscape",
	"event",
	"pvp",
	"farming",
	"mining",
	"nether",
	"end",
	"village",
	"castle",
	"modern",
	"medieval",
	"spawn",
	"town",
	"port",
	"bridge",
	"tower",
	"underground",
	"sky",
}

// Config holds all generator configuration.
type Config struct {
	// SourceDir is the directory scanned for images.
	SourceDir string

	// OutputDir is where HTML pages and the metadata snapshot are written.
	OutputDir string

	// ThumbnailDir is where thumbnail files are written.
	// Derived from OutputDir when empty.
	ThumbnailDir string

	// RemoteBaseURL, when set, makes full-size image references point to
	// <RemoteBaseURL>/<filename> instead of a local relative path.
	RemoteBaseURL string

	// Title is the gallery page title.
	Title string

	// PageSize is the number of images per page.
	PageSize int

	// ThumbnailWidth and ThumbnailHeight bound the thumbnail box.
	ThumbnailWidth  int
	ThumbnailHeight int

	// ThumbnailQuality is the JPEG quality factor for thumbnails (1-100).
	ThumbnailQuality int

	// TagVocabulary is the list of recognizable topical keywords.
	TagVocabulary []string
}

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		SourceDir:        "images",
		OutputDir:        ".",
		Title:            DefaultGalleryTitle,
		PageSize:         DefaultPageSize,
		ThumbnailWidth:   DefaultThumbnailWidth,
		ThumbnailHeight:  DefaultThumbnailHeight,
		ThumbnailQuality: DefaultThumbnailQuality,
		TagVocabulary:    DefaultTagVocabulary,
	}
}

// Load returns configuration from defaults overlaid with environment
// variables. A .env file in the working directory is honored when present.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		logging.Debug("Loaded configuration from .env file")
	}

	cfg := Default()
	cfg.SourceDir = getEnv("GALLERY_SOURCE_DIR", cfg.SourceDir)
	cfg.OutputDir = getEnv("GALLERY_OUTPUT_DIR", cfg.OutputDir)
	cfg.ThumbnailDir = getEnv("GALLERY_THUMBNAIL_DIR", cfg.ThumbnailDir)
	cfg.RemoteBaseURL = getEnv("GALLERY_REMOTE_BASE_URL", cfg.RemoteBaseURL)
	cfg.Title = getEnv("GALLERY_TITLE", cfg.Title)
	cfg.PageSize = getEnvInt("GALLERY_PAGE_SIZE", cfg.PageSize)
	cfg.ThumbnailWidth = getEnvInt("GALLERY_THUMBNAIL_WIDTH", cfg.ThumbnailWidth)
	cfg.ThumbnailHeight = getEnvInt("GALLERY_THUMBNAIL_HEIGHT", cfg.ThumbnailHeight)
	cfg.ThumbnailQuality = getEnvInt("GALLERY_THUMBNAIL_QUALITY", cfg.ThumbnailQuality)
	if vocab := getEnv("GALLERY_TAGS", ""); vocab != "" {
		cfg.TagVocabulary = splitTags(vocab)
	}
	return cfg
}

// Finalize resolves derived fields and validates the configuration.
func (c *Config) Finalize() error {
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be at least 1, got %d", c.PageSize)
	}
	if c.ThumbnailWidth < 1 || c.ThumbnailHeight < 1 {
		return fmt.Errorf("thumbnail box must be positive, got %dx%d", c.ThumbnailWidth, c.ThumbnailHeight)
	}
	if c.ThumbnailQuality < 1 || c.ThumbnailQuality > 100 {
		return fmt.Errorf("thumbnail quality must be in 1-100, got %d", c.ThumbnailQuality)
	}
	if c.ThumbnailDir == "" {
		c.ThumbnailDir = filepath.Join(c.OutputDir, "thumbnails")
	}
	c.RemoteBaseURL = strings.TrimRight(c.RemoteBaseURL, "/")
	return nil
}

// SourceRef returns the full-size reference for an image filename, either
// a remote URL or a path relative to the output directory.
func (c *Config) SourceRef(filename string) string {
	if c.RemoteBaseURL != "" {
		return c.RemoteBaseURL + "/" + filename
	}
	return relRef(c.OutputDir, filepath.Join(c.SourceDir, filename))
}

// ThumbnailRef returns the page-relative reference for a thumbnail file.
func (c *Config) ThumbnailRef(thumbName string) string {
	return relRef(c.OutputDir, filepath.Join(c.ThumbnailDir, thumbName))
}

// relRef makes target relative to base for use as a link; falls back to
// the target itself when no relative path exists (different volumes).
func relRef(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}

func splitTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logging.Warn("Invalid integer value for %s: %q, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

package gallery

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	// FallbackPrimaryTag is the primary tag for filenames without the
	// tag_date_time underscore shape.
	FallbackPrimaryTag = "screenshot"

	// UnknownTimestamp is the display timestamp for filenames that carry
	// no parseable date and time segments.
	UnknownTimestamp = "Unknown"
)

// ParseResult holds the metadata derived from a filename.
type ParseResult struct {
	PrimaryTag       string
	DisplayTimestamp string
	AutoTags         []string
}

// Parse derives a primary tag, display timestamp, and auto-detected tags
// from a filename. It is total: every input produces a result, with
// fallback values for names that don't follow the
// <tag>_<date>_<time>[...] convention.
//
// The expected shape is e.g. "castle_2024-01-15_09-30-00.png": the first
// underscore segment is the category, the second the date, the third the
// time with hyphens standing in for colons.
func Parse(filename string, vocabulary []string) ParseResult {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.Split(stem, "_")

	result := ParseResult{
		PrimaryTag:       FallbackPrimaryTag,
		DisplayTimestamp: UnknownTimestamp,
		AutoTags:         detectTags(parts, vocabulary),
	}

	if len(parts) >= 3 {
		result.PrimaryTag = parts[0]
		result.DisplayTimestamp = parts[1] + " " + strings.ReplaceAll(parts[2], "-", ":")
	}

	return result
}

// detectTags matches each lower-cased filename segment against the
// vocabulary by substring. Detection is independent of the segment count,
// so even single-word filenames can pick up tags.
func detectTags(segments []string, vocabulary []string) []string {
	seen := make(map[string]bool)
	for _, segment := range segments {
		segment = strings.ToLower(segment)
		for _, tag := range vocabulary {
			if strings.Contains(segment, tag) {
				seen[tag] = true
			}
		}
	}

	if len(seen) == 0 {
		return nil
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

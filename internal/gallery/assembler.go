package gallery

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"gallery-gen/internal/config"
	"gallery-gen/internal/logging"
	"gallery-gen/internal/media"
	"gallery-gen/internal/workers"
)

var (
	// ErrSourceDirMissing indicates the configured source directory does
	// not exist. Distinguished from ErrNoImages so operators can tell a
	// wrong path from an empty one.
	ErrSourceDirMissing = errors.New("source directory does not exist")

	// ErrNoImages indicates the source directory contains no files with a
	// recognized image extension.
	ErrNoImages = errors.New("no images found in source directory")
)

// Thumbnailer is the image-processing capability the assembler depends
// on. Ensure returns the thumbnail base name and whether a new file was
// written.
type Thumbnailer interface {
	Ensure(sourcePath string) (string, bool, error)
}

// Stats counts the per-image outcomes of one assembly run.
type Stats struct {
	ThumbnailsGenerated int
	ThumbnailFailures   int
	DimensionFailures   int
}

// Assembler builds the gallery metadata for one source directory. It
// owns record construction and tag aggregation for the duration of a
// run; the Thumbnailer owns only the side-effecting thumbnail writes.
type Assembler struct {
	cfg        config.Config
	thumbnails Thumbnailer
	numWorkers int
}

// NewAssembler creates an Assembler. workerCount 0 sizes the pool from
// the available CPUs.
func NewAssembler(cfg config.Config, thumbnails Thumbnailer, workerCount int) *Assembler {
	if workerCount <= 0 {
		workerCount = workers.ForCPU(0)
	}
	return &Assembler{
		cfg:        cfg,
		thumbnails: thumbnails,
		numWorkers: workerCount,
	}
}

// Assemble scans the source directory and builds one ImageRecord per
// recognized image. Per-image failures are contained and counted; only
// the directory-missing and zero-image conditions abort the run.
func (a *Assembler) Assemble() (*Metadata, Stats, error) {
	var stats Stats

	names, err := a.listImages()
	if err != nil {
		return nil, stats, err
	}

	logging.Info("Assembling metadata for %d images with %d workers", len(names), a.numWorkers)
	start := time.Now()

	var (
		thumbGenerated atomic.Int64
		thumbFailed    atomic.Int64
		dimFailed      atomic.Int64
	)

	jobs := make(chan string)
	results := make(chan ImageRecord, len(names))

	var wg sync.WaitGroup
	for i := 0; i < a.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				record, outcome := a.buildRecord(name)
				switch {
				case outcome.thumbGenerated:
					thumbGenerated.Add(1)
				case outcome.thumbFailed:
					thumbFailed.Add(1)
				}
				if outcome.dimFailed {
					dimFailed.Add(1)
				}
				results <- record
			}
		}()
	}

	for _, name := range names {
		jobs <- name
	}
	close(jobs)
	wg.Wait()
	close(results)

	records := make([]ImageRecord, 0, len(names))
	for record := range results {
		records = append(records, record)
	}

	// Workers finish in arbitrary order; the output contract is
	// lexicographic filename order.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Filename < records[j].Filename
	})

	meta := &Metadata{
		Images:      records,
		Tags:        tagUniverse(records),
		TotalImages: len(records),
	}

	stats.ThumbnailsGenerated = int(thumbGenerated.Load())
	stats.ThumbnailFailures = int(thumbFailed.Load())
	stats.DimensionFailures = int(dimFailed.Load())

	logging.Info("Assembly complete: %d records, %d tags in %v (thumbnails: %d new, %d failed)",
		meta.TotalImages, len(meta.Tags), time.Since(start),
		stats.ThumbnailsGenerated, stats.ThumbnailFailures)

	return meta, stats, nil
}

// recordOutcome reports which recoverable failures hit one image.
type recordOutcome struct {
	thumbGenerated bool
	thumbFailed    bool
	dimFailed      bool
}

// buildRecord derives every field for one image. It never fails: each
// recoverable error leaves a fallback value in the record.
func (a *Assembler) buildRecord(name string) (ImageRecord, recordOutcome) {
	var outcome recordOutcome

	sourcePath := filepath.Join(a.cfg.SourceDir, name)
	parsed := Parse(name, a.cfg.TagVocabulary)

	record := ImageRecord{
		Filename:         name,
		PrimaryTag:       parsed.PrimaryTag,
		DisplayTimestamp: parsed.DisplayTimestamp,
		AutoTags:         parsed.AutoTags,
		ShortID:          ShortID(name),
		SourcePath:       a.cfg.SourceRef(name),
	}

	ratio, ok := media.AspectRatio(sourcePath)
	record.AspectRatio = ratio
	if !ok {
		outcome.dimFailed = true
		logging.Warn("Could not read dimensions for %s, assuming square", name)
	}

	thumbName, generated, err := a.thumbnails.Ensure(sourcePath)
	if err != nil {
		// Recoverable: the record keeps its other fields, but must not
		// point at a thumbnail that does not exist on disk.
		outcome.thumbFailed = true
		logging.Warn("Thumbnail generation failed for %s: %v", name, err)
	} else {
		record.ThumbnailPath = a.cfg.ThumbnailRef(thumbName)
		outcome.thumbGenerated = generated
	}

	if capturedAt, err := media.ReadCaptureTime(sourcePath); err == nil {
		record.CapturedAt = capturedAt.UTC().Format(time.RFC3339)
	} else {
		logging.Debug("No EXIF capture time for %s: %v", name, err)
	}

	return record, outcome
}

// listImages returns the sorted recognized image names in the source
// directory.
func (a *Assembler) listImages() ([]string, error) {
	info, err := os.Stat(a.cfg.SourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceDirMissing, a.cfg.SourceDir)
		}
		return nil, fmt.Errorf("failed to stat source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceDirMissing, a.cfg.SourceDir)
	}

	entries, err := os.ReadDir(a.cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImageFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoImages, a.cfg.SourceDir)
	}

	sort.Strings(names)
	return names, nil
}

// tagUniverse returns the sorted union of every record's auto tags.
func tagUniverse(records []ImageRecord) []string {
	seen := make(map[string]bool)
	for _, record := range records {
		for _, tag := range record.AutoTags {
			seen[tag] = true
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// WriteSnapshot serializes the metadata to path as indented JSON. Tags
// and records are already sorted, so identical inputs produce
// byte-identical snapshots.
func (m *Metadata) WriteSnapshot(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata snapshot: %w", err)
	}
	return nil
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gallery-gen/internal/config"
	"gallery-gen/internal/gallery"
	"gallery-gen/internal/logging"
	"gallery-gen/internal/media"
	"gallery-gen/internal/memory"
	"gallery-gen/internal/render"
)

// MetadataFileName is the JSON snapshot written next to the pages.
const MetadataFileName = "gallery.json"

var (
	buildSourceDir   string
	buildOutputDir   string
	buildThumbDir    string
	buildRemoteBase  string
	buildTitle       string
	buildPageSize    int
	buildThumbWidth  int
	buildThumbHeight int
	buildQuality     int
	buildWorkers     int
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the gallery pages, thumbnails, and metadata snapshot",
	Long: `Scan the source directory for images and build the full gallery.

The build will:
1. Parse each filename for its category tag, timestamp, and topical tags
2. Generate missing thumbnails (existing ones are never regenerated)
3. Write one HTML page per group of images with navigation and tag filters
4. Write a gallery.json metadata snapshot for downstream tooling

Configuration comes from defaults, then environment variables (a .env
file is honored), then these flags.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildSourceDir, "source", "s", "", "Source directory of images")
	buildCmd.Flags().StringVarP(&buildOutputDir, "output", "o", "", "Output directory for pages and metadata")
	buildCmd.Flags().StringVar(&buildThumbDir, "thumbnail-dir", "", "Thumbnail directory (default: <output>/thumbnails)")
	buildCmd.Flags().StringVar(&buildRemoteBase, "remote-base-url", "", "Base URL for full-size image references")
	buildCmd.Flags().StringVar(&buildTitle, "title", "", "Gallery title")
	buildCmd.Flags().IntVar(&buildPageSize, "page-size", 0, "Images per page")
	buildCmd.Flags().IntVar(&buildThumbWidth, "thumbnail-width", 0, "Maximum thumbnail width")
	buildCmd.Flags().IntVar(&buildThumbHeight, "thumbnail-height", 0, "Maximum thumbnail height")
	buildCmd.Flags().IntVar(&buildQuality, "quality", 0, "Thumbnail JPEG quality (1-100)")
	buildCmd.Flags().IntVar(&buildWorkers, "workers", 0, "Number of parallel workers (0 = one per CPU)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	memory.ConfigureFromEnv()

	cfg := config.Load()
	applyBuildFlags(&cfg)
	if err := cfg.Finalize(); err != nil {
		return err
	}

	logging.Info("Building gallery: source=%s output=%s pageSize=%d", cfg.SourceDir, cfg.OutputDir, cfg.PageSize)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	thumbs, err := media.NewThumbnailer(cfg.ThumbnailDir, cfg.ThumbnailWidth, cfg.ThumbnailHeight, cfg.ThumbnailQuality)
	if err != nil {
		return err
	}

	asm := gallery.NewAssembler(cfg, thumbs, buildWorkers)
	meta, stats, err := asm.Assemble()
	if err != nil {
		if errors.Is(err, gallery.ErrSourceDirMissing) || errors.Is(err, gallery.ErrNoImages) {
			return err
		}
		return fmt.Errorf("assembly failed: %w", err)
	}

	pages, err := gallery.Paginate(meta.Images, cfg.PageSize)
	if err != nil {
		return err
	}

	renderer, err := render.New(cfg.Title)
	if err != nil {
		return err
	}
	if err := renderer.WritePages(cfg.OutputDir, pages, meta.Tags, meta.TotalImages); err != nil {
		return err
	}

	if err := meta.WriteSnapshot(filepath.Join(cfg.OutputDir, MetadataFileName)); err != nil {
		return err
	}

	fmt.Printf("Generated %d page(s) for %d image(s)\n", len(pages), meta.TotalImages)
	fmt.Printf("Thumbnails: %d new, %d cached, %d failed\n",
		stats.ThumbnailsGenerated,
		meta.TotalImages-stats.ThumbnailsGenerated-stats.ThumbnailFailures,
		stats.ThumbnailFailures)
	if stats.ThumbnailFailures > 0 || stats.DimensionFailures > 0 {
		fmt.Printf("Recoverable failures: %d thumbnail, %d dimension read (see log)\n",
			stats.ThumbnailFailures, stats.DimensionFailures)
	}

	return nil
}

// applyBuildFlags overlays explicitly set flags onto the configuration.
func applyBuildFlags(cfg *config.Config) {
	if buildSourceDir != "" {
		cfg.SourceDir = buildSourceDir
	}
	if buildOutputDir != "" {
		cfg.OutputDir = buildOutputDir
	}
	if buildThumbDir != "" {
		cfg.ThumbnailDir = buildThumbDir
	}
	if buildRemoteBase != "" {
		cfg.RemoteBaseURL = buildRemoteBase
	}
	if buildTitle != "" {
		cfg.Title = buildTitle
	}
	if buildPageSize > 0 {
		cfg.PageSize = buildPageSize
	}
	if buildThumbWidth > 0 {
		cfg.ThumbnailWidth = buildThumbWidth
	}
	if buildThumbHeight > 0 {
		cfg.ThumbnailHeight = buildThumbHeight
	}
	if buildQuality > 0 {
		cfg.ThumbnailQuality = buildQuality
	}
}

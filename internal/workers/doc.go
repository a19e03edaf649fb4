// Package workers calculates worker pool sizes for parallel image
// processing.
//
// Pool sizes are derived from GOMAXPROCS so container CPU limits are
// respected, and can be overridden with the GALLERY_WORKERS environment
// variable. Thumbnail generation is mostly CPU-bound (decode, resize,
// encode), so the pipeline uses ForCPU; directory scanning and file
// copying would use ForIO.
package workers

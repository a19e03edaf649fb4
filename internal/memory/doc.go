// Package memory configures the Go runtime memory limit from container
// memory limits.
//
// Decoding large screenshots is the dominant memory cost of a gallery
// build, so when the generator runs in a container with a memory limit it
// sets GOMEMLIMIT to a fraction of that limit, keeping headroom for
// decode buffers outside the Go heap accounting.
package memory

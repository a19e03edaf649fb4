// Package media handles image decoding, dimension probing, and thumbnail
// generation for the gallery pipeline.
package media

// Package gallery implements the metadata assembly pipeline: filename
// parsing, per-image record construction, tag aggregation, and
// pagination. It produces the ordered record set and tag universe the
// page renderer consumes.
package gallery

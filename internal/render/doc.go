// Package render turns assembled gallery pages into static HTML
// documents. It consumes the typed records, page topology, and tag
// universe produced by the gallery package; all markup goes through
// html/template so filenames with markup-significant characters are
// escaped correctly.
package render

package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"gallery-gen/internal/gallery"
	"gallery-gen/internal/logging"
)

//go:embed templates/gallery.html.tmpl
var galleryTemplate string

// OutputPrefix is the base name of generated pages: page 1 is
// "index.html", page N is "index<N>.html".
const OutputPrefix = "index"

// PageFileName returns the output file name for a page ordinal.
func PageFileName(number int) string {
	if number <= 1 {
		return OutputPrefix + ".html"
	}
	return fmt.Sprintf("%s%d.html", OutputPrefix, number)
}

// Renderer writes gallery pages from the embedded template.
type Renderer struct {
	tmpl  *template.Template
	title string
}

// New creates a Renderer with the given gallery title.
func New(title string) (*Renderer, error) {
	tmpl, err := template.New("gallery").Funcs(template.FuncMap{
		"pagehref": PageFileName,
		"join":     strings.Join,
	}).Parse(galleryTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gallery template: %w", err)
	}
	return &Renderer{tmpl: tmpl, title: title}, nil
}

// pageData is the template input for one page.
type pageData struct {
	Title       string
	Page        gallery.Page
	Tags        []string
	TotalImages int
}

// WritePages renders every page into dir.
func (r *Renderer) WritePages(dir string, pages []gallery.Page, tags []string, totalImages int) error {
	for _, page := range pages {
		if err := r.WritePage(dir, page, tags, totalImages); err != nil {
			return err
		}
	}
	return nil
}

// WritePage renders a single page into dir under its ordinal file name.
func (r *Renderer) WritePage(dir string, page gallery.Page, tags []string, totalImages int) error {
	path := filepath.Join(dir, PageFileName(page.Number))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create page file: %w", err)
	}

	data := pageData{
		Title:       r.title,
		Page:        page,
		Tags:        tags,
		TotalImages: totalImages,
	}
	if err := r.tmpl.Execute(file, data); err != nil {
		file.Close()
		return fmt.Errorf("failed to render page %d: %w", page.Number, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write page %d: %w", page.Number, err)
	}

	logging.Debug("Rendered page %d/%d -> %s", page.Number, page.TotalPages, path)
	return nil
}

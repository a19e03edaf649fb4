package lore

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var pageTemplate = template.Must(template.New("lore").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    body {
      background-color: #2E2E2E;
      color: #F5F5F5;
      font-family: system-ui, sans-serif;
      max-width: 48rem;
      margin: 0 auto;
      padding: 2rem 1rem;
      line-height: 1.6;
    }
    h1, h2, h3 { color: #7CB342; }
    a { color: #4FC3F7; }
    blockquote {
      border-left: 4px solid #8B4513;
      margin-left: 0;
      padding-left: 1rem;
      color: #BDBDBD;
    }
    code {
      background-color: #3A3A3A;
      border-radius: 3px;
      padding: 0.1rem 0.3rem;
    }
  </style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// md renders GitHub-flavored markdown. Tables and strikethrough show up
// in lore pages often enough to want the GFM extension.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Convert renders markdown source into a full HTML document titled title.
func Convert(source []byte, title string) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert(source, &body); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	var out bytes.Buffer
	data := struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		// Goldmark output is trusted page content, not user input.
		Body: template.HTML(body.String()), //nolint:gosec
	}
	if err := pageTemplate.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("failed to render lore page: %w", err)
	}
	return out.Bytes(), nil
}

// ConvertFile converts inPath and writes the result to outPath. When
// outPath is empty the output lands next to the input with an .html
// extension.
func ConvertFile(inPath, outPath string) (string, error) {
	source, err := os.ReadFile(inPath)
	if err != nil {
		return "", fmt.Errorf("failed to read markdown file: %w", err)
	}

	if outPath == "" {
		base := strings.TrimSuffix(inPath, filepath.Ext(inPath))
		outPath = base + ".html"
	}

	title := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	html, err := Convert(source, title)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outPath, html, 0o644); err != nil {
		return "", fmt.Errorf("failed to write lore page: %w", err)
	}
	return outPath, nil
}

package lore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	source := []byte("# Carcosa\n\nThe **lost city** beneath the server spawn.\n")

	html, err := Convert(source, "carcosa")
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	out := string(html)
	for _, want := range []string{
		"<title>carcosa</title>",
		"<h1>Carcosa</h1>",
		"<strong>lost city</strong>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s", want)
		}
	}
}

func TestConvertGFMTable(t *testing.T) {
	source := []byte("| Build | Year |\n|-------|------|\n| Keep  | 2023 |\n")

	html, err := Convert(source, "builds")
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if !strings.Contains(string(html), "<table>") {
		t.Error("GFM table was not rendered")
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "carcosa.md")
	if err := os.WriteFile(in, []byte("# Carcosa\n"), 0o644); err != nil {
		t.Fatalf("Failed to write markdown: %v", err)
	}

	out, err := ConvertFile(in, "")
	if err != nil {
		t.Fatalf("ConvertFile() error: %v", err)
	}
	if out != filepath.Join(dir, "carcosa.html") {
		t.Errorf("output path = %q, want carcosa.html next to input", out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.Contains(string(data), "<h1>Carcosa</h1>") {
		t.Error("converted body missing from output file")
	}
}

func TestConvertFileMissingInput(t *testing.T) {
	if _, err := ConvertFile(filepath.Join(t.TempDir(), "nope.md"), ""); err == nil {
		t.Error("expected error for missing input file")
	}
}

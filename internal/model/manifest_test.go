package model

import (
	"strings"
	"testing"
)

func testManifest() Manifest {
	return Manifest{
		Categories: []Category{
			{Name: "Medical", Videos: []string{"https://www.youtube.com/watch?v=BFheNvvJGoQ"}},
			{Name: "Farming", Dir: "farm", Playlists: []string{"https://www.youtube.com/playlist?list=PL1"}},
		},
		PDFs: []PDFResource{
			{URL: "https://archive.org/download/a/A.pdf", Filename: "A.pdf"},
		},
		ArchiveURL:    "https://archive.org/details/bundle",
		RepositoryURL: "https://github.com/example/data.git",
	}
}

func TestManifest_Clone(t *testing.T) {
	original := testManifest()
	clone := original.Clone()

	clone.Categories[0].Videos[0] = "mutated"
	clone.Categories[0].Name = "mutated"
	clone.PDFs[0].Filename = "mutated.pdf"

	if original.Categories[0].Videos[0] == "mutated" {
		t.Error("Clone shares the video slice with the original")
	}
	if original.Categories[0].Name == "mutated" {
		t.Error("Clone shares the category slice with the original")
	}
	if original.PDFs[0].Filename == "mutated.pdf" {
		t.Error("Clone shares the pdf slice with the original")
	}
}

func TestManifest_BrowseCategories(t *testing.T) {
	m := testManifest()
	got := m.BrowseCategories()

	expected := []BrowseCategory{
		{Name: "Medical", Dir: "Medical"},
		{Name: "Farming", Dir: "farm"},
		{Name: DefaultArchiveDir, Dir: DefaultArchiveDir},
		{Name: DefaultMirrorDir, Dir: DefaultMirrorDir},
	}

	if len(got) != len(expected) {
		t.Fatalf("Expected %d categories, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("BrowseCategories()[%d] = %+v, expected %+v", i, got[i], expected[i])
		}
	}
}

func TestManifest_BrowseCategoriesWithoutBulkSources(t *testing.T) {
	m := testManifest()
	m.ArchiveURL = ""
	m.RepositoryURL = ""

	if n := len(m.BrowseCategories()); n != 2 {
		t.Errorf("Expected 2 categories without archive and mirror, got %d", n)
	}
}

func TestManifest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Manifest)
		wantErr string
	}{
		{"valid", func(*Manifest) {}, ""},
		{"empty category name", func(m *Manifest) { m.Categories[0].Name = " " }, "empty name"},
		{"duplicate category", func(m *Manifest) { m.Categories[1].Name = "medical" }, "duplicate category"},
		{"nested category dir", func(m *Manifest) { m.Categories[0].Dir = "a/b" }, "single path element"},
		{"current dir category", func(m *Manifest) { m.Categories[0].Dir = "." }, "single path element"},
		{"parent dir category", func(m *Manifest) { m.Categories[0].Dir = ".." }, "single path element"},
		{"blank category dir", func(m *Manifest) { m.Categories[0].Dir = "  " }, "single path element"},
		{"dot category name", func(m *Manifest) { m.Categories[0].Name = "." }, "single path element"},
		{"current dir mirror", func(m *Manifest) { m.MirrorDir = "." }, "bulk directory"},
		{"empty video url", func(m *Manifest) { m.Categories[0].Videos = []string{""} }, "empty URL"},
		{"empty pdf url", func(m *Manifest) { m.PDFs[0].URL = "" }, "empty URL"},
		{"pdf filename with separator", func(m *Manifest) { m.PDFs[0].Filename = "../A.pdf" }, "invalid filename"},
		{"parent dir pdf filename", func(m *Manifest) { m.PDFs[0].Filename = ".." }, "invalid filename"},
		{"duplicate pdf", func(m *Manifest) { m.PDFs = append(m.PDFs, m.PDFs[0]) }, "duplicate pdf"},
		{"same bulk dirs", func(m *Manifest) { m.MirrorDir = DefaultArchiveDir }, "must differ"},
	}

	for _, test := range tests {
		m := testManifest()
		test.mutate(&m)
		err := m.Validate()

		if test.wantErr == "" {
			if err != nil {
				t.Errorf("%s: expected no error, got %v", test.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), test.wantErr) {
			t.Errorf("%s: expected error containing '%s', got %v", test.name, test.wantErr, err)
		}
	}
}

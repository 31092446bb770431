package parser

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractText_PlainFormats(t *testing.T) {
	tests := []struct {
		filename string
		data     string
	}{
		{filename: "notes.txt", data: "Hello.\n\nWorld."},
		{filename: "README.MD", data: "# Title\n\nSome *markdown*."},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := ExtractText(tt.filename, []byte(tt.data))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.data {
				t.Errorf("got %q, want %q", got, tt.data)
			}
		})
	}
}

func TestExtractText_Unsupported(t *testing.T) {
	for _, name := range []string{"image.png", "archive.zip", "noextension"} {
		_, err := ExtractText(name, []byte("data"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%s: expected ErrUnsupportedFormat, got %v", name, err)
		}
	}
}

func TestExtractText_CorruptDocuments(t *testing.T) {
	for _, name := range []string{"broken.pdf", "broken.docx", "broken.pptx", "broken.xlsx"} {
		if _, err := ExtractText(name, []byte("definitely not a document")); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestExtractText_PPTX(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/slides/slide10.xml":           `<p:sld><a:t>Last</a:t><a:t>slide</a:t></p:sld>`,
		"ppt/slides/slide2.xml":            `<p:sld><a:t>Second &amp; middle</a:t></p:sld>`,
		"ppt/slides/slide1.xml":            `<p:sld><a:t>First</a:t></p:sld>`,
		"ppt/slides/_rels/slide1.xml.rels": `<Relationships/>`,
		"ppt/slides/slide3.xml":            `<p:sld></p:sld>`,
	})

	got, err := ExtractText("deck.pptx", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "First\n\nSecond & middle\n\nLast slide"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractText_DOCX(t *testing.T) {
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document><w:body>` +
		`<w:p><w:pPr/><w:r><w:t>Hello</w:t></w:r><w:r><w:t xml:space="preserve"> world &amp; co</w:t></w:r></w:p>` +
		`<w:p></w:p>` +
		`<w:p><w:r><w:t>Second</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	data := buildZip(t, map[string]string{
		"word/document.xml":            document,
		"word/_rels/document.xml.rels": `<Relationships></Relationships>`,
	})

	got, err := ExtractText("letter.docx", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Hello world & co\n\nSecond"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractText_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetCellValue("Sheet1", "A1", "Name"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellValue("Sheet1", "B1", "Description"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellValue("Sheet1", "A2", "Widget"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellValue("Sheet1", "B2", "A small part."); err != nil {
		t.Fatal(err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	got, err := ExtractText("inventory.xlsx", buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Sheet: Sheet1\nName\tDescription\nWidget\tA small part."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

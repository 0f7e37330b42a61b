package extract

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextTxtPassesThrough(t *testing.T) {
	content := "Jane Doe\nSoftware Engineer\n"
	path := writeFile(t, "resume.txt", []byte(content))

	if got := Text(path); got != content {
		t.Fatalf("expected %q, got %q", content, got)
	}
}

func TestTextTxtUppercaseExtension(t *testing.T) {
	path := writeFile(t, "resume.TXT", []byte("hello"))

	if got := Text(path); got != "hello" {
		t.Fatalf("expected %q, got %q", "hello", got)
	}
}

func TestTextDocxParagraphs(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p>
  </w:body>
</w:document>`
	path := writeFile(t, "resume.docx", buildDocx(t, doc))

	got := Text(path)
	if !strings.Contains(got, "Jane Doe\n") {
		t.Fatalf("expected paragraph break after name, got %q", got)
	}
	if !strings.Contains(got, "Software Engineer") {
		t.Fatalf("expected second paragraph, got %q", got)
	}
}

func TestTextDocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("<styles/>")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	path := writeFile(t, "resume.docx", buf.Bytes())

	if got := Text(path); got != "" {
		t.Fatalf("expected empty sentinel, got %q", got)
	}
}

func TestTextCorruptPdf(t *testing.T) {
	path := writeFile(t, "resume.pdf", []byte("not a pdf"))

	if got := Text(path); got != "" {
		t.Fatalf("expected empty sentinel, got %q", got)
	}
}

func TestTextUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "resume.rtf", []byte(`{\rtf1 hello}`))

	if got := Text(path); got != "" {
		t.Fatalf("expected empty sentinel, got %q", got)
	}
}

func TestTextMissingFile(t *testing.T) {
	if got := Text(filepath.Join(t.TempDir(), "nope.txt")); got != "" {
		t.Fatalf("expected empty sentinel, got %q", got)
	}
}

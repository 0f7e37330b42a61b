package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"resume-insight/internal/shared/telemetry"
)

// Text extracts plain text from a staged resume file, dispatching on the
// file extension (.pdf, .docx, .txt). Resume uploads are untrusted and
// partially-corrupt documents are common, so decode failures and
// unsupported formats are reported with the empty-string sentinel rather
// than an error; callers treat "" as "no usable text".
func Text(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err := pdfText(path)
		if err != nil {
			telemetry.Error("extract.pdf_failed", map[string]any{"path": path, "error": err.Error()})
			return ""
		}
		return text
	case ".docx":
		text, err := docxText(path)
		if err != nil {
			telemetry.Error("extract.docx_failed", map[string]any{"path": path, "error": err.Error()})
			return ""
		}
		return text
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			telemetry.Error("extract.txt_failed", map[string]any{"path": path, "error": err.Error()})
			return ""
		}
		return string(data)
	default:
		telemetry.Warn("extract.unsupported_type", map[string]any{"path": path})
		return ""
	}
}

// pdfText concatenates per-page text in page order. A page the library
// cannot extract contributes nothing instead of failing the document.
func pdfText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(pageText)
	}
	return buf.String(), nil
}

// docxText pulls character data out of word/document.xml, appending a
// newline after each paragraph.
func docxText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	return stripDocxXML(raw)
}

func stripDocxXML(raw []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				buf.WriteString("\n")
			}
		}
	}
	return buf.String(), nil
}

package analyzer

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

// Supported upload content types.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeText = "text/plain"
)

// ExtractText extracts plain text from an uploaded document. Extraction
// problems are reported as literal "Error ..." strings in the result rather
// than as errors; callers check with IsExtractionError.
func ExtractText(data []byte, contentType string) string {
	switch contentType {
	case ContentTypePDF:
		return extractPDF(data)
	case ContentTypeDOCX:
		return extractDOCX(data)
	case ContentTypeText:
		return extractPlainText(data)
	default:
		return "Unsupported file type"
	}
}

// IsExtractionError reports whether an ExtractText result is an error
// string instead of document text.
func IsExtractionError(text string) bool {
	return strings.HasPrefix(text, "Error") || text == "Unsupported file type"
}

func extractPDF(data []byte) string {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Sprintf("Error parsing PDF: %v", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return fmt.Sprintf("Error parsing PDF: %v", err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

// extractDOCX pulls paragraph text out of word/document.xml. A DOCX file is
// a zip archive; only the w:t runs carry document text.
func extractDOCX(data []byte) string {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Sprintf("Error parsing DOCX: %v", err)
	}

	var doc *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "Error parsing DOCX: missing word/document.xml"
	}

	rc, err := doc.Open()
	if err != nil {
		return fmt.Sprintf("Error parsing DOCX: %v", err)
	}
	defer rc.Close()

	var b strings.Builder
	decoder := xml.NewDecoder(rc)
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Sprintf("Error parsing DOCX: %v", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String()
}

// extractPlainText decodes bytes as UTF-8, falling back to Latin-1 before
// giving up with an explicit error string.
func extractPlainText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "Error decoding text file"
	}
	return string(decoded)
}

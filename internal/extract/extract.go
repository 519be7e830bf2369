// Package extract is the document loader: it turns raw DOCX/PDF payloads
// into plain text, a structure tree, and a classified document type.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Document is the fully loaded form of one uploaded file.
type Document struct {
	FilePath       string    `json:"file_path"`
	FileName       string    `json:"file_name"`
	DocumentType   string    `json:"document_type"`
	TextContent    string    `json:"text_content"`
	Structure      Structure `json:"structure"`
	WordCount      int       `json:"word_count"`
	ParagraphCount int       `json:"paragraph_count"`
	SectionCount   int       `json:"section_count"`
	TableCount     int       `json:"table_count"`
}

var supportedExtensions = map[string]bool{
	".docx": true,
	".pdf":  true,
}

// CanProcess reports whether the file extension is supported.
func CanProcess(fileName string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(fileName))]
}

// Process loads one document from its raw bytes. Unreadable or unsupported
// input yields a *LoadError; empty but well-formed documents do not.
func Process(fileName string, data []byte) (Document, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	var items []bodyItem
	switch ext {
	case ".docx":
		parsed, err := parseDocx(data)
		if err != nil {
			return Document{}, &LoadError{FileName: fileName, Err: err}
		}
		items = parsed
	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			return Document{}, &LoadError{FileName: fileName, Err: err}
		}
		items = pdfBodyItems(text)
	default:
		return Document{}, &LoadError{FileName: fileName, Err: fmt.Errorf("unsupported file type %q", ext)}
	}

	text := textOf(items)
	structure := buildStructure(items)

	return Document{
		FilePath:       fileName,
		FileName:       filepath.Base(fileName),
		DocumentType:   IdentifyDocumentType(text),
		TextContent:    text,
		Structure:      structure,
		WordCount:      len(strings.Fields(text)),
		ParagraphCount: len(structure.Paragraphs),
		SectionCount:   len(structure.Sections),
		TableCount:     len(structure.Tables),
	}, nil
}

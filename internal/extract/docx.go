package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// bodyItem is one top-level element of the document body, in document order.
// Exactly one of paragraph or table is set.
type bodyItem struct {
	paragraph *paragraph
	table     [][]string
}

type paragraph struct {
	style string
	text  string
}

// parseDocx reads word/document.xml out of the DOCX container and returns the
// ordered body items. Paragraphs nested inside tables are consumed by the
// table parser and not reported separately.
func parseDocx(data []byte) ([]bodyItem, error) {
	if len(data) == 0 {
		return nil, errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
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
		return nil, errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var items []bodyItem
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "tbl":
			table, err := parseTable(decoder)
			if err != nil {
				return nil, err
			}
			if len(table) > 0 {
				items = append(items, bodyItem{table: table})
			}
		case "p":
			para, err := parseParagraph(decoder)
			if err != nil {
				return nil, err
			}
			items = append(items, bodyItem{paragraph: &para})
		}
	}
	return items, nil
}

// parseParagraph consumes tokens up to the matching </w:p> and collects the
// paragraph style and run text.
func parseParagraph(decoder *xml.Decoder) (paragraph, error) {
	var p paragraph
	var buf strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return p, errors.New("unexpected EOF inside paragraph")
		}
		if err != nil {
			return p, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pStyle":
				p.style = attrVal(t, "val")
			case "t":
				inText = true
			case "tab":
				buf.WriteByte(' ')
			case "br", "cr":
				buf.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				p.text = buf.String()
				return p, nil
			}
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		}
	}
}

// parseTable consumes tokens up to the matching </w:tbl> and returns rows of
// cell text. Nested tables are flattened into the enclosing cell's text.
func parseTable(decoder *xml.Decoder) ([][]string, error) {
	var rows [][]string
	var row []string
	var cell strings.Builder
	depth := 1
	inCell := false
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return nil, errors.New("unexpected EOF inside table")
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				depth++
			case "tr":
				if depth == 1 {
					row = nil
				}
			case "tc":
				if depth == 1 {
					inCell = true
					cell.Reset()
				}
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				depth--
				if depth == 0 {
					return rows, nil
				}
			case "tr":
				if depth == 1 {
					rows = append(rows, row)
				}
			case "tc":
				if depth == 1 {
					inCell = false
					row = append(row, strings.TrimSpace(cell.String()))
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inCell && inText {
				cell.Write(t)
			}
		}
	}
}

// textOf flattens body items into plain text: one line per non-empty
// paragraph, table rows rendered as " | "-joined non-empty cells.
func textOf(items []bodyItem) string {
	var lines []string
	for _, item := range items {
		if item.paragraph != nil {
			if text := strings.TrimSpace(item.paragraph.text); text != "" {
				lines = append(lines, text)
			}
			continue
		}
		for _, row := range item.table {
			var cells []string
			for _, c := range row {
				if c = strings.TrimSpace(c); c != "" {
					cells = append(cells, c)
				}
			}
			if len(cells) > 0 {
				lines = append(lines, strings.Join(cells, " | "))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func attrVal(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

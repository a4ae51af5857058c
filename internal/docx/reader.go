package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/leandrowiemesfilho/doc2md/internal/domain"
)

const (
	documentPart = "word/document.xml"
	stylesPart   = "word/styles.xml"
)

// Open reads the DOCX file at filename. Any failure is reported as a
// *domain.ConversionError.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, domain.NewConversionError(domain.DOCX, filename, fmt.Errorf("opening file: %w", err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, domain.NewConversionError(domain.DOCX, filename, fmt.Errorf("failed to get file info: %w", err))
	}
	return openContainer(filename, f, info.Size())
}

// NewReader reads a DOCX container of the given size from r.
func NewReader(r io.ReaderAt, size int64) (*Document, error) {
	return openContainer("", r, size)
}

func openContainer(filename string, r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, domain.NewConversionError(domain.DOCX, filename, fmt.Errorf("opening ZIP archive: %w", err))
	}
	doc, err := read(zr)
	if err != nil {
		return nil, domain.NewConversionError(domain.DOCX, filename, err)
	}
	return doc, nil
}

func read(zr *zip.Reader) (*Document, error) {
	// styles.xml is optional
	styles := newStyleTable(nil)
	if data, err := readPart(zr, stylesPart); err == nil {
		var s stylesXML
		if xml.Unmarshal(data, &s) == nil {
			styles = newStyleTable(&s)
		}
	}

	f := findPart(zr, documentPart)
	if f == nil {
		return nil, fmt.Errorf("missing required file: %s", documentPart)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", documentPart, err)
	}
	defer rc.Close()

	doc, err := decodeDocument(xml.NewDecoder(rc), styles)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return doc, nil
}

func findPart(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func readPart(zr *zip.Reader, name string) ([]byte, error) {
	f := findPart(zr, name)
	if f == nil {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// decodeDocument walks the direct children of <w:body>, keeping paragraphs
// and tables in order. Section properties, content controls and other body
// children are skipped.
func decodeDocument(d *xml.Decoder, styles *styleTable) (*Document, error) {
	doc := &Document{}
	inBody, sawBody := false, false

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if !inBody {
				if t.Name.Local == "body" {
					inBody, sawBody = true, true
				}
				continue
			}
			switch t.Name.Local {
			case "p":
				p, err := decodeParagraph(d, styles)
				if err != nil {
					return nil, err
				}
				doc.Blocks = append(doc.Blocks, p)
			case "tbl":
				tbl, err := decodeTable(d, styles)
				if err != nil {
					return nil, err
				}
				doc.Blocks = append(doc.Blocks, tbl)
			default:
				if err := d.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if inBody && t.Name.Local == "body" {
				inBody = false
			}
		}
	}

	if !sawBody {
		return nil, errors.New("document body not found")
	}
	return doc, nil
}

// decodeParagraph consumes tokens up to and including the end of the <w:p>
// whose start element was just read. Runs nested in hyperlinks, insertions
// or smart tags belong to the paragraph; paragraphs nested inside a run
// (text boxes) do not.
func decodeParagraph(d *xml.Decoder, styles *styleTable) (*Paragraph, error) {
	p := &Paragraph{}
	var (
		styleID  string
		stack    []string
		cur      *Run
		runDepth int
	)

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			parent := ""
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			stack = append(stack, name)

			switch {
			case len(stack) == 2 && parent == "pPr" && name == "pStyle":
				styleID = attrValue(t, "val")
			case cur == nil && name == "r":
				cur = &Run{}
				runDepth = len(stack)
			case cur != nil && len(stack) == runDepth+2 && parent == "rPr":
				switch name {
				case "b":
					cur.Bold = onOff(t)
				case "i":
					cur.Italic = onOff(t)
				}
			case cur != nil && len(stack) == runDepth+1:
				switch name {
				case "tab":
					cur.Text += "\t"
				case "br", "cr":
					cur.Text += "\n"
				}
			}

		case xml.CharData:
			if cur != nil && len(stack) == runDepth+1 && stack[len(stack)-1] == "t" {
				cur.Text += string(t)
			}

		case xml.EndElement:
			if len(stack) == 0 {
				p.Style = styles.Name(styleID)
				return p, nil
			}
			stack = stack[:len(stack)-1]
			if cur != nil && len(stack) < runDepth {
				p.Runs = append(p.Runs, *cur)
				cur = nil
			}
		}
	}
}

type cellPropsXML struct {
	GridSpan struct {
		Val string `xml:"val,attr"`
	} `xml:"gridSpan"`
	VMerge *struct {
		Val string `xml:"val,attr"`
	} `xml:"vMerge"`
}

// continuesMerge reports whether the cell continues a vertical merge started
// in a row above. A bare <w:vMerge/> means continue.
func (p *cellPropsXML) continuesMerge() bool {
	return p.VMerge != nil && (p.VMerge.Val == "" || p.VMerge.Val == "continue")
}

// tableCell is a decoded <w:tc>.
type tableCell struct {
	text   string
	span   int
	merged bool
}

// decodeTable consumes a <w:tbl>. A cell spanning several grid columns is
// repeated once per column so rows line up with the grid, and a cell
// continuing a vertical merge repeats the text of the grid column above it.
func decodeTable(d *xml.Decoder, styles *styleTable) (*Table, error) {
	tbl := &Table{}
	var row, prev []string
	inRow := false

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case !inRow && t.Name.Local == "tr":
				inRow = true
				row = []string{}
			case inRow && t.Name.Local == "tc":
				cell, err := decodeCell(d, styles)
				if err != nil {
					return nil, err
				}
				for i := 0; i < cell.span; i++ {
					text := cell.text
					if col := len(row); cell.merged && col < len(prev) {
						text = prev[col]
					}
					row = append(row, text)
				}
			default:
				if err := d.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if !inRow {
				return tbl, nil
			}
			tbl.Rows = append(tbl.Rows, row)
			prev = row
			inRow = false
		}
	}
}

// decodeCell reads a <w:tc>: its paragraphs joined by newlines, the number
// of grid columns it spans and whether it continues a vertical merge.
func decodeCell(d *xml.Decoder, styles *styleTable) (tableCell, error) {
	cell := tableCell{span: 1}
	var paras []string

	for {
		tok, err := d.Token()
		if err != nil {
			return tableCell{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tcPr":
				var props cellPropsXML
				if err := d.DecodeElement(&props, &t); err != nil {
					return tableCell{}, err
				}
				if n, err := strconv.Atoi(props.GridSpan.Val); err == nil && n > 1 {
					cell.span = n
				}
				cell.merged = props.continuesMerge()
			case "p":
				p, err := decodeParagraph(d, styles)
				if err != nil {
					return tableCell{}, err
				}
				paras = append(paras, p.Text())
			default:
				if err := d.Skip(); err != nil {
					return tableCell{}, err
				}
			}
		case xml.EndElement:
			cell.text = strings.Join(paras, "\n")
			return cell, nil
		}
	}
}

func attrValue(start xml.StartElement, local string) string {
	for _, a := range start.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// onOff reads an OOXML toggle property such as <w:b/> or <w:i w:val="0"/>.
func onOff(start xml.StartElement) bool {
	switch strings.ToLower(attrValue(start, "val")) {
	case "0", "false", "off", "none":
		return false
	default:
		return true
	}
}

// Package pdf converts the text layer of PDF documents to Markdown using
// line-merging and positional heading heuristics.
package pdf

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rsc/pdf"

	"github.com/leandrowiemesfilho/doc2md/internal/domain"
)

const (
	// lineTolerance is the fraction of the font size within which two
	// baselines are considered the same line.
	lineTolerance = 0.3
	// wordGap is the fraction of the font size above which a horizontal gap
	// between two text elements becomes a space.
	wordGap = 0.15
	// leading approximates single line spacing relative to the font size.
	leading = 1.2
	// paragraphGap is the multiple of the leading above which a vertical gap
	// between two lines becomes a blank line.
	paragraphGap = 1.5
)

// TextElement represents a piece of text with its position
type TextElement struct {
	Text  string
	Size  float64
	X     float64
	Y     float64
	Width float64
}

// TextLine represents a line of text with its elements
type TextLine struct {
	Elements []TextElement
	Y        float64
	FontSize float64
}

// ExtractPages returns the plain text of every page of the PDF at path, in
// page order. Pages without a text layer yield an empty string.
func ExtractPages(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewConversionError(domain.PDF, path, fmt.Errorf("failed to open PDF: %w", err))
	}
	defer f.Close()

	fileInfo, err := f.Stat()
	if err != nil {
		return nil, domain.NewConversionError(domain.PDF, path, fmt.Errorf("failed to get file info: %w", err))
	}

	pages, err := readPages(f, fileInfo.Size())
	if err != nil {
		return nil, domain.NewConversionError(domain.PDF, path, err)
	}
	return pages, nil
}

// readPages walks the document page by page. The parser panics on some
// malformed input; that is reported as an error like any other parse failure.
func readPages(f io.ReaderAt, size int64) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(f, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF reader: %w", err)
	}

	numPages := reader.NumPage()
	pages = make([]string, 0, numPages)
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, PageText(page.Content().Text))
	}
	return pages, nil
}

// PageText rebuilds the reading-order text of one page from its positioned
// text elements: elements sharing a baseline form a line, and a vertical gap
// noticeably larger than normal line spacing becomes a blank line.
func PageText(texts []pdf.Text) string {
	var elements []TextElement
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		elements = append(elements, TextElement{
			Text:  t.S,
			Size:  t.FontSize,
			X:     t.X,
			Y:     t.Y,
			Width: t.W,
		})
	}
	if len(elements) == 0 {
		return ""
	}

	lines := groupElementsIntoLines(elements)

	var out []string
	for i, line := range lines {
		text := strings.TrimSpace(lineText(line))
		if text == "" {
			continue
		}
		if i > 0 && len(out) > 0 && isParagraphBreak(lines[i-1], line) {
			out = append(out, "")
		}
		out = append(out, text)
	}
	return strings.Join(out, "\n")
}

func groupElementsIntoLines(elements []TextElement) []TextLine {
	// Top of the page first; PDF Y grows upwards.
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].Y > elements[j].Y
	})

	var lines []TextLine
	for _, element := range elements {
		if n := len(lines); n > 0 {
			last := &lines[n-1]
			if last.Y-element.Y <= lineTolerance*maxFloat(last.FontSize, element.Size, 1) {
				last.Elements = append(last.Elements, element)
				last.FontSize = maxFloat(last.FontSize, element.Size)
				continue
			}
		}
		lines = append(lines, TextLine{
			Elements: []TextElement{element},
			Y:        element.Y,
			FontSize: element.Size,
		})
	}

	for i := range lines {
		elems := lines[i].Elements
		sort.SliceStable(elems, func(a, b int) bool {
			return elems[a].X < elems[b].X
		})
	}
	return lines
}

func lineText(line TextLine) string {
	var text strings.Builder
	for i, element := range line.Elements {
		if i > 0 {
			prev := line.Elements[i-1]
			gap := element.X - (prev.X + elementWidth(prev))
			if gap > wordGap*maxFloat(prev.Size, element.Size) &&
				!strings.HasSuffix(prev.Text, " ") && !strings.HasPrefix(element.Text, " ") {
				text.WriteString(" ")
			}
		}
		text.WriteString(element.Text)
	}
	return text.String()
}

// elementWidth falls back to an average glyph width when the font carries
// no width table.
func elementWidth(e TextElement) float64 {
	if e.Width > 0 {
		return e.Width
	}
	return 0.5 * e.Size * float64(utf8.RuneCountInString(e.Text))
}

// isParagraphBreak reports whether the baseline distance between two
// consecutive lines exceeds normal spacing for the smaller of their fonts.
func isParagraphBreak(prev, cur TextLine) bool {
	size := minPositive(prev.FontSize, cur.FontSize)
	if size <= 0 {
		return false
	}
	return prev.Y-cur.Y > paragraphGap*leading*size
}

func maxFloat(vals ...float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minPositive(a, b float64) float64 {
	switch {
	case a <= 0:
		return b
	case b <= 0:
		return a
	case a < b:
		return a
	default:
		return b
	}
}

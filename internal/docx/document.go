// Package docx reads word-processor (OOXML) documents into a paragraph and
// table model and renders that model as Markdown.
package docx

import "strings"

// Document is the block-level content of a word-processor document in body order.
type Document struct {
	Blocks []Block
}

// Block is either a *Paragraph or a *Table.
type Block interface {
	block()
}

// Paragraph is a styled sequence of runs.
type Paragraph struct {
	Style string // resolved style name, e.g. "Heading 1" or "Normal"
	Runs  []Run
}

// Run is a span of text with uniform formatting.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Table holds cell texts row by row.
type Table struct {
	Rows [][]string
}

func (*Paragraph) block() {}
func (*Table) block()     {}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Paragraphs returns the top-level paragraphs in document order.
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, b := range d.Blocks {
		if p, ok := b.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the top-level tables in document order.
func (d *Document) Tables() []*Table {
	var out []*Table
	for _, b := range d.Blocks {
		if t, ok := b.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

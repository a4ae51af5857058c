package docx

import (
	"regexp"
	"strconv"
	"strings"
)

var headingStyle = regexp.MustCompile(`^Heading (\d+)`)

// ConvertFile opens the DOCX at path and renders it as Markdown.
func ConvertFile(path string) (string, error) {
	doc, err := Open(path)
	if err != nil {
		return "", err
	}
	return Convert(doc), nil
}

// Convert renders doc as Markdown. Paragraphs come first, then every table,
// each block separated by a blank line.
//
// Emphasis is decided once per paragraph: if any run is bold the whole
// paragraph is wrapped in **...**, if any run is italic it is wrapped in *...*.
func Convert(doc *Document) string {
	var blocks []string

	for _, p := range doc.Paragraphs() {
		if line, ok := paragraphMarkdown(p); ok {
			blocks = append(blocks, line)
		}
	}

	for _, t := range doc.Tables() {
		if md := tableMarkdown(t); md != "" {
			blocks = append(blocks, md)
		}
	}

	return strings.Join(blocks, "\n\n")
}

func paragraphMarkdown(p *Paragraph) (string, bool) {
	text := strings.TrimSpace(p.Text())
	if text == "" {
		return "", false
	}

	if level := headingLevel(p.Style); level > 0 {
		return strings.Repeat("#", level) + " " + text, true
	}

	var bold, italic bool
	for _, r := range p.Runs {
		bold = bold || r.Bold
		italic = italic || r.Italic
	}
	if bold {
		text = "**" + text + "**"
	}
	if italic {
		text = "*" + text + "*"
	}
	return text, true
}

// headingLevel returns N for a "Heading N" style with 1 <= N <= 9, else 0.
func headingLevel(style string) int {
	m := headingStyle.FindStringSubmatch(style)
	if m == nil {
		return 0
	}
	level, err := strconv.Atoi(m[1])
	if err != nil || level < 1 || level > 9 {
		return 0
	}
	return level
}

// tableMarkdown renders t as a pipe table using row 0 as the header.
func tableMarkdown(t *Table) string {
	if len(t.Rows) == 0 {
		return ""
	}

	header := t.Rows[0]
	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, tableRow(header))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(sep, " | ")+" |")

	for _, row := range t.Rows[1:] {
		lines = append(lines, tableRow(row))
	}
	return strings.Join(lines, "\n")
}

func tableRow(cells []string) string {
	trimmed := make([]string, len(cells))
	for i, c := range cells {
		trimmed[i] = strings.TrimSpace(c)
	}
	return "| " + strings.Join(trimmed, " | ") + " |"
}

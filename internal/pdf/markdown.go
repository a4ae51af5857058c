package pdf

import "strings"

const pageBreak = "---"

// ConvertFile extracts the text of the PDF at path and renders it as Markdown.
func ConvertFile(path string) (string, error) {
	pages, err := ExtractPages(path)
	if err != nil {
		return "", err
	}
	return Convert(pages), nil
}

// Convert renders extracted page texts as Markdown. Each page is cleaned and
// classified on its own; a blank line, "---" and a blank line separate every
// page from the next. Separators follow page positions, so a page without
// text still gets one unless it is the last page.
func Convert(pages []string) string {
	var out []string
	for i, page := range pages {
		if strings.TrimSpace(page) != "" {
			lines := strings.Split(CleanText(page), "\n")
			out = append(out, ClassifyLines(lines, i == 0)...)
		}
		if i < len(pages)-1 {
			out = append(out, "", pageBreak, "")
		}
	}
	return strings.Join(out, "\n")
}

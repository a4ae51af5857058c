package pdf

import (
	"strings"
	"unicode/utf8"
)

const (
	// maxHeadingLen bounds the length of any heading candidate.
	maxHeadingLen = 100
	// maxSubheadingLen bounds level-2 headings.
	maxSubheadingLen = 50
)

// ClassifyLines guesses which cleaned lines of a page are headings. A line
// shorter than maxHeadingLen characters that is followed by a blank line is
// a candidate. The first non-blank line of the first page becomes "# ",
// other candidates shorter than maxSubheadingLen become "## ", and
// everything else is kept as plain text. Blank lines pass through.
func ClassifyLines(lines []string, firstPage bool) []string {
	out := make([]string, 0, len(lines))
	seenText := false

	for i, line := range lines {
		text := strings.TrimSpace(line)
		if text == "" {
			out = append(out, "")
			continue
		}

		first := firstPage && !seenText
		seenText = true

		n := utf8.RuneCountInString(text)
		followedByBlank := i < len(lines)-1 && strings.TrimSpace(lines[i+1]) == ""
		if n < maxHeadingLen && followedByBlank {
			switch {
			case first:
				out = append(out, "# "+text)
				continue
			case n < maxSubheadingLen:
				out = append(out, "## "+text)
				continue
			}
		}

		out = append(out, text)
	}
	return out
}

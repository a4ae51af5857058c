package pdf

import (
	"regexp"
	"strings"
)

// blankLines matches a run of lines holding only whitespace, including the
// non-ASCII spaces strings.TrimSpace removes (NBSP, ideographic space).
var blankLines = regexp.MustCompile(`\n[\s\x{0B}\x{85}\p{Zs}\x{2028}\x{2029}]*\n`)

var sentenceTerminators = []string{".", "?", "!", "。", "？", "！"}

var listPrefixes = []string{"-", "*", "•", "1.", "2.", "3.", "一、", "二、", "三、"}

// CleanText undoes the hard line wrapping of extracted PDF text. Runs of
// blank lines collapse to one, every line is trimmed, and consecutive lines
// are joined with a space until a line ends a sentence or the next line
// starts a list item. Blank lines always survive as paragraph breaks.
func CleanText(text string) string {
	text = blankLines.ReplaceAllString(text, "\n\n")

	var merged []string
	current := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			if current != "" {
				merged = append(merged, current)
				current = ""
			}
			merged = append(merged, "")
			continue
		}

		if current != "" && !endsSentence(current) && !startsListItem(line) {
			current += " " + line
			continue
		}

		if current != "" {
			merged = append(merged, current)
		}
		current = line
	}
	if current != "" {
		merged = append(merged, current)
	}

	return strings.Join(merged, "\n")
}

func endsSentence(line string) bool {
	line = strings.TrimSpace(line)
	for _, t := range sentenceTerminators {
		if strings.HasSuffix(line, t) {
			return true
		}
	}
	return false
}

func startsListItem(line string) bool {
	for _, p := range listPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

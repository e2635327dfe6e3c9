package extract

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
)

// CleanText collapses noisy whitespace in text extracted from a PDF.
// Conservative: line breaks are kept because extractors depend on label/value
// adjacency and newline placement; only runs of blanks are collapsed.
func CleanText(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// collapseLines trims every line of block, drops empty ones, and joins the
// remainder with single spaces.
func collapseLines(block string) string {
	lines := strings.Split(block, "\n")
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		parts = append(parts, l)
	}
	return strings.Join(parts, " ")
}

// betweenMarkers returns the text after the first occurrence of start up to
// the next occurrence of any end marker. When start is absent ok is false;
// when no end marker follows, the remainder of the document is taken.
func betweenMarkers(text, start string, ends ...string) (string, bool) {
	i := strings.Index(text, start)
	if i < 0 {
		return "", false
	}
	rest := text[i+len(start):]
	cut := len(rest)
	for _, end := range ends {
		if j := strings.Index(rest, end); j >= 0 && j < cut {
			cut = j
		}
	}
	return rest[:cut], true
}

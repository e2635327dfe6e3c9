package extract

import (
	"regexp"
	"strings"
	"time"
)

var (
	reDateYMD = regexp.MustCompile(`^(\d{4})[/\-](\d{2})[/\-](\d{2})$`)
	reDateDMY = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

	// Due-date labels: the English form is tried first, then the Spanish one.
	reDueEN = regexp.MustCompile(`(?i)Due[\s]*date[:\s]*([0-9]{4}[/\-][0-9]{2}[/\-][0-9]{2})`)
	reDueES = regexp.MustCompile(`(?i)Vence[:\s]*([0-9]{4}[/\-][0-9]{2}[/\-][0-9]{2})`)
)

// NormalizeDate re-renders a YYYY/MM/DD or YYYY-MM-DD string as ISO
// YYYY-MM-DD. Returns false when the input does not form a real calendar
// date.
func NormalizeDate(raw string) (string, bool) {
	m := reDateYMD.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", false
	}
	return validISO(m[1] + "-" + m[2] + "-" + m[3])
}

// NormalizeDateDMY handles the DD/MM/YYYY shape used by colombian electronic
// invoices, canonicalizing to ISO with the same calendar validation.
func NormalizeDateDMY(raw string) (string, bool) {
	m := reDateDMY.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", false
	}
	return validISO(m[3] + "-" + m[2] + "-" + m[1])
}

func validISO(iso string) (string, bool) {
	if _, err := time.Parse("2006-01-02", iso); err != nil {
		return "", false
	}
	return iso, true
}

// FindDueDate scans for a labelled due date, English label first, Spanish
// second; the first label that matches wins.
func FindDueDate(text string) Field {
	for _, re := range []*regexp.Regexp{reDueEN, reDueES} {
		if m := re.FindStringSubmatch(text); len(m) >= 2 {
			if iso, ok := NormalizeDate(m[1]); ok {
				return Hit(iso)
			}
			return Miss("due_date.invalid")
		}
	}
	return Miss("due_date")
}

package extract

import "regexp"

// Sentinels substituted when a field cannot be extracted.
const (
	SentinelNotFound = "No encontrado"
	SentinelAmount   = "0.00"
)

// Field carries an extracted value or the name of the pattern that failed.
// The persisted record only ever sees the sentinel; the miss reason feeds
// logging and metrics.
type Field struct {
	Value string
	Found bool
	Miss  string
}

// Hit wraps a successfully extracted value.
func Hit(value string) Field {
	return Field{Value: value, Found: true}
}

// Miss records a failed pattern by name.
func Miss(pattern string) Field {
	return Field{Miss: pattern}
}

// Or returns the extracted value, or sentinel when the field is missing.
func (f Field) Or(sentinel string) string {
	if f.Found {
		return f.Value
	}
	return sentinel
}

// firstGroup runs re against text and wraps the first capture group, tagging
// a miss with the pattern name.
func firstGroup(re *regexp.Regexp, text, pattern string) Field {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return Miss(pattern)
	}
	return Hit(m[1])
}

package dictionary

import (
	"strings"
	"unicode"
)

// ParseRecord splits one comma-delimited dictionary line into its field
// values. A field is either a double-quoted span (surrounding quotes are
// stripped) or a bare run of characters containing no quote, comma, or
// whitespace. A token only counts as a field when it is followed, after
// optional whitespace, by a comma or the end of the line; anything else is
// discarded. Field values are trimmed of outer whitespace.
//
// Embedded double quotes are not escaped in this format, so a field value
// containing a quote will split incorrectly. That matches the files this
// application reads and writes.
func ParseRecord(line string) []string {
	var fields []string
	runes := []rune(line)

	i := 0
	for i < len(runes) {
		switch r := runes[i]; {
		case r == '"':
			end := i + 1
			for end < len(runes) && runes[end] != '"' {
				end++
			}
			next := end
			if end < len(runes) {
				next = end + 1 // consume the closing quote
			}
			if delimiterFollows(runes, next) {
				fields = append(fields, strings.TrimSpace(string(runes[i+1:end])))
			}
			i = next
		case r == ',' || unicode.IsSpace(r):
			i++
		default:
			end := i
			for end < len(runes) && runes[end] != '"' && runes[end] != ',' && !unicode.IsSpace(runes[end]) {
				end++
			}
			if delimiterFollows(runes, end) {
				fields = append(fields, strings.TrimSpace(string(runes[i:end])))
			}
			i = end
		}
	}
	return fields
}

// delimiterFollows reports whether position i, after skipping whitespace,
// sits on a comma or the end of the line.
func delimiterFollows(runes []rune, i int) bool {
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i >= len(runes) || runes[i] == ','
}

// FormatRecord renders field values as one double-quoted, comma-separated
// line, the shape ParseRecord reads back. Values are written verbatim: an
// embedded quote or comma corrupts the record on a later read, a known
// limitation kept for compatibility with dictionaries written by older
// versions of this application.
func FormatRecord(values ...string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, `"`+v+`"`)
	}
	return strings.Join(quoted, ",")
}

package dates

import (
	"regexp"
	"strconv"
	"strings"
)

// Sentinel is the sort key of an absent date. It compares greater than any
// normalized "YYYY-MM-DD" key with a four-digit year.
const Sentinel = "9999"

// monthAbbrevs is the fixed GEDCOM month table, indexed by month number - 1.
var monthAbbrevs = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// MonthNumber returns the two-digit month number for a GEDCOM month
// abbreviation. Unrecognized abbreviations map to "01".
func MonthNumber(abbrev string) string {
	for i, m := range monthAbbrevs {
		if m == abbrev {
			return pad2(strconv.Itoa(i + 1))
		}
	}
	return "01"
}

// Key normalizes a date string into a sortable "YYYY-MM-DD" key.
// It reports false when s is empty or blank. Inputs with more than three
// whitespace-separated parts are returned unchanged as a best-effort key.
func Key(s string) (string, bool) {
	parts := strings.Fields(s)
	switch len(parts) {
	case 0:
		return "", false
	case 1:
		return parts[0] + "-01-01", true
	case 2:
		return parts[1] + "-" + MonthNumber(parts[0]) + "-01", true
	case 3:
		return parts[2] + "-" + MonthNumber(parts[1]) + "-" + pad2(parts[0]), true
	default:
		return s, true
	}
}

// SortKey returns the normalized key of s, or [Sentinel] when s is absent.
func SortKey(s string) string {
	if k, ok := Key(s); ok {
		return k
	}
	return Sentinel
}

var yearRe = regexp.MustCompile(`\d{4}`)

// Year extracts the first four-digit run in s as a year.
// It returns 0 when s has none.
func Year(s string) int {
	m := yearRe.FindString(s)
	if m == "" {
		return 0
	}
	y, _ := strconv.Atoi(m)
	return y
}

// pad2 left-pads s with zeros to a width of two. Longer inputs are kept.
func pad2(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}

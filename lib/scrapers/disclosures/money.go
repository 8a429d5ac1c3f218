package disclosures

import (
	"polstats-backend/lib/timezone"
	"strconv"
	"strings"
	"time"
)

var currencyCleaner = strings.NewReplacer("$", "", ",", "")

// ParseCurrency converts a currency cell to a float. Filings render absent
// amounts as "--" or leave the cell empty; both come back as zero, as does
// any other unparseable residue. Currency parsing never fails.
func ParseCurrency(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" || value == "--" {
		return 0
	}
	f, err := strconv.ParseFloat(currencyCleaner.Replace(value), 64)
	if err != nil {
		return 0
	}
	return f
}

var dateLayouts = []string{"1/2/2006", "2006-01-02"}

// ParseDate parses the date formats filings actually use (M/D/YYYY on the
// rendered pages, ISO in a few older ones). Returns nil when the string is
// empty, a placeholder, or unparseable; the raw string is kept alongside.
func ParseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" || value == "--" {
		return nil
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, value, timezone.Location)
		if err == nil {
			return &t
		}
	}
	return nil
}

// looksNumeric reports whether the string is purely numeric once commas and
// periods are removed, the probe used to locate amount columns in rows that
// omit the dollar sign.
func looksNumeric(s string) bool {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, ".", "")
	return isDigits(s)
}

package disclosures

import (
	"regexp"
	"strings"
)

// Address holds the decomposed parts of a US mailing address. Fields that
// cannot be recognized are left empty rather than guessed.
type Address struct {
	Street string `json:"street_address"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip_code"`
}

var stateZipRegex = regexp.MustCompile(`^([A-Z]{2})\s+(\d{5}(?:-\d{4})?)`)

// ParseAddress splits a comma-separated address into its parts. With three
// or more segments the first is the street and the second the city; with
// exactly two the first is the city. The state/zip segment must match a
// trailing `ST 12345[-6789]` pattern or the state and zip stay empty.
// Single-segment input yields an empty Address.
func ParseAddress(text string) Address {
	var out Address
	if strings.TrimSpace(text) == "" {
		return out
	}

	parts := strings.Split(text, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var stateZip string
	switch {
	case len(parts) >= 3:
		out.Street = parts[0]
		out.City = parts[1]
		stateZip = parts[2]
	case len(parts) == 2:
		out.City = parts[0]
		stateZip = parts[1]
	default:
		return out
	}

	match := stateZipRegex.FindStringSubmatch(stateZip)
	if match != nil {
		out.State = match[1]
		out.Zip = match[2]
	}
	return out
}

var stateWithComma = regexp.MustCompile(`,\s*([A-Z]{2})\s+\d{5}`)
var stateAtEnd = regexp.MustCompile(`\b([A-Z]{2})\s*\d{5}`)

// ExtractState pulls a two-letter state code out of a free-text address for
// coarse in-state/out-of-state aggregation. Unlike ParseAddress it tolerates
// addresses that were never comma-separated. Returns "" when no state/zip
// pair is recognizable.
func ExtractState(address string) string {
	if address == "" {
		return ""
	}
	match := stateWithComma.FindStringSubmatch(address)
	if match != nil {
		return match[1]
	}
	match = stateAtEnd.FindStringSubmatch(address)
	if match != nil {
		return match[1]
	}
	return ""
}

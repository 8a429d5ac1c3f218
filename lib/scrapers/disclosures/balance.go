package disclosures

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var parenthetical = regexp.MustCompile(`\([^)]*\)`)

// ParseBalanceSummary locates the "Balance Summary" heading and parses the
// table that follows it into a label-to-amount map. Many filing types have
// no balance summary at all, so a missing heading or table yields an empty
// map, not an error.
//
// The table comes in two layouts: newer filings use two cells per row
// (label, amount); older ones prefix a line number (number, label, amount,
// ...). Rows whose label is purely numeric are separator rows and are
// skipped. Parenthetical notes are stripped from labels so the two layouts
// produce identical keys.
func ParseBalanceSummary(d Document) map[string]float64 {
	out := map[string]float64{}

	heading := d.HeadingContaining("balance summary")
	if heading == nil {
		return out
	}
	table := d.TableAfter(heading)
	if table == nil {
		return out
	}

	goquery.NewDocumentFromNode(table).Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")

		var label, value string
		switch {
		case cells.Length() == 2:
			label = cellText(cells.Eq(0))
			value = cellText(cells.Eq(1))
		case cells.Length() >= 3:
			label = cellText(cells.Eq(1))
			value = cellText(cells.Eq(2))
		default:
			return
		}

		label = strings.TrimRight(label, ":")
		if label == "" || isDigits(label) {
			return
		}
		label = strings.TrimSpace(parenthetical.ReplaceAllString(label, ""))

		out[label] = ParseCurrency(value)
	})

	return out
}

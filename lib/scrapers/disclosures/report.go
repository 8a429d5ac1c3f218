package disclosures

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Report is the structured result of extracting one campaign finance
// disclosure report page.
type Report struct {
	SourceUrl      string             `json:"source_url"`
	Info           *FieldMap          `json:"report_info"`
	BalanceSummary map[string]float64 `json:"balance_summary"`
	Contributions  []Contribution     `json:"contributions"`
	Expenditures   []Expenditure      `json:"expenditures"`
	Summary        ReportSummary      `json:"summary"`
}

type ReportSummary struct {
	TotalContributions      int     `json:"total_contributions"`
	TotalContributionAmount float64 `json:"total_contribution_amount"`
	TotalExpenditures       int     `json:"total_expenditures"`
	TotalExpenditureAmount  float64 `json:"total_expenditure_amount"`
}

// LobbyistReport is the structured result of extracting one lobbyist
// expenditure report page.
type LobbyistReport struct {
	SourceUrl      string                `json:"source_url"`
	ReportType     string                `json:"report_type"`
	Info           *FieldMap             `json:"report_info"`
	BalanceSummary map[string]float64    `json:"balance_summary"`
	Expenditures   []LobbyistExpenditure `json:"expenditures"`
	Summary        LobbyistSummary       `json:"summary"`
}

type LobbyistSummary struct {
	TotalExpenditures      int     `json:"total_expenditures"`
	TotalExpenditureAmount float64 `json:"total_expenditure_amount"`
}

// parseReportInfo merges report metadata from four heterogeneous sources,
// in priority order: the page title, legend-scoped section names, labeled
// fieldset cells, and a generic two-column row layout as the last resort.
// Later sources only fill gaps; nothing already set is overwritten.
func parseReportInfo(d Document, lobbyist bool) *FieldMap {
	info := NewFieldMap()

	// the page title leads with the issuing office, e.g.
	// "Lieutenant Governor's Office - Contributions and Expenditures For ..."
	fullTitle := d.Title()
	if idx := strings.Index(fullTitle, " - "); idx >= 0 {
		reportTitle := fullTitle[idx+len(" - "):]
		info.SetIfAbsent("title", reportTitle)

		if lobbyist {
			info.SetIfAbsent("organization_type", "Lobbyist/Principal")
		} else if forIdx := strings.LastIndex(reportTitle, "For "); forIdx >= 0 {
			orgType := strings.TrimSpace(reportTitle[forIdx+len("For "):])
			info.SetIfAbsent("organization_type", orgType)
		}
	}

	if !lobbyist {
		// e.g. "Political Action Committee Information"
		d.doc.Find("legend").Each(func(_ int, legend *goquery.Selection) {
			text := cellText(legend)
			if !strings.Contains(text, "Information") {
				return
			}
			orgType := strings.TrimSpace(strings.Replace(text, " Information", "", 1))
			info.SetIfAbsent("organization_type", orgType)
		})
	}

	d.doc.Find("fieldset").Each(func(_ int, fieldset *goquery.Selection) {
		legendText := cellText(fieldset.Find("legend").First())

		fieldset.Find("div.dis-cell label").Each(func(_ int, label *goquery.Selection) {
			text := strings.TrimRight(labelText(label.Nodes[0]), ":")
			value := labelValue(label.Nodes[0])
			if text == "" || value == "" {
				return
			}
			if lobbyist && strings.Contains(legendText, "Principal") {
				info.SetIfAbsent("Principal "+text, value)
				return
			}
			info.SetIfAbsent(text, value)
		})
	})

	// oldest layouts render label/value pairs as adjacent grid columns;
	// a "value" with a trailing colon is really the next pair's label
	d.doc.Find("div.row").Each(func(_ int, row *goquery.Selection) {
		columns := row.Find(`div[class*="col-md-"]`)
		if columns.Length() < 2 {
			return
		}
		for i := 0; i+1 < columns.Length(); i += 2 {
			text := strings.TrimRight(cellText(columns.Eq(i)), ":")
			value := cellText(columns.Eq(i + 1))
			if text == "" || value == "" || strings.Contains(value, ":") {
				continue
			}
			info.SetIfAbsent(text, value)
		}
	})

	return info
}

// ParseReport extracts a full disclosure report from the page: metadata,
// balance summary, and both transaction tables. Absent sections come back
// empty; extraction succeeds on partial documents.
func ParseReport(d Document) Report {
	contributions := ParseContributions(d)
	expenditures := ParseExpenditures(d)

	summary := ReportSummary{
		TotalContributions: len(contributions),
		TotalExpenditures:  len(expenditures),
	}
	for _, c := range contributions {
		summary.TotalContributionAmount += c.Amount
	}
	for _, e := range expenditures {
		summary.TotalExpenditureAmount += e.Amount
	}

	return Report{
		Info:           parseReportInfo(d, false),
		BalanceSummary: ParseBalanceSummary(d),
		Contributions:  contributions,
		Expenditures:   expenditures,
		Summary:        summary,
	}
}

// ParseLobbyistReport extracts a lobbyist expenditure report, which shares
// the balance summary layout with disclosure reports but carries 6-cell
// expenditure rows and principal-scoped metadata.
func ParseLobbyistReport(d Document) LobbyistReport {
	expenditures := ParseLobbyistExpenditures(d)

	summary := LobbyistSummary{TotalExpenditures: len(expenditures)}
	for _, e := range expenditures {
		summary.TotalExpenditureAmount += e.Amount
	}

	return LobbyistReport{
		ReportType:     "lobbyist",
		Info:           parseReportInfo(d, true),
		BalanceSummary: ParseBalanceSummary(d),
		Expenditures:   expenditures,
		Summary:        summary,
	}
}

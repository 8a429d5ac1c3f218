package disclosures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, name string) Document {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()

	doc, err := Parse(f)
	require.NoError(t, err)
	return doc
}

func TestParseReportNewLayout(t *testing.T) {
	report := ParseReport(parseFixture(t, "report_new.html"))

	require.Equal(t, "Financial Disclosures For Political Action Committee", report.Info.Get("title"))
	require.Equal(t, "Political Action Committee", report.Info.Get("organization_type"))
	require.Equal(t, "BETTER ROADS PAC", report.Info.Get("Name"))
	require.Equal(t, "2023", report.Info.Get("Report Year"))
	require.Equal(t, "General", report.Info.Get("Filing Period"))

	require.Equal(t, map[string]float64{
		"Beginning Balance":   1204.50,
		"Total Contributions": 5000,
		"Total Expenditures":  2300,
		"Ending Balance":      3904.50,
	}, report.BalanceSummary)

	require.Len(t, report.Contributions, 2)

	first := report.Contributions[0]
	require.Equal(t, "JANE SMITH", first.ContributorName)
	require.Equal(t, "123 MAIN ST, SALT LAKE CITY, UT 84101", first.Address)
	require.NotNil(t, first.Date)
	require.Equal(t, "2023-01-15", first.Date.Format("2006-01-02"))
	require.False(t, first.InKind)
	require.False(t, first.Loan)
	require.False(t, first.Amendment)
	require.Equal(t, 3000.0, first.Amount)

	second := report.Contributions[1]
	require.True(t, second.InKind)
	require.False(t, second.Loan)
	require.True(t, second.Amendment)
	require.Equal(t, 2000.0, second.Amount)

	require.Len(t, report.Expenditures, 1)
	require.Equal(t, "MOUNTAIN PRINT CO", report.Expenditures[0].RecipientName)
	require.Equal(t, "Campaign mailers", report.Expenditures[0].Purpose)
	require.Equal(t, 2300.0, report.Expenditures[0].Amount)

	require.Equal(t, 2, report.Summary.TotalContributions)
	require.Equal(t, 5000.0, report.Summary.TotalContributionAmount)
	require.Equal(t, 1, report.Summary.TotalExpenditures)
	require.Equal(t, 2300.0, report.Summary.TotalExpenditureAmount)
}

func TestParseReportOldLayout(t *testing.T) {
	report := ParseReport(parseFixture(t, "report_old.html"))

	require.Equal(t, "Corporation", report.Info.Get("organization_type"))
	require.Equal(t, "ZION CORP", report.Info.Get("Name"))
	require.Equal(t, "2014", report.Info.Get("Report Year"))
	require.False(t, report.Info.Has("Filed"))

	require.Len(t, report.Contributions, 1)
	c := report.Contributions[0]
	require.Equal(t, "ALTA MINING GROUP", c.ContributorName)
	require.False(t, c.InKind)
	require.True(t, c.Loan)
	require.False(t, c.Amendment)
	require.Equal(t, 5000.0, c.Amount)

	require.Len(t, report.Expenditures, 1)
	e := report.Expenditures[0]
	require.NotNil(t, e.Date)
	require.Equal(t, "2014-05-01", e.Date.Format("2006-01-02"))
	require.False(t, e.Loan)
	require.True(t, e.Amendment)
	require.Equal(t, 2300.0, e.Amount)
}

// The two layouts differ in row shape and label punctuation but must
// produce the same balance summary keys and amounts.
func TestBalanceSummaryLayoutsAgree(t *testing.T) {
	oldLayout := ParseBalanceSummary(parseFixture(t, "report_old.html"))
	newLayout := ParseBalanceSummary(parseFixture(t, "report_new.html"))

	require.NotEmpty(t, newLayout)
	require.Equal(t, newLayout, oldLayout)
}

func TestBalanceSummaryMissing(t *testing.T) {
	out := ParseBalanceSummary(parseFixture(t, "lobbyist_report.html"))
	require.Empty(t, out)
}

// Extracting the same page twice must serialize to identical bytes.
func TestReportExtractionDeterministic(t *testing.T) {
	a, err := json.Marshal(ParseReport(parseFixture(t, "report_new.html")))
	require.NoError(t, err)
	b, err := json.Marshal(ParseReport(parseFixture(t, "report_new.html")))
	require.NoError(t, err)
	require.Equal(t, string(a), string(b))
}

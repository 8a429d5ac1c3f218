package disclosures

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLobbyistReport(t *testing.T) {
	report := ParseLobbyistReport(parseFixture(t, "lobbyist_report.html"))

	require.Equal(t, "lobbyist", report.ReportType)
	require.Equal(t, "Lobbyist Quarterly Expenditure Report", report.Info.Get("title"))
	require.Equal(t, "Lobbyist/Principal", report.Info.Get("organization_type"))
	require.Equal(t, "PAT DOE", report.Info.Get("Name"))
	require.Equal(t, "INTERMOUNTAIN ENERGY COALITION", report.Info.Get("Principal Name"))
	require.Empty(t, report.BalanceSummary)

	require.Len(t, report.Expenditures, 2)

	first := report.Expenditures[0]
	require.Equal(t, "CAPITOL GRILL", first.RecipientName)
	require.Equal(t, "SALT LAKE CITY, UT", first.Location)
	require.Equal(t, "Meal with committee staff", first.Purpose)
	require.False(t, first.Amendment)
	require.Equal(t, 86.40, first.Amount)

	second := report.Expenditures[1]
	require.True(t, second.Amendment)
	require.Equal(t, 240.0, second.Amount)

	require.Equal(t, 2, report.Summary.TotalExpenditures)
	require.InDelta(t, 326.40, report.Summary.TotalExpenditureAmount, 0.001)
}

func TestParseLobbyistEntity(t *testing.T) {
	lobbyist := ParseLobbyistEntity(parseFixture(t, "lobbyist_entity.html"), "L-42")

	require.Equal(t, "L-42", lobbyist.EntityId)
	require.Equal(t, "PAT DOE", lobbyist.Name)
	require.Equal(t, "PAT", lobbyist.FirstName)
	require.Equal(t, "DOE", lobbyist.LastName)
	require.Equal(t, "DOE GOVERNMENT AFFAIRS", lobbyist.OrganizationName)
	require.Equal(t, "801-555-0199", lobbyist.Phone)
	require.Equal(t, "15 W SOUTH TEMPLE", lobbyist.StreetAddress)
	require.Equal(t, "SALT LAKE CITY", lobbyist.City)
	require.Equal(t, "UT", lobbyist.State)
	require.Equal(t, "84101", lobbyist.Zip)
	require.Equal(t, "Energy and transportation policy", lobbyist.LobbyingPurposes)

	require.NotNil(t, lobbyist.DateCreated)
	require.Equal(t, "2022-01-05", lobbyist.DateCreated.Format("2006-01-02"))

	require.Equal(t, []Principal{
		{Name: "INTERMOUNTAIN ENERGY COALITION", Contact: "R. VALDEZ"},
		{Name: "UTAH TRANSIT ALLIANCE", Contact: "S. KIM"},
		{Name: "CANYON DEVELOPMENT GROUP", Contact: ""},
	}, lobbyist.Principals)
}

func TestLobbyistNameFallsBackToOrganization(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<html><body>
		<div><label>Organization Name</label> GRANITE ADVOCACY LLC</div>
	</body></html>`))
	require.NoError(t, err)

	lobbyist := ParseLobbyistEntity(doc, "L-7")
	require.Equal(t, "GRANITE ADVOCACY LLC", lobbyist.Name)
	require.Empty(t, lobbyist.FirstName)
}

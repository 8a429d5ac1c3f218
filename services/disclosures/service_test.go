package disclosures

import (
	"context"
	"testing"
	"time"

	scrape "polstats-backend/lib/scrapers/disclosures"
	"polstats-backend/lib/testutil"
	"polstats-backend/services/disclosures/db"

	"github.com/stretchr/testify/require"
)

func reportInfo(title, orgType string) *scrape.FieldMap {
	info := scrape.NewFieldMap()
	info.SetIfAbsent("title", title)
	info.SetIfAbsent("organization_type", orgType)
	return info
}

func testReport() scrape.Report {
	return scrape.Report{
		SourceUrl: "https://disclosures.example.gov/Search/PublicSearch/Report/r1",
		Info:      reportInfo("Financial Disclosures For Political Action Committee", "Political Action Committee"),
		BalanceSummary: map[string]float64{
			"Beginning Balance": 0,
			"Ending Balance":    100,
		},
		Contributions: []scrape.Contribution{
			{
				DateRaw:         "01/15/2023",
				ContributorName: "ALPINE TRUST",
				Address:         "10 CANYON RD, MOAB, UT 84532",
				Amount:          100,
			},
			{
				DateRaw:         "02/01/2023",
				ContributorName: "BONNEVILLE GROUP",
				Address:         "500 OCEAN AVE, SAN FRANCISCO, CA 94112",
				Amount:          50,
			},
		},
		Expenditures: []scrape.Expenditure{
			{DateRaw: "03/01/2023", RecipientName: "BONNEVILLE GROUP", Purpose: "Refund", Amount: 30},
			{DateRaw: "03/05/2023", RecipientName: "CANYON PRINTING", Purpose: "Mailers", Amount: 20},
		},
	}
}

func TestImportReportAndAggregate(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/disclosures",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	require.NoError(t, service.ImportReport(ctx, "r1", "e1", testReport()))

	stored, err := service.HasReport(ctx, "r1")
	require.NoError(t, err)
	require.True(t, stored)
	stored, err = service.HasReport(ctx, "r2")
	require.NoError(t, err)
	require.False(t, stored)

	top, err := service.TopContributors(ctx, "e1", 15)
	require.NoError(t, err)
	require.Equal(t, []FlowTotal{
		{Name: "ALPINE TRUST", Total: 100},
		{Name: "BONNEVILLE GROUP", Total: 50},
	}, top)

	recipients, err := service.TopRecipients(ctx, "e1", 15)
	require.NoError(t, err)
	require.Equal(t, []FlowTotal{
		{Name: "BONNEVILLE GROUP", Total: 30},
		{Name: "CANYON PRINTING", Total: 20},
	}, recipients)

	// re-importing replaces rows instead of accumulating them
	require.NoError(t, service.ImportReport(ctx, "r1", "e1", testReport()))
	top, err = service.TopContributors(ctx, "e1", 15)
	require.NoError(t, err)
	require.Equal(t, 100.0, top[0].Total)

	share, err := service.InStateShare(ctx, "e1", "UT")
	require.NoError(t, err)
	require.InDelta(t, 100.0/150.0, share, 0.0001)

	share, err = service.InStateShare(ctx, "no-such-entity", "UT")
	require.NoError(t, err)
	require.Equal(t, 0.0, share)
}

func TestImportEntityAndResolve(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/disclosures",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	raw := scrape.NewFieldMap()
	raw.SetIfAbsent("Name", "BETTER ROADS PAC")

	entity := scrape.EntityRegistration{
		EntityId:    "e1",
		Name:        "BETTER ROADS PAC",
		AlsoKnownAs: "BRP",
		EntityType:  "Political Action Committee",
		Status:      "Active",
		RawData:     raw,
		Officers: []scrape.Officer{
			{Name: "ALICE M JONES", Title: "Chair", Order: 0},
			{Name: "BOB LEE", Title: "Treasurer", Order: 1, IsTreasurer: true},
		},
	}
	require.NoError(t, service.ImportEntity(ctx, entity))

	stored, err := service.qry.GetEntity(ctx, "e1")
	require.NoError(t, err)
	require.Equal(t, "BETTER ROADS PAC", stored.Name)

	known, err := service.HasEntity(ctx, "e1")
	require.NoError(t, err)
	require.True(t, known)
	known, err = service.HasEntity(ctx, "e2")
	require.NoError(t, err)
	require.False(t, known)

	officers, err := service.qry.ListEntityOfficers(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, officers, 2)
	require.True(t, officers[1].IsTreasurer)

	// officers are replaced on re-import
	entity.Officers = entity.Officers[:1]
	require.NoError(t, service.ImportEntity(ctx, entity))
	officers, err = service.qry.ListEntityOfficers(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, officers, 1)

	match, err := service.ResolveOrganization(ctx, "better roads pac")
	require.NoError(t, err)
	require.Equal(t, "e1", match.EntityId)
	require.Greater(t, match.Score, 0.9)

	match, err = service.ResolveOrganization(ctx, "BRP")
	require.NoError(t, err)
	require.Equal(t, "e1", match.EntityId)

	results, err := service.SearchOrganizations(ctx, "roads pac")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "e1", results[0].EntityId)

	results, err = service.SearchOrganizations(ctx, "canal company")
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestImportLobbyist(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/disclosures",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	raw := scrape.NewFieldMap()
	raw.SetIfAbsent("First Name", "PAT")

	lobbyist := scrape.LobbyistRegistration{
		EntityId:  "L-42",
		Name:      "PAT DOE",
		FirstName: "PAT",
		LastName:  "DOE",
		RawData:   raw,
		Principals: []scrape.Principal{
			{Name: "INTERMOUNTAIN ENERGY COALITION", Contact: "R. VALDEZ"},
		},
	}
	require.NoError(t, service.ImportLobbyistEntity(ctx, lobbyist))

	stored, err := service.qry.GetLobbyist(ctx, "L-42")
	require.NoError(t, err)
	require.Equal(t, "PAT DOE", stored.Name)

	known, err := service.HasLobbyist(ctx, "L-42")
	require.NoError(t, err)
	require.True(t, known)
	known, err = service.HasLobbyist(ctx, "L-99")
	require.NoError(t, err)
	require.False(t, known)

	principals, err := service.qry.ListLobbyistPrincipals(ctx, "L-42")
	require.NoError(t, err)
	require.Len(t, principals, 1)

	report := scrape.LobbyistReport{
		ReportType: "lobbyist",
		Info:       reportInfo("Lobbyist Quarterly Expenditure Report", "Lobbyist/Principal"),
		Expenditures: []scrape.LobbyistExpenditure{
			{DateRaw: "02/14/2023", RecipientName: "CAPITOL GRILL", Amount: 86.40},
		},
	}
	require.NoError(t, service.ImportLobbyistReport(ctx, "lr1", "L-42", report))

	row, err := service.qry.GetReport(ctx, "lr1")
	require.NoError(t, err)
	require.Equal(t, "lobbyist", row.ReportType)
	require.Equal(t, "L-42", row.EntityID)
}

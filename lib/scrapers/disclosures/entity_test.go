package disclosures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEntity(t *testing.T) {
	entity := ParseEntity(parseFixture(t, "entity.html"), "12345")

	require.Equal(t, "12345", entity.EntityId)
	require.Equal(t, "BETTER ROADS PAC", entity.Name)
	require.Equal(t, "BRP", entity.AlsoKnownAs)
	require.Equal(t, "Political Action Committee", entity.EntityType)
	require.Equal(t, "Active", entity.Status)
	require.Equal(t, "560 E 200 S", entity.StreetAddress)
	require.Equal(t, "STE 200", entity.SuitePoBox)
	require.Equal(t, "SALT LAKE CITY", entity.City)
	require.Equal(t, "UT", entity.State)
	require.Equal(t, "84102", entity.Zip)

	require.Equal(t, "12/01/2019", entity.DateCreatedRaw)
	require.NotNil(t, entity.DateCreated)
	require.Equal(t, "2019-12-01", entity.DateCreated.Format("2006-01-02"))

	// raw data keeps the first occurrence of repeated labels
	require.Equal(t, "ALICE", entity.RawData.Get("First Name"))
	require.Equal(t, "BETTER ROADS PAC", entity.RawData.Get("Name"))
}

func TestParseEntityOfficers(t *testing.T) {
	entity := ParseEntity(parseFixture(t, "entity.html"), "12345")

	// the third officer block has no name and is dropped
	require.Len(t, entity.Officers, 2)

	primary := entity.Officers[0]
	require.Equal(t, "ALICE M JONES", primary.Name)
	require.Equal(t, "Chair", primary.Title)
	require.Equal(t, "801-555-0100", primary.Phone)
	require.Equal(t, "alice@example.org", primary.Email)
	require.Equal(t, "77 E 400 S", primary.StreetAddress)
	require.Equal(t, "SALT LAKE CITY", primary.City)
	require.Equal(t, "UT", primary.State)
	require.Equal(t, "84111", primary.Zip)
	require.Equal(t, 0, primary.Order)
	require.False(t, primary.IsTreasurer)

	cfo := entity.Officers[1]
	require.Equal(t, "BOB LEE", cfo.Name)
	require.Equal(t, "Treasurer", cfo.Title)
	require.Equal(t, 1, cfo.Order)
	require.True(t, cfo.IsTreasurer)
	require.Empty(t, cfo.StreetAddress)
}

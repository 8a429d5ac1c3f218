package disclosures

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldMapFirstWins(t *testing.T) {
	m := NewFieldMap()
	require.True(t, m.SetIfAbsent("Name", "BETTER ROADS PAC"))
	require.False(t, m.SetIfAbsent("Name", "SOMEONE ELSE"))
	require.False(t, m.SetIfAbsent("", "no key"))

	require.Equal(t, "BETTER ROADS PAC", m.Get("Name"))
	require.Equal(t, 1, m.Len())
}

func TestFieldMapOrderedJSON(t *testing.T) {
	m := NewFieldMap()
	m.SetIfAbsent("z", "1")
	m.SetIfAbsent("a", "2")
	m.SetIfAbsent("m", "3")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	require.Equal(t, `{"z":"1","a":"2","m":"3"}`, string(data))

	var decoded FieldMap
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, []string{"z", "a", "m"}, decoded.Keys())

	again, err := json.Marshal(&decoded)
	require.NoError(t, err)
	require.Equal(t, string(data), string(again))
}

func TestPromoteFirstMatchingRule(t *testing.T) {
	rules := []fieldRule{
		{label: "Type", field: "entity_type"},
		{label: "Entity Type", field: "entity_type"},
		{label: "Registration Date", contains: true, field: "date_created"},
	}

	promoted := map[string]string{}
	promote(rules, promoted, "Entity Type", "PAC")
	promote(rules, promoted, "Type", "Corporation")
	require.Equal(t, "PAC", promoted["entity_type"])

	promote(rules, promoted, "Lobbyist Registration Date", "01/05/2022")
	require.Equal(t, "01/05/2022", promoted["date_created"])

	promote(rules, promoted, "Unrelated", "x")
	require.Len(t, promoted, 2)
}

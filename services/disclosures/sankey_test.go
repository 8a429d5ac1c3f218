package disclosures

import (
	"context"
	"testing"
	"time"

	"polstats-backend/lib/testutil"
	"polstats-backend/services/disclosures/db"

	"github.com/stretchr/testify/require"
)

func TestBuildSankeySplitsCircularFlows(t *testing.T) {
	graph := BuildSankey("BETTER ROADS PAC",
		[]FlowTotal{
			{Name: "ALPINE TRUST", Total: 100},
			{Name: "BONNEVILLE GROUP", Total: 50},
		},
		[]FlowTotal{
			{Name: "BONNEVILLE GROUP", Total: 30},
			{Name: "CANYON PRINTING", Total: 20},
		},
	)

	names := make([]string, len(graph.Nodes))
	for i, n := range graph.Nodes {
		names[i] = n.Name
	}
	require.Equal(t, []string{
		"BETTER ROADS PAC",
		"ALPINE TRUST",
		"BONNEVILLE GROUP (Contributor)",
		"BONNEVILLE GROUP (Recipient)",
		"CANYON PRINTING",
	}, names)

	require.Len(t, graph.Links, 4)

	// inflows point at the center, outflows away from it
	center := 0
	require.Equal(t, center, graph.Links[0].Target)
	require.Equal(t, center, graph.Links[1].Target)
	require.Equal(t, center, graph.Links[2].Source)
	require.Equal(t, center, graph.Links[3].Source)
	require.Equal(t, 100.0, graph.Links[0].Value)
	require.Equal(t, 30.0, graph.Links[2].Value)

	// splitting circular names keeps the graph acyclic
	for _, link := range graph.Links {
		require.NotEqual(t, link.Source, link.Target)
		if link.Target == center {
			require.NotEqual(t, center, link.Source)
		}
	}
}

func TestBuildSankeyCenterNameCollision(t *testing.T) {
	graph := BuildSankey("SELF FUNDED PAC",
		[]FlowTotal{{Name: "SELF FUNDED PAC", Total: 10}},
		nil,
	)

	require.Equal(t, "SELF FUNDED PAC (Contributor)", graph.Nodes[1].Name)
	require.Len(t, graph.Links, 1)
	require.NotEqual(t, graph.Links[0].Source, graph.Links[0].Target)
}

func TestOrganizationSankey(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/disclosures",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	require.NoError(t, service.ImportReport(ctx, "r1", "e1", testReport()))

	graph, err := service.OrganizationSankey(ctx, "e1", 0)
	require.NoError(t, err)

	// no registration imported, the center falls back to the entity id
	require.Equal(t, "e1", graph.Nodes[0].Name)
	require.Len(t, graph.Links, 4)

	var inflowTotal float64
	for _, link := range graph.Links {
		if link.Target == 0 {
			inflowTotal += link.Value
		}
	}
	require.Equal(t, 150.0, inflowTotal)
}

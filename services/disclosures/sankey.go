package disclosures

import (
	"context"
	"database/sql"
	"errors"

	"go.opentelemetry.io/otel/codes"
)

// FlowTotal is one aggregated money flow: a counterparty name and the total
// dollars moved.
type FlowTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

type SankeyNode struct {
	Name string `json:"name"`
}

// SankeyLink references nodes by index into SankeyGraph.Nodes.
type SankeyLink struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Value  float64 `json:"value"`
}

type SankeyGraph struct {
	Nodes []SankeyNode `json:"nodes"`
	Links []SankeyLink `json:"links"`
}

// default number of counterparties on each side of a flow graph
const defaultSankeyFlowLimit = 15

// BuildSankey lays out inflows and outflows around a center node. A name
// that appears on both sides (or matches the center) would make the graph
// cyclic, which sankey renderers reject, so such names are split into two
// role-suffixed nodes instead of being merged or dropped.
func BuildSankey(center string, inflows, outflows []FlowTotal) SankeyGraph {
	inflowNames := map[string]bool{}
	for _, f := range inflows {
		inflowNames[f.Name] = true
	}
	outflowNames := map[string]bool{}
	for _, f := range outflows {
		outflowNames[f.Name] = true
	}

	graph := SankeyGraph{}
	addNode := func(name string) int {
		graph.Nodes = append(graph.Nodes, SankeyNode{Name: name})
		return len(graph.Nodes) - 1
	}

	centerIdx := addNode(center)

	for _, f := range inflows {
		name := f.Name
		if outflowNames[f.Name] || f.Name == center {
			name += " (Contributor)"
		}
		graph.Links = append(graph.Links, SankeyLink{
			Source: addNode(name),
			Target: centerIdx,
			Value:  f.Total,
		})
	}
	for _, f := range outflows {
		name := f.Name
		if inflowNames[f.Name] || f.Name == center {
			name += " (Recipient)"
		}
		graph.Links = append(graph.Links, SankeyLink{
			Source: centerIdx,
			Target: addNode(name),
			Value:  f.Total,
		})
	}

	return graph
}

// OrganizationSankey builds the money-flow graph for one entity: its top
// contributors flowing in and its top expenditure recipients flowing out.
// A non-positive limit uses the default of 15 per side.
func (s Service) OrganizationSankey(ctx context.Context, entityId string, limit int) (SankeyGraph, error) {
	ctx, span := tracer.Start(ctx, "OrganizationSankey")
	defer span.End()

	if limit <= 0 {
		limit = defaultSankeyFlowLimit
	}

	center := entityId
	entity, err := s.qry.GetEntity(ctx, entityId)
	if err == nil {
		center = entity.Name
	} else if !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return SankeyGraph{}, err
	}

	inflows, err := s.TopContributors(ctx, entityId, limit)
	if err != nil {
		return SankeyGraph{}, err
	}
	outflows, err := s.TopRecipients(ctx, entityId, limit)
	if err != nil {
		return SankeyGraph{}, err
	}

	return BuildSankey(center, inflows, outflows), nil
}

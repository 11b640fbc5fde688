package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/s0up4200/fffdata/fff"
)

type matchInput struct {
	MatchNumber int64 `json:"match_number" jsonschema:"FFF match number (ma_no)"`
}

type clubInput struct {
	ClubNumber int64 `json:"club_number" jsonschema:"FFF club number (cl_no)"`
}

type endpointInput struct {
	Endpoint string `json:"endpoint" jsonschema:"Endpoint name, as listed by fff_list_endpoints"`
	ID       int64  `json:"id" jsonschema:"Match, club, competition, team, licence or pitch number"`
	Phase    int64  `json:"phase,omitempty" jsonschema:"Competition phase number, for pools, standings and schedule"`
	Pool     int64  `json:"pool,omitempty" jsonschema:"Pool number, for standings and schedule"`
}

type listInput struct{}

type lookupResult struct {
	Found bool `json:"found"`
	Data  any  `json:"data,omitempty"`
}

type endpointInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UsesPhase   bool   `json:"uses_phase"`
	UsesPool    bool   `json:"uses_pool"`
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.mcpServer, &sdkmcp.Tool{
		Name:        "fff_get_match",
		Description: "Get a match by number: teams, score, status, competition, venue and officials. Returns found=false when the match does not exist.",
	}, s.getMatch)

	sdkmcp.AddTool(s.mcpServer, &sdkmcp.Tool{
		Name:        "fff_get_club",
		Description: "Get a club by number: name, district, address, contacts and pitches. Returns found=false when the club does not exist.",
	}, s.getClub)

	sdkmcp.AddTool(s.mcpServer, &sdkmcp.Tool{
		Name:        "fff_get_endpoint",
		Description: "Fetch the raw JSON of a catalog endpoint such as standings, schedule or roster. Returns found=false when the resource does not exist.",
	}, s.getEndpoint)

	sdkmcp.AddTool(s.mcpServer, &sdkmcp.Tool{
		Name:        "fff_list_endpoints",
		Description: "List the endpoint catalog usable with fff_get_endpoint",
	}, s.listEndpoints)
}

func (s *Server) getMatch(ctx context.Context, _ *sdkmcp.CallToolRequest, in matchInput) (*sdkmcp.CallToolResult, any, error) {
	m, err := s.api.GetMatch(ctx, in.MatchNumber)
	if err != nil {
		return nil, nil, err
	}
	if m == nil {
		return jsonResult(lookupResult{})
	}
	return jsonResult(lookupResult{Found: true, Data: m})
}

func (s *Server) getClub(ctx context.Context, _ *sdkmcp.CallToolRequest, in clubInput) (*sdkmcp.CallToolResult, any, error) {
	c, err := s.api.GetClub(ctx, in.ClubNumber)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return jsonResult(lookupResult{})
	}
	return jsonResult(lookupResult{Found: true, Data: c})
}

func (s *Server) getEndpoint(ctx context.Context, _ *sdkmcp.CallToolRequest, in endpointInput) (*sdkmcp.CallToolResult, any, error) {
	ep, ok := fff.LookupEndpoint(in.Endpoint)
	if !ok {
		return nil, nil, fmt.Errorf("unknown endpoint %q", in.Endpoint)
	}
	if in.ID <= 0 {
		return nil, nil, &fff.InvalidIdentifierError{Resource: ep.Name, Value: strconv.FormatInt(in.ID, 10)}
	}
	if ep.UsesPhase && in.Phase <= 0 {
		return nil, nil, fmt.Errorf("endpoint %q requires a phase", ep.Name)
	}
	if ep.UsesPool && in.Pool <= 0 {
		return nil, nil, fmt.Errorf("endpoint %q requires a pool", ep.Name)
	}

	data, err := s.api.Get(ctx, ep.Build(fff.PathParams{ID: in.ID, Phase: in.Phase, Pool: in.Pool}))
	if err != nil {
		return nil, nil, err
	}
	if data == nil {
		return jsonResult(lookupResult{})
	}
	return jsonResult(lookupResult{Found: true, Data: data})
}

func (s *Server) listEndpoints(context.Context, *sdkmcp.CallToolRequest, listInput) (*sdkmcp.CallToolResult, any, error) {
	catalog := fff.Endpoints()
	out := make([]endpointInfo, 0, len(catalog))
	for _, ep := range catalog {
		out = append(out, endpointInfo{
			Name:        ep.Name,
			Description: ep.Description,
			UsesPhase:   ep.UsesPhase,
			UsesPool:    ep.UsesPool,
		})
	}
	return jsonResult(out)
}

// jsonResult wraps v as the JSON text content of a tool result
func jsonResult(v any) (*sdkmcp.CallToolResult, any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode tool result: %w", err)
	}

	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: string(b)},
		},
	}, nil, nil
}

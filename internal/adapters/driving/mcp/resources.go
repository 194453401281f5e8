package mcp

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/caopengau/aiready-skills/internal/adapters/driven/storage/seed"
)

const uriScheme = "minishop://"

// seedResource is the JSON shape served for the fixture dataset.
type seedResource struct {
	Users  []UserOutput  `json:"users"`
	Orders []OrderOutput `json:"orders"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the fixture dataset.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "seed",
		Name:        "seed-data",
		Description: "The fixture dataset every backend starts from",
		MIMEType:    "application/json",
	}, s.handleSeedResource)

	// Template for individual users.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "users/{id}",
		Name:        "user",
		Description: "A single user by ID",
		MIMEType:    "application/json",
	}, s.handleUserResource)

	// Template for individual orders.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "orders/{id}",
		Name:        "order",
		Description: "A single order by ID",
		MIMEType:    "application/json",
	}, s.handleOrderResource)
}

// handleSeedResource serves the built-in fixture dataset. It reads from
// the seed package directly, so it shows the starting state rather than
// the live store contents.
func (s *Server) handleSeedResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	users := seed.Users()
	orders := seed.Orders()

	payload := seedResource{
		Users:  make([]UserOutput, len(users)),
		Orders: make([]OrderOutput, len(orders)),
	}
	for i := range users {
		payload.Users[i] = *userOutput(&users[i])
	}
	for i := range orders {
		payload.Orders[i] = *orderOutput(&orders[i])
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

// handleUserResource serves a single live user as JSON.
func (s *Server) handleUserResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, ok := resourceID(req.Params.URI, "users/")
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	user, err := s.ports.Users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(userOutput(user), "", "  ")
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

// handleOrderResource serves a single live order as JSON.
func (s *Server) handleOrderResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, ok := resourceID(req.Params.URI, "orders/")
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	order, err := s.ports.Orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(orderOutput(order), "", "  ")
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

// resourceID extracts the numeric ID from a URI of the form
// minishop://<prefix><id>.
func resourceID(uri, prefix string) (int, bool) {
	rest, found := strings.CutPrefix(uri, uriScheme+prefix)
	if !found || rest == "" {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return id, true
}

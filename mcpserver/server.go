// Package mcpserver exposes the FFF client as Model Context Protocol tools
// over stdio.
package mcpserver

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/s0up4200/fffdata/fff"
)

// Name is the implementation name announced to MCP clients
const Name = "fffdata"

// Server serves FFF lookups to MCP clients
type Server struct {
	api       fff.API
	logger    zerolog.Logger
	mcpServer *sdkmcp.Server
}

// NewServer creates a server backed by api
func NewServer(api fff.API, logger zerolog.Logger, version string) (*Server, error) {
	if api == nil {
		return nil, fmt.Errorf("fff API is required")
	}

	s := &Server{
		api:    api,
		logger: logger.With().Str("component", "mcp").Logger(),
	}

	s.mcpServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{
			Name:    Name,
			Version: version,
		},
		nil,
	)
	s.mcpServer.AddReceivingMiddleware(loggingMiddleware(s.logger))
	s.registerTools()

	return s, nil
}

// Run serves requests on stdin/stdout until ctx is done or the client
// disconnects
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info().Msg("Serving MCP over stdio")
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}

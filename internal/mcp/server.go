// ABOUTME: MCP server setup for the coach session.
// ABOUTME: Wraps the MCP server around one in-memory session.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/coach/internal/session"
)

// Server wraps the MCP server with session access. The session, and with it
// all logged entries and totals, lives for the life of the server process.
type Server struct {
	mcpServer *mcp.Server
	session   *session.Session
}

// NewServer creates a new MCP server over the given session.
func NewServer(sess *session.Session) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "coach",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		session:   sess,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

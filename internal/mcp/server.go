// Package mcp exposes the godscan engine as a Model Context Protocol server,
// adapted from panbanda-omen's internal/mcpserver wiring.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kestrelcode/godscan/internal/config"
	"github.com/kestrelcode/godscan/pkg/parser"
)

// Server wraps the MCP server and registers godscan's detection tool.
type Server struct {
	server *mcp.Server
}

// NewServer creates an MCP server with the detect_god_objects tool
// registered, using cfg as the default config for every call that does not
// name its own config path.
func NewServer(version string, cfg *config.Config) *Server {
	if version == "" {
		version = "dev"
	}
	underlying := mcp.NewServer(
		&mcp.Implementation{
			Name:    "godscan",
			Version: version,
		},
		nil,
	)

	s := &Server{server: underlying}
	s.registerTools(cfg)
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools(cfg *config.Config) {
	registry := parser.DefaultRegistry()

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "detect_god_objects",
		Description: describeDetectGodObjects(),
	}, makeDetectHandler(registry, cfg))
}

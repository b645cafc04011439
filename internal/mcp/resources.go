// ABOUTME: MCP resource implementations for the movement library.
// ABOUTME: Provides lift://movements, the full JSON export.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/lift/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const movementsURI = "lift://movements"

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         movementsURI,
		Name:        "Movement Library",
		Description: "Every movement in the library as a versioned JSON export",
		MIMEType:    "application/json",
	}, s.handleMovementsResource)
}

func (s *Server) handleMovementsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := storage.ExportJSON(ctx, s.repo)
	if err != nil {
		return nil, fmt.Errorf("failed to export movements: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      movementsURI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// ABOUTME: MCP tool implementations for the movement library.
// ABOUTME: Provides add, list, get, and delete operations over movements.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/lift/internal/ctxlog"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_movement",
		Description: "Add a movement to the library. is_upper and require_weight accept 1, true or yes; anything else is false",
	}, s.handleAddMovement)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_movements",
		Description: "List every movement in the library",
	}, s.handleListMovements)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_movement",
		Description: "Get a movement by exact name",
	}, s.handleGetMovement)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_movement",
		Description: "Delete the movement with this exact name",
	}, s.handleDeleteMovement)
}

// Tool input/output types

type addMovementInput struct {
	Name          string `json:"name" jsonschema:"Movement name, unique in the library"`
	IsUpper       string `json:"is_upper" jsonschema:"Upper body movement (1, true or yes)"`
	RequireWeight string `json:"require_weight" jsonschema:"Movement is loaded with weight (1, true or yes)"`
	ID            int64  `json:"id,omitempty" jsonschema:"Explicit id, assigned by the store when omitted"`
}

type movementOutput struct {
	Movement *models.Movement `json:"movement"`
	Message  string           `json:"message"`
}

type nameInput struct {
	Name string `json:"name" jsonschema:"Exact movement name"`
}

type listMovementsInput struct{}

type listMovementsOutput struct {
	Movements []*models.Movement `json:"movements"`
	Count     int                `json:"count"`
}

type deleteOutput struct {
	Deleted int64  `json:"deleted"`
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleAddMovement(ctx context.Context, req *mcp.CallToolRequest, input addMovementInput) (*mcp.CallToolResult, movementOutput, error) {
	if input.Name == "" {
		return nil, movementOutput{}, errors.New("name is required")
	}

	m := models.NewMovement(input.Name, models.ParseBool(input.IsUpper), models.ParseBool(input.RequireWeight))
	if input.ID != 0 {
		m.WithID(input.ID)
	}
	ctxlog.FromContext(ctx).Debug("add_movement", "movement", m.String())

	if err := s.repo.CreateMovement(ctx, m); err != nil {
		return nil, movementOutput{}, fmt.Errorf("failed to add movement: %w", err)
	}

	return nil, movementOutput{
		Movement: m,
		Message:  fmt.Sprintf("Added %s (ID: %d)", m.Name, m.ID),
	}, nil
}

func (s *Server) handleListMovements(ctx context.Context, req *mcp.CallToolRequest, input listMovementsInput) (*mcp.CallToolResult, listMovementsOutput, error) {
	movements, err := s.repo.ListMovements(ctx)
	if err != nil {
		return nil, listMovementsOutput{}, fmt.Errorf("failed to list movements: %w", err)
	}

	return nil, listMovementsOutput{Movements: movements, Count: len(movements)}, nil
}

func (s *Server) handleGetMovement(ctx context.Context, req *mcp.CallToolRequest, input nameInput) (*mcp.CallToolResult, movementOutput, error) {
	m, err := s.repo.GetMovement(ctx, input.Name)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, movementOutput{}, fmt.Errorf("movement not found: %s", input.Name)
	}
	if err != nil {
		return nil, movementOutput{}, fmt.Errorf("failed to get movement: %w", err)
	}

	return nil, movementOutput{Movement: m, Message: m.String()}, nil
}

func (s *Server) handleDeleteMovement(ctx context.Context, req *mcp.CallToolRequest, input nameInput) (*mcp.CallToolResult, deleteOutput, error) {
	ctxlog.FromContext(ctx).Debug("del_movement", "name", input.Name)

	n, err := s.repo.DeleteMovement(ctx, input.Name)
	if err != nil {
		return nil, deleteOutput{}, fmt.Errorf("failed to delete movement: %w", err)
	}

	msg := fmt.Sprintf("Deleted %s", input.Name)
	if n == 0 {
		msg = fmt.Sprintf("No movement named %s", input.Name)
	}
	return nil, deleteOutput{Deleted: n, Message: msg}, nil
}

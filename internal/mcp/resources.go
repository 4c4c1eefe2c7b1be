// ABOUTME: MCP resource implementations for the nutrition journal.
// ABOUTME: Provides nosh://today and nosh://foods resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/summaries"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// nosh://today - today's entries and summaries
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nosh://today",
		Name:        "Today's Journal",
		Description: "Today's journal entries with per-meal and day macro totals",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// nosh://foods - live food catalog with tables
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nosh://foods",
		Name:        "Food Catalog",
		Description: "Live foods with their nutritional tables",
		MIMEType:    "application/json",
	}, s.handleFoodsResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.Day(time.Now())

	entries, err := s.repo.ListEntriesByDate(today)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	result, err := summaries.ComputeForDate(s.repo, today)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summaries: %w", err)
	}

	payload := map[string]interface{}{
		"date":      today.Format(models.DateOnly),
		"entries":   entries,
		"summaries": result.Rounded(),
		"counts": map[string]int{
			"entries": len(entries),
		},
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "nosh://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleFoodsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	foods, err := s.repo.ListFoods(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}

	catalog := make([]map[string]interface{}, 0, len(foods))
	for _, f := range foods {
		tables, err := s.repo.ListNutritablesByFood(f.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list tables: %w", err)
		}
		catalog = append(catalog, map[string]interface{}{
			"id":     f.ID,
			"name":   f.Name,
			"tables": tables,
		})
	}

	payload := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"foods":        catalog,
		"count":        len(catalog),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "nosh://foods",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

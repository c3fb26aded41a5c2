// ABOUTME: MCP resource implementations for the coach session.
// ABOUTME: Provides coach://status and coach://log resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/coach/internal/ledger"
	"github.com/harperreed/coach/internal/models"
)

func (s *Server) registerResources() {
	// coach://status - Dashboard figures: targets, totals, progress
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "coach://status",
		Name:        "Daily Status",
		Description: "Calorie targets, consumption totals, and progress for today",
		MIMEType:    "application/json",
	}, s.handleStatusResource)

	// coach://log - Everything logged this session, grouped by category
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "coach://log",
		Name:        "Today's Log",
		Description: "All meals, workouts, and water logged this session",
		MIMEType:    "application/json",
	}, s.handleLogResource)
}

// Resource handlers

func (s *Server) handleStatusResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	v := s.session.Status()
	out := s.session.Energy()

	result := map[string]interface{}{
		"profile": s.session.Profile().Summary(),
		"bmi": map[string]interface{}{
			"value":    out.BMI,
			"category": out.BMICategory,
		},
		"targets": map[string]interface{}{
			"base":     v.BaseTarget,
			"adjusted": v.AdjustedTarget,
		},
		"consumed":          v.Totals,
		"calories_burned":   v.CaloriesBurned,
		"remaining":         v.CaloriesRemaining,
		"progress_fraction": v.ProgressFraction,
		"water_ml":          v.WaterMl,
	}

	return jsonResource("coach://status", result)
}

func (s *Server) handleLogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	v := s.session.Status()

	meals := make(map[string][]map[string]interface{})
	for _, mc := range models.AllMealCategories {
		entries := v.Meals[mc]
		if len(entries) == 0 {
			continue
		}
		for _, m := range entries {
			meals[string(mc)] = append(meals[string(mc)], map[string]interface{}{
				"id":          m.ID.String()[:8],
				"description": m.Description,
				"nutrition":   m.Nutrition,
			})
		}
	}

	var workouts []map[string]interface{}
	for _, w := range v.Workouts {
		workouts = append(workouts, map[string]interface{}{
			"id":              w.ID.String()[:8],
			"description":     w.Description,
			"calories_burned": w.CaloriesBurned,
		})
	}

	result := map[string]interface{}{
		"meals":    meals,
		"workouts": workouts,
		"water_ml": v.WaterMl,
		"counts": map[string]int{
			"meals":    mealCount(v),
			"workouts": len(v.Workouts),
		},
	}

	return jsonResource("coach://log", result)
}

func jsonResource(uri string, result interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func mealCount(v ledger.View) int {
	n := 0
	for _, entries := range v.Meals {
		n += len(entries)
	}
	return n
}

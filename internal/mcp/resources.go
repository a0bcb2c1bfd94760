package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/repwise/internal/models"
)

func (h *handlers) weeklyOverview(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	dash, err := h.buildDashboard(ctx, string(models.ModeStrength), string(models.RangeWeek), "")
	if err != nil {
		return nil, err
	}

	overview := map[string]any{
		"cards":         dash.Cards,
		"minimum_strip": dash.MinimumStrip,
		"alerts":        dash.Alerts,
		"muscles":       dash.Muscles,
	}

	data, err := json.Marshal(overview)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

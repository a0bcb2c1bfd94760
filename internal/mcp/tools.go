package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/repwise/internal/models"
	"github.com/meltforce/repwise/internal/stats"
)

// --- Tool definitions ---

var toolGetDashboard = mcp.NewTool("get_dashboard",
	mcp.WithDescription("Build the full analytics dashboard for one training philosophy. Returns summary cards, weekly series with baselines, breakdown tables, per-muscle coverage, and alerts."),
	mcp.WithString("mode", mcp.Description("Training philosophy. Defaults to strength."), mcp.Enum("strength", "hypertrophy", "athletic")),
	mcp.WithString("range", mcp.Description("Display range. Defaults to month."), mcp.Enum("week", "month", "all")),
	mcp.WithString("filter", mcp.Description("Exercise filter: all exercises or pinned only. Defaults to all."), mcp.Enum("all", "pinned")),
)

var toolGetWeeklySeries = mcp.NewTool("get_weekly_series",
	mcp.WithDescription("Get one weekly metric series with its baseline and breakdown. Metric identifiers: tonnage, hard_sets, overload_events, heavy_load, top_set, rest_interval, density, rep_distribution, junk_volume."),
	mcp.WithString("metric", mcp.Required(), mcp.Description("Metric identifier")),
	mcp.WithString("mode", mcp.Description("Dashboard mode to resolve the metric in. Defaults to strength."), mcp.Enum("strength", "hypertrophy", "athletic")),
	mcp.WithString("range", mcp.Description("Display range. Defaults to month."), mcp.Enum("week", "month", "all")),
)

var toolGetMuscleCoverage = mcp.NewTool("get_muscle_coverage",
	mcp.WithDescription("Per-muscle weekly hard-set series against fixed target floors, with each muscle's top contributing exercises and whether it counts as covered this week."),
	mcp.WithString("range", mcp.Description("Display range. Defaults to month."), mcp.Enum("week", "month", "all")),
)

var toolListSessions = mcp.NewTool("list_sessions",
	mcp.WithDescription("List training sessions in a date range with set and exercise counts."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

// --- Handlers ---

// buildDashboard loads the snapshot and runs the engine for one request.
func (h *handlers) buildDashboard(ctx context.Context, modeStr, rangeStr, filterStr string) (*stats.StatsDashboardResult, error) {
	mode, err := models.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}
	rng, err := models.ParseDisplayRange(rangeStr)
	if err != nil {
		return nil, err
	}
	filter, err := models.ParseExerciseFilter(filterStr)
	if err != nil {
		return nil, err
	}

	uid := UserIDFromContext(ctx)
	snapshot, err := h.db.LoadSnapshot(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	pinned, err := h.db.GetPinnedExercises(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("loading pins: %w", err)
	}
	unit, err := h.db.GetPreferredUnit(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("loading unit preference: %w", err)
	}

	return stats.BuildDashboard(snapshot, h.classifier, stats.Request{
		Mode:   mode,
		Range:  rng,
		Filter: filter,
		Unit:   unit,
		Pinned: pinned,
		Now:    time.Now(),
	}), nil
}

func (h *handlers) getDashboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dash, err := h.buildDashboard(ctx,
		req.GetString("mode", ""), req.GetString("range", ""), req.GetString("filter", ""))
	if err != nil {
		h.log.Error("mcp get_dashboard", "error", err)
		return mcp.NewToolResultError("dashboard build failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(dash)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeeklySeries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	metric, err := req.RequireString("metric")
	if err != nil {
		return mcp.NewToolResultError("metric parameter is required"), nil
	}

	dash, err := h.buildDashboard(ctx, req.GetString("mode", ""), req.GetString("range", ""), "")
	if err != nil {
		h.log.Error("mcp get_weekly_series", "error", err)
		return mcp.NewToolResultError("dashboard build failed: " + err.Error()), nil
	}

	detail, ok := dash.Details[metric]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("metric %q not available in %s mode", metric, dash.Mode)), nil
	}

	result, err := mcp.NewToolResultJSON(detail)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getMuscleCoverage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dash, err := h.buildDashboard(ctx, string(models.ModeHypertrophy), req.GetString("range", ""), "")
	if err != nil {
		h.log.Error("mcp get_muscle_coverage", "error", err)
		return mcp.NewToolResultError("dashboard build failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(dash.Muscles)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	sessions, err := h.db.ListSessions(ctx, uid, start, end)
	if err != nil {
		h.log.Error("mcp list_sessions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// defaultTimeRange returns start/end defaulting to the last 30 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -30)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// Package mcp exposes the analytics dashboard to MCP clients so an assistant
// can query training metrics directly.
package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/repwise/internal/stats"
	"github.com/meltforce/repwise/internal/storage"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(db *storage.DB, classifier stats.Classifier, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Repwise", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Repwise training analytics server. Query weekly training metrics, baselines, per-muscle coverage, and alerts across strength, hypertrophy, and athletic dashboards. All data is scoped to the authenticated user."),
	)

	h := &handlers{db: db, classifier: classifier, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetDashboard, Handler: h.getDashboard},
		server.ServerTool{Tool: toolGetWeeklySeries, Handler: h.getWeeklySeries},
		server.ServerTool{Tool: toolGetMuscleCoverage, Handler: h.getMuscleCoverage},
		server.ServerTool{Tool: toolListSessions, Handler: h.listSessions},
	)

	s.AddResources(
		server.ServerResource{Resource: resWeeklyOverview, Handler: h.weeklyOverview},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	db         *storage.DB
	classifier stats.Classifier
	log        *slog.Logger
}

var resWeeklyOverview = mcp.NewResource(
	"repwise://weekly_overview",
	"Weekly Overview",
	mcp.WithResourceDescription("This week's key training metrics: tonnage, hard sets, new records, muscle coverage, and active alerts"),
	mcp.WithMIMEType("application/json"),
)

package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/importer"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/logger"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/storage"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/tools"
)

const (
	Name    = "linkedin-mcp-server"
	Version = "1.0.0"
)

// New creates a fully configured MCP server with all tools registered.
// The caller keeps ownership of store.
func New(store *storage.Store, log logger.Logger) *mcp.Server {
	pt := &tools.ProfileTools{Store: store, Log: log}
	it := &tools.ImportTools{Importer: importer.New(store, log), Log: log}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    Name,
		Version: Version,
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get LinkedIn profile information",
	}, pt.GetProfile)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_experience",
		Description: "Get work experience history",
	}, pt.GetExperience)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_certifications",
		Description: "Get certifications and licenses",
	}, pt.GetCertifications)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_skills",
		Description: "Get skills and endorsements",
	}, pt.GetSkills)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_recent_posts",
		Description: "Get recent LinkedIn posts, newest first",
	}, pt.GetRecentPosts)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_connections",
		Description: "Search connections by name, company, or headline (empty query lists all)",
	}, pt.SearchConnections)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_sync_status",
		Description: "Get last sync timestamp and per-entity data status",
	}, pt.GetSyncStatus)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "import_data",
		Description: "Import data from a JSON or YAML file (provide file path)",
	}, it.ImportData)

	return srv
}

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/apperror"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/logger"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/storage"
)

// NoProfileMessage is returned by get_profile before anything was imported.
const NoProfileMessage = "No profile data found. Please import your LinkedIn data first using the import_data tool or run: linkedin-import template"

// ProfileTools holds references needed by the read-side tool handlers.
type ProfileTools struct {
	Store *storage.Store
	Log   logger.Logger
}

// --- Input types ---

type GetRecentPostsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Number of posts to retrieve (default: 10)"`
}

type SearchConnectionsInput struct {
	Query string `json:"query" jsonschema:"Search query matched against name, headline and company"`
}

// --- Handlers ---

func (t *ProfileTools) GetProfile(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	profile, err := t.Store.GetProfile(ctx)
	if err != nil {
		return t.fail("get_profile", err), nil, nil
	}
	if profile == nil {
		return toolText(NoProfileMessage), nil, nil
	}
	return toolJSON(profile)
}

func (t *ProfileTools) GetExperience(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	experience, err := t.Store.GetExperience(ctx)
	if err != nil {
		return t.fail("get_experience", err), nil, nil
	}
	return toolJSON(experience)
}

func (t *ProfileTools) GetCertifications(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	certs, err := t.Store.GetCertifications(ctx)
	if err != nil {
		return t.fail("get_certifications", err), nil, nil
	}
	return toolJSON(certs)
}

func (t *ProfileTools) GetSkills(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	skills, err := t.Store.GetSkills(ctx)
	if err != nil {
		return t.fail("get_skills", err), nil, nil
	}
	return toolJSON(skills)
}

func (t *ProfileTools) GetRecentPosts(ctx context.Context, _ *mcp.CallToolRequest, input GetRecentPostsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit < 0 {
		return toolFailure("get_recent_posts", apperror.NewInvalidInput("limit must not be negative", nil)), nil, nil
	}
	posts, err := t.Store.GetRecentPosts(ctx, input.Limit)
	if err != nil {
		return t.fail("get_recent_posts", err), nil, nil
	}
	return toolJSON(posts)
}

// SearchConnections accepts an empty query, which lists every connection.
func (t *ProfileTools) SearchConnections(ctx context.Context, _ *mcp.CallToolRequest, input SearchConnectionsInput) (*mcp.CallToolResult, any, error) {
	conns, err := t.Store.SearchConnections(ctx, input.Query)
	if err != nil {
		return t.fail("search_connections", err), nil, nil
	}
	return toolJSON(conns)
}

func (t *ProfileTools) GetSyncStatus(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	status, err := t.Store.SyncStatus(ctx)
	if err != nil {
		return t.fail("get_sync_status", err), nil, nil
	}
	return toolJSON(status)
}

func (t *ProfileTools) fail(tool string, err error) *mcp.CallToolResult {
	t.Log.Error("tool failed", err, zap.String("tool", tool))
	return toolFailure(tool, err)
}

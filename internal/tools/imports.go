package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/apperror"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/importer"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/logger"
)

// ImportTools holds references needed by the import tool handler.
type ImportTools struct {
	Importer *importer.Importer
	Log      logger.Logger
}

type ImportDataInput struct {
	FilePath string `json:"filePath" jsonschema:"Path to a JSON (or YAML) file with LinkedIn data"`
}

// ImportData runs the manual-file import. The path is used as given.
func (t *ImportTools) ImportData(ctx context.Context, _ *mcp.CallToolRequest, input ImportDataInput) (*mcp.CallToolResult, any, error) {
	path := strings.TrimSpace(input.FilePath)
	if path == "" {
		return toolFailure("import_data", apperror.NewInvalidInput("filePath parameter is required and must be a string", nil)), nil, nil
	}

	report, err := t.Importer.ImportManual(ctx, path)
	if err != nil {
		t.Log.Error("import failed", err, zap.String("path", path))
		return toolFailure("import_data", err), nil, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Data imported successfully from: %s", path)
	for _, w := range report.Written {
		fmt.Fprintf(&b, "\n- %s: %d", w.Entity, w.Count)
	}
	if n := len(report.Warnings); n > 0 {
		fmt.Fprintf(&b, "\n%d value(s) fell back to defaults", n)
	}
	return toolText(b.String()), nil, nil
}

package mcpsrv

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolName is the only tool this server advertises
const ToolName = "csv_export"

// csvExportTool describes the csv_export tool and its parameter schema
func csvExportTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolName,
		Description: "Export data to CSV format and save it to the export directory",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"records": {
					Type:        "array",
					Description: "Array of objects to export as CSV",
					Items: &jsonschema.Schema{
						Type: "object",
					},
				},
				"filename": {
					Type:        "string",
					Description: "Filename for the exported file (without extension)",
					Default:     json.RawMessage(`"output"`),
				},
				"description": {
					Type:        "string",
					Description: "Optional description of the file contents",
				},
				"delimiter": {
					Type:        "string",
					Description: "CSV delimiter character",
					Default:     json.RawMessage(`","`),
				},
				"includeHeaders": {
					Type:        "boolean",
					Description: "Whether to include column headers",
					Default:     json.RawMessage(`true`),
				},
			},
			Required: []string{"records"},
		},
	}
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const preferencesURI = "fixspot://preferences"

// registerResources registers all fixspot MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *services) {
	s.AddResource(
		mcplib.NewResource(
			preferencesURI,
			"Repository Preferences",
			mcplib.WithResourceDescription("Remembered scanned-site hostname to owner/repo mappings"),
			mcplib.WithMIMEType("application/json"),
		),
		handlePreferencesResource(svc),
	)
}

func handlePreferencesResource(svc *services) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		_, prefs, err := svc.prefs.All()
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(prefs, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling preferences: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      preferencesURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

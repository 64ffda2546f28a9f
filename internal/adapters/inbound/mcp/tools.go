package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/fixspot/internal/application"
	"github.com/abdidvp/fixspot/internal/domain/dialect"
)

// registerTools registers all fixspot MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *services) {
	// 1. fixspot_locate
	s.AddTool(
		mcplib.NewTool("fixspot_locate",
			mcplib.WithDescription("Find the line range of a project file that holds the original HTML markup. Returns null when nothing matches and the lines must be chosen by hand."),
			mcplib.WithString("file", mcplib.Required(), mcplib.Description("File path relative to the project root")),
			mcplib.WithString("original", mcplib.Required(), mcplib.Description("Original HTML snippet as rendered")),
			mcplib.WithString("text", mcplib.Description("Visible text to anchor on (defaults to the snippet's text content)")),
			mcplib.WithString("selector", mcplib.Description("CSS selector of the element; its class tokens join the snippet's classes")),
		),
		handleLocate(svc),
	)

	// 2. fixspot_rank
	s.AddTool(
		mcplib.NewTool("fixspot_rank",
			mcplib.WithDescription("Rank the project's source files by how likely each one holds the original markup"),
			mcplib.WithString("original", mcplib.Required(), mcplib.Description("Original HTML snippet as rendered")),
			mcplib.WithString("text", mcplib.Description("Visible text to anchor on")),
			mcplib.WithNumber("limit", mcplib.Description("Maximum files to return (defaults to max_candidates)")),
		),
		handleRank(svc),
	)

	// 3. fixspot_apply
	s.AddTool(
		mcplib.NewTool("fixspot_apply",
			mcplib.WithDescription("Substitute fixed markup into a project file. Give either original (searched for, never guessed when ambiguous) or line_start/line_end. Returns the result and a unified patch."),
			mcplib.WithString("file", mcplib.Required(), mcplib.Description("File path relative to the project root")),
			mcplib.WithString("fixed", mcplib.Required(), mcplib.Description("Corrected HTML snippet")),
			mcplib.WithString("original", mcplib.Description("Original HTML snippet to replace")),
			mcplib.WithNumber("line_start", mcplib.Description("First line to replace (1-based)")),
			mcplib.WithNumber("line_end", mcplib.Description("Last line to replace, inclusive")),
			mcplib.WithBoolean("write", mcplib.Description("Write the result back to the file")),
		),
		handleApply(svc),
	)

	// 4. fixspot_transform
	s.AddTool(
		mcplib.NewTool("fixspot_transform",
			mcplib.WithDescription("Convert HTML markup to JSX"),
			mcplib.WithString("markup", mcplib.Required(), mcplib.Description("HTML snippet")),
		),
		handleTransform(),
	)

	// 5. fixspot_get_preference
	s.AddTool(
		mcplib.NewTool("fixspot_get_preference",
			mcplib.WithDescription("Return the repository remembered for a scanned site"),
			mcplib.WithString("url", mcplib.Required(), mcplib.Description("Scanned page URL or hostname")),
		),
		handleGetPreference(svc),
	)

	// 6. fixspot_set_preference
	s.AddTool(
		mcplib.NewTool("fixspot_set_preference",
			mcplib.WithDescription("Remember the repository holding the source of a scanned site"),
			mcplib.WithString("url", mcplib.Required(), mcplib.Description("Scanned page URL or hostname")),
			mcplib.WithString("owner", mcplib.Required(), mcplib.Description("Repository owner")),
			mcplib.WithString("repo", mcplib.Required(), mcplib.Description("Repository name")),
		),
		handleSetPreference(svc),
	)

	// 7. fixspot_detect_preference
	s.AddTool(
		mcplib.NewTool("fixspot_detect_preference",
			mcplib.WithDescription("Remember the project's git origin remote as the repository of a scanned site"),
			mcplib.WithString("url", mcplib.Required(), mcplib.Description("Scanned page URL or hostname")),
		),
		handleDetectPreference(svc),
	)
}

func handleLocate(svc *services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		original, err := request.RequireString("original")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		args := request.GetArguments()
		text, _ := args["text"].(string)
		selector, _ := args["selector"].(string)

		path, err := svc.resolve(file)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		loc, err := svc.fix.LocateFile(path, original, text, selector)
		if err != nil {
			return errorResult(fmt.Sprintf("locate failed: %v", err)), nil
		}
		return jsonResult(loc)
	}
}

func handleRank(svc *services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		original, err := request.RequireString("original")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		args := request.GetArguments()
		text, _ := args["text"].(string)
		limit, _ := args["limit"].(float64)

		ranked, err := svc.rank.RankProject(ctx, svc.projectPath, original, text, int(limit))
		if err != nil {
			return errorResult(fmt.Sprintf("ranking failed: %v", err)), nil
		}

		// Contents are omitted; callers read the chosen file separately.
		type rankedFile struct {
			Path        string `json:"path"`
			Score       int    `json:"score"`
			Level       string `json:"level"`
			Details     string `json:"details"`
			IsBestMatch bool   `json:"is_best_match"`
		}
		out := make([]rankedFile, 0, len(ranked))
		for _, r := range ranked {
			out = append(out, rankedFile{
				Path:        r.Path,
				Score:       r.Confidence.Score,
				Level:       string(r.Confidence.Level),
				Details:     r.Confidence.Details,
				IsBestMatch: r.IsBestMatch,
			})
		}
		return jsonResult(out)
	}
}

func handleApply(svc *services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		fixed, err := request.RequireString("fixed")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		args := request.GetArguments()
		original, _ := args["original"].(string)
		lineStart, _ := args["line_start"].(float64)
		lineEnd, _ := args["line_end"].(float64)
		write, _ := args["write"].(bool)

		if original == "" && lineStart <= 0 {
			return errorResult("one of original or line_start is required"), nil
		}

		path, err := svc.resolve(file)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		out, err := svc.fix.ApplyFile(path, application.ApplyRequest{
			Original:  original,
			Fixed:     fixed,
			LineStart: int(lineStart),
			LineEnd:   int(lineEnd),
		}, write)
		if err != nil {
			return errorResult(fmt.Sprintf("apply failed: %v", err)), nil
		}
		out.Path = file
		return jsonResult(out)
	}
}

func handleTransform() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		markup, err := request.RequireString("markup")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return textResult(dialect.ToJSX(markup)), nil
	}
}

func handleGetPreference(svc *services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		host, err := application.HostOf(url)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		pref, found := svc.prefs.Lookup(url)
		return jsonResult(map[string]any{"host": host, "found": found, "preference": pref})
	}
}

func handleSetPreference(svc *services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		owner, err := request.RequireString("owner")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		repo, err := request.RequireString("repo")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		host, err := svc.prefs.Save(url, owner, repo)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return textResult(fmt.Sprintf("%s → %s/%s", host, owner, repo)), nil
	}
}

func handleDetectPreference(svc *services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		pref, err := svc.prefs.Detect(url, svc.projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(pref)
	}
}

// resolve joins a relative file argument to the project root and rejects
// paths that leave it.
func (svc *services) resolve(file string) (string, error) {
	root, err := filepath.Abs(svc.projectPath)
	if err != nil {
		return "", fmt.Errorf("resolving project path: %w", err)
	}
	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, filepath.FromSlash(file))
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file %q is outside the project", file)
	}
	return path, nil
}

// jsonResult marshals v to indented JSON and wraps it in a tool result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

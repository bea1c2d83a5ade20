package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tomblah/auto-prompt-generator-sub000/internal/engine"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/files"
)

// AddExtractContextTool registers the extract_context tool: marker-filtered
// file content with the enclosing block of the instruction marker appended.
func AddExtractContextTool(s *server.MCPServer, eng *engine.Engine) {
	tool := mcp.NewTool(
		"extract_context",
		mcp.WithDescription("Extract prompt-ready context from a source file: marker-filtered content plus the smallest enclosing function/method/block around the instruction marker."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Path of the source file to process")),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := parseStringArg(request, "file")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read %s: %v", path, err)), nil
		}
		out := eng.ProcessFile(path, string(content), filepath.Base(path))
		return mcp.NewToolResultText(out), nil
	})
}

// AddExtractTypesTool registers the extract_types tool: the sorted candidate
// type tokens of a file, as a JSON array.
func AddExtractTypesTool(s *server.MCPServer, eng *engine.Engine) {
	tool := mcp.NewTool(
		"extract_types",
		mcp.WithDescription("List the candidate type names referenced by a source file, de-duplicated and lexically sorted."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Path of the source file to scan")),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := parseStringArg(request, "file")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read %s: %v", path, err)), nil
		}
		tokens := eng.ExtractTypes(string(content))
		data, err := json.Marshal(tokens)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	})
}

// AddFindMarkerFilesTool registers the find_marker_files tool: the project
// files carrying the instruction marker.
func AddFindMarkerFilesTool(s *server.MCPServer, discovery *files.Discovery) {
	tool := mcp.NewTool(
		"find_marker_files",
		mcp.WithDescription("Find the project files that contain the instruction marker comment."),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		paths, err := discovery.FindInstructionFiles()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("discovery failed: %v", err)), nil
		}
		data, err := json.Marshal(paths)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	})
}

// parseStringArg extracts a required string argument from an MCP request.
func parseStringArg(request mcp.CallToolRequest, key string) (string, error) {
	argsMap, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid arguments format")
	}
	val, ok := argsMap[key].(string)
	if !ok || val == "" {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	return val, nil
}

// Package mcpserver exposes langcolor's lookups as MCP tools over stdio,
// so editor agents can resolve language colors without shelling out.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"langcolor/internal/linguist"
	"langcolor/internal/palette"
	"langcolor/pkg/logging"
)

// Server wraps an MCP server around the language color table.
type Server struct {
	table  *linguist.Table
	space  palette.Space
	server *server.MCPServer
}

// NewServer creates the MCP server and registers the lookup tools.
func NewServer(table *linguist.Table, space palette.Space, version string) *Server {
	s := &Server{
		table: table,
		space: space,
	}

	mcpServer := server.NewMCPServer(
		"langcolor",
		version,
		server.WithToolCapabilities(false),
	)
	mcpServer.AddTools(s.tools()...)
	s.server = mcpServer

	return s
}

// ServeStdio blocks serving MCP requests on stdin/stdout until the
// client disconnects.
func (s *Server) ServeStdio() error {
	logging.Info("MCPServer", "Serving langcolor tools over stdio")
	return server.ServeStdio(s.server)
}

func (s *Server) tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("language_color",
				mcp.WithDescription("Look up the GitHub Linguist display color for a programming language, with the nearest xterm-256 palette index"),
				mcp.WithString("query",
					mcp.Required(),
					mcp.Description("Language name, alias, or file extension to look up"),
				),
			),
			Handler: s.handleLanguageColor,
		},
		{
			Tool: mcp.NewTool("nearest_xterm",
				mcp.WithDescription("Find the nearest xterm-256 palette index for a hex RGB color"),
				mcp.WithString("color",
					mcp.Required(),
					mcp.Description("Color in #rrggbb hex notation"),
				),
			),
			Handler: s.handleNearestXterm,
		},
	}
}

func (s *Server) handleLanguageColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := stringArg(req, "query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	matches := s.table.Query(query)
	if len(matches) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no colors found for %q", query)), nil
	}

	var b strings.Builder
	for _, lang := range matches {
		idx := palette.NearestIn(lang.Color, s.space)
		fmt.Fprintf(&b, "%s: rgb %s, xterm %d\n", lang.Name, lang.Color.Hex(), idx)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleNearestXterm(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arg, err := stringArg(req, "color")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rgb, err := palette.ParseHex(arg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	idx := palette.NearestIn(rgb, s.space)
	return mcp.NewToolResultText(fmt.Sprintf("rgb %s, xterm %d (%s)", rgb.Hex(), idx, palette.Colors[idx].Hex())), nil
}

func stringArg(req mcp.CallToolRequest, name string) (string, error) {
	args, ok := req.Params.Arguments.(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("missing arguments")
	}
	val, ok := args[name].(string)
	if !ok || val == "" {
		return "", fmt.Errorf("missing required argument %q", name)
	}
	return val, nil
}

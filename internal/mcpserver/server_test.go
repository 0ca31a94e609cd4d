package mcpserver

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langcolor/internal/linguist"
	"langcolor/internal/palette"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	table, err := linguist.Load()
	require.NoError(t, err)
	return NewServer(table, palette.SpaceRGB, "test")
}

func callToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content")
	return textContent.Text
}

func TestLanguageColorTool(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleLanguageColor(context.Background(),
		callToolRequest("language_color", map[string]interface{}{"query": "rust"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "Rust")
	assert.Contains(t, text, "#dea584")
	assert.Contains(t, text, "xterm 180")
}

func TestLanguageColorToolNotFound(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleLanguageColor(context.Background(),
		callToolRequest("language_color", map[string]interface{}{"query": "not-a-real-language"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestLanguageColorToolMissingArgument(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleLanguageColor(context.Background(),
		callToolRequest("language_color", map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestNearestXtermTool(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleNearestXterm(context.Background(),
		callToolRequest("nearest_xterm", map[string]interface{}{"color": "#dea584"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "xterm 180")
	assert.Contains(t, text, "#d7af87")
}

func TestNearestXtermToolBadHex(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleNearestXterm(context.Background(),
		callToolRequest("nearest_xterm", map[string]interface{}{"color": "notahex"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestToolsRegistered(t *testing.T) {
	s := newTestServer(t)

	tools := s.tools()
	require.Len(t, tools, 2)
	assert.Equal(t, "language_color", tools[0].Tool.Name)
	assert.Equal(t, "nearest_xterm", tools[1].Tool.Name)
}

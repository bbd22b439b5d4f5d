package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcResponse struct {
	ID     json.RawMessage `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type toolCallResult struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	IsError bool `json:"isError"`
}

// rpc sends one JSON-RPC message through the mcp-go server.
func rpc(t *testing.T, s *Server, id int, method string, params any) rpcResponse {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	msg := s.mcpServer.HandleMessage(context.Background(), raw)
	require.NotNil(t, msg)

	out, err := json.Marshal(msg)
	require.NoError(t, err)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(out, &resp))
	return resp
}

func callTool(t *testing.T, s *Server, name string, args map[string]any) toolCallResult {
	t.Helper()
	resp := rpc(t, s, 2, "tools/call", map[string]any{"name": name, "arguments": args})
	require.Nil(t, resp.Error, "tool failures must not be protocol errors")

	var res toolCallResult
	require.NoError(t, json.Unmarshal(resp.Result, &res))
	return res
}

func TestNewServer(t *testing.T) {
	s, _ := newTestServer(t, "https://example.com/")

	require.NotNil(t, s)
	require.NotNil(t, s.mcpServer)
	assert.Equal(t, "https://example.com", s.client.BaseURL())
	assert.Equal(t, []string{
		"create_post", "edit_post", "list_posts", "get_post",
		"list_categories", "edit_category", "create_category", "delete_category",
	}, s.ToolNames())
}

func TestProtocol_Initialize(t *testing.T) {
	s, _ := newTestServer(t, "https://example.com")

	resp := rpc(t, s, 1, "initialize", map[string]any{
		"protocolVersion": "2025-03-26",
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "test", "version": "0"},
	})
	require.Nil(t, resp.Error)

	var result struct {
		ServerInfo struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"serverInfo"`
		Capabilities map[string]any `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.Equal(t, ServerName, result.ServerInfo.Name)
	assert.Equal(t, ServerVersion, result.ServerInfo.Version)
	assert.Contains(t, result.Capabilities, "tools")
}

func TestProtocol_ListTools(t *testing.T) {
	s, _ := newTestServer(t, "https://example.com")

	resp := rpc(t, s, 1, "tools/list", map[string]any{})
	require.Nil(t, resp.Error)

	var result struct {
		Tools []struct {
			Name        string `json:"name"`
			InputSchema struct {
				Properties map[string]map[string]any `json:"properties"`
				Required   []string                  `json:"required"`
			} `json:"inputSchema"`
			Annotations struct {
				ReadOnlyHint    *bool `json:"readOnlyHint"`
				DestructiveHint *bool `json:"destructiveHint"`
			} `json:"annotations"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Tools, 8)

	byName := map[string]int{}
	for i, tool := range result.Tools {
		byName[tool.Name] = i
	}

	required := map[string][]string{
		"create_post":     {"title", "content"},
		"edit_post":       {"id"},
		"get_post":        {"id"},
		"edit_category":   {"id", "name"},
		"create_category": {"name"},
		"delete_category": {"id"},
	}
	for name, want := range required {
		i, ok := byName[name]
		require.True(t, ok, "tool %s not advertised", name)
		assert.ElementsMatch(t, want, result.Tools[i].InputSchema.Required, name)
	}

	editPost := result.Tools[byName["edit_post"]].InputSchema.Properties
	assert.Equal(t, "array", editPost["categories"]["type"])
	assert.Equal(t, "string", editPost["status"]["type"])

	deleteCategory := result.Tools[byName["delete_category"]]
	assert.Equal(t, "boolean", deleteCategory.InputSchema.Properties["force"]["type"])
	require.NotNil(t, deleteCategory.Annotations.DestructiveHint)
	assert.True(t, *deleteCategory.Annotations.DestructiveHint)

	listPosts := result.Tools[byName["list_posts"]]
	require.NotNil(t, listPosts.Annotations.ReadOnlyHint)
	assert.True(t, *listPosts.Annotations.ReadOnlyHint)
}

func TestProtocol_CallToolSuccess(t *testing.T) {
	site := newFakeSite(t, http.StatusOK, `{"id":42,"title":{"rendered":"T"},"content":{"rendered":"C"}}`)
	s, _ := newTestServer(t, site.URL)

	res := callTool(t, s, "get_post", map[string]any{"id": "42"})

	assert.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	assert.Equal(t, "text", res.Content[0].Type)
	assert.Equal(t, "Title: T\nContent: C", res.Content[0].Text)
}

func TestProtocol_CallToolFailureIsToolResult(t *testing.T) {
	site := newFakeSite(t, http.StatusNotFound, `{"code":"rest_post_invalid_id"}`)
	s, _ := newTestServer(t, site.URL)

	res := callTool(t, s, "get_post", map[string]any{"id": "999"})

	assert.True(t, res.IsError)
	require.Len(t, res.Content, 1)
	assert.Equal(t, `fetch failed: {"code":"rest_post_invalid_id"}`, res.Content[0].Text)
}

func TestProtocol_InvalidArgumentsIsToolResult(t *testing.T) {
	site := newFakeSite(t, http.StatusOK, `{}`)
	s, _ := newTestServer(t, site.URL)

	res := callTool(t, s, "create_post", map[string]any{"title": "only title"})

	assert.True(t, res.IsError)
	require.Len(t, res.Content, 1)
	assert.Equal(t, "post failed: invalid arguments: content is required", res.Content[0].Text)
	assert.Empty(t, site.Hits())
}

func TestServe_ReturnsOnEOF(t *testing.T) {
	s, _ := newTestServer(t, "https://example.com")

	var out bytes.Buffer
	err := s.Serve(context.Background(), strings.NewReader(""), &out)
	assert.NoError(t, err)
}

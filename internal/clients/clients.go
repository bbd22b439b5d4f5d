// Package clients knows how MCP clients register stdio servers, so wpmcp
// can print a ready-to-paste configuration snippet for each of them.
package clients

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ServerKey is the name wpmcp is registered under in client configs.
const ServerKey = "wordpress"

type SnippetFormat int

const (
	// FormatMCPServers is the {"mcpServers": {...}} layout most clients use
	FormatMCPServers SnippetFormat = iota
	// FormatVSCode is VS Code's {"servers": {...}} layout with an explicit type
	FormatVSCode
)

type ClientConfig struct {
	// ID used on the command line
	ID string

	// Display name of the client
	Name string

	// Explanation
	Explanation string

	// Where the snippet belongs. Relative paths are relative to the project.
	ConfigPath string

	Format SnippetFormat
}

var ClientConfigs = []ClientConfig{
	{
		// https://modelcontextprotocol.io/quickstart/user
		ID:          "claude-desktop",
		Name:        "Claude Desktop",
		Explanation: "Add to claude_desktop_config.json (Settings > Developer > Edit Config) and restart the app.",
		ConfigPath:  "claude_desktop_config.json",
		Format:      FormatMCPServers,
	},
	{
		// https://docs.cursor.com/context/model-context-protocol
		ID:          "cursor",
		Name:        "Cursor",
		Explanation: "Project servers live in .cursor/mcp.json; global ones in ~/.cursor/mcp.json.",
		ConfigPath:  ".cursor/mcp.json",
		Format:      FormatMCPServers,
	},
	{
		// https://code.visualstudio.com/docs/copilot/chat/mcp-servers
		ID:          "vscode",
		Name:        "VS Code",
		Explanation: "Workspace servers live in .vscode/mcp.json and are used by Copilot agent mode.",
		ConfigPath:  ".vscode/mcp.json",
		Format:      FormatVSCode,
	},
	{
		// https://github.com/google-gemini/gemini-cli/blob/main/docs/tools/mcp-server.md
		ID:          "gemini",
		Name:        "Gemini CLI",
		Explanation: "Add to .gemini/settings.json in the project or ~/.gemini/settings.json.",
		ConfigPath:  ".gemini/settings.json",
		Format:      FormatMCPServers,
	},
	{
		// https://docs.windsurf.com/windsurf/cascade/mcp
		ID:          "windsurf",
		Name:        "Windsurf",
		Explanation: "Add to ~/.codeium/windsurf/mcp_config.json and refresh the MCP servers.",
		ConfigPath:  "~/.codeium/windsurf/mcp_config.json",
		Format:      FormatMCPServers,
	},
}

func GetAllClientConfigs() []ClientConfig {
	return ClientConfigs
}

// Find returns the client with the given ID, ignoring case.
func Find(id string) (ClientConfig, error) {
	for _, c := range ClientConfigs {
		if strings.EqualFold(c.ID, id) {
			return c, nil
		}
	}
	ids := make([]string, 0, len(ClientConfigs))
	for _, c := range ClientConfigs {
		ids = append(ids, c.ID)
	}
	return ClientConfig{}, fmt.Errorf("unknown client %q (known: %s)", id, strings.Join(ids, ", "))
}

// Launch describes how a client should start wpmcp.
type Launch struct {
	Command string
	Args    []string
	Env     map[string]string
}

type stdioServer struct {
	Type    string            `json:"type,omitempty"`
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// Snippet renders the JSON that registers launch with this client. Empty
// env values are dropped.
func (c ClientConfig) Snippet(launch Launch) ([]byte, error) {
	env := make(map[string]string, len(launch.Env))
	for k, v := range launch.Env {
		if v != "" {
			env[k] = v
		}
	}

	server := stdioServer{
		Command: launch.Command,
		Args:    launch.Args,
		Env:     env,
	}

	var doc any
	switch c.Format {
	case FormatVSCode:
		server.Type = "stdio"
		doc = map[string]any{"servers": map[string]stdioServer{ServerKey: server}}
	default:
		doc = map[string]any{"mcpServers": map[string]stdioServer{ServerKey: server}}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render %s config: %w", c.Name, err)
	}
	return append(data, '\n'), nil
}

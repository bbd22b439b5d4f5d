package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"wpmcp/internal/config"
	"wpmcp/internal/logging"
	"wpmcp/internal/wordpress"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/oklog/ulid/v2"
)

const (
	ServerName    = "wordpress-poster"
	ServerVersion = "1.0.0"
)

// Server represents an MCP server instance using mcp-go
type Server struct {
	logger    *logging.AppLogger
	client    *wordpress.Client
	mcpServer *server.MCPServer
	tools     []toolDef
	byName    map[string]*toolDef
}

// NewServer creates a server for the site described by cfg. Missing
// credentials are not checked here; calls fail with the site's response.
func NewServer(cfg *config.Config, logger *logging.AppLogger) *Server {
	httpClient := wordpress.NewHTTPClient(cfg.RequestTimeout)
	return NewServerWithClient(wordpress.NewClient(cfg.Credentials(), httpClient), logger)
}

// NewServerWithClient creates a server around an existing WordPress client
// and registers every tool.
func NewServerWithClient(client *wordpress.Client, logger *logging.AppLogger) *Server {
	s := &Server{
		logger: logger,
		client: client,
		tools:  catalog(),
	}
	s.byName = make(map[string]*toolDef, len(s.tools))

	s.mcpServer = server.NewMCPServer(ServerName, ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	for i := range s.tools {
		def := &s.tools[i]
		s.byName[def.tool.Name] = def
		s.mcpServer.AddTool(def.tool, s.handler(def.tool.Name))
	}

	s.logger.Debug("MCP server created", "tools", len(s.tools), "site", client.BaseURL())
	return s
}

// ToolNames returns the advertised tool names in order.
func (s *Server) ToolNames() []string {
	names := make([]string, 0, len(s.tools))
	for _, def := range s.tools {
		names = append(names, def.tool.Name)
	}
	return names
}

// Call dispatches one tool call. It never returns an error: every failure
// is reported through the Result.
func (s *Server) Call(ctx context.Context, name string, args map[string]any) Result {
	start := time.Now()
	callID := ulid.Make().String()

	var res Result
	def, ok := s.byName[name]
	if !ok {
		res = Result{Tool: name, Reason: ReasonUnknownTool, Label: "unknown tool", Text: name}
	} else {
		s.logger.Debug("Tool call", "tool", name, "call", callID)
		text, err := def.run(ctx, s.client, arguments(args))
		if err != nil {
			res = failure(name, def.label, err)
		} else {
			res = success(name, text)
		}
	}

	s.logger.LogToolCall(name, callID, res.OK, string(res.Reason), start)
	return res
}

func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		return s.Call(ctx, name, request.GetArguments()).CallToolResult(), nil
	}
}

// ServeStdio serves MCP on stdin/stdout until EOF or ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve serves MCP as newline-delimited JSON-RPC over in and out.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(s.logger.StandardLog())

	s.logger.Info("Serving MCP over stdio", "tools", len(s.tools), "site", s.client.BaseURL())
	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	s.logger.Info("MCP server stopped")
	return nil
}

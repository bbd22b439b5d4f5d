// Package mcp provides the Model Context Protocol (MCP) server for wpmcp using mcp-go.
//
// The server exposes a fixed set of WordPress content-management tools. Each
// tool call becomes exactly one authenticated request against the site's
// REST API, and the response is turned into a single text block.
//
// # Implementation
//
// The package uses the mcp-go library (github.com/mark3labs/mcp-go) for the
// protocol. Tool schemas are declared with mcp-go's builders; arguments are
// then checked again by the handlers because clients are not required to
// honour the schema.
//
// # Tools
//
//   - create_post: create a draft post
//   - edit_post: update title, content, status or categories of a post
//   - list_posts, get_post: read posts
//   - list_categories, edit_category, create_category, delete_category
//
// # Results
//
// Server.Call returns a Result tagged with OK and, on failure, a Reason:
//
//   - invalid_arguments: the call was rejected before any request was made
//   - remote_rejected: WordPress answered with a non-2xx status
//   - transport_error: no response was obtained
//   - unexpected_response: a 2xx body did not have the expected shape
//
// Failures reach clients as ordinary tool results with isError set and the
// text "<label>: <detail>". They are never JSON-RPC errors.
//
// # Usage
//
// The server is normally started as a subprocess by an MCP client:
//
//	wpmcp serve
//
// It reads JSON-RPC requests from stdin and writes responses to stdout until
// it receives EOF or is terminated. Logs go to stderr only. With --http the
// same tools are served over streamable HTTP at /mcp.
//
// # References
//
// - MCP Specification: https://modelcontextprotocol.io/specification
// - mcp-go Library: https://github.com/mark3labs/mcp-go
// - WordPress REST API: https://developer.wordpress.org/rest-api/reference/
package mcp

package mcp

import (
	"errors"

	"wpmcp/internal/wordpress"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
)

// Reason classifies a failed tool call.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonInvalidArguments   Reason = "invalid_arguments"
	ReasonRemoteRejected     Reason = "remote_rejected"
	ReasonTransport          Reason = "transport_error"
	ReasonUnexpectedResponse Reason = "unexpected_response"
	ReasonUnknownTool        Reason = "unknown_tool"
)

// Result is the outcome of one tool call. Text is the success message, or
// for failures the detail that follows Label (the remote body verbatim for
// ReasonRemoteRejected).
type Result struct {
	Tool       string
	OK         bool
	Reason     Reason
	StatusCode int // set for ReasonRemoteRejected
	Label      string
	Text       string
}

// String renders the result as the single text block clients receive.
func (r Result) String() string {
	if r.OK {
		return r.Text
	}
	return r.Label + ": " + r.Text
}

// CallToolResult converts r for mcp-go. Failures are ordinary tool results
// flagged with isError, never protocol errors.
func (r Result) CallToolResult() *mcpgo.CallToolResult {
	if r.OK {
		return mcpgo.NewToolResultText(r.String())
	}
	return mcpgo.NewToolResultError(r.String())
}

func success(tool, text string) Result {
	return Result{Tool: tool, OK: true, Text: text}
}

// failure maps an error from a tool run to a Result.
func failure(tool, label string, err error) Result {
	r := Result{Tool: tool, Label: label, Text: err.Error()}

	var argErr *argumentError
	var apiErr *wordpress.APIError
	switch {
	case errors.As(err, &argErr):
		r.Reason = ReasonInvalidArguments
		r.Text = "invalid arguments: " + argErr.Error()
	case errors.As(err, &apiErr):
		r.Reason = ReasonRemoteRejected
		r.StatusCode = apiErr.StatusCode
		r.Text = apiErr.Body
	case errors.Is(err, wordpress.ErrUnexpectedResponse):
		r.Reason = ReasonUnexpectedResponse
	default:
		r.Reason = ReasonTransport
	}
	return r
}

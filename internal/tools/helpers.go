// Package tools implements the MCP tool handlers for pragent.
//
// Each tool follows the same pattern:
//   - a struct with dependencies injected via its constructor
//   - Definition() returns the mcp.Tool schema
//   - Handle() processes the request and returns a result
//
// Handlers are total: every internal failure is encoded in the JSON
// payload (usually {"error": ...}) so the caller always receives a
// well-formed result. mcp.NewToolResultError is reserved for malformed
// arguments.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// toJSON serializes a payload with two-space indentation, the wire
// format every tool response uses.
func toJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("{\n  \"error\": %q\n}", "encoding payload: "+err.Error())
	}
	return string(data)
}

// errorPayload builds the single-field error envelope shared by all
// tools.
func errorPayload(message string) string {
	return toJSON(map[string]string{"error": message})
}

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are
// float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

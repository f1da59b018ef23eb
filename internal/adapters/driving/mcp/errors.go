// Package mcp provides an MCP (Model Context Protocol) server adapter for
// drishti. It lets AI assistants like Claude ask for Gita guidance and
// search the verse index directly.
package mcp

import "errors"

// ErrMissingAskService is returned when the ask service is not provided.
var ErrMissingAskService = errors.New("mcp: ask service is required")

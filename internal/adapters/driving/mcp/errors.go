// Package mcp provides an MCP (Model Context Protocol) server adapter for minishop.
// It enables AI assistants to browse and mutate the demo shop data.
package mcp

import "errors"

// ErrMissingUserService is returned when the user service is not provided.
var ErrMissingUserService = errors.New("mcp: user service is required")

// ErrMissingOrderService is returned when the order service is not provided.
var ErrMissingOrderService = errors.New("mcp: order service is required")

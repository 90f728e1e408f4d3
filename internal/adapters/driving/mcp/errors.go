// Package mcp provides an MCP (Model Context Protocol) server adapter for bizday.
// It lets AI assistants resolve business days and browse imported calendars.
package mcp

import "errors"

// ErrMissingWorkdayService is returned when the workday service is not provided.
var ErrMissingWorkdayService = errors.New("mcp: workday service is required")

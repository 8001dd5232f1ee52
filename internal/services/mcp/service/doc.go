// Package service hosts the MCP server: tool registration, backend wiring and
// the stdio and HTTP transports.
package service

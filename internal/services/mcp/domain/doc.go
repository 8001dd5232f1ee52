// Package domain defines the MCP tools exposed by the utility tools server:
// their schemas and the handlers that run them against catalog and sequence
// backends.
package domain

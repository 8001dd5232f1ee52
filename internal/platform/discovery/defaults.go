// Package discovery centralizes internal service-discovery conventions.
package discovery

import (
	"strconv"
	"strings"
)

const (
	// ServiceMCP is the MCP HTTP service identity.
	ServiceMCP = "mcp"
	// ServiceSequence is the sequence gRPC service identity.
	ServiceSequence = "sequence"
	// ServiceWeb is the public web HTTP service identity.
	ServiceWeb = "web"
)

var grpcPorts = map[string]int{
	ServiceSequence: 8082,
}

var httpPorts = map[string]int{
	ServiceWeb: 8080,
	ServiceMCP: 8085,
}

// DefaultGRPCAddr returns the canonical in-network gRPC address for a service.
func DefaultGRPCAddr(service string) string {
	return defaultAddr(strings.TrimSpace(service), grpcPorts)
}

// DefaultListenAddr returns ":<port>" for a service's conventional port,
// checking HTTP ports before gRPC ports.
func DefaultListenAddr(service string) string {
	service = strings.TrimSpace(service)
	if port, ok := httpPorts[service]; ok {
		return ":" + strconv.Itoa(port)
	}
	if port, ok := grpcPorts[service]; ok {
		return ":" + strconv.Itoa(port)
	}
	return ""
}

func defaultAddr(service string, ports map[string]int) string {
	port, ok := ports[service]
	if !ok {
		return ""
	}
	return service + ":" + strconv.Itoa(port)
}

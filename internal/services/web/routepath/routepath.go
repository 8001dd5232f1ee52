// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "strings"

const (
	Root                    = "/"
	Health                  = "/up"
	StaticPrefix            = "/static/"
	StaticStylesheet        = StaticPrefix + "app.css"
	StaticScript            = StaticPrefix + "app.js"
	ToolsPrefix             = "/tools/"
	ReverseComplement       = ToolsPrefix + "reverse-complement"
	ReverseComplementPrefix = ReverseComplement + "/"
	APIPrefix               = "/api/"
	APITools                = "/api/tools"
	APIToolsPrefix          = APITools + "/"
	APIToolPattern          = APIToolsPrefix + "{toolID}"
	APIReverseComplement    = APIToolsPrefix + "reverse-complement"
)

// ToolPage returns the canonical page path for a tool id.
func ToolPage(toolID string) string {
	return ToolsPrefix + strings.Trim(strings.TrimSpace(toolID), "/")
}

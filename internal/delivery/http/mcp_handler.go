package http

import (
	"net/http"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/gin-gonic/gin"

	"github.com/messmeal/backend/internal/delivery/mcp"
)

// MCPHandler serves the MCP tool listing and tool calls
type MCPHandler struct {
	tools *mcp.ToolServer
}

// NewMCPHandler creates a handler for the MCP endpoints
func NewMCPHandler(tools *mcp.ToolServer) *MCPHandler {
	return &MCPHandler{tools: tools}
}

// ListTools returns the server info and every tool it serves
func (h *MCPHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"server": h.tools.Info(),
		"tools":  h.tools.Tools(),
	})
}

// CallTool decodes a tool call and returns the tool result
func (h *MCPHandler) CallTool(c *gin.Context) {
	var request protocol.CallToolRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON: " + err.Error(),
		})
		return
	}

	result, err := h.tools.Call(&request)
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

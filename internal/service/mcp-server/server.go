package mcpserver

import (
	"jira_assistant/internal/jira"
	"jira_assistant/internal/service/llm"

	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates a new MCP server instance exposing the Jira and
// generation operations as tools
func NewServer(jiraClient *jira.Client, llmClient *llm.Client) (*server.MCPServer, error) {
	// Create MCP server
	s := server.NewMCPServer(
		"jira assistant",
		"0.1.0",
	)

	// Add Jira tools
	if err := registerJiraTools(s, jiraClient); err != nil {
		return nil, err
	}

	// Add generation tool when a gateway is available
	if llmClient != nil {
		if err := registerLLMTools(s, llmClient); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Serve starts the MCP server
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

package mcpserver

import (
	"context"
	"fmt"

	"jira_assistant/internal/service/llm"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerLLMTools registers the text-generation tool with the server
func registerLLMTools(s *server.MCPServer, client *llm.Client) error {
	generateTool := mcp.NewTool("generate_text",
		mcp.WithDescription("Generate text using one of the configured LLM providers"),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("The prompt to send to the LLM"),
		),
		mcp.WithString("provider",
			mcp.Description("Provider to use (defaults to the configured default)"),
		),
	)

	s.AddTool(generateTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGenerateText(ctx, client, request)
	})

	return nil
}

func handleGenerateText(ctx context.Context, client *llm.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, ok := request.Params.Arguments["prompt"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid prompt parameter")
	}

	provider := ""
	if p, ok := request.Params.Arguments["provider"].(string); ok {
		provider = p
	}

	text, err := client.Generate(ctx, prompt, provider, nil)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(text), nil
}

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"jira_assistant/internal/jira"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerJiraTools registers all Jira-related tools with the server
func registerJiraTools(s *server.MCPServer, client *jira.Client) error {
	// Get Jira issue tool
	getJiraTool := mcp.NewTool("get_jira",
		mcp.WithDescription("Get details of a specific Jira issue"),
		mcp.WithString("issue_key",
			mcp.Required(),
			mcp.Description("Jira issue key (e.g., 'PROJ-123')"),
		),
		mcp.WithString("fields",
			mcp.Description("Comma-separated fields to return in the results"),
		),
	)

	// Search Jira tool
	searchJiraTool := mcp.NewTool("search_jira",
		mcp.WithDescription("Search Jira issues using JQL"),
		mcp.WithString("jql",
			mcp.Required(),
			mcp.Description("JQL query string"),
		),
		mcp.WithString("fields",
			mcp.Description("Comma-separated fields to return in the results"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to return"),
		),
	)

	// Register tools with handlers
	s.AddTool(getJiraTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetJira(ctx, client, request)
	})
	s.AddTool(searchJiraTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSearchJira(ctx, client, request)
	})

	return nil
}

func handleGetJira(ctx context.Context, client *jira.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueKey, ok := request.Params.Arguments["issue_key"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid issue_key parameter")
	}

	var fields []string
	if f, ok := request.Params.Arguments["fields"].(string); ok && f != "" {
		fields = strings.Split(f, ",")
	}

	issue, err := client.GetIssue(ctx, issueKey, fields)
	if err != nil {
		return nil, err
	}

	// convert result to json string
	jsonResult, err := json.Marshal(issue)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %v", err)
	}

	return mcp.NewToolResultText(string(jsonResult)), nil
}

func handleSearchJira(ctx context.Context, client *jira.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jql, ok := request.Params.Arguments["jql"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid jql parameter")
	}

	// Get optional parameters
	var fields []string
	if f, ok := request.Params.Arguments["fields"].(string); ok && f != "" {
		fields = strings.Split(f, ",")
	}

	maxResults := jira.DefaultMaxResults
	if m, ok := request.Params.Arguments["max_results"].(float64); ok {
		maxResults = int(m)
	}

	response, err := client.SearchIssues(ctx, jql, fields, 0, maxResults)
	if err != nil {
		return nil, err
	}

	// convert result to json string
	jsonResult, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %v", err)
	}

	return mcp.NewToolResultText(string(jsonResult)), nil
}

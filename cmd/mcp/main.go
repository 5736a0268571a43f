package main

import (
	"log"

	"jira_assistant/internal/config"
	"jira_assistant/internal/jira"
	"jira_assistant/internal/logger"
	"jira_assistant/internal/service/llm"
	mcpserver "jira_assistant/internal/service/mcp-server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// stdout carries the MCP protocol, keep logs on stderr
	if err := logger.Init(cfg.LogLevel, "stderr"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	jiraClient, err := jira.NewClient(cfg.JiraBaseURL, cfg.JiraUsername, cfg.JiraAPIToken)
	if err != nil {
		logger.GetLogger().Fatal("failed to create jira client", zap.Error(err))
	}
	defer jiraClient.Close()

	llmClient, err := llm.New(cfg)
	if err != nil {
		logger.GetLogger().Error("failed to initialize generation gateway", zap.Error(err))
		llmClient = nil
	}

	// Create new MCP server
	server, err := mcpserver.NewServer(jiraClient, llmClient)
	if err != nil {
		logger.GetLogger().Fatal("failed to create MCP server", zap.Error(err))
	}

	// Start server
	logger.GetLogger().Info("starting Jira Assistant MCP server")
	if err := mcpserver.Serve(server); err != nil {
		logger.GetLogger().Fatal("MCP server error", zap.Error(err))
	}
}

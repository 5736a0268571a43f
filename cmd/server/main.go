package main

import (
	"log"

	"jira_assistant/internal/config"
	"jira_assistant/internal/handler"
	"jira_assistant/internal/jira"
	"jira_assistant/internal/logger"
	"jira_assistant/internal/service/llm"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	jiraClient, err := jira.NewClient(cfg.JiraBaseURL, cfg.JiraUsername, cfg.JiraAPIToken)
	if err != nil {
		logger.GetLogger().Fatal("failed to create jira client", zap.Error(err))
	}
	defer jiraClient.Close()

	// A gateway with zero configured backends is not fatal: the issue
	// endpoints keep working and generation reports 503.
	llmClient, err := llm.New(cfg)
	if err != nil {
		logger.GetLogger().Error("failed to initialize generation gateway", zap.Error(err))
		llmClient = nil
	}

	router := handler.New(jiraClient, llmClient).Router()

	logger.GetLogger().Info("starting server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.GetLogger().Fatal("server error", zap.Error(err))
	}
}

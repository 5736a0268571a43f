package main

import (
	"context"
	"log"

	"jira_assistant/internal/config"
	"jira_assistant/internal/handler"
	"jira_assistant/internal/jira"
	"jira_assistant/internal/logger"
	"jira_assistant/internal/service/llm"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"go.uber.org/zap"
)

var ginLambda *ginadapter.GinLambda

func handleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return ginLambda.ProxyWithContext(ctx, req)
}

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

	llmClient, err := llm.New(cfg)
	if err != nil {
		logger.GetLogger().Error("failed to initialize generation gateway", zap.Error(err))
		llmClient = nil
	}

	ginLambda = ginadapter.New(handler.New(jiraClient, llmClient).Router())
	lambda.Start(handleRequest)
}

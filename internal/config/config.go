package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment represents the running environment of the application
type Environment string

// Config holds all configuration for the application
type Config struct {
	// Environment is the current running environment (development, production, test)
	Environment Environment

	// Jira configuration
	JiraBaseURL  string // Required: Base URL of the Jira instance
	JiraUsername string // Required: Jira username
	JiraAPIToken string // Required: Jira API token

	// OpenAI configuration
	OpenAIKey   string // Optional: OpenAI API key
	OpenAIModel string // Optional: OpenAI model name, defaults to gpt-4o

	// Azure OpenAI configuration
	AzureOpenAIKey        string // Optional: Azure OpenAI API key
	AzureOpenAIEndpoint   string // Optional: Azure OpenAI endpoint URL
	AzureOpenAIDeployment string // Optional: Azure OpenAI model deployment name

	// AWS Bedrock configuration
	BedrockModelID string // Optional: Bedrock model identifier

	// HTTP server port
	Port string

	// Log level
	LogLevel string
}

var (
	// instance holds the singleton config instance
	instance *Config
)

// Get returns the singleton config instance
func Get() *Config {
	if instance == nil {
		panic("config not initialized")
	}
	return instance
}

// Load creates a new Config instance from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	// Load required values
	requiredVars := map[string]*string{
		"JIRA_BASE_URL":  &cfg.JiraBaseURL,
		"JIRA_USERNAME":  &cfg.JiraUsername,
		"JIRA_API_TOKEN": &cfg.JiraAPIToken,
	}

	var missingVars []string
	for env, ptr := range requiredVars {
		*ptr = os.Getenv(env)
		if *ptr == "" {
			missingVars = append(missingVars, env)
		}
	}

	if len(missingVars) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	cfg.Environment = Environment(os.Getenv("ENVIRONMENT"))

	// Provider credentials are optional; the generation gateway decides
	// which backends to initialize from whichever are present.
	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIModel = os.Getenv("OPENAI_MODEL")
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4o"
	}

	cfg.AzureOpenAIKey = os.Getenv("AZURE_OPENAI_KEY")
	cfg.AzureOpenAIEndpoint = os.Getenv("AZURE_OPENAI_ENDPOINT")
	cfg.AzureOpenAIDeployment = os.Getenv("AZURE_OPENAI_DEPLOYMENT")

	cfg.BedrockModelID = os.Getenv("BEDROCK_MODEL_ID")

	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = "8000"
	}

	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// Store the instance
	instance = cfg

	return cfg, nil
}

package llm

import (
	"context"
	"fmt"

	"jira_assistant/internal/config"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
)

const openAIEndpoint = "https://api.openai.com/v1"

// chatProvider wraps an azopenai client. It serves both the public
// OpenAI endpoint and Azure OpenAI deployments; the two differ only in
// how the underlying client is constructed.
type chatProvider struct {
	client     *azopenai.Client
	deployment string
}

func newOpenAIProvider(cfg *config.Config) (Provider, error) {
	if cfg.OpenAIKey == "" {
		return nil, errNotConfigured
	}
	client, err := azopenai.NewClientForOpenAI(openAIEndpoint, azcore.NewKeyCredential(cfg.OpenAIKey), nil)
	if err != nil {
		return nil, err
	}
	return &chatProvider{client: client, deployment: cfg.OpenAIModel}, nil
}

func newAzureProvider(cfg *config.Config) (Provider, error) {
	if cfg.AzureOpenAIKey == "" || cfg.AzureOpenAIEndpoint == "" || cfg.AzureOpenAIDeployment == "" {
		return nil, errNotConfigured
	}
	keyCredential := azcore.NewKeyCredential(cfg.AzureOpenAIKey)
	client, err := azopenai.NewClientWithKeyCredential(cfg.AzureOpenAIEndpoint, keyCredential, nil)
	if err != nil {
		return nil, err
	}
	return &chatProvider{client: client, deployment: cfg.AzureOpenAIDeployment}, nil
}

func (p *chatProvider) Generate(ctx context.Context, prompt string, params map[string]any) (string, error) {
	opts := azopenai.ChatCompletionsOptions{
		DeploymentName: to.Ptr(p.deployment),
		Messages: []azopenai.ChatRequestMessageClassification{
			&azopenai.ChatRequestUserMessage{
				Content: azopenai.NewChatRequestUserMessageContent(prompt),
			},
		},
		N: to.Ptr[int32](1),
	}
	if v, ok := floatParam(params, "temperature"); ok {
		opts.Temperature = to.Ptr(v)
	}
	if v, ok := intParam(params, "max_tokens"); ok {
		opts.MaxTokens = to.Ptr(v)
	}

	resp, err := p.client.GetChatCompletions(ctx, opts, nil)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil || resp.Choices[0].Message.Content == nil {
		return "", fmt.Errorf("no choices returned from chat completion")
	}
	return *resp.Choices[0].Message.Content, nil
}

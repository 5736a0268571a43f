package llm

import (
	"context"
	"fmt"

	"jira_assistant/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

// bedrockProvider generates text through the AWS Bedrock Converse API.
// Credentials come from the default AWS config chain; the backend is
// considered configured when a model id is set.
type bedrockProvider struct {
	client  *bedrockruntime.Client
	modelID string
}

func newBedrockProvider(cfg *config.Config) (Provider, error) {
	if cfg.BedrockModelID == "" {
		return nil, errNotConfigured
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, err
	}
	return &bedrockProvider{
		client:  bedrockruntime.NewFromConfig(awsCfg),
		modelID: cfg.BedrockModelID,
	}, nil
}

func (p *bedrockProvider) Generate(ctx context.Context, prompt string, params map[string]any) (string, error) {
	input := &bedrockruntime.ConverseInput{
		ModelId: aws.String(p.modelID),
		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: prompt},
				},
			},
		},
	}

	inference := &types.InferenceConfiguration{}
	if v, ok := floatParam(params, "temperature"); ok {
		inference.Temperature = aws.Float32(v)
		input.InferenceConfig = inference
	}
	if v, ok := intParam(params, "max_tokens"); ok {
		inference.MaxTokens = aws.Int32(v)
		input.InferenceConfig = inference
	}

	out, err := p.client.Converse(ctx, input)
	if err != nil {
		return "", err
	}

	message, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return "", fmt.Errorf("unexpected converse output type %T", out.Output)
	}
	for _, block := range message.Value.Content {
		if text, ok := block.(*types.ContentBlockMemberText); ok {
			return text.Value, nil
		}
	}
	return "", fmt.Errorf("no text content in converse response")
}

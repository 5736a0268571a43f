package llm

import (
	"context"
	"errors"
	"testing"

	"jira_assistant/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	text string
	err  error
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, params map[string]any) (string, error) {
	return s.text, s.err
}

func TestNewNoBackendsConfigured(t *testing.T) {
	_, err := New(&config.Config{})
	require.Error(t, err)

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	for _, provider := range SupportedProviders() {
		assert.Contains(t, err.Error(), provider)
	}
}

func TestNewSingleBackendBecomesDefault(t *testing.T) {
	client, err := New(&config.Config{OpenAIKey: "test-key", OpenAIModel: "gpt-4o"})
	require.NoError(t, err)

	assert.Equal(t, "openai", client.DefaultProvider())
	assert.Equal(t, []string{"openai"}, client.ConfiguredProviders())
}

func TestNewPartialAzureConfigSkipped(t *testing.T) {
	// an azure key without endpoint and deployment is not enough
	cfg := &config.Config{
		OpenAIKey:      "test-key",
		OpenAIModel:    "gpt-4o",
		AzureOpenAIKey: "azure-key",
	}
	client, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"openai"}, client.ConfiguredProviders())
}

func TestNewPriorityOrder(t *testing.T) {
	cfg := &config.Config{
		OpenAIKey:             "test-key",
		OpenAIModel:           "gpt-4o",
		AzureOpenAIKey:        "azure-key",
		AzureOpenAIEndpoint:   "https://example.openai.azure.com",
		AzureOpenAIDeployment: "gpt-4o",
	}
	client, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "openai", client.DefaultProvider())
	assert.Equal(t, []string{"openai", "azure"}, client.ConfiguredProviders())
}

func TestGenerateUnsupportedProvider(t *testing.T) {
	client, err := New(&config.Config{OpenAIKey: "test-key", OpenAIModel: "gpt-4o"})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "hello", "gemini", nil)
	var unsupportedErr *UnsupportedProviderError
	require.ErrorAs(t, err, &unsupportedErr)
	for _, provider := range SupportedProviders() {
		assert.Contains(t, err.Error(), provider)
	}
}

func TestGenerateUnconfiguredProvider(t *testing.T) {
	client, err := New(&config.Config{OpenAIKey: "test-key", OpenAIModel: "gpt-4o"})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "hello", "bedrock", nil)
	var unconfiguredErr *UnconfiguredProviderError
	require.ErrorAs(t, err, &unconfiguredErr)
	assert.Equal(t, "bedrock", unconfiguredErr.Provider)
	assert.Contains(t, err.Error(), "openai")
	assert.NotContains(t, unconfiguredErr.Configured, "bedrock")
}

func TestGenerateTrimsWhitespace(t *testing.T) {
	client := &Client{
		providers:       map[string]Provider{"openai": &stubProvider{text: "  generated text\n"}},
		defaultProvider: "openai",
	}

	text, err := client.Generate(context.Background(), "hello", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "generated text", text)
}

func TestGenerateWrapsBackendFailure(t *testing.T) {
	cause := errors.New("rate limited")
	client := &Client{
		providers:       map[string]Provider{"openai": &stubProvider{err: cause}},
		defaultProvider: "openai",
	}

	_, err := client.Generate(context.Background(), "hello", "", nil)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "openai", genErr.Provider)
	assert.Contains(t, err.Error(), "rate limited")
	assert.ErrorIs(t, err, cause)
}

func TestParamExtraction(t *testing.T) {
	params := map[string]any{
		"temperature": 0.7,
		"max_tokens":  float64(256), // JSON numbers decode as float64
	}

	temp, ok := floatParam(params, "temperature")
	require.True(t, ok)
	assert.InDelta(t, 0.7, float64(temp), 0.0001)

	tokens, ok := intParam(params, "max_tokens")
	require.True(t, ok)
	assert.Equal(t, int32(256), tokens)

	_, ok = floatParam(params, "missing")
	assert.False(t, ok)
}

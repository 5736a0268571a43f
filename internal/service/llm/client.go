package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jira_assistant/internal/config"
	"jira_assistant/internal/logger"

	"go.uber.org/zap"
)

// supportedProviders lists every backend this gateway knows about, in
// initialization priority order. The first one that initializes
// successfully becomes the default.
var supportedProviders = []string{"openai", "azure", "bedrock"}

// errNotConfigured marks a backend whose credential is absent.
var errNotConfigured = errors.New("provider not configured")

// Provider is a single text-generation backend.
type Provider interface {
	Generate(ctx context.Context, prompt string, params map[string]any) (string, error)
}

// ConfigurationError is returned when no backend could be initialized.
type ConfigurationError struct {
	Supported []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no generation backends configured. Please set up credentials for at least one of the supported providers: %s",
		strings.Join(e.Supported, ", "))
}

// UnsupportedProviderError reports a provider name the gateway does not know.
type UnsupportedProviderError struct {
	Provider  string
	Supported []string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider: %s. Supported providers are: %s",
		e.Provider, strings.Join(e.Supported, ", "))
}

// UnconfiguredProviderError reports a known provider whose credential is absent.
type UnconfiguredProviderError struct {
	Provider   string
	Configured []string
}

func (e *UnconfiguredProviderError) Error() string {
	return fmt.Sprintf("provider %s is not configured. Configured providers are: %s",
		e.Provider, strings.Join(e.Configured, ", "))
}

// GenerationError wraps a backend-side failure.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate response with %s: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Client selects among configured text-generation backends and
// forwards prompts. The registry is populated once at construction and
// read-only afterwards.
type Client struct {
	providers       map[string]Provider
	defaultProvider string
}

// New initializes every supported backend whose credential is present.
// A backend whose credential is present but whose initialization fails
// is logged and skipped. Construction fails only when zero backends
// initialize.
func New(cfg *config.Config) (*Client, error) {
	inits := []struct {
		name string
		init func(*config.Config) (Provider, error)
	}{
		{"openai", newOpenAIProvider},
		{"azure", newAzureProvider},
		{"bedrock", newBedrockProvider},
	}

	c := &Client{providers: make(map[string]Provider)}
	log := logger.GetLogger()

	for _, p := range inits {
		provider, err := p.init(cfg)
		if errors.Is(err, errNotConfigured) {
			log.Warn("provider credential not found, skipping initialization", zap.String("provider", p.name))
			continue
		}
		if err != nil {
			log.Error("failed to initialize provider", zap.String("provider", p.name), zap.Error(err))
			continue
		}
		c.providers[p.name] = provider
		if c.defaultProvider == "" {
			c.defaultProvider = p.name
		}
		log.Info("provider initialized", zap.String("provider", p.name))
	}

	if len(c.providers) == 0 {
		return nil, &ConfigurationError{Supported: SupportedProviders()}
	}

	log.Info("default provider set", zap.String("provider", c.defaultProvider))
	return c, nil
}

// SupportedProviders returns the names of every known backend.
func SupportedProviders() []string {
	return append([]string(nil), supportedProviders...)
}

// DefaultProvider returns the name of the default backend.
func (c *Client) DefaultProvider() string {
	return c.defaultProvider
}

// ConfiguredProviders returns the initialized backends in priority order.
func (c *Client) ConfiguredProviders() []string {
	var names []string
	for _, name := range supportedProviders {
		if _, ok := c.providers[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Generate forwards the prompt to the selected backend and returns the
// generated text trimmed of surrounding whitespace. An empty provider
// selects the default.
func (c *Client) Generate(ctx context.Context, prompt, provider string, params map[string]any) (string, error) {
	selected := provider
	if selected == "" {
		selected = c.defaultProvider
	}

	if !isSupported(selected) {
		return "", &UnsupportedProviderError{Provider: selected, Supported: SupportedProviders()}
	}

	backend, ok := c.providers[selected]
	if !ok {
		return "", &UnconfiguredProviderError{Provider: selected, Configured: c.ConfiguredProviders()}
	}

	logger.GetLogger().Info("generating response", zap.String("provider", selected))

	text, err := backend.Generate(ctx, prompt, params)
	if err != nil {
		logger.GetLogger().Error("generation failed", zap.String("provider", selected), zap.Error(err))
		return "", &GenerationError{Provider: selected, Err: err}
	}
	return strings.TrimSpace(text), nil
}

func isSupported(name string) bool {
	for _, s := range supportedProviders {
		if s == name {
			return true
		}
	}
	return false
}

// floatParam extracts a numeric parameter as float32. JSON numbers
// arrive as float64.
func floatParam(params map[string]any, key string) (float32, bool) {
	switch v := params[key].(type) {
	case float64:
		return float32(v), true
	case float32:
		return v, true
	case int:
		return float32(v), true
	}
	return 0, false
}

// intParam extracts a numeric parameter as int32.
func intParam(params map[string]any, key string) (int32, bool) {
	switch v := params[key].(type) {
	case float64:
		return int32(v), true
	case int:
		return int32(v), true
	case int32:
		return v, true
	}
	return 0, false
}

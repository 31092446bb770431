package llmservice

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"llm-translate/internal/config"
	"llm-translate/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/prompts"
)

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

var thinkRe = regexp.MustCompile(models.ThinkTag)

// Translator is the inference handle: it fills the prompt template with
// params and returns the model's answer.
type Translator interface {
	Translate(ctx context.Context, params map[string]any) (string, error)
}

// Factory builds a Translator for one model and prompt template.
type Factory func(model config.ModelConfig, template string) (Translator, error)

// NewFactory returns a Factory backed by the configured provider.
func NewFactory(llmConfig config.LLMConfig) Factory {
	return func(model config.ModelConfig, template string) (Translator, error) {
		return NewChain(llmConfig, model, template)
	}
}

// Chain binds a prompt template to a langchaingo model.
type Chain struct {
	chain           *chains.LLMChain
	temperature     float64
	thinkingEnabled bool
}

func NewChain(llmConfig config.LLMConfig, model config.ModelConfig, template string) (*Chain, error) {
	if strings.TrimSpace(template) == "" {
		return nil, errors.New("template cannot be empty, please provide a valid template")
	}

	llm, err := newLLM(llmConfig, model.Name)
	if err != nil {
		return nil, err
	}
	return newChain(llm, model, template), nil
}

func newChain(llm llms.Model, model config.ModelConfig, template string) *Chain {
	prompt := prompts.PromptTemplate{
		Template:       template,
		InputVariables: []string{models.ParamLanguage, models.ParamText},
		TemplateFormat: prompts.TemplateFormatFString,
	}
	return &Chain{
		chain:           chains.NewLLMChain(llm, prompt),
		temperature:     model.Temp(),
		thinkingEnabled: model.ThinkingEnabled,
	}
}

func newLLM(llmConfig config.LLMConfig, modelName string) (llms.Model, error) {
	log.Debug().Str("provider", llmConfig.Provider).Str("model", modelName).Msg("Creating LLM client")
	switch llmConfig.Provider {
	case ProviderOllama:
		return ollama.New(
			ollama.WithServerURL(llmConfig.BaseURL),
			ollama.WithModel(modelName),
		)
	case ProviderOpenAI:
		// local OpenAI compatible servers ignore the key, but the client refuses an empty one
		token := strings.TrimPrefix(llmConfig.Token, "Bearer ")
		if token == "" {
			token = "local"
		}
		return openai.New(
			openai.WithBaseURL(llmConfig.BaseURL),
			openai.WithToken(token),
			openai.WithModel(modelName),
		)
	default:
		return nil, fmt.Errorf("unsupported provider: %s, supported providers are: %v",
			llmConfig.Provider, []string{ProviderOllama, ProviderOpenAI})
	}
}

// Translate runs the chain once. Output is trimmed, and <think> blocks are
// dropped when the model has thinking enabled.
func (c *Chain) Translate(ctx context.Context, params map[string]any) (string, error) {
	if len(params) == 0 {
		return "", errors.New("input must be a map with the required keys for the template")
	}

	out, err := chains.Call(ctx, c.chain, params, chains.WithTemperature(c.temperature))
	if err != nil {
		return "", fmt.Errorf("error invoking the LLM chain: %w; check the provider and the template are correctly formatted", err)
	}

	text, ok := out[c.chain.OutputKey].(string)
	if !ok {
		return "", fmt.Errorf("unexpected LLM chain output type %T", out[c.chain.OutputKey])
	}
	return cleanResponse(text, c.thinkingEnabled), nil
}

func cleanResponse(text string, thinkingEnabled bool) string {
	if thinkingEnabled {
		text = thinkRe.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}

package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/kirtis/internal/accent"
)

const openAISystemPrompt = `You are a Lithuanian phonology engine. For a Lithuanian word you return its stress placement in every grammatical case the word form can represent.
Answer with a JSON object {"decoded_options": [...]} where every element has:
- "grammatical_case": one of Vardininkas, Kilmininkas, Naudininkas, Galininkas, Įnagininkas, Vietininkas, Šauksmininkas
- "stress_type": 0 for a short stressed vowel (grave), 1 for an acute accent, 2 for a circumflex
- "stressed_letter_index": zero-based index of the stressed letter, counted in Unicode code points
Return nothing but the JSON object.`

// chatCompleter is the part of *openai.Client the analyzer uses.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIAnalyzer asks an OpenAI chat model for stress options.
type OpenAIAnalyzer struct {
	apiKey string
	model  string
	client chatCompleter
}

// NewOpenAIAnalyzer creates an analyzer using the given API key and model.
func NewOpenAIAnalyzer(apiKey, model string) *OpenAIAnalyzer {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAnalyzer{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Analyze requests the stress options for word.
func (a *OpenAIAnalyzer) Analyze(ctx context.Context, word string) ([]accent.StressOption, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not configured")
	}

	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: openAISystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: word,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0,
		MaxTokens:   800,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	options, err := decodeEnvelope([]byte(strings.TrimSpace(resp.Choices[0].Message.Content)))
	if err != nil {
		return nil, fmt.Errorf("OpenAI answer for %q: %w", word, err)
	}
	return options, nil
}

// Name returns the provider name
func (a *OpenAIAnalyzer) Name() string {
	return "openai:" + a.model
}

// IsAvailable checks that an API key is configured.
func (a *OpenAIAnalyzer) IsAvailable() error {
	if a.apiKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}

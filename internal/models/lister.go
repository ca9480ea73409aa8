package models

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrNoAPIKey is returned when no OpenAI API key is configured.
var ErrNoAPIKey = errors.New("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure analyzer.openai_key in .kirtis.yaml")

type modelsClient interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client modelsClient
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// Model IDs containing one of these can not answer chat completions.
var nonChatMarkers = []string{"tts", "audio", "realtime", "transcribe", "dall-e", "image", "embedding", "search", "moderation"}

// ChatModels returns the sorted IDs of the chat models visible to the key.
func (l *Lister) ChatModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	list, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	var chat []string
	for _, model := range list.Models {
		if isChatModel(model.ID) {
			chat = append(chat, model.ID)
		}
	}
	sort.Strings(chat)
	return chat, nil
}

func isChatModel(id string) bool {
	if !strings.Contains(id, "gpt") && !strings.HasPrefix(id, "o") {
		return false
	}
	for _, marker := range nonChatMarkers {
		if strings.Contains(id, marker) {
			return false
		}
	}
	return true
}

// PrintChatModels writes the chat models to w, marking current.
func (l *Lister) PrintChatModels(ctx context.Context, w io.Writer, current string) error {
	models, err := l.ChatModels(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "OpenAI chat models for --provider openai:")
	if len(models) == 0 {
		fmt.Fprintln(w, "  No chat models found")
		return nil
	}
	for _, model := range models {
		if model == current {
			fmt.Fprintf(w, "  %s (current)\n", model)
		} else {
			fmt.Fprintf(w, "  %s\n", model)
		}
	}
	return nil
}

package ai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const defaultOpenAIModel = "gpt-4o"

// OpenAIExtractor implements PreferenceExtractor using OpenAI chat completions.
type OpenAIExtractor struct {
	client *openai.Client
	model  string
	log    *zap.Logger
}

// NewOpenAIExtractor initializes a new OpenAI-backed extractor.
// apiKey should be provided from environment variables.
func NewOpenAIExtractor(apiKey string, log *zap.Logger) (*OpenAIExtractor, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	return &OpenAIExtractor{
		client: openai.NewClient(apiKey),
		model:  defaultOpenAIModel,
		log:    log,
	}, nil
}

// ExtractPreferences sends the conversation to OpenAI in JSON mode and parses
// the structured reply. Any failure degrades to the fallback object.
func (e *OpenAIExtractor) ExtractPreferences(ctx context.Context, message string, history []ChatMessage) *ExtractedPreferences {
	prefs, err := e.extract(ctx, message, history)
	if err != nil {
		e.log.Warn("preference extraction failed, using fallback", zap.Error(err))
		return Fallback(message)
	}
	prefs.ensureSearchQuery()
	return prefs
}

func (e *OpenAIExtractor) extract(ctx context.Context, message string, history []ChatMessage) (*ExtractedPreferences, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: extractionPrompt,
	})
	for _, turn := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    e.model,
		Messages: messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		// Lower temperature for more consistent extraction.
		Temperature: 0.3,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, errors.New("no response content from OpenAI")
	}

	return parsePreferences(resp.Choices[0].Message.Content)
}

package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiExtractor implements PreferenceExtractor using Google's Gemini models.
type GeminiExtractor struct {
	client *genai.Client
	model  *genai.GenerativeModel
	log    *zap.Logger
}

// NewGeminiExtractor initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiExtractor(ctx context.Context, apiKey string, log *zap.Logger) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Lower temperature for more consistent extraction.
	model.SetTemperature(0.3)

	return &GeminiExtractor{
		client: client,
		model:  model,
		log:    log,
	}, nil
}

// Close cleans up the Gemini client resources.
func (e *GeminiExtractor) Close() {
	e.client.Close()
}

// ExtractPreferences sends the conversation to Gemini and parses the
// structured reply. Any failure degrades to the fallback object.
func (e *GeminiExtractor) ExtractPreferences(ctx context.Context, message string, history []ChatMessage) *ExtractedPreferences {
	prefs, err := e.extract(ctx, message, history)
	if err != nil {
		e.log.Warn("preference extraction failed, using fallback", zap.Error(err))
		return Fallback(message)
	}
	prefs.ensureSearchQuery()
	return prefs
}

func (e *GeminiExtractor) extract(ctx context.Context, message string, history []ChatMessage) (*ExtractedPreferences, error) {
	// Gemini has no per-message role structure comparable to chat completions,
	// so the history is rendered into the prompt text.
	var prompt strings.Builder
	prompt.WriteString(extractionPrompt)
	if len(history) > 0 {
		prompt.WriteString("\n\nConversation so far:\n")
		for _, turn := range history {
			prompt.WriteString(fmt.Sprintf("%s: %s\n", turn.Role, turn.Content))
		}
	}
	prompt.WriteString("\n\nUser Message: ")
	prompt.WriteString(message)

	resp, err := e.model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	return parsePreferences(responseText.String())
}

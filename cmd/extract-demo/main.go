package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"scout/internal/ai"
)

func main() {
	provider := flag.String("provider", "openai", "extraction provider (openai or gemini)")
	flag.Parse()

	message := "Looking for cheap sushi in Seattle for a date night"
	if flag.NArg() > 0 {
		message = flag.Arg(0)
	}

	ctx := context.Background()
	logger := zap.NewNop()

	var extractor ai.PreferenceExtractor
	switch *provider {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY environment variable not set")
		}
		ext, err := ai.NewGeminiExtractor(ctx, apiKey, logger)
		if err != nil {
			log.Fatalf("Failed to initialize extractor: %v", err)
		}
		defer ext.Close()
		extractor = ext
	default:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY environment variable not set")
		}
		ext, err := ai.NewOpenAIExtractor(apiKey, logger)
		if err != nil {
			log.Fatalf("Failed to initialize extractor: %v", err)
		}
		extractor = ext
	}

	fmt.Printf("User: %s\n", message)

	prefs := extractor.ExtractPreferences(ctx, message, nil)
	out, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

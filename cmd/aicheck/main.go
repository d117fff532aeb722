// Command aicheck probes the Gemini API with a fixed prompt. It retries a
// fixed number of times and exits non-zero once the attempts are exhausted.
// Not part of any user-facing flow.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

const (
	maxRetries = 3
	retryDelay = 2 * time.Second
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}

	ctx := context.Background()
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Starting Gemini API check (attempt %d/%d)", attempt, maxRetries)

		text, err := probe(ctx, apiKey)
		if err == nil {
			log.Printf("Response text: %s", text)
			log.Println("Check completed successfully")
			return
		}

		lastErr = err
		log.Printf("Attempt %d failed: %v", attempt, err)
		if attempt < maxRetries {
			log.Printf("Waiting %s before retry", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	log.Fatalf("All attempts failed. Last error: %v", lastErr)
}

func probe(ctx context.Context, apiKey string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash")
	resp, err := model.GenerateContent(ctx, genai.Text("Explain how AI works"))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errNoContent
	}
	if text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
		return string(text), nil
	}
	return "", errNoContent
}

var errNoContent = errors.New("no content generated")

package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// PlannerClientInterface is the single-shot text-generation call behind the
// trip detail generator.
type PlannerClientInterface interface {
	GenerateItinerary(ctx context.Context, days int, destination, budget, travelWith string) (string, error)
}

// BuildItineraryPrompt is deterministic: the day count, destination, budget
// label and companion label appear verbatim in the output.
func BuildItineraryPrompt(days int, destination, budget, travelWith string) string {
	return fmt.Sprintf(`Create a detailed %d-day trip itinerary for %s with a %s budget, traveling with %s. Include:
1. Day-by-day breakdown
2. Must-visit attractions
3. Budget-friendly food recommendations
4. Local transportation tips
5. Estimated costs for activities
Format the response in markdown.`, days, destination, budget, travelWith)
}

// GeminiPlannerClient generates itineraries with Google's Gemini models.
type GeminiPlannerClient struct {
	client *genai.Client
	model  string
}

func NewGeminiPlannerClient(apiKey, model string) (PlannerClientInterface, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlannerClient{client: client, model: model}, nil
}

func (c *GeminiPlannerClient) GenerateItinerary(ctx context.Context, days int, destination, budget, travelWith string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// Creativity-favoring sampling, bounded output length
	m.SetTemperature(0.9)
	m.SetTopK(1)
	m.SetTopP(1)
	m.SetMaxOutputTokens(2048)

	prompt := BuildItineraryPrompt(days, destination, budget, travelWith)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini: empty text response")
	}
	return sb.String(), nil
}

func (c *GeminiPlannerClient) Close() error {
	return c.client.Close()
}

// OpenAIPlannerClient is the alternate provider behind the same interface.
type OpenAIPlannerClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIPlannerClient(apiKey, model string) PlannerClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIPlannerClient{client: openai.NewClient(apiKey), model: model}
}

func (c *OpenAIPlannerClient) GenerateItinerary(ctx context.Context, days int, destination, budget, travelWith string) (string, error) {
	prompt := BuildItineraryPrompt(days, destination, budget, travelWith)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.9,
		TopP:        1,
		MaxTokens:   2048,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: no content generated")
	}
	return resp.Choices[0].Message.Content, nil
}

// NewPlannerClient picks the provider by name, defaulting to Gemini.
func NewPlannerClient(provider, apiKey, model string) (PlannerClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIPlannerClient(apiKey, model), nil
	case "gemini", "":
		return NewGeminiPlannerClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported planner provider: %s", provider)
	}
}

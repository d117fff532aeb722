package planner_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"gotrip/internal/services"
	"gotrip/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlannerClient,
	ProvidePhotoService,
	ProvidePlannerService,
)

type PlannerConfig struct {
	Provider string
	APIKey   string
	Model    string
}

func ProvidePlannerClient() (utils.PlannerClientInterface, error) {
	config := getPlannerConfig()

	log.Printf("Initializing %s planner client with model: %s", config.Provider, config.Model)

	client, err := utils.NewPlannerClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create planner client: %w", err)
	}
	return client, nil
}

func ProvidePhotoService() services.PhotoServiceInterface {
	return services.NewUnsplashPhotoClient()
}

func ProvidePlannerService(
	photos services.PhotoServiceInterface,
	planner utils.PlannerClientInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(photos, planner)
}

func getPlannerConfig() PlannerConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return PlannerConfig{Provider: provider, APIKey: apiKey, Model: model}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

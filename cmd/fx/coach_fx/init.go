package coach_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"arogya/internal/api/controllers"
	"arogya/internal/repositories"
	"arogya/internal/services"
	"arogya/pkg/utils"
)

var Module = fx.Provide(
	ProvideCoachClient,
	provideChatRepo,
	provideCoachService,
	provideCoachController,
)

// CoachConfig holds configuration for the chat completion provider.
type CoachConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideCoachClient creates a chat completion client based on environment
// variables. When no API key is configured the coach runs in disabled mode
// and the service answers with its fixed fallback reply.
func ProvideCoachClient() (utils.CoachClientInterface, error) {
	config := getCoachConfig()

	if config.APIKey == "" {
		log.Printf("No API key configured for %s coach provider, coach replies are disabled", config.Provider)
		return utils.DisabledCoachClient{}, nil
	}

	log.Printf("Initializing %s coach client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "groq":
		return utils.NewGroqCoachClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiCoachClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported coach provider: %s. Use 'groq' or 'gemini'", config.Provider)
	}
}

func provideChatRepo(db *gorm.DB) repositories.ChatRepository {
	return repositories.NewChatRepository(db)
}

func provideCoachService(
	chatRepo repositories.ChatRepository,
	client utils.CoachClientInterface,
) services.CoachServiceInterface {
	return services.NewCoachService(chatRepo, client)
}

func provideCoachController(coachService services.CoachServiceInterface) *controllers.CoachController {
	return controllers.NewCoachController(coachService)
}

// getCoachConfig reads provider configuration from environment variables.
func getCoachConfig() CoachConfig {
	provider := getEnvWithDefault("COACH_PROVIDER", "groq")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	default:
		apiKey = os.Getenv("GROQ_API_KEY")
		model = getEnvWithDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
	}

	return CoachConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

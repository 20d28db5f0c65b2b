package providers_fx

import (
	"fmt"
	"log"

	"tripwise/internal/config"
	"tripwise/internal/providers"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	ProvideItineraryGenerator,
	ProvidePlaceResolver,
	ProvideImageResolver,
)

// ProvideItineraryGenerator selects the generator strategy from
// configuration. The static generator needs no credentials.
func ProvideItineraryGenerator(cfg *config.Config) (providers.ItineraryGenerator, error) {
	log.Printf("Initializing %s itinerary generator", cfg.LLMProvider)

	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		return providers.NewOpenAIGenerator(cfg.OpenAIKey, cfg.OpenAIModel), nil
	case config.ProviderGemini:
		return providers.NewGeminiGenerator(cfg.GeminiKey, cfg.GeminiModel)
	case config.ProviderStatic:
		return providers.NewStaticGenerator(), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s. Use 'openai', 'gemini' or 'static'", cfg.LLMProvider)
	}
}

func ProvidePlaceResolver(cfg *config.Config) (providers.PlaceResolver, error) {
	log.Printf("Initializing %s place resolver", cfg.PlacesProvider)

	switch cfg.PlacesProvider {
	case config.ProviderGoogle:
		return providers.NewGooglePlacesClient(cfg.PlacesKey), nil
	case config.ProviderStatic:
		return providers.NewStaticPlaceResolver(), nil
	default:
		return nil, fmt.Errorf("unsupported places provider: %s. Use 'google' or 'static'", cfg.PlacesProvider)
	}
}

func ProvideImageResolver(cfg *config.Config) (providers.ImageResolver, error) {
	log.Printf("Initializing %s image resolver", cfg.ImageProvider)

	switch cfg.ImageProvider {
	case config.ProviderUnsplash:
		return providers.NewUnsplashClient(cfg.UnsplashKey), nil
	case config.ProviderStatic:
		return providers.NewStaticImageResolver(), nil
	default:
		return nil, fmt.Errorf("unsupported image provider: %s. Use 'unsplash' or 'static'", cfg.ImageProvider)
	}
}

package travel_plan_fx

import (
	"context"
	"fmt"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"io"
	"mapfuture/internal/api/controllers"
	"mapfuture/internal/config"
	"mapfuture/internal/services"
	"mapfuture/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvideTravelPlanService,
	ProvideTravelPlanController)

// ProvideCompletionClient creates the completion client for the configured provider
func ProvideCompletionClient(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (utils.CompletionClientInterface, error) {
	llm := cfg.LLM
	log.Info("initializing completion client",
		zap.String("provider", llm.Provider),
		zap.String("model", llm.Model),
		zap.String("base_url", llm.BaseURL),
	)

	client, err := utils.NewCompletionClient(context.Background(), llm.Provider, llm.APIKey, llm.Model, llm.BaseURL, llm.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", llm.Provider, err)
	}

	if closer, ok := client.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return client, nil
}

// ProvideTravelPlanService creates the travel plan service with all dependencies
func ProvideTravelPlanService(
	client utils.CompletionClientInterface,
	cfg config.Config,
	log *zap.Logger,
) services.TravelPlanServiceInterface {
	return services.NewTravelPlanService(
		client,
		cfg.PromptPath,
		cfg.SystemPrompt,
		log.Named("travel_plan"),
	)
}

// ProvideTravelPlanController creates the travel plan controller
func ProvideTravelPlanController(
	travelPlanService services.TravelPlanServiceInterface,
	log *zap.Logger,
) *controllers.TravelPlanController {
	return controllers.NewTravelPlanController(travelPlanService, log.Named("http"))
}

//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"likability/internal"
	"likability/internal/controllers"
	"likability/internal/providers"
	"likability/internal/services"
	"likability/internal/store"
	"likability/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		store.NewCompressor,
		store.NewFileManager,
		store.NewRepository,
		store.NewScheduler,

		services.NewAdminRegistry,
		services.NewLikabilityService,
		services.NewProfileService,
		services.NewPromptService,

		controllers.NewCommandController,
		controllers.NewStatusController,
		internal.InitCommands,
		internal.NewApp,
	)

	return nil, nil
}

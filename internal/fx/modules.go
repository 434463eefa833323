package fx

import (
	"esports-companion/internal/config"
	"esports-companion/internal/database"
	"esports-companion/internal/logger"
	"esports-companion/internal/metrics"
	"esports-companion/internal/repository"
	"esports-companion/internal/server"
	"esports-companion/internal/service"
	"esports-companion/internal/story"

	"go.uber.org/fx"
)

func ProvideMatchSource(r *repository.MatchRepository) service.MatchSource {
	return r
}

func ProvideTeamSource(r *repository.TeamRepository) service.TeamSource {
	return r
}

func ProvidePlayerSource(r *repository.PlayerRepository) service.PlayerSource {
	return r
}

func ProvideMetrics() metrics.Metrics {
	return metrics.NewService()
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideMetrics),
	// repos
	fx.Provide(repository.NewMatchRepository),
	fx.Provide(repository.NewTeamRepository),
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(ProvideMatchSource),
	fx.Provide(ProvideTeamSource),
	fx.Provide(ProvidePlayerSource),
	// svc
	fx.Provide(service.NewRandomSource),
	fx.Provide(story.NewClockScheduler),
	fx.Provide(service.NewStandingsService),
	fx.Provide(service.NewLeaderboardService),
	fx.Provide(service.NewBoxscoreService),
	fx.Provide(service.NewScheduleService),
	fx.Provide(service.NewStoryService),
	// server
	fx.Provide(server.NewCompanionServer),
	fx.Provide(server.NewRouter),
)

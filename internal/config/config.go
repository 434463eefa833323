package config

import (
	"esports-companion/internal/constants"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// DefaultDBPath keeps the seeded tables in a shared in-memory database so
// every run starts from the same static data.
const DefaultDBPath = "file:companion?mode=memory&cache=shared"

type Config struct {
	DBPath          string
	ServerPort      string
	LogLevel        string
	StoryDuration   time.Duration
	StoryStatsLimit int
	RandomSeed      uint64
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	storyDuration, err := time.ParseDuration(getEnv("STORY_SLIDE_DURATION", constants.DefaultStoryDuration.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse STORY_SLIDE_DURATION: %w", err)
	}
	if storyDuration <= 0 {
		return nil, fmt.Errorf("STORY_SLIDE_DURATION must be positive, got %s", storyDuration)
	}

	statsLimit, err := strconv.Atoi(getEnv("STORY_STATS_LIMIT", strconv.Itoa(constants.StoryStatsLimit)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse STORY_STATS_LIMIT: %w", err)
	}
	if statsLimit <= 0 {
		return nil, fmt.Errorf("STORY_STATS_LIMIT must be positive, got %d", statsLimit)
	}

	seed, err := strconv.ParseUint(getEnv("RANDOM_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RANDOM_SEED: %w", err)
	}

	cfg := &Config{
		DBPath:          getEnv("DB_PATH", DefaultDBPath),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		StoryDuration:   storyDuration,
		StoryStatsLimit: statsLimit,
		RandomSeed:      seed,
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("story_duration", cfg.StoryDuration).
		Int("story_stats_limit", cfg.StoryStatsLimit).
		Bool("seeded_random", cfg.RandomSeed != 0).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)

package constants

import "time"

const (
	DefaultStoryDuration = 5 * time.Second
	StoryStatsLimit      = 10
	LiveRosterPreview    = 5
	HomeUpcomingLimit    = 5
)

const (
	// placement used for smash players without a recorded tournament finish
	MissingPlacement = 999
)

const (
	DatabaseTimeout = 5 * time.Second
	RequestTimeout  = 30 * time.Second
	ClientTimeout   = 10 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	StorySessionIDLength = 12
)

package service

import "esports-companion/internal/domain"

// MatchSource is the read side of the match table. All is the full scan the
// standings engine memoizes around.
type MatchSource interface {
	All() []domain.Match
	ByGame(game domain.Game) []domain.Match
	Get(id string) (domain.Match, bool)
}

type TeamSource interface {
	All() []domain.Team
	ByGame(game domain.Game) []domain.Team
	Get(id string) (domain.Team, bool)
}

type PlayerSource interface {
	All() []domain.Player
	ByGame(game domain.Game) []domain.Player
	ByTeam(teamID string) []domain.Player
}

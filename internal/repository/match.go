package repository

import (
	"context"
	"esports-companion/internal/constants"
	"esports-companion/internal/domain"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

const selectMatches = `
SELECT id, game, home_team_id, away_team_id, home_score, away_score,
       status, round, match_date, match_time, stream_url
FROM matches
ORDER BY rowid`

type matchRow struct {
	ID         string `db:"id"`
	Game       string `db:"game"`
	HomeTeamID string `db:"home_team_id"`
	AwayTeamID string `db:"away_team_id"`
	HomeScore  int    `db:"home_score"`
	AwayScore  int    `db:"away_score"`
	Status     string `db:"status"`
	Round      string `db:"round"`
	MatchDate  string `db:"match_date"`
	MatchTime  string `db:"match_time"`
	StreamURL  string `db:"stream_url"`
}

// MatchRepository holds the match table in memory. It is loaded once by the
// constructor and never changes afterwards.
type MatchRepository struct {
	logger  zerolog.Logger
	matches []domain.Match
	byID    map[string]int
}

func NewMatchRepository(db *sqlx.DB, logger zerolog.Logger) (*MatchRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
	defer cancel()

	var rows []matchRow
	if err := db.SelectContext(ctx, &rows, selectMatches); err != nil {
		logger.Error().Err(err).Msg("failed to load matches")
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}

	r := &MatchRepository{
		logger:  logger,
		matches: make([]domain.Match, 0, len(rows)),
		byID:    make(map[string]int, len(rows)),
	}
	for _, row := range rows {
		r.byID[row.ID] = len(r.matches)
		r.matches = append(r.matches, domain.Match{
			ID:         row.ID,
			Game:       domain.Game(row.Game),
			HomeTeamID: row.HomeTeamID,
			AwayTeamID: row.AwayTeamID,
			HomeScore:  row.HomeScore,
			AwayScore:  row.AwayScore,
			Status:     domain.MatchStatus(row.Status),
			Round:      row.Round,
			Date:       row.MatchDate,
			Time:       row.MatchTime,
			StreamURL:  row.StreamURL,
		})
	}

	logger.Info().Int("count", len(r.matches)).Msg("matches loaded")
	return r, nil
}

func (r *MatchRepository) All() []domain.Match {
	return slices.Clone(r.matches)
}

func (r *MatchRepository) ByGame(game domain.Game) []domain.Match {
	out := make([]domain.Match, 0)
	for _, m := range r.matches {
		if m.Game == game {
			out = append(out, m)
		}
	}
	return out
}

func (r *MatchRepository) Get(id string) (domain.Match, bool) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Match{}, false
	}
	return r.matches[i], true
}

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

const selectTeams = `
SELECT id, name, short_name, game, color, region
FROM teams
ORDER BY rowid`

type teamRow struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	ShortName string `db:"short_name"`
	Game      string `db:"game"`
	Color     string `db:"color"`
	Region    string `db:"region"`
}

type TeamRepository struct {
	logger zerolog.Logger
	teams  []domain.Team
	byID   map[string]int
}

func NewTeamRepository(db *sqlx.DB, logger zerolog.Logger) (*TeamRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
	defer cancel()

	var rows []teamRow
	if err := db.SelectContext(ctx, &rows, selectTeams); err != nil {
		logger.Error().Err(err).Msg("failed to load teams")
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	r := &TeamRepository{
		logger: logger,
		teams:  make([]domain.Team, 0, len(rows)),
		byID:   make(map[string]int, len(rows)),
	}
	for _, row := range rows {
		r.byID[row.ID] = len(r.teams)
		r.teams = append(r.teams, domain.Team{
			ID:        row.ID,
			Name:      row.Name,
			ShortName: row.ShortName,
			Game:      domain.Game(row.Game),
			Color:     row.Color,
			Region:    row.Region,
		})
	}

	logger.Info().Int("count", len(r.teams)).Msg("teams loaded")
	return r, nil
}

func (r *TeamRepository) All() []domain.Team {
	return slices.Clone(r.teams)
}

func (r *TeamRepository) ByGame(game domain.Game) []domain.Team {
	out := make([]domain.Team, 0)
	for _, t := range r.teams {
		if t.Game == game {
			out = append(out, t)
		}
	}
	return out
}

func (r *TeamRepository) Get(id string) (domain.Team, bool) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Team{}, false
	}
	return r.teams[i], true
}

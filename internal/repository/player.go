package repository

import (
	"context"
	"database/sql"
	"esports-companion/internal/constants"
	"esports-companion/internal/domain"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	selectPlayers = `
SELECT id, name, username, team_id, game, image
FROM players
ORDER BY rowid`

	selectValorantStats = `
SELECT player_id, kd, acs, headshot_percent, kills, deaths, assists,
       agent_usage, clutch_win_percent, mvps
FROM valorant_stats`

	selectSmashStats = `
SELECT player_id, wins, losses, main_character, damage_per_match, stocks_taken,
       stocks_lost, avg_match_duration, tournament_placements, set_win_percent
FROM smash_stats`

	selectRocketLeagueStats = `
SELECT player_id, goals, assists, saves, shot_accuracy, boost_usage, demos,
       wins, losses, mvps, avg_points_per_match
FROM rocketleague_stats`
)

type playerRow struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Username string `db:"username"`
	TeamID   string `db:"team_id"`
	Game     string `db:"game"`
	Image    string `db:"image"`
}

type valorantRow struct {
	PlayerID         string  `db:"player_id"`
	KD               float64 `db:"kd"`
	ACS              int     `db:"acs"`
	HeadshotPercent  int     `db:"headshot_percent"`
	Kills            int     `db:"kills"`
	Deaths           int     `db:"deaths"`
	Assists          int     `db:"assists"`
	AgentUsage       string  `db:"agent_usage"`
	ClutchWinPercent int     `db:"clutch_win_percent"`
	MVPs             int     `db:"mvps"`
}

type smashRow struct {
	PlayerID             string        `db:"player_id"`
	Wins                 int           `db:"wins"`
	Losses               int           `db:"losses"`
	MainCharacter        string        `db:"main_character"`
	DamagePerMatch       int           `db:"damage_per_match"`
	StocksTaken          int           `db:"stocks_taken"`
	StocksLost           int           `db:"stocks_lost"`
	AvgMatchDuration     string        `db:"avg_match_duration"`
	TournamentPlacements sql.NullInt64 `db:"tournament_placements"`
	SetWinPercent        int           `db:"set_win_percent"`
}

type rocketLeagueRow struct {
	PlayerID          string `db:"player_id"`
	Goals             int    `db:"goals"`
	Assists           int    `db:"assists"`
	Saves             int    `db:"saves"`
	ShotAccuracy      int    `db:"shot_accuracy"`
	BoostUsage        int    `db:"boost_usage"`
	Demos             int    `db:"demos"`
	Wins              int    `db:"wins"`
	Losses            int    `db:"losses"`
	MVPs              int    `db:"mvps"`
	AvgPointsPerMatch int    `db:"avg_points_per_match"`
}

// PlayerRepository materializes every player with its stat block at
// construction. The list is read-only afterwards.
type PlayerRepository struct {
	logger  zerolog.Logger
	players []domain.Player
	byTeam  map[string][]int
}

func NewPlayerRepository(db *sqlx.DB, logger zerolog.Logger) (*PlayerRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
	defer cancel()

	var (
		players      []playerRow
		valorant     []valorantRow
		smash        []smashRow
		rocketLeague []rocketLeagueRow
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.SelectContext(gCtx, &players, selectPlayers)
	})
	g.Go(func() error {
		return db.SelectContext(gCtx, &valorant, selectValorantStats)
	})
	g.Go(func() error {
		return db.SelectContext(gCtx, &smash, selectSmashStats)
	})
	g.Go(func() error {
		return db.SelectContext(gCtx, &rocketLeague, selectRocketLeagueStats)
	})
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("failed to load players")
		return nil, fmt.Errorf("failed to load players: %w", err)
	}

	valorantByID := make(map[string]*domain.ValorantStats, len(valorant))
	for _, s := range valorant {
		valorantByID[s.PlayerID] = &domain.ValorantStats{
			KD:               s.KD,
			ACS:              s.ACS,
			HeadshotPercent:  s.HeadshotPercent,
			Kills:            s.Kills,
			Deaths:           s.Deaths,
			Assists:          s.Assists,
			AgentUsage:       s.AgentUsage,
			ClutchWinPercent: s.ClutchWinPercent,
			MVPs:             s.MVPs,
		}
	}
	smashByID := make(map[string]*domain.SmashStats, len(smash))
	for _, s := range smash {
		smashByID[s.PlayerID] = &domain.SmashStats{
			Wins:                 s.Wins,
			Losses:               s.Losses,
			MainCharacter:        s.MainCharacter,
			DamagePerMatch:       s.DamagePerMatch,
			StocksTaken:          s.StocksTaken,
			StocksLost:           s.StocksLost,
			AvgMatchDuration:     s.AvgMatchDuration,
			TournamentPlacements: int(s.TournamentPlacements.Int64),
			SetWinPercent:        s.SetWinPercent,
		}
	}
	rocketLeagueByID := make(map[string]*domain.RocketLeagueStats, len(rocketLeague))
	for _, s := range rocketLeague {
		rocketLeagueByID[s.PlayerID] = &domain.RocketLeagueStats{
			Goals:             s.Goals,
			Assists:           s.Assists,
			Saves:             s.Saves,
			ShotAccuracy:      s.ShotAccuracy,
			BoostUsage:        s.BoostUsage,
			Demos:             s.Demos,
			Wins:              s.Wins,
			Losses:            s.Losses,
			MVPs:              s.MVPs,
			AvgPointsPerMatch: s.AvgPointsPerMatch,
		}
	}

	r := &PlayerRepository{
		logger:  logger,
		players: make([]domain.Player, 0, len(players)),
		byTeam:  make(map[string][]int),
	}
	for _, row := range players {
		p := domain.Player{
			ID:       row.ID,
			Name:     row.Name,
			Username: row.Username,
			TeamID:   row.TeamID,
			Game:     domain.Game(row.Game),
			Image:    row.Image,
		}
		// only the block for the player's own game is attached
		switch p.Game {
		case domain.GameValorant:
			p.Valorant = valorantByID[p.ID]
		case domain.GameSmash:
			p.Smash = smashByID[p.ID]
		case domain.GameRocketLeague:
			p.RocketLeague = rocketLeagueByID[p.ID]
		}
		if p.Valorant == nil && p.Smash == nil && p.RocketLeague == nil {
			logger.Warn().Str("player_id", p.ID).Str("game", string(p.Game)).Msg("player has no stat block")
		}

		r.byTeam[p.TeamID] = append(r.byTeam[p.TeamID], len(r.players))
		r.players = append(r.players, p)
	}

	logger.Info().Int("count", len(r.players)).Msg("players loaded")
	return r, nil
}

func (r *PlayerRepository) All() []domain.Player {
	return slices.Clone(r.players)
}

func (r *PlayerRepository) ByGame(game domain.Game) []domain.Player {
	out := make([]domain.Player, 0)
	for _, p := range r.players {
		if p.Game == game {
			out = append(out, p)
		}
	}
	return out
}

func (r *PlayerRepository) ByTeam(teamID string) []domain.Player {
	idx := r.byTeam[teamID]
	out := make([]domain.Player, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.players[i])
	}
	return out
}

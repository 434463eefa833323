package service

import (
	"esports-companion/internal/domain"
	"esports-companion/internal/metrics"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

type boxscoreKey struct {
	matchID string
	teamID  string
}

type matchOutcome struct {
	homeTeamID string
	awayTeamID string
	homeScore  int
	awayScore  int
}

func (o matchOutcome) won(teamID string) bool {
	switch teamID {
	case o.homeTeamID:
		return o.homeScore > o.awayScore
	case o.awayTeamID:
		return o.awayScore > o.homeScore
	}
	return false
}

// BoxscoreService generates per player match rows biased by the result. Each
// (match, team) pair is rolled exactly once; later lookups decode the stored
// msgpack snapshot so every caller gets an identical, independent copy.
type BoxscoreService struct {
	teams   TeamSource
	players PlayerSource
	rng     RandomSource
	metrics metrics.Metrics
	logger  zerolog.Logger

	outcomes map[string]matchOutcome

	mu    sync.Mutex
	cache map[boxscoreKey][]byte
}

func NewBoxscoreService(matches MatchSource, teams TeamSource, players PlayerSource, rng RandomSource, m metrics.Metrics, logger zerolog.Logger) *BoxscoreService {
	outcomes := make(map[string]matchOutcome)
	for _, match := range matches.All() {
		if match.Status != domain.MatchCompleted {
			continue
		}
		outcomes[match.ID] = matchOutcome{
			homeTeamID: match.HomeTeamID,
			awayTeamID: match.AwayTeamID,
			homeScore:  match.HomeScore,
			awayScore:  match.AwayScore,
		}
	}

	return &BoxscoreService{
		teams:    teams,
		players:  players,
		rng:      rng,
		metrics:  m,
		logger:   logger,
		outcomes: outcomes,
		cache:    make(map[boxscoreKey][]byte),
	}
}

// IsWinner reports whether teamID won matchID. Matches without a known
// outcome count as losses.
func (s *BoxscoreService) IsWinner(matchID, teamID string) bool {
	outcome, ok := s.outcomes[matchID]
	if !ok {
		return false
	}
	return outcome.won(teamID)
}

func (s *BoxscoreService) PlayersByTeamAndMatch(matchID, teamID string) ([]domain.GamePlayerStats, error) {
	key := boxscoreKey{matchID: matchID, teamID: teamID}

	s.mu.Lock()
	defer s.mu.Unlock()

	if blob, ok := s.cache[key]; ok {
		s.metrics.IncBoxscoreCacheHits()
		return decodeBoxscore(blob)
	}
	s.metrics.IncBoxscoreCacheMisses()

	won := s.IsWinner(matchID, teamID)
	rows := s.generate(teamID, won)

	blob, err := msgpack.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to encode boxscore: %w", err)
	}
	s.cache[key] = blob

	s.logger.Debug().
		Str("match_id", matchID).
		Str("team_id", teamID).
		Bool("won", won).
		Int("players", len(rows)).
		Msg("boxscore generated")

	return decodeBoxscore(blob)
}

func (s *BoxscoreService) generate(teamID string, won bool) []domain.GamePlayerStats {
	players := s.players.ByTeam(teamID)
	rows := make([]domain.GamePlayerStats, 0, len(players))
	if len(players) == 0 {
		return rows
	}

	game := players[0].Game
	if team, ok := s.teams.Get(teamID); ok {
		game = team.Game
	}

	for _, p := range players {
		rows = append(rows, domain.GamePlayerStats{
			PlayerID: p.ID,
			Name:     p.Name,
			Username: p.Username,
			Image:    p.Image,
			Stats:    s.roll(game, won),
		})
	}
	return rows
}

func (s *BoxscoreService) roll(game domain.Game, won bool) map[string]int {
	switch game {
	case domain.GameValorant:
		if won {
			return map[string]int{
				"kills":   between(s.rng, 15, 23),
				"deaths":  between(s.rng, 8, 13),
				"assists": between(s.rng, 3, 7),
				"acs":     between(s.rng, 220, 270),
			}
		}
		return map[string]int{
			"kills":   between(s.rng, 10, 16),
			"deaths":  between(s.rng, 10, 16),
			"assists": between(s.rng, 3, 7),
			"acs":     between(s.rng, 170, 220),
		}
	case domain.GameSmash:
		if won {
			return map[string]int{
				"stocks": between(s.rng, 4, 6),
				"kos":    between(s.rng, 6, 9),
				"damage": between(s.rng, 150, 200),
			}
		}
		return map[string]int{
			"stocks": between(s.rng, 2, 4),
			"kos":    between(s.rng, 3, 6),
			"damage": between(s.rng, 150, 200),
		}
	case domain.GameRocketLeague:
		var goals int
		if won {
			goals = between(s.rng, 1, 3)
		} else {
			goals = between(s.rng, 0, 2)
		}
		assists := between(s.rng, 1, 3)
		saves := between(s.rng, 2, 5)
		return map[string]int{
			"goals":   goals,
			"assists": assists,
			"saves":   saves,
			"points":  100*goals + 50*assists + 50*saves + between(s.rng, 0, 100),
		}
	}
	return map[string]int{}
}

func decodeBoxscore(blob []byte) ([]domain.GamePlayerStats, error) {
	var rows []domain.GamePlayerStats
	if err := msgpack.Unmarshal(blob, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode boxscore: %w", err)
	}
	if rows == nil {
		rows = []domain.GamePlayerStats{}
	}
	return rows, nil
}

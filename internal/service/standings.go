package service

import (
	"esports-companion/internal/domain"
	"esports-companion/internal/metrics"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// StandingsService derives team records from completed matches. Records are
// cached per team id for the life of the process; the match list is static so
// the cache is never invalidated.
type StandingsService struct {
	matches MatchSource
	teams   TeamSource
	players PlayerSource
	metrics metrics.Metrics
	logger  zerolog.Logger

	mu      sync.Mutex
	records map[string]domain.TeamRecord
}

func NewStandingsService(matches MatchSource, teams TeamSource, players PlayerSource, m metrics.Metrics, logger zerolog.Logger) *StandingsService {
	return &StandingsService{
		matches: matches,
		teams:   teams,
		players: players,
		metrics: m,
		logger:  logger,
		records: make(map[string]domain.TeamRecord),
	}
}

// Record returns the wins and losses of teamID. Unknown ids produce an empty
// record. Tied completed matches count toward neither field.
func (s *StandingsService) Record(teamID string) domain.TeamRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[teamID]; ok {
		s.metrics.IncRecordCacheHits()
		return rec
	}
	s.metrics.IncRecordCacheMisses()
	s.metrics.IncMatchScans()

	var rec domain.TeamRecord
	for _, m := range s.matches.All() {
		if m.Status != domain.MatchCompleted {
			continue
		}

		var own, opp int
		switch teamID {
		case m.HomeTeamID:
			own, opp = m.HomeScore, m.AwayScore
		case m.AwayTeamID:
			own, opp = m.AwayScore, m.HomeScore
		default:
			continue
		}

		if own > opp {
			rec.Wins++
		} else if own < opp {
			rec.Losses++
		}
	}

	s.records[teamID] = rec
	s.logger.Debug().
		Str("team_id", teamID).
		Int("wins", rec.Wins).
		Int("losses", rec.Losses).
		Msg("team record computed")
	return rec
}

// Rank orders the teams of a game by win percentage, then raw wins. Remaining
// ties keep repository order.
func (s *StandingsService) Rank(game domain.Game) []domain.Standing {
	teams := s.teams.ByGame(game)
	standings := make([]domain.Standing, 0, len(teams))
	for _, t := range teams {
		rec := s.Record(t.ID)
		standings = append(standings, domain.Standing{
			Team:          t,
			Record:        rec,
			WinPercentage: rec.WinPercentage(),
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.WinPercentage != b.WinPercentage {
			return a.WinPercentage > b.WinPercentage
		}
		return a.Record.Wins > b.Record.Wins
	})

	for i := range standings {
		standings[i].Position = i + 1
	}
	return standings
}

// TeamWithRecord resolves a team row with its derived record and roster.
// A missing team row reports false instead of an error.
func (s *StandingsService) TeamWithRecord(teamID string) (domain.TeamDetail, bool) {
	team, ok := s.teams.Get(teamID)
	if !ok {
		s.logger.Debug().Str("team_id", teamID).Msg("team not found")
		return domain.TeamDetail{}, false
	}
	return domain.TeamDetail{
		Team:   team,
		Record: s.Record(teamID),
		Roster: s.players.ByTeam(teamID),
	}, true
}

// Teams lists every team of a game in repository order with records.
func (s *StandingsService) Teams(game domain.Game) []domain.TeamDetail {
	teams := s.teams.ByGame(game)
	out := make([]domain.TeamDetail, 0, len(teams))
	for _, t := range teams {
		out = append(out, domain.TeamDetail{
			Team:   t,
			Record: s.Record(t.ID),
			Roster: s.players.ByTeam(t.ID),
		})
	}
	return out
}

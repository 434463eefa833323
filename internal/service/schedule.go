package service

import (
	"esports-companion/internal/domain"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

const (
	roundRobin      = "Round Robin"
	roundEliminator = "Eliminator"
	roundSemifinal  = "Semifinal"
	roundGrandFinal = "Grand Final"
)

type ScheduleService struct {
	matches MatchSource
	logger  zerolog.Logger
}

func NewScheduleService(matches MatchSource, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{matches: matches, logger: logger}
}

// Dates lists the distinct match days in schedule order.
func (s *ScheduleService) Dates() []string {
	seen := make(map[string]bool)
	dates := make([]string, 0)
	for _, m := range s.matches.All() {
		if !seen[m.Date] {
			seen[m.Date] = true
			dates = append(dates, m.Date)
		}
	}
	sort.Strings(dates)
	return dates
}

// ByDate returns the matches on date, live first, then upcoming, then
// completed, and by game catalog order within a status. An empty game selects
// every game.
func (s *ScheduleService) ByDate(date string, game domain.Game) []domain.Match {
	out := make([]domain.Match, 0)
	for _, m := range s.matches.All() {
		if m.Date != date {
			continue
		}
		if game != "" && m.Game != game {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Status.Order() != b.Status.Order() {
			return a.Status.Order() < b.Status.Order()
		}
		return a.Game.Order() < b.Game.Order()
	})
	return out
}

// Live returns the currently live matches of a game.
func (s *ScheduleService) Live(game domain.Game) []domain.Match {
	return s.withStatus(s.matches.ByGame(game), domain.MatchLive, -1)
}

// Upcoming returns the first limit upcoming matches of a game in schedule
// table order. A negative limit returns all of them.
func (s *ScheduleService) Upcoming(game domain.Game, limit int) []domain.Match {
	return s.withStatus(s.matches.ByGame(game), domain.MatchUpcoming, limit)
}

// Replays lists completed matches in table order. An empty game selects
// every game.
func (s *ScheduleService) Replays(game domain.Game) []domain.Match {
	matches := s.matches.All()
	if game != "" {
		matches = s.matches.ByGame(game)
	}
	out := s.withStatus(matches, domain.MatchCompleted, -1)

	s.logger.Debug().
		Str("game", string(game)).
		Int("replays", len(out)).
		Msg("replays listed")
	return out
}

func (s *ScheduleService) withStatus(matches []domain.Match, status domain.MatchStatus, limit int) []domain.Match {
	out := make([]domain.Match, 0)
	for _, m := range matches {
		if limit >= 0 && len(out) >= limit {
			break
		}
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out
}

// Bracket groups a game's matches by round label. Round robin, eliminator
// and grand final labels must match exactly; any label mentioning a
// semifinal counts as one. Matches with other labels are left out.
func (s *ScheduleService) Bracket(game domain.Game) domain.Bracket {
	b := domain.Bracket{
		Game:        game,
		RoundRobin:  []domain.Match{},
		Eliminators: []domain.Match{},
		Semifinals:  []domain.Match{},
		Finals:      []domain.Match{},
	}
	for _, m := range s.matches.ByGame(game) {
		switch {
		case m.Round == roundRobin:
			b.RoundRobin = append(b.RoundRobin, m)
		case m.Round == roundEliminator:
			b.Eliminators = append(b.Eliminators, m)
		case strings.Contains(m.Round, roundSemifinal):
			b.Semifinals = append(b.Semifinals, m)
		case m.Round == roundGrandFinal:
			b.Finals = append(b.Finals, m)
		}
	}

	s.logger.Debug().
		Str("game", string(game)).
		Int("round_robin", len(b.RoundRobin)).
		Int("eliminators", len(b.Eliminators)).
		Int("semifinals", len(b.Semifinals)).
		Int("finals", len(b.Finals)).
		Msg("bracket grouped")
	return b
}

package service

import (
	"esports-companion/internal/constants"
	"esports-companion/internal/domain"
	"sort"
	"strconv"

	"github.com/rs/zerolog"
)

// percentKeys render with a trailing percent sign. The rule is keyed by stat
// name, not by field type.
var percentKeys = map[string]bool{
	"headshotPercent": true,
	"setWinPercent":   true,
}

type statCard struct {
	title string
	key   string
}

var statCards = map[domain.Game][]statCard{
	domain.GameValorant: {
		{title: "K/D Leader", key: "kd"},
		{title: "ACS Leader", key: "acs"},
		{title: "Headshot Leader", key: "headshotPercent"},
		{title: "Kills Leader", key: "kills"},
	},
	domain.GameSmash: {
		{title: "Most Wins", key: "wins"},
		{title: "Set Win Rate", key: "setWinPercent"},
		{title: "Damage Leader", key: "damagePerMatch"},
		{title: "Stocks Taken", key: "stocksTaken"},
	},
	domain.GameRocketLeague: {
		{title: "Top Scorer", key: "goals"},
		{title: "Playmaker", key: "assists"},
		{title: "Last Line", key: "saves"},
		{title: "Points Leader", key: "avgPointsPerMatch"},
	},
}

type LeaderboardService struct {
	players PlayerSource
	logger  zerolog.Logger
}

func NewLeaderboardService(players PlayerSource, logger zerolog.Logger) *LeaderboardService {
	return &LeaderboardService{players: players, logger: logger}
}

// Build ranks every player of game by statKey, highest first. Missing and
// text fields count as 0, ties keep repository order.
func (s *LeaderboardService) Build(game domain.Game, statKey string) []domain.LeaderboardEntry {
	players := s.players.ByGame(game)
	entries := make([]domain.LeaderboardEntry, 0, len(players))
	for _, p := range players {
		v := p.Stat(statKey)
		entries = append(entries, domain.LeaderboardEntry{
			Player:  p,
			StatKey: statKey,
			Value:   v.Number,
			Display: formatStat(statKey, v),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	s.logger.Debug().
		Str("game", string(game)).
		Str("stat_key", statKey).
		Int("entries", len(entries)).
		Msg("leaderboard built")
	return entries
}

// Top is Build truncated to limit entries.
func (s *LeaderboardService) Top(game domain.Game, statKey string, limit int) []domain.LeaderboardEntry {
	entries := s.Build(game, statKey)
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// MVP picks the most valuable player of a game. Smash ranks by best (lowest)
// tournament placement; the other games by mvp awards.
func (s *LeaderboardService) MVP(game domain.Game) (domain.LeaderboardEntry, bool) {
	if game == domain.GameSmash {
		return s.smashMVP()
	}

	entries := s.Build(game, "mvps")
	if len(entries) == 0 {
		return domain.LeaderboardEntry{}, false
	}
	return entries[0], true
}

func (s *LeaderboardService) smashMVP() (domain.LeaderboardEntry, bool) {
	players := s.players.ByGame(domain.GameSmash)
	if len(players) == 0 {
		return domain.LeaderboardEntry{}, false
	}

	best, bestPlacement := 0, placement(players[0])
	for i := 1; i < len(players); i++ {
		if p := placement(players[i]); p < bestPlacement {
			best, bestPlacement = i, p
		}
	}

	v := players[best].Stat("tournamentPlacements")
	return domain.LeaderboardEntry{
		Rank:    1,
		Player:  players[best],
		StatKey: "tournamentPlacements",
		Value:   v.Number,
		Display: formatStat("tournamentPlacements", v),
	}, true
}

func placement(p domain.Player) int {
	v := p.Stat("tournamentPlacements")
	if !v.Present {
		return constants.MissingPlacement
	}
	return int(v.Number)
}

// StatLeaders returns the fixed leader cards of a game, each with its top
// player when the game has any.
func (s *LeaderboardService) StatLeaders(game domain.Game) []domain.StatLeader {
	cards := statCards[game]
	out := make([]domain.StatLeader, 0, len(cards))
	for _, c := range cards {
		leader := domain.StatLeader{Title: c.title, StatKey: c.key}
		if entries := s.Build(game, c.key); len(entries) > 0 {
			top := entries[0]
			leader.Leader = &top
		}
		out = append(out, leader)
	}
	return out
}

func formatStat(key string, v domain.StatValue) string {
	if v.Text != "" {
		return v.Text
	}
	out := strconv.FormatFloat(v.Number, 'f', -1, 64)
	if percentKeys[key] {
		out += "%"
	}
	return out
}

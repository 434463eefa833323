package service

import (
	"esports-companion/internal/domain"
	"slices"
	"sync"
)

type fakeMatches struct {
	mu      sync.Mutex
	matches []domain.Match
	scans   int
}

func (f *fakeMatches) All() []domain.Match {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans++
	return slices.Clone(f.matches)
}

func (f *fakeMatches) ByGame(game domain.Game) []domain.Match {
	var out []domain.Match
	for _, m := range f.matches {
		if m.Game == game {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeMatches) Get(id string) (domain.Match, bool) {
	for _, m := range f.matches {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Match{}, false
}

type fakeTeams struct {
	teams []domain.Team
}

func (f *fakeTeams) All() []domain.Team {
	return slices.Clone(f.teams)
}

func (f *fakeTeams) ByGame(game domain.Game) []domain.Team {
	var out []domain.Team
	for _, t := range f.teams {
		if t.Game == game {
			out = append(out, t)
		}
	}
	return out
}

func (f *fakeTeams) Get(id string) (domain.Team, bool) {
	for _, t := range f.teams {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Team{}, false
}

type fakePlayers struct {
	players []domain.Player
}

func (f *fakePlayers) All() []domain.Player {
	return slices.Clone(f.players)
}

func (f *fakePlayers) ByGame(game domain.Game) []domain.Player {
	var out []domain.Player
	for _, p := range f.players {
		if p.Game == game {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakePlayers) ByTeam(teamID string) []domain.Player {
	var out []domain.Player
	for _, p := range f.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}

// sequenceRandom replays a fixed cycle of draws, each clamped into range.
type sequenceRandom struct {
	values []int
	i      int
}

func (r *sequenceRandom) IntN(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.i%len(r.values)]
	r.i++
	return v % n
}

func completed(id string, game domain.Game, home, away string, homeScore, awayScore int) domain.Match {
	return domain.Match{
		ID:         id,
		Game:       game,
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		Status:     domain.MatchCompleted,
		Date:       "2025-05-06",
	}
}

func valorantPlayer(id, teamID string, stats domain.ValorantStats) domain.Player {
	return domain.Player{ID: id, Name: id, Username: id, TeamID: teamID, Game: domain.GameValorant, Valorant: &stats}
}

func smashPlayer(id, teamID string, stats domain.SmashStats) domain.Player {
	return domain.Player{ID: id, Name: id, Username: id, TeamID: teamID, Game: domain.GameSmash, Smash: &stats}
}

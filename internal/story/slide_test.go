package story

import (
	"esports-companion/internal/domain"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLive struct {
	matches []domain.Match
}

func (f fakeLive) Live(game domain.Game) []domain.Match {
	var out []domain.Match
	for _, m := range f.matches {
		if m.Game == game {
			out = append(out, m)
		}
	}
	return out
}

type fakeStandings struct {
	teams map[string]domain.TeamDetail
	order []string
}

func (f fakeStandings) Rank(game domain.Game) []domain.Standing {
	var out []domain.Standing
	for _, id := range f.order {
		if d := f.teams[id]; d.Team.Game == game {
			out = append(out, domain.Standing{Position: len(out) + 1, Team: d.Team, Record: d.Record})
		}
	}
	return out
}

func (f fakeStandings) Teams(game domain.Game) []domain.TeamDetail {
	var out []domain.TeamDetail
	for _, id := range f.order {
		if d := f.teams[id]; d.Team.Game == game {
			out = append(out, d)
		}
	}
	return out
}

func (f fakeStandings) TeamWithRecord(teamID string) (domain.TeamDetail, bool) {
	d, ok := f.teams[teamID]
	return d, ok
}

type fakeLeaderboard struct {
	games []domain.Game
	keys  []string
	limit int
}

func (f *fakeLeaderboard) Top(game domain.Game, statKey string, limit int) []domain.LeaderboardEntry {
	f.games = append(f.games, game)
	f.keys = append(f.keys, statKey)
	f.limit = limit
	return []domain.LeaderboardEntry{{Rank: 1, StatKey: statKey}}
}

func roster(teamID string, n int) []domain.Player {
	out := make([]domain.Player, n)
	for i := range out {
		out[i] = domain.Player{ID: fmt.Sprintf("%s-p%d", teamID, i), TeamID: teamID}
	}
	return out
}

func testStandings() fakeStandings {
	return fakeStandings{
		order: []string{"val-1", "val-2", "smash-1"},
		teams: map[string]domain.TeamDetail{
			"val-1":   {Team: domain.Team{ID: "val-1", Game: domain.GameValorant}, Record: domain.TeamRecord{Wins: 2, Losses: 1}, Roster: roster("val-1", 7)},
			"val-2":   {Team: domain.Team{ID: "val-2", Game: domain.GameValorant}, Roster: roster("val-2", 3)},
			"smash-1": {Team: domain.Team{ID: "smash-1", Game: domain.GameSmash}},
		},
	}
}

func TestBuildLiveSlides(t *testing.T) {
	live := fakeLive{matches: []domain.Match{
		{ID: "m1", Game: domain.GameValorant, HomeTeamID: "val-1", AwayTeamID: "val-2", Status: domain.MatchLive},
		{ID: "m2", Game: domain.GameValorant, HomeTeamID: "val-1", AwayTeamID: "val-404", Status: domain.MatchLive},
	}}
	b := NewBuilder(live, testStandings(), &fakeLeaderboard{}, 10)

	slides := b.Build(ContentLive, domain.GameValorant)

	require.Len(t, slides, 2)
	assert.Equal(t, "live-m1", slides[0].ID)
	require.NotNil(t, slides[0].Live)
	assert.Len(t, slides[0].Live.Home.Roster, 5)
	assert.Len(t, slides[0].Live.Away.Roster, 3)
	assert.Equal(t, domain.TeamRecord{Wins: 2, Losses: 1}, slides[0].Live.Home.Record)

	assert.Equal(t, "live-m2", slides[1].ID)
	assert.Nil(t, slides[1].Live)
	assert.Equal(t, "Team not found", slides[1].Placeholder)
}

func TestBuildLiveWithoutLiveMatches(t *testing.T) {
	b := NewBuilder(fakeLive{}, testStandings(), &fakeLeaderboard{}, 10)

	slides := b.Build(ContentLive, domain.GameSmash)

	require.Len(t, slides, 1)
	assert.Equal(t, "no-live", slides[0].ID)
	assert.NotEmpty(t, slides[0].Placeholder)
}

func TestBuildStatsAlwaysReadsValorant(t *testing.T) {
	lb := &fakeLeaderboard{}
	b := NewBuilder(fakeLive{}, testStandings(), lb, 4)

	slides := b.Build(ContentStats, domain.GameRocketLeague)

	require.Len(t, slides, 3)
	assert.Equal(t, []string{"stats-kills", "stats-acs", "stats-assists"}, []string{slides[0].ID, slides[1].ID, slides[2].ID})
	assert.Equal(t, []string{"kills", "acs", "assists"}, lb.keys)
	assert.Equal(t, []domain.Game{domain.GameValorant, domain.GameValorant, domain.GameValorant}, lb.games)
	assert.Equal(t, 4, lb.limit)
	assert.Equal(t, "KILLS LEADERS", slides[0].Stat.Label)
}

func TestBuildStatsDefaultLimit(t *testing.T) {
	lb := &fakeLeaderboard{}
	b := NewBuilder(fakeLive{}, testStandings(), lb, 0)

	b.Build(ContentStats, domain.GameValorant)

	assert.Equal(t, 10, lb.limit)
}

func TestBuildStandingsAndHighlights(t *testing.T) {
	b := NewBuilder(fakeLive{}, testStandings(), &fakeLeaderboard{}, 10)

	standings := b.Build(ContentStandings, domain.GameValorant)
	require.Len(t, standings, 1)
	assert.Equal(t, "standings-1", standings[0].ID)
	assert.Len(t, standings[0].Standings, 2)

	highlights := b.Build(ContentHighlights, domain.GameValorant)
	require.Len(t, highlights, 1)
	assert.Equal(t, "highlights-1", highlights[0].ID)
}

func TestBuildTeamSlides(t *testing.T) {
	b := NewBuilder(fakeLive{}, testStandings(), &fakeLeaderboard{}, 10)

	slides := b.Build(ContentTeams, domain.GameValorant)
	require.Len(t, slides, 2)
	assert.Equal(t, "team-val-1", slides[0].ID)
	assert.Equal(t, "team-val-2", slides[1].ID)
	assert.Len(t, slides[0].Team.Roster, 7)

	empty := b.Build(ContentTeams, domain.GameRocketLeague)
	require.Len(t, empty, 1)
	assert.Equal(t, "no-teams", empty[0].ID)
}

func TestBuildUnknownContent(t *testing.T) {
	b := NewBuilder(fakeLive{}, testStandings(), &fakeLeaderboard{}, 10)

	slides := b.Build(ContentType("replays"), domain.GameValorant)

	require.Len(t, slides, 1)
	assert.Equal(t, "empty", slides[0].ID)
}

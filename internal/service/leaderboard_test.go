package service

import (
	"esports-companion/internal/domain"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valorantRoster() []domain.Player {
	return []domain.Player{
		valorantPlayer("tenz", "val-1", domain.ValorantStats{KD: 1.32, ACS: 268, HeadshotPercent: 28, Kills: 342, Assists: 88, MVPs: 9, AgentUsage: "Jett"}),
		valorantPlayer("aspas", "val-2", domain.ValorantStats{KD: 1.41, ACS: 281, HeadshotPercent: 31, Kills: 358, Assists: 70, MVPs: 12, AgentUsage: "Raze"}),
		valorantPlayer("boaster", "val-3", domain.ValorantStats{KD: 0.98, ACS: 190, HeadshotPercent: 21, Kills: 210, Assists: 160, MVPs: 3, AgentUsage: "Astra"}),
	}
}

func newLeaderboard(players []domain.Player) *LeaderboardService {
	return NewLeaderboardService(&fakePlayers{players: players}, zerolog.Nop())
}

func TestBuildRanksDescending(t *testing.T) {
	svc := newLeaderboard(valorantRoster())

	entries := svc.Build(domain.GameValorant, "kills")

	require.Len(t, entries, 3)
	assert.Equal(t, "aspas", entries[0].Player.ID)
	assert.Equal(t, float64(358), entries[0].Value)
	assert.Equal(t, "358", entries[0].Display)
	assert.Equal(t, "tenz", entries[1].Player.ID)
	assert.Equal(t, "boaster", entries[2].Player.ID)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
		assert.Equal(t, "kills", e.StatKey)
	}
}

func TestBuildOnlyIncludesGame(t *testing.T) {
	players := append(valorantRoster(), smashPlayer("mkleo", "smash-1", domain.SmashStats{Wins: 40}))
	svc := newLeaderboard(players)

	assert.Len(t, svc.Build(domain.GameValorant, "kills"), 3)
	assert.Len(t, svc.Build(domain.GameSmash, "wins"), 1)
	assert.Empty(t, svc.Build(domain.GameRocketLeague, "goals"))
}

func TestBuildFormatsDisplay(t *testing.T) {
	svc := newLeaderboard(valorantRoster())

	kd := svc.Build(domain.GameValorant, "kd")
	assert.Equal(t, "1.41", kd[0].Display)

	hs := svc.Build(domain.GameValorant, "headshotPercent")
	assert.Equal(t, "31%", hs[0].Display)

	agents := svc.Build(domain.GameValorant, "agentUsage")
	for _, e := range agents {
		assert.Zero(t, e.Value)
	}
	assert.Equal(t, "Jett", agents[0].Display)
}

func TestBuildUnknownKeyKeepsOrder(t *testing.T) {
	svc := newLeaderboard(valorantRoster())

	entries := svc.Build(domain.GameValorant, "goals")

	require.Len(t, entries, 3)
	assert.Equal(t, "tenz", entries[0].Player.ID)
	assert.Equal(t, "0", entries[0].Display)
}

func TestTopTruncates(t *testing.T) {
	svc := newLeaderboard(valorantRoster())

	assert.Len(t, svc.Top(domain.GameValorant, "acs", 2), 2)
	assert.Len(t, svc.Top(domain.GameValorant, "acs", 10), 3)
}

func TestMVPByAwards(t *testing.T) {
	svc := newLeaderboard(valorantRoster())

	mvp, ok := svc.MVP(domain.GameValorant)

	require.True(t, ok)
	assert.Equal(t, "aspas", mvp.Player.ID)
	assert.Equal(t, 1, mvp.Rank)
}

func TestMVPSmashUsesBestPlacement(t *testing.T) {
	svc := newLeaderboard([]domain.Player{
		smashPlayer("sparg0", "smash-1", domain.SmashStats{Wins: 50, TournamentPlacements: 3, SetWinPercent: 70}),
		smashPlayer("nobody", "smash-2", domain.SmashStats{Wins: 60}),
		smashPlayer("mkleo", "smash-3", domain.SmashStats{Wins: 45, TournamentPlacements: 1}),
	})

	mvp, ok := svc.MVP(domain.GameSmash)

	require.True(t, ok)
	assert.Equal(t, "mkleo", mvp.Player.ID)
	assert.Equal(t, "tournamentPlacements", mvp.StatKey)
	assert.Equal(t, float64(1), mvp.Value)
}

func TestMVPSmashAllMissingPicksFirst(t *testing.T) {
	svc := newLeaderboard([]domain.Player{
		smashPlayer("a", "smash-1", domain.SmashStats{}),
		smashPlayer("b", "smash-2", domain.SmashStats{}),
	})

	mvp, ok := svc.MVP(domain.GameSmash)

	require.True(t, ok)
	assert.Equal(t, "a", mvp.Player.ID)
}

func TestMVPEmptyGame(t *testing.T) {
	svc := newLeaderboard(nil)

	_, ok := svc.MVP(domain.GameRocketLeague)
	assert.False(t, ok)

	_, ok = svc.MVP(domain.GameSmash)
	assert.False(t, ok)
}

func TestStatLeaders(t *testing.T) {
	svc := newLeaderboard(valorantRoster())

	leaders := svc.StatLeaders(domain.GameValorant)

	require.Len(t, leaders, 4)
	keys := make([]string, len(leaders))
	for i, l := range leaders {
		keys[i] = l.StatKey
		require.NotNil(t, l.Leader)
	}
	assert.Equal(t, []string{"kd", "acs", "headshotPercent", "kills"}, keys)
	assert.Equal(t, "aspas", leaders[0].Leader.Player.ID)

	empty := svc.StatLeaders(domain.GameRocketLeague)
	require.Len(t, empty, 4)
	assert.Nil(t, empty[0].Leader)
}

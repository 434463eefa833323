package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGame(t *testing.T) {
	for _, info := range Games {
		g, ok := ParseGame(string(info.ID))
		assert.True(t, ok)
		assert.Equal(t, info.ID, g)
	}

	_, ok := ParseGame("chess")
	assert.False(t, ok)

	_, ok = ParseGame("")
	assert.False(t, ok)
}

func TestGameOrder(t *testing.T) {
	assert.Equal(t, 0, GameValorant.Order())
	assert.Equal(t, 1, GameSmash.Order())
	assert.Equal(t, 2, GameRocketLeague.Order())
	assert.Equal(t, len(Games), Game("chess").Order())
}

func TestMatchStatusOrder(t *testing.T) {
	assert.Less(t, MatchLive.Order(), MatchUpcoming.Order())
	assert.Less(t, MatchUpcoming.Order(), MatchCompleted.Order())
	assert.Less(t, MatchCompleted.Order(), MatchStatus("cancelled").Order())
}

func TestWinPercentage(t *testing.T) {
	tests := []struct {
		record TeamRecord
		want   float64
	}{
		{TeamRecord{}, 0},
		{TeamRecord{Wins: 3}, 1},
		{TeamRecord{Losses: 2}, 0},
		{TeamRecord{Wins: 2, Losses: 1}, 2.0 / 3.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, tt.record.WinPercentage(), 1e-9)
		assert.Equal(t, tt.record.Wins+tt.record.Losses, tt.record.Played())
	}
}

package database

import (
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSeedsTables(t *testing.T) {
	db, err := Open("file:database_seed?mode=memory&cache=shared", zerolog.Nop())
	require.NoError(t, err)
	defer db.Close()

	version, err := goose.GetDBVersion(db.DB)
	require.NoError(t, err)
	assert.Equal(t, int64(4), version)

	counts := map[string]int{
		"teams":              12,
		"players":            40,
		"valorant_stats":     20,
		"smash_stats":        8,
		"rocketleague_stats": 12,
		"matches":            27,
	}
	for table, want := range counts {
		var got int
		require.NoError(t, db.Get(&got, "SELECT COUNT(*) FROM "+table))
		assert.Equal(t, want, got, table)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	const dsn = "file:database_twice?mode=memory&cache=shared"

	first, err := Open(dsn, zerolog.Nop())
	require.NoError(t, err)
	defer first.Close()

	// the schema is already at the latest version so nothing is reseeded
	second, err := Open(dsn, zerolog.Nop())
	require.NoError(t, err)
	defer second.Close()

	var teams int
	require.NoError(t, second.Get(&teams, "SELECT COUNT(*) FROM teams"))
	assert.Equal(t, 12, teams)
}

func TestMatchConstraints(t *testing.T) {
	db, err := Open("file:database_checks?mode=memory&cache=shared", zerolog.Nop())
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO matches (id, game, home_team_id, away_team_id, home_score, away_score, status, match_date, match_time)
		VALUES ('bad', 'valorant', 'val-1', 'val-2', 0, 0, 'postponed', '2026-05-11', '6:00 PM')`)
	assert.Error(t, err)
}

func TestOpenUnreachablePath(t *testing.T) {
	_, err := Open("/nonexistent/dir/companion.db", zerolog.Nop())
	assert.Error(t, err)
}

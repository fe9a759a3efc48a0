package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {

	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	if teardown != nil {
		defer teardown()
	} else {
		defer db.Close()
	}

	// Check if the 'matches' table was created
	var matchesTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='matches'").Scan(&matchesTableName)
	require.NoError(t, err, "Querying for matches table should not produce an error")
	assert.Equal(t, "matches", matchesTableName, "The 'matches' table should be created")

	// Check if the 'match_stats' table was created
	var statsTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='match_stats'").Scan(&statsTableName)
	require.NoError(t, err, "Querying for match_stats table should not produce an error")
	assert.Equal(t, "match_stats", statsTableName, "The 'match_stats' table should be created")
}

func TestInitDB_IsIdempotent(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	// Running the migrations again on an up-to-date database is a no-op.
	require.NoError(t, migrate(db, "../../migrations"))
}

package main

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDatabase(t *testing.T, database string) DB {
	t.Helper()

	db, err := openDatabase(database, filepath.Join(t.TempDir(), "test-"+database))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})

	return db
}

var databases = []string{"sqlite", "boltdb"}

func testMatches(channelID string) []match {
	return []match{
		{ChannelID: channelID, Home: "Sharks", Away: "Jets", HomeIMPs: 42, AwayIMPs: 12, Boards: 20, Played: 100},
		{ChannelID: channelID, Home: "Jets", Away: "Owls", HomeIMPs: 13, AwayIMPs: 12, Boards: 20, Played: 200},
	}
}

func TestOpenDatabaseInvalid(t *testing.T) {
	_, err := openDatabase("postgres", "x")
	assert.Error(t, err)
}

func TestDatabaseInsertAndGet(t *testing.T) {
	for _, database := range databases {
		t.Run(database, func(t *testing.T) {
			db := openTestDatabase(t, database)

			var inserted []match
			for _, m := range testMatches("C1") {
				require.NoError(t, db.insertMatch(&m))
				assert.NotZero(t, m.ID)
				inserted = append(inserted, m)
			}

			matches, err := db.getMatches("C1")
			require.NoError(t, err)
			assert.Equal(t, inserted, matches)

			last, err := db.getLastMatch("C1")
			require.NoError(t, err)
			assert.Equal(t, inserted[1], *last)

			other, err := db.getMatches("C2")
			require.NoError(t, err)
			assert.Empty(t, other)
		})
	}
}

func TestDatabaseLastMatchNotFound(t *testing.T) {
	for _, database := range databases {
		t.Run(database, func(t *testing.T) {
			db := openTestDatabase(t, database)

			_, err := db.getLastMatch("C1")
			require.Error(t, err)
			_, ok := errors.Cause(err).(errNotFound)
			assert.True(t, ok, "%+v", err)
		})
	}
}

func TestDatabaseRemoveAndClear(t *testing.T) {
	for _, database := range databases {
		t.Run(database, func(t *testing.T) {
			db := openTestDatabase(t, database)

			for _, m := range append(testMatches("C1"), testMatches("C2")...) {
				require.NoError(t, db.insertMatch(&m))
			}

			last, err := db.getLastMatch("C1")
			require.NoError(t, err)
			require.NoError(t, db.removeMatch(*last))

			matches, err := db.getMatches("C1")
			require.NoError(t, err)
			require.Len(t, matches, 1)
			assert.Equal(t, "Sharks", matches[0].Home)

			require.NoError(t, db.clearLeague("C1"))
			matches, err = db.getMatches("C1")
			require.NoError(t, err)
			assert.Empty(t, matches)

			matches, err = db.getMatches("C2")
			require.NoError(t, err)
			assert.Len(t, matches, 2)
		})
	}
}

func TestTransferData(t *testing.T) {
	for _, from := range databases {
		for _, to := range databases {
			t.Run(from+" to "+to, func(t *testing.T) {
				in := openTestDatabase(t, from)
				out := openTestDatabase(t, to)

				for _, channelID := range []string{"C1", "C2"} {
					for _, m := range testMatches(channelID) {
						require.NoError(t, in.insertMatch(&m))
					}
				}

				require.NoError(t, transferData(in, out))

				leagues, err := out.getLeagues()
				require.NoError(t, err)
				assert.Equal(t, []string{"C1", "C2"}, leagues)

				matches, err := out.getMatches("C2")
				require.NoError(t, err)
				require.Len(t, matches, 2)
				assert.Equal(t, "Jets", matches[1].Home)
				assert.Equal(t, int64(200), matches[1].Played)
			})
		}
	}
}

func TestTransferDataTwice(t *testing.T) {
	for _, from := range databases {
		for _, to := range databases {
			t.Run(from+" to "+to, func(t *testing.T) {
				in := openTestDatabase(t, from)
				out := openTestDatabase(t, to)

				for _, channelID := range []string{"C1", "C2"} {
					for _, m := range testMatches(channelID) {
						require.NoError(t, in.insertMatch(&m))
					}
				}
				stale := match{ChannelID: "C1", Home: "Old", Away: "Gone", Boards: 20, Played: 1}
				require.NoError(t, out.insertMatch(&stale))

				require.NoError(t, transferData(in, out))
				require.NoError(t, transferData(in, out))

				for _, channelID := range []string{"C1", "C2"} {
					matches, err := out.getMatches(channelID)
					require.NoError(t, err)
					assert.Len(t, matches, 2, channelID)
					for _, m := range matches {
						assert.NotEqual(t, "Old", m.Home)
					}
				}
			})
		}
	}
}

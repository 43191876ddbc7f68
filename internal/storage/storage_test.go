package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLayout = "........" +
	"........" +
	"........" +
	"...WB..." +
	"...BW..." +
	"........" +
	"........" +
	"........"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "othello.db"), false)
	require.NoError(t, err)
	require.NoError(t, store.InitDB())
	t.Cleanup(func() { store.Close() })
	return store
}

func recordGame(t *testing.T, store *Store, gameID string) {
	t.Helper()
	require.NoError(t, store.RecordNewGame(GameRecord{
		GameID:        gameID,
		InitialLayout: testLayout,
		StartingTurn:  "b",
		BlackPlayerID: "black-" + gameID,
		BlackName:     "Black",
		WhitePlayerID: "white-" + gameID,
		WhiteName:     "White",
		StartTimeUTC:  time.Now().UTC(),
	}))
}

func TestStore_RecordAndQuery(t *testing.T) {
	// Given: a game with two moves and a result
	store := newTestStore(t)
	recordGame(t, store, "g1")
	recordGame(t, store, "g2")

	for i, square := range []string{"d3", "c3"} {
		color := "b"
		if i%2 == 1 {
			color = "w"
		}
		require.NoError(t, store.RecordMove(MoveRecord{
			GameID:          "g1",
			MoveNumber:      i + 1,
			Square:          square,
			Flipped:         1,
			LayoutAfterMove: testLayout,
			PlayerColor:     color,
			MoveTimeUTC:     time.Now().UTC(),
		}))
	}
	require.NoError(t, store.RecordResult(ResultRecord{GameID: "g1", Result: "black_wins", BlackDiscs: 40, WhiteDiscs: 24}))
	require.NoError(t, store.Flush(time.Second))

	// When: querying all games
	games, err := store.QueryGames("*", "")
	require.NoError(t, err)
	require.Len(t, games, 2)

	// Then: filters narrow the result
	games, err = store.QueryGames("g1", "")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, testLayout, games[0].InitialLayout)
	assert.Equal(t, "black_wins", games[0].Result.String)
	assert.Equal(t, int64(40), games[0].BlackDiscs.Int64)

	games, err = store.QueryGames("", "white-g2")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "g2", games[0].GameID)
	assert.False(t, games[0].Result.Valid)

	moves, err := store.QueryMoves("g1")
	require.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Equal(t, "d3", moves[0].Square)
	assert.Equal(t, "w", moves[1].PlayerColor)

	assert.True(t, store.IsHealthy())
}

func TestStore_DeleteUndoneMoves(t *testing.T) {
	store := newTestStore(t)
	recordGame(t, store, "g1")
	for i := 1; i <= 3; i++ {
		require.NoError(t, store.RecordMove(MoveRecord{
			GameID: "g1", MoveNumber: i, Square: "d3", Flipped: 1,
			LayoutAfterMove: testLayout, PlayerColor: "b", MoveTimeUTC: time.Now().UTC(),
		}))
	}
	require.NoError(t, store.RecordResult(ResultRecord{GameID: "g1", Result: "draw", BlackDiscs: 32, WhiteDiscs: 32}))

	require.NoError(t, store.DeleteUndoneMoves("g1", 1))
	require.NoError(t, store.Flush(time.Second))

	moves, err := store.QueryMoves("g1")
	require.NoError(t, err)
	assert.Len(t, moves, 1)

	games, err := store.QueryGames("g1", "")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.False(t, games[0].Result.Valid)
}

func TestStore_DegradesOnFailedWrite(t *testing.T) {
	store := newTestStore(t)

	// Foreign key violation: the game was never recorded
	require.NoError(t, store.RecordMove(MoveRecord{
		GameID: "missing", MoveNumber: 1, Square: "d3", Flipped: 1,
		LayoutAfterMove: testLayout, PlayerColor: "b", MoveTimeUTC: time.Now().UTC(),
	}))

	assert.Eventually(t, func() bool { return !store.IsHealthy() }, time.Second, 10*time.Millisecond)

	// Writes are dropped silently once degraded
	assert.NoError(t, store.RecordNewGame(GameRecord{GameID: "late"}))
}

func TestStore_DeleteDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "othello.db")
	store, err := NewStore(path, true)
	require.NoError(t, err)
	require.NoError(t, store.InitDB())

	require.NoError(t, store.DeleteDB())
	assert.NoFileExists(t, path)
}

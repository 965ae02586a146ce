package game

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIndexerTestGame(t *testing.T, gameID string, createTime time.Time) *Game {
	t.Helper()
	validated, err := NewValidatedConfig(endlessTestGameConfig())
	require.NoError(t, err)
	g, err := NewGame(gameID, validated,
		testCustomBlackCards(10), testCustomWhiteCards(50), nil, nil,
		quartz.NewReal(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	g.createTime = createTime
	g.lastActivityTime = createTime
	return g
}

func TestIndexerKeepsGamesOrderedByCreateTime(t *testing.T) {
	base := time.Unix(1000, 0)
	idx := NewGameIndexer()

	// Insert in shuffled order.
	for _, offset := range []int{5, 1, 9, 0, 3, 7, 2, 8, 4, 6} {
		idx.InsertGame(newIndexerTestGame(t, fmt.Sprintf("game-%d", offset),
			base.Add(time.Duration(offset)*time.Minute)))
	}

	games := idx.GamesByCreateTime()
	require.Len(t, games, 10)
	for i := 1; i < len(games); i++ {
		assert.False(t, games[i].CreateTime().Before(games[i-1].CreateTime()),
			"games out of order at index %d", i)
	}
	assert.Equal(t, "game-0", games[0].GameID())
	assert.Equal(t, "game-9", games[9].GameID())
}

func TestIndexerLookups(t *testing.T) {
	base := time.Unix(1000, 0)
	idx := NewGameIndexer()
	g1 := newIndexerTestGame(t, "game-1", base)
	g2 := newIndexerTestGame(t, "game-2", base.Add(time.Minute))
	require.NoError(t, g1.Join(testUser("users/alice")))
	require.NoError(t, g2.Join(testUser("users/bob")))
	idx.InsertGame(g1)
	idx.InsertGame(g2)

	assert.Same(t, g1, idx.GameByGameID("game-1"))
	assert.Nil(t, idx.GameByGameID("game-404"))
	assert.Same(t, g2, idx.GameByPlayerID(RealUserID("users/bob")))
	assert.Nil(t, idx.GameByPlayerID(RealUserID("users/nobody")))

	idx.RemoveGame("game-1")
	assert.Nil(t, idx.GameByGameID("game-1"))
	assert.Len(t, idx.GamesByCreateTime(), 1)
}

func TestIndexerRemovesUnusedGames(t *testing.T) {
	base := time.Unix(1000, 0)
	idx := NewGameIndexer()
	idx.InsertGame(newIndexerTestGame(t, "stale", base))
	idx.InsertGame(newIndexerTestGame(t, "aging", base.Add(2*time.Hour)))
	idx.InsertGame(newIndexerTestGame(t, "fresh", base.Add(4*time.Hour)))

	idx.RemoveUnusedGames(4*time.Hour, base.Add(4*time.Hour))
	games := idx.GamesByCreateTime()
	require.Len(t, games, 2)
	assert.Equal(t, "aging", games[0].GameID())
	assert.Equal(t, "fresh", games[1].GameID())

	// A game idle exactly maxIdle is evicted.
	idx.RemoveUnusedGames(2*time.Hour, base.Add(4*time.Hour))
	games = idx.GamesByCreateTime()
	require.Len(t, games, 1)
	assert.Equal(t, "fresh", games[0].GameID())
}

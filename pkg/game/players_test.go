package game

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

func newTestPlayerManager() *PlayerManager {
	return NewPlayerManager(rand.New(rand.NewSource(42)), time.Now)
}

func TestJudgeIsReassignedWhenCurrentJudgeLeaves(t *testing.T) {
	m := newTestPlayerManager()
	for i := 1; i <= 4; i++ {
		m.AddRealPlayer(testUser(fmt.Sprintf("users/%d", i)))
	}

	m.judgeIndex = 0
	m.hasJudge = true
	require.Equal(t, "users/1", m.Judge().GetName())

	// Removing the judge passes judging to the player that slid into the
	// judge's slot.
	m.RemovePlayer(RealUserID("users/1"))
	require.Equal(t, "users/2", m.Judge().GetName())

	// Judge at the end of the list wraps to the front on removal.
	m.judgeIndex = 2
	require.Equal(t, "users/4", m.Judge().GetName())
	m.RemovePlayer(RealUserID("users/4"))
	require.Equal(t, "users/2", m.Judge().GetName())

	m.RemovePlayer(RealUserID("users/2"))
	m.RemovePlayer(RealUserID("users/3"))
	assert.Nil(t, m.Judge())
}

func TestJudgeStaysAbsentWhenAllPlayersLeave(t *testing.T) {
	m := newTestPlayerManager()
	m.AddRealPlayer(testUser("users/1"))
	m.judgeIndex = 0
	m.hasJudge = true
	require.Equal(t, "users/1", m.Judge().GetName())

	m.RemovePlayer(RealUserID("users/1"))
	require.Nil(t, m.Judge())

	// A new user who joins is not automatically the judge.
	m.AddRealPlayer(testUser("users/2"))
	assert.Nil(t, m.Judge())
}

func TestIncrementJudgeWrapsAround(t *testing.T) {
	m := newTestPlayerManager()
	for i := 0; i < 3; i++ {
		m.AddRealPlayer(testUser(fmt.Sprintf("users/%d", i)))
	}
	m.SetRandomJudge()

	seen := make(map[string]int)
	for i := 0; i < 6; i++ {
		seen[m.Judge().GetName()]++
		m.IncrementJudge()
	}
	assert.Equal(t, map[string]int{"users/0": 2, "users/1": 2, "users/2": 2}, seen)
}

func TestOwnershipPassesToEarliestJoinedPlayer(t *testing.T) {
	m := newTestPlayerManager()
	assert.Nil(t, m.Owner())
	m.AddRealPlayer(testUser("users/0"))
	m.AddRealPlayer(testUser("users/1"))
	require.Equal(t, "users/0", m.Owner().GetName())
	require.True(t, m.IsOwner("users/0"))
	require.False(t, m.IsOwner("users/1"))

	m.RemovePlayer(RealUserID("users/0"))
	assert.Equal(t, "users/1", m.Owner().GetName())
}

func TestUnusedDefaultArtificialPlayerNames(t *testing.T) {
	m := newTestPlayerManager()
	for i := 0; i < len(artificialPlayerDefaultNames); i++ {
		name, ok := m.UnusedDefaultArtificialPlayerName()
		require.True(t, ok)
		m.AddArtificialPlayer(&gamerpc.ArtificialUser{
			Id:          fmt.Sprintf("bot-%d", i),
			DisplayName: name,
		})
	}

	names := make(map[string]bool)
	for _, player := range m.ArtificialPlayers() {
		names[player.GetArtificialUser().GetDisplayName()] = true
	}
	require.Len(t, names, len(artificialPlayerDefaultNames))

	_, ok := m.UnusedDefaultArtificialPlayerName()
	assert.False(t, ok)
}

func TestLastArtificialPlayerPrefersQueued(t *testing.T) {
	m := newTestPlayerManager()
	_, ok := m.LastArtificialPlayer()
	require.False(t, ok)

	m.AddArtificialPlayer(&gamerpc.ArtificialUser{Id: "bot-1", DisplayName: "Hans"})
	m.AddArtificialPlayer(&gamerpc.ArtificialUser{Id: "bot-2", DisplayName: "Klaus"})
	last, ok := m.LastArtificialPlayer()
	require.True(t, ok)
	assert.Equal(t, "bot-2", last.Value())

	m.AddQueuedArtificialPlayer(&gamerpc.ArtificialUser{Id: "bot-3", DisplayName: "Günter"})
	last, ok = m.LastArtificialPlayer()
	require.True(t, ok)
	assert.Equal(t, "bot-3", last.Value())
}

func TestDrainQueuedPlayersPreservesOrder(t *testing.T) {
	m := newTestPlayerManager()
	m.AddRealPlayer(testUser("users/0"))
	m.AddQueuedRealPlayer(testUser("users/1"))
	m.AddQueuedRealPlayer(testUser("users/2"))
	m.AddQueuedArtificialPlayer(&gamerpc.ArtificialUser{Id: "bot-1", DisplayName: "Hans"})

	require.True(t, m.UserIsInGame("users/1"))
	require.True(t, m.ArtificialPlayerIsInGame("bot-1"))
	require.Nil(t, m.Player(RealUserID("users/1")), "queued players are not active")

	m.DrainQueuedPlayers()
	require.Empty(t, m.QueuedRealPlayers())
	require.Empty(t, m.QueuedArtificialPlayers())
	require.Len(t, m.RealPlayers(), 3)
	assert.Equal(t, "users/1", m.RealPlayers()[1].GetUser().GetName())
	assert.Equal(t, "users/2", m.RealPlayers()[2].GetUser().GetName())
	assert.NotNil(t, m.Player(ArtificialPlayerID("bot-1")))
}

func TestScoreTracking(t *testing.T) {
	m := newTestPlayerManager()
	m.AddRealPlayer(testUser("users/0"))
	playerID := RealUserID("users/0")

	score, ok := m.PlayerScore(playerID)
	require.True(t, ok)
	require.Equal(t, int32(0), score)

	score, ok = m.IncrementPlayerScore(playerID)
	require.True(t, ok)
	require.Equal(t, int32(1), score)

	_, ok = m.IncrementPlayerScore(RealUserID("users/nobody"))
	require.False(t, ok)

	m.ResetPlayerScores()
	score, _ = m.PlayerScore(playerID)
	assert.Equal(t, int32(0), score)
}

func TestAllPlayersSortedByJoinTime(t *testing.T) {
	times := []time.Time{
		time.Unix(300, 0),
		time.Unix(100, 0),
		time.Unix(200, 0),
	}
	index := 0
	m := NewPlayerManager(rand.New(rand.NewSource(42)), func() time.Time {
		now := times[index%len(times)]
		index++
		return now
	})
	m.AddRealPlayer(testUser("users/late"))
	m.AddRealPlayer(testUser("users/early"))
	m.AddArtificialPlayer(&gamerpc.ArtificialUser{Id: "bot-1", DisplayName: "Hans"})

	sorted := m.AllPlayersSortedByJoinTime()
	require.Len(t, sorted, 3)
	assert.Equal(t, "users/early", sorted[0].GetUser().GetName())
	assert.Equal(t, "bot-1", sorted[1].GetArtificialUser().GetId())
	assert.Equal(t, "users/late", sorted[2].GetUser().GetName())

	// Returned players are clones.
	sorted[0].Score = 99
	score, _ := m.PlayerScore(RealUserID("users/early"))
	assert.Equal(t, int32(0), score)
}

func TestUserNamesForAllRealPlayers(t *testing.T) {
	m := newTestPlayerManager()
	m.AddRealPlayer(testUser("users/0"))
	m.AddRealPlayer(testUser("users/1"))
	m.AddArtificialPlayer(&gamerpc.ArtificialUser{Id: "bot-1", DisplayName: "Hans"})
	m.AddQueuedRealPlayer(testUser("users/queued"))
	assert.Equal(t, []string{"users/0", "users/1"}, m.UserNamesForAllRealPlayers())
}

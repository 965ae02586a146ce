package game

import (
	"math/rand"
	"sort"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

// Display names handed to artificial players when the owner does not supply
// one. No two artificial players in a game may share a catalog name.
var artificialPlayerDefaultNames = [30]string{
	// Greek gods
	"Dionysus",
	"Asclepius",
	"Hephæstus",
	// My Little Pony characters
	"Rainbow Dash",
	"Twilight Sparkle",
	"Fluttershy",
	// German names
	"Hans",
	"Günter",
	"Klaus",
	// Transformers
	"Megatron",
	"Ultra Magnus",
	"Wheeljack",
	// Spies
	"James Bond",
	"Ethan Hunt",
	"Jason Bourne",
	// Star Wars characters
	"Salacious B. Crumb",
	"Logray",
	"HK-47",
	// Ratchet and Clank
	"Captain Quark",
	"Chairman Drek",
	"Mr. Zurkon",
	// Monsters Inc. characters
	"Mike Wazowski",
	"Henry J. Waternoose III",
	"George Sanderson",
	// Weird monarch nicknames
	"Æthelred the Unready",
	"Edward Longshanks",
	"Henry The Accountant",
	// Spongebob characters
	"Monty P. Moneybags",
	"The Hash Slinging Slasher",
	"Perch Perkins",
}

// PlayerManager keeps the four rosters of a game: active real players,
// active artificial players, and the queued counterparts that joined while
// a round was in progress. All lists preserve insertion order. The judge is
// an index into the real-player list, valid only while that list is
// non-empty.
type PlayerManager struct {
	realPlayers             []*gamerpc.Player
	artificialPlayers       []*gamerpc.Player
	queuedRealPlayers       []*gamerpc.Player
	queuedArtificialPlayers []*gamerpc.Player
	judgeIndex              int
	hasJudge                bool

	rng *rand.Rand
	now func() time.Time
}

func NewPlayerManager(rng *rand.Rand, now func() time.Time) *PlayerManager {
	return &PlayerManager{rng: rng, now: now}
}

func (m *PlayerManager) newRealPlayer(user *gamerpc.User) *gamerpc.Player {
	return &gamerpc.Player{
		Identifier: &gamerpc.Player_User{User: user},
		JoinTime:   timestamppb.New(m.now()),
	}
}

func (m *PlayerManager) newArtificialPlayer(artificialUser *gamerpc.ArtificialUser) *gamerpc.Player {
	return &gamerpc.Player{
		Identifier: &gamerpc.Player_ArtificialUser{ArtificialUser: artificialUser},
		JoinTime:   timestamppb.New(m.now()),
	}
}

// AddRealPlayer appends a real user to the active roster.
func (m *PlayerManager) AddRealPlayer(user *gamerpc.User) {
	m.realPlayers = append(m.realPlayers, m.newRealPlayer(user))
}

func (m *PlayerManager) AddArtificialPlayer(artificialUser *gamerpc.ArtificialUser) {
	m.artificialPlayers = append(m.artificialPlayers, m.newArtificialPlayer(artificialUser))
}

func (m *PlayerManager) AddQueuedRealPlayer(user *gamerpc.User) {
	m.queuedRealPlayers = append(m.queuedRealPlayers, m.newRealPlayer(user))
}

func (m *PlayerManager) AddQueuedArtificialPlayer(artificialUser *gamerpc.ArtificialUser) {
	m.queuedArtificialPlayers = append(m.queuedArtificialPlayers, m.newArtificialPlayer(artificialUser))
}

// RemovePlayer removes the player from the active and queued rosters. When
// a real player is removed the judge index is repaired: absent if no real
// players remain, wrapped to zero if the index fell off the end of the
// list, and otherwise untouched because entries after the removed slot
// shift down by one.
func (m *PlayerManager) RemovePlayer(playerID PlayerID) {
	if playerID.IsRealUser() {
		m.realPlayers = removeRealPlayerByName(m.realPlayers, playerID.Value())
		m.queuedRealPlayers = removeRealPlayerByName(m.queuedRealPlayers, playerID.Value())
		if m.hasJudge {
			if len(m.realPlayers) == 0 {
				m.hasJudge = false
				m.judgeIndex = 0
			} else if m.judgeIndex == len(m.realPlayers) {
				m.judgeIndex = 0
			}
		}
		return
	}
	m.artificialPlayers = removeArtificialPlayerByID(m.artificialPlayers, playerID.Value())
	m.queuedArtificialPlayers = removeArtificialPlayerByID(m.queuedArtificialPlayers, playerID.Value())
}

func removeRealPlayerByName(players []*gamerpc.Player, userName string) []*gamerpc.Player {
	kept := players[:0]
	for _, player := range players {
		if user := player.GetUser(); user != nil && user.Name == userName {
			continue
		}
		kept = append(kept, player)
	}
	return kept
}

func removeArtificialPlayerByID(players []*gamerpc.Player, artificialPlayerID string) []*gamerpc.Player {
	kept := players[:0]
	for _, player := range players {
		if artificial := player.GetArtificialUser(); artificial != nil && artificial.Id == artificialPlayerID {
			continue
		}
		kept = append(kept, player)
	}
	return kept
}

// IncrementPlayerScore bumps the player's score and returns the new value.
// Returns false for a player not in the game.
func (m *PlayerManager) IncrementPlayerScore(playerID PlayerID) (int32, bool) {
	player := m.Player(playerID)
	if player == nil {
		return 0, false
	}
	player.Score++
	return player.Score, true
}

func (m *PlayerManager) PlayerScore(playerID PlayerID) (int32, bool) {
	player := m.Player(playerID)
	if player == nil {
		return 0, false
	}
	return player.Score, true
}

// Player finds an active player by id; queued players are not considered.
func (m *PlayerManager) Player(playerID PlayerID) *gamerpc.Player {
	for _, player := range m.realPlayers {
		if id, ok := PlayerIDFromProto(player); ok && id == playerID {
			return player
		}
	}
	for _, player := range m.artificialPlayers {
		if id, ok := PlayerIDFromProto(player); ok && id == playerID {
			return player
		}
	}
	return nil
}

func (m *PlayerManager) RealPlayer(userName string) *gamerpc.Player {
	for _, player := range m.realPlayers {
		if user := player.GetUser(); user != nil && user.Name == userName {
			return player
		}
	}
	return nil
}

// Owner returns the earliest-joined real player. When that player leaves,
// ownership silently passes to the next-earliest.
func (m *PlayerManager) Owner() *gamerpc.User {
	if len(m.realPlayers) == 0 {
		return nil
	}
	return m.realPlayers[0].GetUser()
}

func (m *PlayerManager) IsOwner(userName string) bool {
	owner := m.Owner()
	return owner != nil && owner.Name == userName
}

func (m *PlayerManager) SetRandomJudge() {
	m.judgeIndex = m.rng.Intn(len(m.realPlayers))
	m.hasJudge = true
}

// RemoveJudge clears the judge. There is no judge while the game is not
// running.
func (m *PlayerManager) RemoveJudge() {
	m.hasJudge = false
	m.judgeIndex = 0
}

func (m *PlayerManager) IncrementJudge() {
	if !m.hasJudge {
		return
	}
	m.judgeIndex++
	if m.judgeIndex >= len(m.realPlayers) {
		m.judgeIndex = 0
	}
}

func (m *PlayerManager) Judge() *gamerpc.User {
	if !m.hasJudge || m.judgeIndex >= len(m.realPlayers) {
		return nil
	}
	return m.realPlayers[m.judgeIndex].GetUser()
}

func (m *PlayerManager) IsJudge(userName string) bool {
	judge := m.Judge()
	return judge != nil && judge.Name == userName
}

func clonePlayer(player *gamerpc.Player) *gamerpc.Player {
	if player == nil {
		return nil
	}
	clone := &gamerpc.Player{Score: player.Score, JoinTime: player.JoinTime}
	switch id := player.GetIdentifier().(type) {
	case *gamerpc.Player_User:
		clone.Identifier = &gamerpc.Player_User{User: cloneUser(id.User)}
	case *gamerpc.Player_ArtificialUser:
		clone.Identifier = &gamerpc.Player_ArtificialUser{
			ArtificialUser: &gamerpc.ArtificialUser{
				Id:          id.ArtificialUser.Id,
				DisplayName: id.ArtificialUser.DisplayName,
			},
		}
	}
	return clone
}

func clonePlayersSortedByJoinTime(lists ...[]*gamerpc.Player) []*gamerpc.Player {
	var all []*gamerpc.Player
	for _, list := range lists {
		for _, player := range list {
			all = append(all, clonePlayer(player))
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].GetJoinTime().AsTime().Before(all[j].GetJoinTime().AsTime())
	})
	return all
}

// AllPlayersSortedByJoinTime clones the active rosters into one join-time
// ordered list for view projection.
func (m *PlayerManager) AllPlayersSortedByJoinTime() []*gamerpc.Player {
	return clonePlayersSortedByJoinTime(m.realPlayers, m.artificialPlayers)
}

func (m *PlayerManager) AllQueuedPlayersSortedByJoinTime() []*gamerpc.Player {
	return clonePlayersSortedByJoinTime(m.queuedRealPlayers, m.queuedArtificialPlayers)
}

func (m *PlayerManager) ResetPlayerScores() {
	for _, player := range m.realPlayers {
		player.Score = 0
	}
	for _, player := range m.artificialPlayers {
		player.Score = 0
	}
}

// DrainQueuedPlayers promotes every queued player into the active rosters,
// preserving queue order.
func (m *PlayerManager) DrainQueuedPlayers() {
	m.realPlayers = append(m.realPlayers, m.queuedRealPlayers...)
	m.queuedRealPlayers = nil
	m.artificialPlayers = append(m.artificialPlayers, m.queuedArtificialPlayers...)
	m.queuedArtificialPlayers = nil
}

func (m *PlayerManager) artificialPlayerNameIsInUse(name string) bool {
	for _, player := range m.artificialPlayers {
		if artificial := player.GetArtificialUser(); artificial != nil && artificial.DisplayName == name {
			return true
		}
	}
	return false
}

// UnusedDefaultArtificialPlayerName picks a uniform random catalog name not
// already used by an active artificial player. Returns false when the whole
// catalog is in use.
func (m *PlayerManager) UnusedDefaultArtificialPlayerName() (string, bool) {
	var unused []string
	for _, name := range artificialPlayerDefaultNames {
		if !m.artificialPlayerNameIsInUse(name) {
			unused = append(unused, name)
		}
	}
	if len(unused) == 0 {
		return "", false
	}
	return unused[m.rng.Intn(len(unused))], true
}

// UserIsInGame reports whether the user is active or queued.
func (m *PlayerManager) UserIsInGame(userName string) bool {
	for _, player := range m.realPlayers {
		if user := player.GetUser(); user != nil && user.Name == userName {
			return true
		}
	}
	for _, player := range m.queuedRealPlayers {
		if user := player.GetUser(); user != nil && user.Name == userName {
			return true
		}
	}
	return false
}

func (m *PlayerManager) ArtificialPlayerIsInGame(artificialPlayerID string) bool {
	for _, player := range m.artificialPlayers {
		if artificial := player.GetArtificialUser(); artificial != nil && artificial.Id == artificialPlayerID {
			return true
		}
	}
	for _, player := range m.queuedArtificialPlayers {
		if artificial := player.GetArtificialUser(); artificial != nil && artificial.Id == artificialPlayerID {
			return true
		}
	}
	return false
}

// UserNamesForAllRealPlayers lists the resource names of active real
// players, in join order.
func (m *PlayerManager) UserNamesForAllRealPlayers() []string {
	names := make([]string, 0, len(m.realPlayers))
	for _, player := range m.realPlayers {
		if user := player.GetUser(); user != nil && user.Name != "" {
			names = append(names, user.Name)
		}
	}
	return names
}

// LastArtificialPlayer returns the most recently added artificial player,
// preferring the queued list since its members joined latest.
func (m *PlayerManager) LastArtificialPlayer() (PlayerID, bool) {
	if len(m.queuedArtificialPlayers) > 0 {
		return PlayerIDFromProto(m.queuedArtificialPlayers[len(m.queuedArtificialPlayers)-1])
	}
	if len(m.artificialPlayers) > 0 {
		return PlayerIDFromProto(m.artificialPlayers[len(m.artificialPlayers)-1])
	}
	return PlayerID{}, false
}

func (m *PlayerManager) RealPlayers() []*gamerpc.Player { return m.realPlayers }

func (m *PlayerManager) ArtificialPlayers() []*gamerpc.Player { return m.artificialPlayers }

func (m *PlayerManager) QueuedRealPlayers() []*gamerpc.Player { return m.queuedRealPlayers }

func (m *PlayerManager) QueuedArtificialPlayers() []*gamerpc.Player {
	return m.queuedArtificialPlayers
}

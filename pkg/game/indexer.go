package game

import "time"

// GameIndexer holds every live game ordered by create time. Lookups are
// linear scans; the game count stays small enough that fancier indexing has
// not been worth it.
type GameIndexer struct {
	gamesByCreateTime []*Game
}

func NewGameIndexer() *GameIndexer {
	return &GameIndexer{}
}

// GamesByCreateTime returns the games oldest-first. Callers must not modify
// the returned slice.
func (idx *GameIndexer) GamesByCreateTime() []*Game {
	return idx.gamesByCreateTime
}

func (idx *GameIndexer) GameByGameID(gameID string) *Game {
	for _, game := range idx.gamesByCreateTime {
		if game.GameID() == gameID {
			return game
		}
	}
	return nil
}

// GameByPlayerID finds the game containing the player. A player can be in
// at most one game at a time.
func (idx *GameIndexer) GameByPlayerID(playerID PlayerID) *Game {
	for _, game := range idx.gamesByCreateTime {
		if game.ContainsPlayer(playerID) {
			return game
		}
	}
	return nil
}

// InsertGame places the game at its create-time position. Games are almost
// always inserted in order, so the scan starts from the end of the list.
func (idx *GameIndexer) InsertGame(game *Game) {
	for i := len(idx.gamesByCreateTime) - 1; i >= 0; i-- {
		if !idx.gamesByCreateTime[i].CreateTime().After(game.CreateTime()) {
			idx.gamesByCreateTime = append(idx.gamesByCreateTime, nil)
			copy(idx.gamesByCreateTime[i+2:], idx.gamesByCreateTime[i+1:])
			idx.gamesByCreateTime[i+1] = game
			return
		}
	}
	idx.gamesByCreateTime = append([]*Game{game}, idx.gamesByCreateTime...)
}

func (idx *GameIndexer) RemoveGame(gameID string) {
	for i, game := range idx.gamesByCreateTime {
		if game.GameID() == gameID {
			idx.gamesByCreateTime = append(idx.gamesByCreateTime[:i], idx.gamesByCreateTime[i+1:]...)
			return
		}
	}
}

// RemoveUnusedGames drops every game idle for at least maxIdle as of now.
func (idx *GameIndexer) RemoveUnusedGames(maxIdle time.Duration, now time.Time) {
	kept := idx.gamesByCreateTime[:0]
	for _, game := range idx.gamesByCreateTime {
		if now.Sub(game.LastActivityTime()) < maxIdle {
			kept = append(kept, game)
		}
	}
	for i := len(kept); i < len(idx.gamesByCreateTime); i++ {
		idx.gamesByCreateTime[i] = nil
	}
	idx.gamesByCreateTime = kept
}

package game

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

// Game holds the complete state of a single game: configuration, rosters,
// decks, staged plays, chat, and round history. It is not safe for
// concurrent use; callers serialize access.
type Game struct {
	gameID           string
	config           *ValidatedConfig
	createTime       time.Time
	lastActivityTime time.Time
	stage            gamerpc.GameView_Stage
	chatMessages     *ChatMessageLog
	pastRounds       []*gamerpc.PastRound
	players          *PlayerManager
	bannedUserNames  []string
	winner           *gamerpc.Player
	blackCardDeck    *BlackCardDeck
	gameplay         *GameplayManager
	whiteCardTexts   []string
	clock            quartz.Clock
	rng              *rand.Rand
}

// NewGame assembles a game from a validated config and the card lists
// fetched for its cardpacks. The rng drives every shuffle and random pick
// made over the game's lifetime.
func NewGame(
	gameID string,
	config *ValidatedConfig,
	customBlackCards []*gamerpc.CustomBlackCard,
	customWhiteCards []*gamerpc.CustomWhiteCard,
	defaultBlackCards []*gamerpc.DefaultBlackCard,
	defaultWhiteCards []*gamerpc.DefaultWhiteCard,
	clock quartz.Clock,
	rng *rand.Rand,
) (*Game, error) {
	whiteCardTexts := make([]string, 0, len(customWhiteCards)+len(defaultWhiteCards))
	for _, card := range customWhiteCards {
		whiteCardTexts = append(whiteCardTexts, card.GetText())
	}
	for _, card := range defaultWhiteCards {
		whiteCardTexts = append(whiteCardTexts, card.GetText())
	}

	blackCardDeck, err := NewBlackCardDeck(customBlackCards, defaultBlackCards, rng)
	if err != nil {
		return nil, err
	}
	whiteCardDeck := NewWhiteCardDeck(customWhiteCards, defaultWhiteCards,
		config.BlankWhiteCardConfig(), rng)

	now := clock.Now()
	return &Game{
		gameID:           gameID,
		config:           config,
		createTime:       now,
		lastActivityTime: now,
		stage:            gamerpc.GameView_NOT_RUNNING,
		chatMessages:     NewChatMessageLog(maxChatMessagesPerGame),
		players:          NewPlayerManager(rng, func() time.Time { return clock.Now() }),
		blackCardDeck:    blackCardDeck,
		gameplay:         NewGameplayManager(whiteCardDeck, config.HandSize()),
		whiteCardTexts:   whiteCardTexts,
		clock:            clock,
		rng:              rng,
	}, nil
}

// NewGameWithOwner builds the game and immediately joins the owner.
func NewGameWithOwner(
	gameID string,
	config *ValidatedConfig,
	customBlackCards []*gamerpc.CustomBlackCard,
	customWhiteCards []*gamerpc.CustomWhiteCard,
	defaultBlackCards []*gamerpc.DefaultBlackCard,
	defaultWhiteCards []*gamerpc.DefaultWhiteCard,
	owner *gamerpc.User,
	clock quartz.Clock,
	rng *rand.Rand,
) (*Game, error) {
	game, err := NewGame(gameID, config, customBlackCards, customWhiteCards,
		defaultBlackCards, defaultWhiteCards, clock, rng)
	if err != nil {
		return nil, err
	}
	if err := game.Join(owner); err != nil {
		return nil, status.Error(codes.Unknown,
			"Unknown error occured when attempting to initialize game.")
	}
	return game, nil
}

func (g *Game) updateLastActivityTime() {
	g.lastActivityTime = g.clock.Now()
}

func (g *Game) UserNamesForAllRealPlayers() []string {
	return g.players.UserNamesForAllRealPlayers()
}

func (g *Game) addQueuedPlayersToGame() {
	for _, player := range g.players.QueuedRealPlayers() {
		if playerID, ok := PlayerIDFromProto(player); ok {
			g.gameplay.AddPlayer(playerID)
		}
	}
	for _, player := range g.players.QueuedArtificialPlayers() {
		if playerID, ok := PlayerIDFromProto(player); ok {
			g.gameplay.AddPlayer(playerID)
		}
	}
	g.players.DrainQueuedPlayers()
}

func generateArtificialPlayerID() string {
	return uuid.NewString()
}

func (g *Game) isFull() bool {
	return len(g.players.RealPlayers())+len(g.players.QueuedRealPlayers()) == g.config.MaxPlayers()
}

func (g *Game) stopIfNotEnoughPlayers() {
	if !g.hasEnoughPlayersToPlay() {
		g.forceStop()
	}
}

func (g *Game) allPlayersHavePlayedThisRound() bool {
	for _, player := range g.players.RealPlayers() {
		user := player.GetUser()
		if user == nil {
			continue
		}
		if !g.players.IsJudge(user.Name) &&
			!g.gameplay.PlayerHasPlayedThisRound(RealUserID(user.Name)) {
			return false
		}
	}
	return true
}

func (g *Game) incrementScoreAndMaybeStopGame(playerID PlayerID) {
	g.players.IncrementPlayerScore(playerID)
	if g.playerHasWon(playerID) {
		g.forceStop()
	}
}

func (g *Game) playerHasWon(playerID PlayerID) bool {
	maxScore, hasMaxScore := g.config.MaxScore()
	if !hasMaxScore {
		return false
	}
	score, ok := g.players.PlayerScore(playerID)
	return ok && int(score) >= maxScore
}

// Start begins the game. Only the owner may start, the game must not
// already be running, and enough players must be present.
func (g *Game) Start(userName string) error {
	if !g.players.IsOwner(userName) {
		return status.Error(codes.InvalidArgument, "Must be game owner to start game.")
	}
	if g.isRunning() {
		return status.Error(codes.InvalidArgument, "Game is already running.")
	}
	if !g.hasEnoughPlayersToPlay() {
		return status.Errorf(codes.InvalidArgument,
			"Need at least %d players to start. Add some artificial users or wait for more people to join.",
			MinimumPlayersRequiredToPlay)
	}
	g.players.SetRandomJudge()
	g.pastRounds = nil
	g.blackCardDeck.ShuffleAndReset()
	g.players.ResetPlayerScores()
	g.gameplay.DiscardPlayedCardsAndDrawToFull()
	g.gameplay.PlayForArtificialPlayers(g.blackCardDeck.CurrentCard())
	g.stage = gamerpc.GameView_PLAY_PHASE
	g.updateLastActivityTime()
	return nil
}

func (g *Game) Stop(userName string) error {
	if !g.players.IsOwner(userName) {
		return status.Error(codes.InvalidArgument, "Must be game owner to stop game.")
	}
	if !g.isRunning() {
		return status.Error(codes.InvalidArgument, "Game is not running.")
	}
	g.forceStop()
	return nil
}

func (g *Game) forceStop() {
	if !g.isRunning() {
		return
	}
	// Staged plays must be dropped before the hands holding their originals
	// are discarded, or the staged clones would re-enter the deck as extra
	// cards on the next start.
	g.gameplay.ReturnPlayedCardsToHands()
	g.gameplay.DiscardPlayerHands()
	g.addQueuedPlayersToGame()
	g.players.RemoveJudge()
	g.stage = gamerpc.GameView_NOT_RUNNING
	g.updateLastActivityTime()
}

// roundNonceDigest hashes the round number together with the current judge
// into a value unique to each round. The judge is included so the nonce
// changes when a mid-round judge replacement happens even though the round
// number has not advanced.
func (g *Game) roundNonceDigest() [32]byte {
	judgeString := ""
	if judge := g.players.Judge(); judge != nil {
		judgeString = fmt.Sprintf("User{Name:%q DisplayName:%q}", judge.Name, judge.DisplayName)
	}
	return sha256.Sum256([]byte(g.gameID + strconv.Itoa(len(g.pastRounds)) + judgeString))
}

func (g *Game) Join(user *gamerpc.User) error {
	if g.isFull() {
		return status.Error(codes.InvalidArgument, "Cannot join - game is full.")
	}
	if g.players.UserIsInGame(user.GetName()) {
		return status.Error(codes.InvalidArgument, "Cannot join - you are already in this game.")
	}
	if g.userIsBanned(user.GetName()) {
		return status.Error(codes.InvalidArgument, "Cannot join - you are banned from this game.")
	}
	g.addRealPlayerToGame(cloneUser(user))
	return nil
}

func (g *Game) roundIsInProgress() bool {
	return g.isRunning() && g.stage != gamerpc.GameView_ROUND_END_PHASE
}

// Players joining mid-round are queued and promoted at the next round
// boundary so a round's submission set never changes underneath the judge.
func (g *Game) addRealPlayerToGame(user *gamerpc.User) {
	if g.roundIsInProgress() {
		g.players.AddQueuedRealPlayer(user)
		return
	}
	g.players.AddRealPlayer(user)
	g.gameplay.AddPlayer(RealUserID(user.GetName()))
}

func (g *Game) addArtificialPlayerToGame(artificialUser *gamerpc.ArtificialUser) {
	if g.roundIsInProgress() {
		g.players.AddQueuedArtificialPlayer(artificialUser)
		return
	}
	g.players.AddArtificialPlayer(artificialUser)
	g.gameplay.AddPlayer(ArtificialPlayerID(artificialUser.GetId()))
}

func (g *Game) Leave(userName string) error {
	if !g.players.UserIsInGame(userName) {
		return status.Error(codes.InvalidArgument, "Cannot leave - you are not in this game.")
	}
	g.removePlayer(RealUserID(userName))
	return nil
}

func (g *Game) removePlayer(playerID PlayerID) {
	if playerID.IsRealUser() && g.isRunning() &&
		g.players.IsJudge(playerID.Value()) &&
		g.stage != gamerpc.GameView_ROUND_END_PHASE {
		g.gameplay.ReturnPlayedCardsToHands()
		g.stage = gamerpc.GameView_ROUND_END_PHASE
	}
	g.players.RemovePlayer(playerID)
	g.gameplay.RemovePlayer(playerID)
	g.stopIfNotEnoughPlayers()
}

// AddArtificialPlayer adds a computer player. An empty display name picks an
// unused name from the default catalog.
func (g *Game) AddArtificialPlayer(userName, artificialPlayerName string) error {
	if !g.players.IsOwner(userName) {
		return status.Error(codes.InvalidArgument,
			"Must be game owner to add an artificial player.")
	}
	if isBlank(artificialPlayerName) {
		name, ok := g.players.UnusedDefaultArtificialPlayerName()
		if !ok {
			return status.Error(codes.InvalidArgument,
				"No more default artificial player names available.")
		}
		artificialPlayerName = name
	}

	g.addArtificialPlayerToGame(&gamerpc.ArtificialUser{
		Id:          generateArtificialPlayerID(),
		DisplayName: artificialPlayerName,
	})
	g.updateLastActivityTime()
	return nil
}

// RemoveArtificialPlayer removes the artificial player with the given id,
// or the most recently added one when the id is empty.
func (g *Game) RemoveArtificialPlayer(userName, artificialPlayerID string) error {
	if !g.players.IsOwner(userName) {
		return status.Error(codes.InvalidArgument,
			"Must be game owner to remove an artificial player.")
	}

	if artificialPlayerID == "" {
		playerID, ok := g.players.LastArtificialPlayer()
		if !ok {
			return status.Error(codes.InvalidArgument,
				"There are no artificial players to remove.")
		}
		g.removePlayer(playerID)
	} else {
		if !g.players.ArtificialPlayerIsInGame(artificialPlayerID) {
			return status.Error(codes.InvalidArgument,
				"Artificial player does not exist with that id.")
		}
		g.removePlayer(ArtificialPlayerID(artificialPlayerID))
	}

	g.updateLastActivityTime()
	return nil
}

func (g *Game) KickUser(userName, trollUserName string) error {
	if !g.players.IsOwner(userName) {
		return status.Error(codes.InvalidArgument, "Must be game owner to kick someone.")
	}
	if !g.players.UserIsInGame(trollUserName) {
		return status.Error(codes.InvalidArgument,
			"Cannot kick someone who is not in the game.")
	}
	if userName == trollUserName {
		return status.Error(codes.InvalidArgument, "Cannot kick yourself from the game.")
	}
	return g.Leave(trollUserName)
}

func (g *Game) BanUser(userName, trollUserName string) error {
	if !g.players.IsOwner(userName) {
		return status.Error(codes.InvalidArgument, "Must be game owner to ban someone.")
	}
	if g.players.IsOwner(trollUserName) {
		return status.Error(codes.InvalidArgument,
			"Cannot ban yourself from your own game.")
	}
	if g.userIsBanned(trollUserName) {
		return status.Error(codes.InvalidArgument,
			"User is already banned from this game.")
	}

	if g.players.UserIsInGame(trollUserName) {
		if err := g.Leave(trollUserName); err != nil {
			return err
		}
	}
	g.bannedUserNames = append(g.bannedUserNames, trollUserName)
	g.updateLastActivityTime()
	return nil
}

func (g *Game) UnbanUser(userName, trollUserName string) error {
	if !g.players.IsOwner(userName) {
		return status.Error(codes.InvalidArgument, "Must be game owner to unban someone.")
	}
	for index, bannedName := range g.bannedUserNames {
		if bannedName == trollUserName {
			g.bannedUserNames = append(g.bannedUserNames[:index], g.bannedUserNames[index+1:]...)
			g.updateLastActivityTime()
			return nil
		}
	}
	return status.Error(codes.InvalidArgument, "User is not banned from this game.")
}

func (g *Game) PlayCards(userName string, cards []*gamerpc.PlayableWhiteCard) error {
	if g.stage != gamerpc.GameView_PLAY_PHASE {
		return status.Error(codes.InvalidArgument, "Can only play cards during play phase.")
	}
	if g.players.IsJudge(userName) {
		return status.Error(codes.InvalidArgument, "Cannot play cards as the judge.")
	}
	if g.gameplay.PlayerHasPlayedThisRound(RealUserID(userName)) {
		return status.Error(codes.InvalidArgument, "User has already played this round.")
	}

	if err := g.gameplay.PlayCardsForPlayer(RealUserID(userName), cards,
		g.blackCardDeck.CurrentCard(), g.config); err != nil {
		return err
	}

	if g.allPlayersHavePlayedThisRound() {
		g.stage = gamerpc.GameView_JUDGE_PHASE
	}
	g.updateLastActivityTime()
	return nil
}

func (g *Game) UnplayCards(userName string) error {
	if g.stage != gamerpc.GameView_PLAY_PHASE {
		return status.Error(codes.InvalidArgument, "Can only unplay cards during play phase.")
	}
	if !g.gameplay.PlayerHasPlayedThisRound(RealUserID(userName)) {
		return status.Error(codes.InvalidArgument,
			"Cannot unplay cards - user has not played yet.")
	}
	g.gameplay.UnplayCardsForPlayer(RealUserID(userName))
	g.updateLastActivityTime()
	return nil
}

// VoteCard records the judge's choice. The choice is a one-based index into
// the round's displayed submission order.
func (g *Game) VoteCard(userName string, choice int32) error {
	if g.stage != gamerpc.GameView_JUDGE_PHASE {
		return status.Error(codes.InvalidArgument, "Can only vote cards during judge phase.")
	}
	if !g.players.IsJudge(userName) {
		return status.Error(codes.InvalidArgument, "Can only vote if you are the judge.")
	}

	playedCards := g.pseudorandomOrderedWhiteCardsPlayedList()
	if choice < 1 || int(choice) > len(playedCards) {
		return status.Error(codes.InvalidArgument, "Invalid selection.")
	}
	votedCards := playedCards[choice-1]

	winner := votedCards.GetPlayer()
	if winner != nil {
		if winnerID, ok := PlayerIDFromProto(winner); ok {
			g.incrementScoreAndMaybeStopGame(winnerID)
		}
		// Re-read so the recorded winner carries the incremented score.
		if winnerID, ok := PlayerIDFromProto(winner); ok {
			if current := g.players.Player(winnerID); current != nil {
				winner = clonePlayer(current)
			}
		}
	}

	g.stage = gamerpc.GameView_ROUND_END_PHASE
	g.winner = winner
	g.updateLastActivityTime()
	return nil
}

// VoteStartNextRound advances the game to the next round. Any player in the
// game may trigger it once the round has ended.
func (g *Game) VoteStartNextRound(userName string) error {
	if err := g.startNextRound(); err != nil {
		return err
	}
	g.updateLastActivityTime()
	return nil
}

func (g *Game) startNextRound() error {
	if g.stage != gamerpc.GameView_ROUND_END_PHASE {
		return status.Error(codes.InvalidArgument, "Cannot start next round at this time.")
	}

	g.pastRounds = append(g.pastRounds, &gamerpc.PastRound{
		BlackCard:   cloneBlackCard(g.blackCardDeck.CurrentCard()),
		WhitePlayed: g.pseudorandomOrderedWhiteCardsPlayedList(),
		Judge:       cloneUser(g.players.Judge()),
		Winner:      g.winner,
	})

	g.players.IncrementJudge()
	g.winner = nil
	g.addQueuedPlayersToGame()
	g.blackCardDeck.NextCard()
	g.gameplay.DiscardPlayedCardsAndDrawToFull()
	g.gameplay.PlayForArtificialPlayers(g.blackCardDeck.CurrentCard())
	g.stage = gamerpc.GameView_PLAY_PHASE
	return nil
}

func (g *Game) PostMessage(userName, messageText string) error {
	player := g.players.RealPlayer(userName)
	if player == nil {
		return status.Error(codes.InvalidArgument,
			"User must be in the game to post a message.")
	}
	g.chatMessages.Add(player.GetUser(), messageText, timestamppb.New(g.clock.Now()))
	return nil
}

// UserView projects the game state as seen by one user. Hidden information
// stays hidden: other players' hands never appear, submitted card texts are
// withheld during the play phase, and submitter identities are withheld
// during the judge phase.
func (g *Game) UserView(userName string) *gamerpc.GameView {
	hand, _ := g.gameplay.HandBelongingToPlayer(RealUserID(userName))
	handClones := make([]*gamerpc.PlayableWhiteCard, 0, len(hand))
	for _, card := range hand {
		handClones = append(handClones, cloneWhiteCard(card))
	}

	whitePlayed := g.pseudorandomOrderedWhiteCardsPlayedList()
	switch g.stage {
	case gamerpc.GameView_PLAY_PHASE:
		for _, entry := range whitePlayed {
			entry.CardTexts = nil
		}
	case gamerpc.GameView_JUDGE_PHASE:
		for _, entry := range whitePlayed {
			entry.Player = nil
		}
	}

	var currentBlackCard *gamerpc.BlackCardInRound
	if g.isRunning() {
		currentBlackCard = cloneBlackCard(g.blackCardDeck.CurrentCard())
	}

	pastRounds := make([]*gamerpc.PastRound, 0, len(g.pastRounds))
	for _, round := range g.pastRounds {
		pastRounds = append(pastRounds, clonePastRound(round))
	}

	return &gamerpc.GameView{
		GameId:               g.gameID,
		Config:               g.config.Raw(),
		Stage:                g.stage,
		Hand:                 handClones,
		Players:              g.players.AllPlayersSortedByJoinTime(),
		QueuedPlayers:        g.players.AllQueuedPlayersSortedByJoinTime(),
		BannedUserNames:      append([]string(nil), g.bannedUserNames...),
		Judge:                cloneUser(g.players.Judge()),
		Owner:                cloneUser(g.players.Owner()),
		WhitePlayed:          whitePlayed,
		CurrentBlackCard:     currentBlackCard,
		WinnerOfCurrentRound: g.cloneWinner(),
		ChatMessages:         g.chatMessages.Messages(),
		PastRounds:           pastRounds,
		CreateTime:           timestamppb.New(g.createTime),
		LastActivityTime:     timestamppb.New(g.lastActivityTime),
	}
}

func (g *Game) cloneWinner() *gamerpc.Player {
	if g.winner == nil {
		return nil
	}
	return clonePlayer(g.winner)
}

func (g *Game) Info() *gamerpc.GameInfo {
	return &gamerpc.GameInfo{
		GameId:      g.gameID,
		Config:      g.config.Raw(),
		PlayerCount: int32(len(g.players.RealPlayers())),
		IsRunning:   g.isRunning(),
		CreateTime:  timestamppb.New(g.createTime),
	}
}

func (g *Game) GameID() string { return g.gameID }

func (g *Game) ContainsPlayer(playerID PlayerID) bool {
	return g.players.Player(playerID) != nil
}

// IsEmpty reports whether no real players remain. Empty games are removed
// from the registry.
func (g *Game) IsEmpty() bool {
	return len(g.players.RealPlayers()) == 0
}

func (g *Game) CreateTime() time.Time { return g.createTime }

func (g *Game) LastActivityTime() time.Time { return g.lastActivityTime }

func (g *Game) isRunning() bool {
	return g.stage != gamerpc.GameView_NOT_RUNNING
}

func (g *Game) hasEnoughPlayersToPlay() bool {
	realCount := len(g.players.RealPlayers())
	return realCount >= 2 &&
		realCount+len(g.players.ArtificialPlayers()) >= MinimumPlayersRequiredToPlay
}

func (g *Game) userIsBanned(userName string) bool {
	for _, bannedName := range g.bannedUserNames {
		if bannedName == userName {
			return true
		}
	}
	return false
}

// pseudorandomOrderedWhiteCardsPlayedList lists this round's submissions in
// an order that is stable for the round but reveals nothing about play
// order. Entries are first sorted by player id to remove map iteration
// nondeterminism, then shuffled with an rng seeded from the round nonce.
func (g *Game) pseudorandomOrderedWhiteCardsPlayedList() []*gamerpc.WhiteCardsPlayed {
	playedByPlayer := g.gameplay.PlayedCards()
	playerIDs := make([]PlayerID, 0, len(playedByPlayer))
	for playerID := range playedByPlayer {
		playerIDs = append(playerIDs, playerID)
	}
	sort.Slice(playerIDs, func(i, j int) bool {
		return playerIDs[i].String() < playerIDs[j].String()
	})

	whitePlayedList := make([]*gamerpc.WhiteCardsPlayed, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		cards := playedByPlayer[playerID]
		cardTexts := make([]string, 0, len(cards))
		for _, card := range cards {
			cardTexts = append(cardTexts, whiteCardText(card))
		}
		var player *gamerpc.Player
		if current := g.players.Player(playerID); current != nil {
			player = clonePlayer(current)
		}
		whitePlayedList = append(whitePlayedList, &gamerpc.WhiteCardsPlayed{
			Player:    player,
			CardTexts: cardTexts,
		})
	}

	digest := g.roundNonceDigest()
	seededRand := rand.New(rand.NewSource(int64(binary.BigEndian.Uint64(digest[:8]))))
	seededRand.Shuffle(len(whitePlayedList), func(i, j int) {
		whitePlayedList[i], whitePlayedList[j] = whitePlayedList[j], whitePlayedList[i]
	})
	return whitePlayedList
}

// SearchWhiteCardTexts pages through the game's white card texts with an
// optional case-sensitive substring filter.
func (g *Game) SearchWhiteCardTexts(filter string, pageSize int, pageToken string) (texts []string, nextPageToken string, totalSize int, err error) {
	texts, nextPageToken, err = QueryTexts(g.whiteCardTexts, filter, pageSize, pageToken)
	if err != nil {
		return nil, "", 0, err
	}
	return texts, nextPageToken, len(g.whiteCardTexts), nil
}

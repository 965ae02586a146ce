package server

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardczar/gameservice/pkg/game"
	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

type fakeUserFetcher struct {
	err error
}

func (f *fakeUserFetcher) User(ctx context.Context, userName string) (*gamerpc.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &gamerpc.User{Name: userName, DisplayName: "User " + userName}, nil
}

type fakeCardFetcher struct {
	customBlackCount  int
	customWhiteCount  int
	defaultBlackCount int
	defaultWhiteCount int
}

func (f *fakeCardFetcher) CustomCardsFromCardpacks(ctx context.Context, cardpackNames []string) ([]*gamerpc.CustomBlackCard, []*gamerpc.CustomWhiteCard, error) {
	blackCards := make([]*gamerpc.CustomBlackCard, 0, f.customBlackCount)
	for i := 0; i < f.customBlackCount; i++ {
		blackCards = append(blackCards, &gamerpc.CustomBlackCard{
			Name:         fmt.Sprintf("users/someone/cardpacks/pack/blackCards/%d", i),
			Text:         fmt.Sprintf("custom_black_%d", i),
			AnswerFields: int32(i%game.MaxBlackCardAnswerFields) + 1,
		})
	}
	whiteCards := make([]*gamerpc.CustomWhiteCard, 0, f.customWhiteCount)
	for i := 0; i < f.customWhiteCount; i++ {
		whiteCards = append(whiteCards, &gamerpc.CustomWhiteCard{
			Name: fmt.Sprintf("users/someone/cardpacks/pack/whiteCards/%d", i),
			Text: fmt.Sprintf("custom_card_%d", i),
		})
	}
	return blackCards, whiteCards, nil
}

func (f *fakeCardFetcher) DefaultCardsFromCardpacks(ctx context.Context, cardpackNames []string) ([]*gamerpc.DefaultBlackCard, []*gamerpc.DefaultWhiteCard, error) {
	blackCards := make([]*gamerpc.DefaultBlackCard, 0, f.defaultBlackCount)
	for i := 0; i < f.defaultBlackCount; i++ {
		blackCards = append(blackCards, &gamerpc.DefaultBlackCard{
			Name:         fmt.Sprintf("defaultCardpacks/pack/defaultBlackCards/%d", i),
			Text:         fmt.Sprintf("default_black_%d", i),
			AnswerFields: int32(i%game.MaxBlackCardAnswerFields) + 1,
		})
	}
	whiteCards := make([]*gamerpc.DefaultWhiteCard, 0, f.defaultWhiteCount)
	for i := 0; i < f.defaultWhiteCount; i++ {
		whiteCards = append(whiteCards, &gamerpc.DefaultWhiteCard{
			Name: fmt.Sprintf("defaultCardpacks/pack/defaultWhiteCards/%d", i),
			Text: fmt.Sprintf("default_card_%d", i),
		})
	}
	return blackCards, whiteCards, nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	payloads [][]string
}

func (n *fakeNotifier) GameUpdatedForUsers(userNames []string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.payloads = append(n.payloads, append([]string(nil), userNames...))
	return nil
}

func (n *fakeNotifier) lastPayload() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.payloads) == 0 {
		return nil
	}
	return n.payloads[len(n.payloads)-1]
}

func newTestServer(t *testing.T, clock quartz.Clock) (*Server, *fakeNotifier) {
	t.Helper()
	notifier := &fakeNotifier{}
	srv := NewServer(Config{
		Users: &fakeUserFetcher{},
		Cards: &fakeCardFetcher{
			customBlackCount:  20,
			customWhiteCount:  200,
			defaultBlackCount: 20,
			defaultWhiteCount: 200,
		},
		Notifier: notifier,
		Clock:    clock,
	})
	srv.newGameRNG = func() *rand.Rand {
		return rand.New(rand.NewSource(42))
	}
	return srv, notifier
}

func testServerGameConfig(displayName string) *gamerpc.GameConfig {
	return &gamerpc.GameConfig{
		DisplayName:          displayName,
		MaxPlayers:           3,
		EndCondition:         &gamerpc.GameConfig_EndlessMode{EndlessMode: true},
		HandSize:             game.MinHandSizeLimit,
		CustomCardpackNames:  []string{"users/someone/cardpacks/pack"},
		DefaultCardpackNames: []string{"defaultCardpacks/pack"},
		BlankWhiteCardConfig: &gamerpc.BlankWhiteCardConfig{
			Behavior: gamerpc.BlankWhiteCardConfig_DISABLED,
		},
	}
}

func createGameForUser(t *testing.T, srv *Server, userName, displayName string) *gamerpc.GameView {
	t.Helper()
	view, err := srv.CreateGame(context.Background(), &gamerpc.CreateGameRequest{
		UserName:   userName,
		GameConfig: testServerGameConfig(displayName),
	})
	require.NoError(t, err)
	return view
}

func answerFieldsFromView(view *gamerpc.GameView) int {
	if custom := view.GetCurrentBlackCard().GetCustomBlackCard(); custom != nil {
		return int(custom.GetAnswerFields())
	}
	return int(view.GetCurrentBlackCard().GetDefaultBlackCard().GetAnswerFields())
}

func TestCreateGameValidation(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	ctx := context.Background()

	_, err := srv.CreateGame(ctx, &gamerpc.CreateGameRequest{
		GameConfig: testServerGameConfig("My Game"),
	})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Request field `user_name` must not be blank.")

	_, err = srv.CreateGame(ctx, &gamerpc.CreateGameRequest{UserName: "users/0"})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Request is missing required field `game_config`.")

	config := testServerGameConfig("")
	_, err = srv.CreateGame(ctx, &gamerpc.CreateGameRequest{UserName: "users/0", GameConfig: config})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Game config property `display_name` cannot be empty.")
}

func TestCreateGame(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	view := createGameForUser(t, srv, "users/0", "My Game")

	assert.NotEmpty(t, view.GetGameId())
	assert.Equal(t, gamerpc.GameView_NOT_RUNNING, view.GetStage())
	assert.Equal(t, "My Game", view.GetConfig().GetDisplayName())
	assert.Equal(t, "users/0", view.GetOwner().GetName())
	require.Len(t, view.GetPlayers(), 1)

	_, err := srv.CreateGame(context.Background(), &gamerpc.CreateGameRequest{
		UserName:   "users/0",
		GameConfig: testServerGameConfig("Another Game"),
	})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Cannot create a game while already in a different game.")
}

func TestJoinAndLeaveGame(t *testing.T) {
	srv, notifier := newTestServer(t, nil)
	ctx := context.Background()
	gameID := createGameForUser(t, srv, "users/0", "My Game").GetGameId()

	_, err := srv.JoinGame(ctx, &gamerpc.JoinGameRequest{UserName: "users/1"})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Request field `game_id` must not be blank.")

	_, err = srv.JoinGame(ctx, &gamerpc.JoinGameRequest{UserName: "users/1", GameId: "nope"})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Game does not exist with id: `nope`.")

	view, err := srv.JoinGame(ctx, &gamerpc.JoinGameRequest{UserName: "users/1", GameId: gameID})
	require.NoError(t, err)
	require.Len(t, view.GetPlayers(), 2)
	assert.Equal(t, []string{"users/0", "users/1"}, notifier.lastPayload())

	_, err = srv.JoinGame(ctx, &gamerpc.JoinGameRequest{UserName: "users/1", GameId: gameID})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = User is already in a game.")

	_, err = srv.LeaveGame(ctx, &gamerpc.LeaveGameRequest{UserName: "users/1"})
	require.NoError(t, err)
	_, err = srv.LeaveGame(ctx, &gamerpc.LeaveGameRequest{UserName: "users/1"})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = User is not in a game.")

	// The last player leaving removes the game entirely.
	_, err = srv.LeaveGame(ctx, &gamerpc.LeaveGameRequest{UserName: "users/0"})
	require.NoError(t, err)
	_, err = srv.JoinGame(ctx, &gamerpc.JoinGameRequest{UserName: "users/1", GameId: gameID})
	require.EqualError(t, err,
		fmt.Sprintf("rpc error: code = InvalidArgument desc = Game does not exist with id: `%s`.", gameID))
}

func TestFullRoundOverRPC(t *testing.T) {
	srv, notifier := newTestServer(t, nil)
	ctx := context.Background()
	userNames := []string{"users/0", "users/1", "users/2"}

	gameID := createGameForUser(t, srv, "users/0", "My Game").GetGameId()
	for _, userName := range userNames[1:] {
		_, err := srv.JoinGame(ctx, &gamerpc.JoinGameRequest{UserName: userName, GameId: gameID})
		require.NoError(t, err)
	}

	view, err := srv.StartGame(ctx, &gamerpc.StartGameRequest{UserName: "users/0"})
	require.NoError(t, err)
	require.Equal(t, gamerpc.GameView_PLAY_PHASE, view.GetStage())
	judgeName := view.GetJudge().GetName()
	require.NotEmpty(t, judgeName)

	for _, userName := range userNames {
		if userName == judgeName {
			continue
		}
		view, err := srv.GetGameView(ctx, &gamerpc.GetGameViewRequest{UserName: userName})
		require.NoError(t, err)
		answerFields := answerFieldsFromView(view)
		require.GreaterOrEqual(t, len(view.GetHand()), answerFields)
		_, err = srv.PlayCards(ctx, &gamerpc.PlayCardsRequest{
			UserName: userName,
			Cards:    view.GetHand()[:answerFields],
		})
		require.NoError(t, err)
	}

	view, err = srv.GetGameView(ctx, &gamerpc.GetGameViewRequest{UserName: judgeName})
	require.NoError(t, err)
	require.Equal(t, gamerpc.GameView_JUDGE_PHASE, view.GetStage())
	require.Len(t, view.GetWhitePlayed(), 2)

	view, err = srv.VoteCard(ctx, &gamerpc.VoteCardRequest{UserName: judgeName, Choice: 1})
	require.NoError(t, err)
	require.Equal(t, gamerpc.GameView_ROUND_END_PHASE, view.GetStage())
	require.NotNil(t, view.GetWinnerOfCurrentRound())

	view, err = srv.VoteStartNextRound(ctx, &gamerpc.VoteStartNextRoundRequest{UserName: judgeName})
	require.NoError(t, err)
	require.Equal(t, gamerpc.GameView_PLAY_PHASE, view.GetStage())
	require.Len(t, view.GetPastRounds(), 1)

	assert.Equal(t, userNames, notifier.lastPayload())
}

func TestVoteCardFieldValidation(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	ctx := context.Background()

	_, err := srv.VoteCard(ctx, &gamerpc.VoteCardRequest{UserName: "users/0"})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Request field `choice` must not be blank.")

	_, err = srv.VoteCard(ctx, &gamerpc.VoteCardRequest{UserName: "users/0", Choice: -1})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Request field `choice` must not be negative.")

	_, err = srv.VoteCard(ctx, &gamerpc.VoteCardRequest{UserName: "users/0", Choice: 1})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = User is not in a game.")
}

func TestCreateChatMessage(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	ctx := context.Background()
	createGameForUser(t, srv, "users/0", "My Game")

	_, err := srv.CreateChatMessage(ctx, &gamerpc.CreateChatMessageRequest{UserName: "users/0"})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Request is missing required field `chat_message`.")

	_, err = srv.CreateChatMessage(ctx, &gamerpc.CreateChatMessageRequest{
		UserName:    "users/0",
		ChatMessage: &gamerpc.ChatMessage{},
	})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Request field `chat_message.text` must not be blank.")

	view, err := srv.CreateChatMessage(ctx, &gamerpc.CreateChatMessageRequest{
		UserName:    "users/0",
		ChatMessage: &gamerpc.ChatMessage{Text: "hello there"},
	})
	require.NoError(t, err)
	require.Len(t, view.GetChatMessages(), 1)
	assert.Equal(t, "hello there", view.GetChatMessages()[0].GetText())
	assert.Equal(t, "users/0", view.GetChatMessages()[0].GetUser().GetName())
}

func TestSearchGames(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	ctx := context.Background()

	_, err := srv.SearchGames(ctx, &gamerpc.SearchGamesRequest{})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Request is missing GameStageFilter.")

	_, err = srv.SearchGames(ctx, &gamerpc.SearchGamesRequest{GameStageFilter: 99})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Request contains invalid value for GameStageFilter.")

	_, err = srv.SearchGames(ctx, &gamerpc.SearchGamesRequest{
		GameStageFilter:         gamerpc.GameStageFilter_GAME_STAGE_FILTER_NONE,
		MinAvailablePlayerSlots: -1,
	})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Request field `min_available_player_slots` must not be negative.")

	createGameForUser(t, srv, "users/0", "Alpha Game")
	createGameForUser(t, srv, "users/1", "Beta Game")

	resp, err := srv.SearchGames(ctx, &gamerpc.SearchGamesRequest{
		GameStageFilter: gamerpc.GameStageFilter_GAME_STAGE_FILTER_NONE,
	})
	require.NoError(t, err)
	require.Len(t, resp.GetGames(), 2)

	// The query is a case-sensitive substring of the display name.
	resp, err = srv.SearchGames(ctx, &gamerpc.SearchGamesRequest{
		GameStageFilter: gamerpc.GameStageFilter_GAME_STAGE_FILTER_NONE,
		Query:           "Alpha",
	})
	require.NoError(t, err)
	require.Len(t, resp.GetGames(), 1)
	assert.Equal(t, "Alpha Game", resp.GetGames()[0].GetConfig().GetDisplayName())

	resp, err = srv.SearchGames(ctx, &gamerpc.SearchGamesRequest{
		GameStageFilter: gamerpc.GameStageFilter_GAME_STAGE_FILTER_NONE,
		Query:           "alpha",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.GetGames())

	// Each game has one of three seats taken.
	resp, err = srv.SearchGames(ctx, &gamerpc.SearchGamesRequest{
		GameStageFilter:         gamerpc.GameStageFilter_GAME_STAGE_FILTER_NONE,
		MinAvailablePlayerSlots: 2,
	})
	require.NoError(t, err)
	require.Len(t, resp.GetGames(), 2)
	resp, err = srv.SearchGames(ctx, &gamerpc.SearchGamesRequest{
		GameStageFilter:         gamerpc.GameStageFilter_GAME_STAGE_FILTER_NONE,
		MinAvailablePlayerSlots: 3,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.GetGames())

	resp, err = srv.SearchGames(ctx, &gamerpc.SearchGamesRequest{
		GameStageFilter: gamerpc.GameStageFilter_GAME_STAGE_FILTER_RUNNING,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.GetGames())
	resp, err = srv.SearchGames(ctx, &gamerpc.SearchGamesRequest{
		GameStageFilter: gamerpc.GameStageFilter_GAME_STAGE_FILTER_STOPPED,
	})
	require.NoError(t, err)
	assert.Len(t, resp.GetGames(), 2)
}

func TestListWhiteCardTexts(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	ctx := context.Background()
	gameID := createGameForUser(t, srv, "users/0", "My Game").GetGameId()

	_, err := srv.ListWhiteCardTexts(ctx, &gamerpc.ListWhiteCardTextsRequest{
		GameId:   gameID,
		PageSize: -1,
	})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Request field `page_size` must not be negative.")

	_, err = srv.ListWhiteCardTexts(ctx, &gamerpc.ListWhiteCardTextsRequest{GameId: "nope"})
	require.EqualError(t, err, "rpc error: code = NotFound desc = Game does not exist.")

	// An omitted page size defaults to 50.
	resp, err := srv.ListWhiteCardTexts(ctx, &gamerpc.ListWhiteCardTextsRequest{GameId: gameID})
	require.NoError(t, err)
	assert.Len(t, resp.GetCardTexts(), 50)
	assert.Equal(t, "50", resp.GetNextPageToken())
	assert.Equal(t, int64(400), resp.GetTotalSize())

	// An oversized page size is capped at 1000.
	resp, err = srv.ListWhiteCardTexts(ctx, &gamerpc.ListWhiteCardTextsRequest{
		GameId:   gameID,
		PageSize: 5000,
	})
	require.NoError(t, err)
	assert.Len(t, resp.GetCardTexts(), 400)
	assert.Empty(t, resp.GetNextPageToken())

	resp, err = srv.ListWhiteCardTexts(ctx, &gamerpc.ListWhiteCardTextsRequest{
		GameId:   gameID,
		PageSize: 1000,
		Filter:   "custom_card",
	})
	require.NoError(t, err)
	assert.Len(t, resp.GetCardTexts(), 200)
	assert.Equal(t, int64(400), resp.GetTotalSize())

	_, err = srv.ListWhiteCardTexts(ctx, &gamerpc.ListWhiteCardTextsRequest{
		GameId:    gameID,
		PageToken: "garbage",
	})
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Invalid page token.")
}

func TestSweeperEvictsIdleGames(t *testing.T) {
	mockClock := quartz.NewMock(t)
	srv, _ := newTestServer(t, mockClock)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createGameForUser(t, srv, "users/0", "My Game")

	// Age the game to just short of the idle limit before the sweeper's
	// ticker exists, so its first ticks land on either side of the limit.
	mockClock.Advance(maxGameIdleTime - 2*sweepInterval).MustWait(ctx)

	tickerTrap := mockClock.Trap().NewTicker()
	defer tickerTrap.Close()
	sweeperDone := make(chan error, 1)
	go func() {
		sweeperDone <- srv.RunSweeper(ctx)
	}()
	tickerTrap.MustWait(ctx).MustRelease(ctx)

	// The first sweep observes the game one interval shy of the idle limit
	// and leaves it alone.
	mockClock.Advance(sweepInterval).MustWait(ctx)
	_, err := srv.GetGameView(ctx, &gamerpc.GetGameViewRequest{UserName: "users/0"})
	require.NoError(t, err)

	// Ticks fired while the sweeper is mid-sweep are dropped, so keep
	// nudging the clock until a sweep sees the game past the idle limit.
	require.Eventually(t, func() bool {
		if err := mockClock.Advance(sweepInterval).Wait(ctx); err != nil {
			return false
		}
		_, err := srv.GetGameView(ctx, &gamerpc.GetGameViewRequest{UserName: "users/0"})
		return err != nil
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.ErrorIs(t, <-sweeperDone, context.Canceled)
}

package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"

	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

func testCustomBlackCards(count int) []*gamerpc.CustomBlackCard {
	cards := make([]*gamerpc.CustomBlackCard, 0, count)
	for i := 0; i < count; i++ {
		cards = append(cards, &gamerpc.CustomBlackCard{
			Name:         fmt.Sprintf("users/someone/cardpacks/pack/blackCards/%d", i),
			Text:         fmt.Sprintf("custom_card_%d", i),
			AnswerFields: int32(i%MaxBlackCardAnswerFields) + 1,
		})
	}
	return cards
}

func testCustomWhiteCards(count int) []*gamerpc.CustomWhiteCard {
	cards := make([]*gamerpc.CustomWhiteCard, 0, count)
	for i := 0; i < count; i++ {
		cards = append(cards, &gamerpc.CustomWhiteCard{
			Name: fmt.Sprintf("users/someone/cardpacks/pack/whiteCards/%d", i),
			Text: fmt.Sprintf("custom_card_%d", i),
		})
	}
	return cards
}

func testDefaultBlackCards(count int) []*gamerpc.DefaultBlackCard {
	cards := make([]*gamerpc.DefaultBlackCard, 0, count)
	for i := 0; i < count; i++ {
		cards = append(cards, &gamerpc.DefaultBlackCard{
			Name:         fmt.Sprintf("defaultCardpacks/pack/defaultBlackCards/%d", i),
			Text:         fmt.Sprintf("default_card_%d", i),
			AnswerFields: int32(i%MaxBlackCardAnswerFields) + 1,
		})
	}
	return cards
}

func testDefaultWhiteCards(count int) []*gamerpc.DefaultWhiteCard {
	cards := make([]*gamerpc.DefaultWhiteCard, 0, count)
	for i := 0; i < count; i++ {
		cards = append(cards, &gamerpc.DefaultWhiteCard{
			Name: fmt.Sprintf("defaultCardpacks/pack/defaultWhiteCards/%d", i),
			Text: fmt.Sprintf("default_card_%d", i),
		})
	}
	return cards
}

func endlessTestGameConfig() *gamerpc.GameConfig {
	return &gamerpc.GameConfig{
		DisplayName:          "Test Game",
		MaxPlayers:           MinimumPlayersRequiredToPlay,
		EndCondition:         &gamerpc.GameConfig_EndlessMode{EndlessMode: true},
		HandSize:             MinHandSizeLimit,
		CustomCardpackNames:  []string{"test_custom_cardpack_name"},
		DefaultCardpackNames: []string{"test_default_cardpack_name"},
		BlankWhiteCardConfig: &gamerpc.BlankWhiteCardConfig{
			Behavior: gamerpc.BlankWhiteCardConfig_DISABLED,
		},
	}
}

func maxScoreTestGameConfig(maxScore int32) *gamerpc.GameConfig {
	config := endlessTestGameConfig()
	config.EndCondition = &gamerpc.GameConfig_MaxScore{MaxScore: maxScore}
	return config
}

func testUser(userName string) *gamerpc.User {
	return &gamerpc.User{Name: userName, DisplayName: "User " + userName}
}

func newTestGameFromConfig(t *testing.T, config *gamerpc.GameConfig, playerCount int) *Game {
	t.Helper()
	validated, err := NewValidatedConfig(config)
	require.NoError(t, err)
	g, err := NewGame("1234", validated,
		testCustomBlackCards(50), testCustomWhiteCards(500),
		testDefaultBlackCards(50), testDefaultWhiteCards(500),
		quartz.NewReal(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	for i := 0; i < playerCount; i++ {
		require.NoError(t, g.Join(testUser(fmt.Sprintf("users/%d", i))))
	}
	return g
}

func newEndlessTestGame(t *testing.T, playerCount int) *Game {
	return newTestGameFromConfig(t, endlessTestGameConfig(), playerCount)
}

// playForAllRealPlayers submits the top of every non-judge real player's
// hand and asserts the game lands in the judge phase.
func playForAllRealPlayers(t *testing.T, g *Game) {
	t.Helper()
	require.Equal(t, gamerpc.GameView_PLAY_PHASE, g.stage)
	answerFields := answerFieldsFromBlackCard(g.blackCardDeck.CurrentCard())
	for _, player := range append([]*gamerpc.Player(nil), g.players.RealPlayers()...) {
		user := player.GetUser()
		if user == nil || g.players.IsJudge(user.Name) ||
			g.gameplay.PlayerHasPlayedThisRound(RealUserID(user.Name)) {
			continue
		}
		hand, ok := g.gameplay.HandBelongingToPlayer(RealUserID(user.Name))
		require.True(t, ok)
		require.GreaterOrEqual(t, len(hand), answerFields)
		require.NoError(t, g.PlayCards(user.Name, hand[:answerFields]))
	}
	require.Equal(t, gamerpc.GameView_JUDGE_PHASE, g.stage)
}

func addArtificialPlayerAsOwner(t *testing.T, g *Game) {
	t.Helper()
	owner := g.players.Owner()
	require.NotNil(t, owner)
	require.NoError(t, g.AddArtificialPlayer(owner.Name, ""))
}

func requireValidNotRunningStage(t *testing.T, g *Game) {
	t.Helper()
	require.Equal(t, gamerpc.GameView_NOT_RUNNING, g.stage)
	require.Empty(t, g.players.QueuedRealPlayers())
	require.Empty(t, g.players.QueuedArtificialPlayers())
	require.Empty(t, g.gameplay.PlayedCards())
	require.Nil(t, g.players.Judge())
}

package game

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

// GameplayManager tracks per-player hands and the cards staged as played for
// the current round. A staged card stays in its owner's hand slice but is
// hidden from the visible hand until the round commits or the staging is
// undone.
type GameplayManager struct {
	// Holds hand plus staged cards for every player in the game.
	handsAndPlayedCards map[PlayerID][]*gamerpc.PlayableWhiteCard
	// Holds staged cards only for players who have submitted this round.
	playedCards map[PlayerID][]*gamerpc.PlayableWhiteCard
	deck        *WhiteCardDeck
	handSize    int
}

func NewGameplayManager(deck *WhiteCardDeck, handSize int) *GameplayManager {
	return &GameplayManager{
		handsAndPlayedCards: make(map[PlayerID][]*gamerpc.PlayableWhiteCard),
		playedCards:         make(map[PlayerID][]*gamerpc.PlayableWhiteCard),
		deck:                deck,
		handSize:            handSize,
	}
}

func (m *GameplayManager) AddPlayer(playerID PlayerID) {
	if _, ok := m.handsAndPlayedCards[playerID]; !ok {
		m.handsAndPlayedCards[playerID] = nil
	}
}

// RemovePlayer discards the player's combined hand and staged cards back to
// the deck and erases any staged entry so no ghost submission survives a
// mid-round removal.
func (m *GameplayManager) RemovePlayer(playerID PlayerID) {
	if hand, ok := m.handsAndPlayedCards[playerID]; ok {
		delete(m.handsAndPlayedCards, playerID)
		m.deck.DiscardMany(hand)
	}
	delete(m.playedCards, playerID)
}

// ReturnPlayedCardsToHands clears every staged set without discarding;
// staged cards were never removed from hands so they simply become visible
// again.
func (m *GameplayManager) ReturnPlayedCardsToHands() {
	for playerID := range m.playedCards {
		delete(m.playedCards, playerID)
	}
}

func (m *GameplayManager) DiscardPlayedCardsAndDrawToFull() {
	m.discardPlayedCards()
	m.drawHandsToFull()
}

// DiscardPlayerHands returns every hand to the deck. Called on the
// transition out of a running game.
func (m *GameplayManager) DiscardPlayerHands() {
	for playerID, hand := range m.handsAndPlayedCards {
		m.deck.DiscardMany(hand)
		m.handsAndPlayedCards[playerID] = nil
	}
}

// HandBelongingToPlayer returns the visible hand: the stored hand minus any
// cards currently staged as played. Returns false for players not in the
// game.
func (m *GameplayManager) HandBelongingToPlayer(playerID PlayerID) ([]*gamerpc.PlayableWhiteCard, bool) {
	handAndPlayed, ok := m.handsAndPlayedCards[playerID]
	if !ok {
		return nil, false
	}
	played, hasPlayed := m.playedCards[playerID]
	if !hasPlayed {
		return handAndPlayed, true
	}
	hand := make([]*gamerpc.PlayableWhiteCard, 0, len(handAndPlayed))
	for _, card := range handAndPlayed {
		if !whiteCardIsInList(card, played) {
			hand = append(hand, card)
		}
	}
	return hand, true
}

// PlayForArtificialPlayers stages the first answer-fields cards from each
// artificial player's hand. Players who already staged, or whose hand is too
// small, are skipped.
func (m *GameplayManager) PlayForArtificialPlayers(currentBlackCard *gamerpc.BlackCardInRound) {
	answerFields := answerFieldsFromBlackCard(currentBlackCard)
	for playerID, hand := range m.handsAndPlayedCards {
		if !playerID.IsArtificialPlayer() {
			continue
		}
		if _, alreadyPlayed := m.playedCards[playerID]; alreadyPlayed {
			continue
		}
		if len(hand) < answerFields {
			continue
		}
		played := make([]*gamerpc.PlayableWhiteCard, 0, answerFields)
		for _, card := range hand[:answerFields] {
			played = append(played, cloneWhiteCard(card))
		}
		m.playedCards[playerID] = played
	}
}

func (m *GameplayManager) PlayerHasPlayedThisRound(playerID PlayerID) bool {
	_, ok := m.playedCards[playerID]
	return ok
}

// PlayCardsForPlayer validates and stages a submission. The staged copies
// come from the player's hand, since submitted cards are only guaranteed to
// carry an identifier; a blank card's open text is carried over from the
// submission.
func (m *GameplayManager) PlayCardsForPlayer(playerID PlayerID, cards []*gamerpc.PlayableWhiteCard, currentBlackCard *gamerpc.BlackCardInRound, config *ValidatedConfig) error {
	answerFields := answerFieldsFromBlackCard(currentBlackCard)
	if len(cards) != answerFields {
		return status.Error(codes.InvalidArgument,
			fmt.Sprintf("Must play exactly %d cards", answerFields))
	}

	played := make([]*gamerpc.PlayableWhiteCard, 0, answerFields)
	for _, card := range cards {
		switch c := card.GetCard().(type) {
		case *gamerpc.PlayableWhiteCard_CustomWhiteCard:
			if c.CustomWhiteCard.GetName() == "" {
				return status.Error(codes.InvalidArgument,
					"Custom white cards require a value for the `name` property.")
			}
		case *gamerpc.PlayableWhiteCard_BlankWhiteCard:
			if config.BlankWhiteCardConfig().GetBehavior() != gamerpc.BlankWhiteCardConfig_OPEN_TEXT {
				return status.Error(codes.InvalidArgument,
					"This game does not support open-text blank white cards.")
			}
			if c.BlankWhiteCard.GetId() == "" || isBlank(c.BlankWhiteCard.GetOpenText()) {
				return status.Error(codes.InvalidArgument,
					"Blank white cards require values for both `id` and `open_text` properties.")
			}
		case *gamerpc.PlayableWhiteCard_DefaultWhiteCard:
			if c.DefaultWhiteCard.GetName() == "" {
				return status.Error(codes.InvalidArgument,
					"Default white cards require a value for the `name` property.")
			}
		}

		handCard, ok := m.cardFromPlayerHand(playerID, card)
		if !ok {
			return status.Error(codes.InvalidArgument,
				"One or more cards is not in the user's hand.")
		}
		staged := cloneWhiteCard(handCard)
		if blank, isBlankCard := staged.GetCard().(*gamerpc.PlayableWhiteCard_BlankWhiteCard); isBlankCard {
			blank.BlankWhiteCard.OpenText = card.GetBlankWhiteCard().GetOpenText()
		}
		played = append(played, staged)
	}

	m.playedCards[playerID] = played
	return nil
}

func (m *GameplayManager) UnplayCardsForPlayer(playerID PlayerID) {
	delete(m.playedCards, playerID)
}

// PlayedCards exposes the staged sets keyed by player. Callers must not
// mutate the returned map.
func (m *GameplayManager) PlayedCards() map[PlayerID][]*gamerpc.PlayableWhiteCard {
	return m.playedCards
}

func (m *GameplayManager) discardPlayedCards() {
	for playerID, played := range m.playedCards {
		if hand, ok := m.handsAndPlayedCards[playerID]; ok {
			kept := hand[:0]
			for _, card := range hand {
				if !whiteCardIsInList(card, played) {
					kept = append(kept, card)
				}
			}
			m.handsAndPlayedCards[playerID] = kept
		}
	}
	for playerID, played := range m.playedCards {
		delete(m.playedCards, playerID)
		m.deck.DiscardMany(played)
	}
}

func (m *GameplayManager) drawHandsToFull() {
	for playerID, hand := range m.handsAndPlayedCards {
		needed := m.handSize - len(hand)
		if needed <= 0 {
			continue
		}
		// Construction guarantees the deck can cover every hand, so a
		// short draw here is an invariant violation rather than a user
		// error. Leave the hand short instead of panicking.
		drawn, ok := m.deck.DrawMany(needed)
		if !ok {
			continue
		}
		m.handsAndPlayedCards[playerID] = append(hand, drawn...)
	}
}

func (m *GameplayManager) cardFromPlayerHand(playerID PlayerID, card *gamerpc.PlayableWhiteCard) (*gamerpc.PlayableWhiteCard, bool) {
	hand, ok := m.HandBelongingToPlayer(playerID)
	if !ok {
		return nil, false
	}
	for _, handCard := range hand {
		if whiteCardsHaveSameIdentifier(card, handCard) {
			return handCard, true
		}
	}
	return nil, false
}

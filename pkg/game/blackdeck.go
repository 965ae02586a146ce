package game

import (
	"math/rand"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

// BlackCardDeck is a single-pile deck of prompt cards. The top of the draw
// pile is the current card for the round; advancing moves it to discard and
// reshuffles the discard back in once the draw pile empties, so there is
// always a current card.
type BlackCardDeck struct {
	drawPile    []*gamerpc.BlackCardInRound
	discardPile []*gamerpc.BlackCardInRound
	rng         *rand.Rand
}

// NewBlackCardDeck pools custom and default black cards into one deck and
// performs the initial shuffle. At least one card is required.
func NewBlackCardDeck(customCards []*gamerpc.CustomBlackCard, defaultCards []*gamerpc.DefaultBlackCard, rng *rand.Rand) (*BlackCardDeck, error) {
	if len(customCards) == 0 && len(defaultCards) == 0 {
		return nil, status.Error(codes.InvalidArgument,
			"Cardpacks must contain at least one black card.")
	}

	drawPile := make([]*gamerpc.BlackCardInRound, 0, len(customCards)+len(defaultCards))
	for _, card := range customCards {
		drawPile = append(drawPile, &gamerpc.BlackCardInRound{
			Card: &gamerpc.BlackCardInRound_CustomBlackCard{CustomBlackCard: card},
		})
	}
	for _, card := range defaultCards {
		drawPile = append(drawPile, &gamerpc.BlackCardInRound{
			Card: &gamerpc.BlackCardInRound_DefaultBlackCard{DefaultBlackCard: card},
		})
	}

	deck := &BlackCardDeck{drawPile: drawPile, rng: rng}
	deck.ShuffleAndReset()
	return deck, nil
}

// CurrentCard returns the top of the draw pile. The constructor and all
// mutating methods guarantee the draw pile is never empty.
func (d *BlackCardDeck) CurrentCard() *gamerpc.BlackCardInRound {
	return d.drawPile[len(d.drawPile)-1]
}

// NextCard moves the current card to discard. Exhausting the draw pile
// triggers an immediate shuffle-and-reset.
func (d *BlackCardDeck) NextCard() {
	last := len(d.drawPile) - 1
	d.discardPile = append(d.discardPile, d.drawPile[last])
	d.drawPile = d.drawPile[:last]
	if len(d.drawPile) == 0 {
		d.ShuffleAndReset()
	}
}

// ShuffleAndReset drains the discard pile back into the draw pile and
// shuffles. Idempotent when the discard pile is already empty.
func (d *BlackCardDeck) ShuffleAndReset() {
	d.drawPile = append(d.drawPile, d.discardPile...)
	d.discardPile = d.discardPile[:0]
	d.rng.Shuffle(len(d.drawPile), func(i, j int) {
		d.drawPile[i], d.drawPile[j] = d.drawPile[j], d.drawPile[i]
	})
}

func (d *BlackCardDeck) totalCards() int {
	return len(d.drawPile) + len(d.discardPile)
}

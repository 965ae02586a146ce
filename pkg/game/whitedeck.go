package game

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

// WhiteCardDeck pools three sources into one draw pile: custom white cards,
// generated blank white cards, and default white cards. Cards only ever
// rotate between the draw and discard piles, so the total count is fixed at
// construction.
type WhiteCardDeck struct {
	drawPile    []*gamerpc.PlayableWhiteCard
	discardPile []*gamerpc.PlayableWhiteCard
	rng         *rand.Rand
}

func NewWhiteCardDeck(customCards []*gamerpc.CustomWhiteCard, defaultCards []*gamerpc.DefaultWhiteCard, blankConfig *gamerpc.BlankWhiteCardConfig, rng *rand.Rand) *WhiteCardDeck {
	cards := make([]*gamerpc.PlayableWhiteCard, 0, len(customCards)+len(defaultCards))
	for _, card := range customCards {
		cards = append(cards, &gamerpc.PlayableWhiteCard{
			Card: &gamerpc.PlayableWhiteCard_CustomWhiteCard{CustomWhiteCard: card},
		})
	}
	for i := blankWhiteCardCountToAdd(len(cards)+len(defaultCards), blankConfig); i > 0; i-- {
		cards = append(cards, &gamerpc.PlayableWhiteCard{
			Card: &gamerpc.PlayableWhiteCard_BlankWhiteCard{
				BlankWhiteCard: &gamerpc.BlankWhiteCard{Id: newBlankWhiteCardID()},
			},
		})
	}
	for _, card := range defaultCards {
		cards = append(cards, &gamerpc.PlayableWhiteCard{
			Card: &gamerpc.PlayableWhiteCard_DefaultWhiteCard{DefaultWhiteCard: card},
		})
	}

	deck := &WhiteCardDeck{drawPile: cards, rng: rng}
	deck.ShuffleAndReset()
	return deck
}

func newBlankWhiteCardID() string {
	return uuid.NewString()
}

// blankWhiteCardCountToAdd computes how many blank cards to generate given
// the non-blank card count. A percentage p yields floor(n*p/(1-p)) so that
// blanks make up p of the final deck.
func blankWhiteCardCountToAdd(nonBlankCount int, blankConfig *gamerpc.BlankWhiteCardConfig) int {
	switch added := blankConfig.GetBlankWhiteCardsAdded().(type) {
	case *gamerpc.BlankWhiteCardConfig_CardCount:
		if added.CardCount > 0 {
			return int(added.CardCount)
		}
		return 0
	case *gamerpc.BlankWhiteCardConfig_Percentage:
		if added.Percentage > 0 {
			return int(math.Floor(float64(nonBlankCount) * added.Percentage / (1 - added.Percentage)))
		}
		return 0
	default:
		return 0
	}
}

func (d *WhiteCardDeck) drawOne() *gamerpc.PlayableWhiteCard {
	if len(d.drawPile) == 0 {
		d.ShuffleAndReset()
	}
	last := len(d.drawPile) - 1
	card := d.drawPile[last]
	d.drawPile = d.drawPile[:last]
	return card
}

// DrawMany returns exactly amount cards, shuffling the discard pile back in
// as needed. Returns false when the deck holds fewer than amount cards in
// total.
func (d *WhiteCardDeck) DrawMany(amount int) ([]*gamerpc.PlayableWhiteCard, bool) {
	if len(d.drawPile)+len(d.discardPile) < amount {
		return nil, false
	}
	cards := make([]*gamerpc.PlayableWhiteCard, 0, amount)
	for i := 0; i < amount; i++ {
		cards = append(cards, d.drawOne())
	}
	return cards, true
}

// DiscardMany places cards on the discard pile. Blank cards are sanitized
// first so a reissued blank never reveals a past play.
func (d *WhiteCardDeck) DiscardMany(cards []*gamerpc.PlayableWhiteCard) {
	for _, card := range cards {
		sanitizeWhiteCard(card)
	}
	d.discardPile = append(d.discardPile, cards...)
}

func sanitizeWhiteCard(card *gamerpc.PlayableWhiteCard) {
	if blank, ok := card.GetCard().(*gamerpc.PlayableWhiteCard_BlankWhiteCard); ok {
		blank.BlankWhiteCard.OpenText = ""
	}
}

func (d *WhiteCardDeck) ShuffleAndReset() {
	d.drawPile = append(d.drawPile, d.discardPile...)
	d.discardPile = d.discardPile[:0]
	d.rng.Shuffle(len(d.drawPile), func(i, j int) {
		d.drawPile[i], d.drawPile[j] = d.drawPile[j], d.drawPile[i]
	})
}

func (d *WhiteCardDeck) totalCards() int {
	return len(d.drawPile) + len(d.discardPile)
}

package game

import (
	"strings"

	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// whiteCardText returns the display text of any white card variant. For
// blank cards this is whatever the player typed at play time.
func whiteCardText(card *gamerpc.PlayableWhiteCard) string {
	switch c := card.GetCard().(type) {
	case *gamerpc.PlayableWhiteCard_CustomWhiteCard:
		return c.CustomWhiteCard.GetText()
	case *gamerpc.PlayableWhiteCard_BlankWhiteCard:
		return c.BlankWhiteCard.GetOpenText()
	case *gamerpc.PlayableWhiteCard_DefaultWhiteCard:
		return c.DefaultWhiteCard.GetText()
	default:
		return ""
	}
}

// whiteCardsHaveSameIdentifier compares two white cards by variant tag plus
// resource name (custom/default) or instance id (blank). Card text never
// participates in identity.
func whiteCardsHaveSameIdentifier(a, b *gamerpc.PlayableWhiteCard) bool {
	switch ac := a.GetCard().(type) {
	case *gamerpc.PlayableWhiteCard_CustomWhiteCard:
		if bc, ok := b.GetCard().(*gamerpc.PlayableWhiteCard_CustomWhiteCard); ok {
			return ac.CustomWhiteCard.GetName() == bc.CustomWhiteCard.GetName()
		}
	case *gamerpc.PlayableWhiteCard_BlankWhiteCard:
		if bc, ok := b.GetCard().(*gamerpc.PlayableWhiteCard_BlankWhiteCard); ok {
			return ac.BlankWhiteCard.GetId() == bc.BlankWhiteCard.GetId()
		}
	case *gamerpc.PlayableWhiteCard_DefaultWhiteCard:
		if bc, ok := b.GetCard().(*gamerpc.PlayableWhiteCard_DefaultWhiteCard); ok {
			return ac.DefaultWhiteCard.GetName() == bc.DefaultWhiteCard.GetName()
		}
	}
	return false
}

func whiteCardIsInList(card *gamerpc.PlayableWhiteCard, list []*gamerpc.PlayableWhiteCard) bool {
	for _, other := range list {
		if whiteCardsHaveSameIdentifier(card, other) {
			return true
		}
	}
	return false
}

func cloneWhiteCard(card *gamerpc.PlayableWhiteCard) *gamerpc.PlayableWhiteCard {
	clone := &gamerpc.PlayableWhiteCard{}
	switch c := card.GetCard().(type) {
	case *gamerpc.PlayableWhiteCard_CustomWhiteCard:
		clone.Card = &gamerpc.PlayableWhiteCard_CustomWhiteCard{
			CustomWhiteCard: &gamerpc.CustomWhiteCard{
				Name: c.CustomWhiteCard.GetName(),
				Text: c.CustomWhiteCard.GetText(),
			},
		}
	case *gamerpc.PlayableWhiteCard_BlankWhiteCard:
		clone.Card = &gamerpc.PlayableWhiteCard_BlankWhiteCard{
			BlankWhiteCard: &gamerpc.BlankWhiteCard{
				Id:       c.BlankWhiteCard.GetId(),
				OpenText: c.BlankWhiteCard.GetOpenText(),
			},
		}
	case *gamerpc.PlayableWhiteCard_DefaultWhiteCard:
		clone.Card = &gamerpc.PlayableWhiteCard_DefaultWhiteCard{
			DefaultWhiteCard: &gamerpc.DefaultWhiteCard{
				Name: c.DefaultWhiteCard.GetName(),
				Text: c.DefaultWhiteCard.GetText(),
			},
		}
	}
	return clone
}

func cloneBlackCard(card *gamerpc.BlackCardInRound) *gamerpc.BlackCardInRound {
	clone := &gamerpc.BlackCardInRound{}
	switch c := card.GetCard().(type) {
	case *gamerpc.BlackCardInRound_CustomBlackCard:
		clone.Card = &gamerpc.BlackCardInRound_CustomBlackCard{
			CustomBlackCard: &gamerpc.CustomBlackCard{
				Name:         c.CustomBlackCard.GetName(),
				Text:         c.CustomBlackCard.GetText(),
				AnswerFields: c.CustomBlackCard.GetAnswerFields(),
			},
		}
	case *gamerpc.BlackCardInRound_DefaultBlackCard:
		clone.Card = &gamerpc.BlackCardInRound_DefaultBlackCard{
			DefaultBlackCard: &gamerpc.DefaultBlackCard{
				Name:         c.DefaultBlackCard.GetName(),
				Text:         c.DefaultBlackCard.GetText(),
				AnswerFields: c.DefaultBlackCard.GetAnswerFields(),
			},
		}
	}
	return clone
}

// answerFieldsFromBlackCard returns how many white cards must be played
// against the given black card.
func answerFieldsFromBlackCard(card *gamerpc.BlackCardInRound) int {
	switch c := card.GetCard().(type) {
	case *gamerpc.BlackCardInRound_CustomBlackCard:
		return int(c.CustomBlackCard.GetAnswerFields())
	case *gamerpc.BlackCardInRound_DefaultBlackCard:
		return int(c.DefaultBlackCard.GetAnswerFields())
	default:
		return 0
	}
}

func cloneWhiteCardsPlayed(entry *gamerpc.WhiteCardsPlayed) *gamerpc.WhiteCardsPlayed {
	return &gamerpc.WhiteCardsPlayed{
		Player:    clonePlayer(entry.GetPlayer()),
		CardTexts: append([]string(nil), entry.GetCardTexts()...),
	}
}

func clonePastRound(round *gamerpc.PastRound) *gamerpc.PastRound {
	whitePlayed := make([]*gamerpc.WhiteCardsPlayed, 0, len(round.GetWhitePlayed()))
	for _, entry := range round.GetWhitePlayed() {
		whitePlayed = append(whitePlayed, cloneWhiteCardsPlayed(entry))
	}
	return &gamerpc.PastRound{
		BlackCard:   cloneBlackCard(round.GetBlackCard()),
		WhitePlayed: whitePlayed,
		Judge:       cloneUser(round.GetJudge()),
		Winner:      clonePlayer(round.GetWinner()),
	}
}

func cloneUser(user *gamerpc.User) *gamerpc.User {
	if user == nil {
		return nil
	}
	return &gamerpc.User{Name: user.Name, DisplayName: user.DisplayName}
}

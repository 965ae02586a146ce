package server

import (
	"context"

	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

// UserFetcher resolves user resource names against the central API service.
type UserFetcher interface {
	User(ctx context.Context, userName string) (*gamerpc.User, error)
}

// CardFetcher retrieves the full card lists for the cardpacks a game config
// names. Implementations return every card, not a page.
type CardFetcher interface {
	CustomCardsFromCardpacks(ctx context.Context, cardpackNames []string) ([]*gamerpc.CustomBlackCard, []*gamerpc.CustomWhiteCard, error)
	DefaultCardsFromCardpacks(ctx context.Context, cardpackNames []string) ([]*gamerpc.DefaultBlackCard, []*gamerpc.DefaultWhiteCard, error)
}

const fetchPageSize = 1000

// GrpcResourceFetcher implements UserFetcher and CardFetcher against the
// API service's UserService and CardpackService.
type GrpcResourceFetcher struct {
	users     gamerpc.UserServiceClient
	cardpacks gamerpc.CardpackServiceClient
}

func NewGrpcResourceFetcher(users gamerpc.UserServiceClient, cardpacks gamerpc.CardpackServiceClient) *GrpcResourceFetcher {
	return &GrpcResourceFetcher{users: users, cardpacks: cardpacks}
}

func (f *GrpcResourceFetcher) User(ctx context.Context, userName string) (*gamerpc.User, error) {
	return f.users.GetUser(ctx, &gamerpc.GetUserRequest{Name: userName})
}

func (f *GrpcResourceFetcher) customBlackCardsFromCardpack(ctx context.Context, cardpackName string) ([]*gamerpc.CustomBlackCard, error) {
	var cards []*gamerpc.CustomBlackCard
	pageToken := ""
	for {
		resp, err := f.cardpacks.ListCustomBlackCards(ctx, &gamerpc.ListCustomBlackCardsRequest{
			Parent:    cardpackName,
			PageSize:  fetchPageSize,
			PageToken: pageToken,
		})
		if err != nil {
			return nil, err
		}
		cards = append(cards, resp.GetCustomBlackCards()...)
		pageToken = resp.GetNextPageToken()
		if pageToken == "" {
			return cards, nil
		}
	}
}

func (f *GrpcResourceFetcher) customWhiteCardsFromCardpack(ctx context.Context, cardpackName string) ([]*gamerpc.CustomWhiteCard, error) {
	var cards []*gamerpc.CustomWhiteCard
	pageToken := ""
	for {
		resp, err := f.cardpacks.ListCustomWhiteCards(ctx, &gamerpc.ListCustomWhiteCardsRequest{
			Parent:    cardpackName,
			PageSize:  fetchPageSize,
			PageToken: pageToken,
		})
		if err != nil {
			return nil, err
		}
		cards = append(cards, resp.GetCustomWhiteCards()...)
		pageToken = resp.GetNextPageToken()
		if pageToken == "" {
			return cards, nil
		}
	}
}

func (f *GrpcResourceFetcher) defaultBlackCardsFromCardpack(ctx context.Context, cardpackName string) ([]*gamerpc.DefaultBlackCard, error) {
	var cards []*gamerpc.DefaultBlackCard
	pageToken := ""
	for {
		resp, err := f.cardpacks.ListDefaultBlackCards(ctx, &gamerpc.ListDefaultBlackCardsRequest{
			Parent:    cardpackName,
			PageSize:  fetchPageSize,
			PageToken: pageToken,
		})
		if err != nil {
			return nil, err
		}
		cards = append(cards, resp.GetDefaultBlackCards()...)
		pageToken = resp.GetNextPageToken()
		if pageToken == "" {
			return cards, nil
		}
	}
}

func (f *GrpcResourceFetcher) defaultWhiteCardsFromCardpack(ctx context.Context, cardpackName string) ([]*gamerpc.DefaultWhiteCard, error) {
	var cards []*gamerpc.DefaultWhiteCard
	pageToken := ""
	for {
		resp, err := f.cardpacks.ListDefaultWhiteCards(ctx, &gamerpc.ListDefaultWhiteCardsRequest{
			Parent:    cardpackName,
			PageSize:  fetchPageSize,
			PageToken: pageToken,
		})
		if err != nil {
			return nil, err
		}
		cards = append(cards, resp.GetDefaultWhiteCards()...)
		pageToken = resp.GetNextPageToken()
		if pageToken == "" {
			return cards, nil
		}
	}
}

func (f *GrpcResourceFetcher) CustomCardsFromCardpacks(ctx context.Context, cardpackNames []string) ([]*gamerpc.CustomBlackCard, []*gamerpc.CustomWhiteCard, error) {
	var blackCards []*gamerpc.CustomBlackCard
	var whiteCards []*gamerpc.CustomWhiteCard
	for _, cardpackName := range cardpackNames {
		black, err := f.customBlackCardsFromCardpack(ctx, cardpackName)
		if err != nil {
			return nil, nil, err
		}
		white, err := f.customWhiteCardsFromCardpack(ctx, cardpackName)
		if err != nil {
			return nil, nil, err
		}
		blackCards = append(blackCards, black...)
		whiteCards = append(whiteCards, white...)
	}
	return blackCards, whiteCards, nil
}

func (f *GrpcResourceFetcher) DefaultCardsFromCardpacks(ctx context.Context, cardpackNames []string) ([]*gamerpc.DefaultBlackCard, []*gamerpc.DefaultWhiteCard, error) {
	var blackCards []*gamerpc.DefaultBlackCard
	var whiteCards []*gamerpc.DefaultWhiteCard
	for _, cardpackName := range cardpackNames {
		black, err := f.defaultBlackCardsFromCardpack(ctx, cardpackName)
		if err != nil {
			return nil, nil, err
		}
		white, err := f.defaultWhiteCardsFromCardpack(ctx, cardpackName)
		if err != nil {
			return nil, nil, err
		}
		blackCards = append(blackCards, black...)
		whiteCards = append(whiteCards, white...)
	}
	return blackCards, whiteCards, nil
}

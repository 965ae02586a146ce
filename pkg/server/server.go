package server

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/decred/slog"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/cardczar/gameservice/pkg/game"
	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

const (
	sweepInterval   = time.Minute
	maxGameIdleTime = 4 * time.Hour
)

// Server implements GameService. Game state lives entirely in memory behind
// a single mutex; upstream fetches happen before the mutex is taken and
// update notifications are published after it is released.
type Server struct {
	gamerpc.UnimplementedGameServiceServer

	log      slog.Logger
	users    UserFetcher
	cards    CardFetcher
	notifier Notifier
	clock    quartz.Clock

	mu    sync.Mutex
	games *game.GameIndexer

	// newGameRNG seeds the per-game shuffle source. Overridden in tests for
	// reproducible deck orders.
	newGameRNG func() *rand.Rand
}

// Config carries the server's dependencies. Log and Clock are optional;
// Notifier may be nil to disable update publishing.
type Config struct {
	Log      slog.Logger
	Users    UserFetcher
	Cards    CardFetcher
	Notifier Notifier
	Clock    quartz.Clock
}

func NewServer(cfg Config) *Server {
	log := cfg.Log
	if log == nil {
		log = slog.Disabled
	}
	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Server{
		log:      log,
		users:    cfg.Users,
		cards:    cfg.Cards,
		notifier: cfg.Notifier,
		clock:    clock,
		games:    game.NewGameIndexer(),
		newGameRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// RunSweeper periodically evicts games with no activity for four hours.
// Blocks until ctx is canceled.
func (s *Server) RunSweeper(ctx context.Context) error {
	ticker := s.clock.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			s.mu.Lock()
			before := len(s.games.GamesByCreateTime())
			s.games.RemoveUnusedGames(maxGameIdleTime, now)
			removed := before - len(s.games.GamesByCreateTime())
			s.mu.Unlock()
			if removed > 0 {
				s.log.Infof("Removed %d idle games", removed)
			}
		}
	}
}

func generateGameID() string {
	return uuid.NewString()
}

func (s *Server) notifyGameUpdated(userNames []string) {
	if s.notifier == nil || len(userNames) == 0 {
		return
	}
	if err := s.notifier.GameUpdatedForUsers(userNames); err != nil {
		s.log.Warnf("Failed to publish game update: %v", err)
	}
}

// withUserGame runs fn against the game containing userName, then returns
// the caller's view of it. Update notifications go out after the mutex is
// released.
func (s *Server) withUserGame(userName string, fn func(g *game.Game) error) (*gamerpc.GameView, error) {
	s.mu.Lock()
	g := s.games.GameByPlayerID(game.RealUserID(userName))
	if g == nil {
		s.mu.Unlock()
		return nil, status.Error(codes.InvalidArgument, "User is not in a game.")
	}
	if err := fn(g); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	view := g.UserView(userName)
	userNames := g.UserNamesForAllRealPlayers()
	s.mu.Unlock()

	s.notifyGameUpdated(userNames)
	return view, nil
}

func (s *Server) CreateGame(ctx context.Context, req *gamerpc.CreateGameRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}
	if req.GetGameConfig() == nil {
		return nil, missingRequestFieldError("game_config")
	}
	config, err := game.NewValidatedConfig(req.GetGameConfig())
	if err != nil {
		return nil, err
	}

	// Fetch everything from the API service before taking the registry
	// mutex so slow upstream calls never block other games.
	customBlackCards, customWhiteCards, err := s.cards.CustomCardsFromCardpacks(ctx, config.CustomCardpackNames())
	if err != nil {
		return nil, err
	}
	defaultBlackCards, defaultWhiteCards, err := s.cards.DefaultCardsFromCardpacks(ctx, config.DefaultCardpackNames())
	if err != nil {
		return nil, err
	}
	owner, err := s.users.User(ctx, req.GetUserName())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.games.GameByPlayerID(game.RealUserID(req.GetUserName())) != nil {
		return nil, status.Error(codes.InvalidArgument,
			"Cannot create a game while already in a different game.")
	}
	g, err := game.NewGameWithOwner(generateGameID(), config,
		customBlackCards, customWhiteCards, defaultBlackCards, defaultWhiteCards,
		owner, s.clock, s.newGameRNG())
	if err != nil {
		return nil, err
	}
	view := g.UserView(req.GetUserName())
	s.games.InsertGame(g)
	s.log.Infof("Created game %s for user %s", g.GameID(), req.GetUserName())
	return view, nil
}

func (s *Server) StartGame(ctx context.Context, req *gamerpc.StartGameRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}
	return s.withUserGame(req.GetUserName(), func(g *game.Game) error {
		return g.Start(req.GetUserName())
	})
}

func (s *Server) StopGame(ctx context.Context, req *gamerpc.StopGameRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}
	return s.withUserGame(req.GetUserName(), func(g *game.Game) error {
		return g.Stop(req.GetUserName())
	})
}

func (s *Server) JoinGame(ctx context.Context, req *gamerpc.JoinGameRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}
	if req.GetGameId() == "" {
		return nil, emptyRequestFieldError("game_id")
	}

	user, err := s.users.User(ctx, req.GetUserName())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.games.GameByPlayerID(game.RealUserID(req.GetUserName())) != nil {
		s.mu.Unlock()
		return nil, status.Error(codes.InvalidArgument, "User is already in a game.")
	}
	g := s.games.GameByGameID(req.GetGameId())
	if g == nil {
		s.mu.Unlock()
		return nil, status.Errorf(codes.InvalidArgument,
			"Game does not exist with id: `%s`.", req.GetGameId())
	}
	if err := g.Join(user); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	view := g.UserView(req.GetUserName())
	userNames := g.UserNamesForAllRealPlayers()
	s.mu.Unlock()

	s.notifyGameUpdated(userNames)
	return view, nil
}

func (s *Server) LeaveGame(ctx context.Context, req *gamerpc.LeaveGameRequest) (*emptypb.Empty, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}

	s.mu.Lock()
	g := s.games.GameByPlayerID(game.RealUserID(req.GetUserName()))
	if g == nil {
		s.mu.Unlock()
		return nil, status.Error(codes.InvalidArgument, "User is not in a game.")
	}
	if err := g.Leave(req.GetUserName()); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	userNames := g.UserNamesForAllRealPlayers()
	if g.IsEmpty() {
		s.games.RemoveGame(g.GameID())
		s.log.Infof("Removed empty game %s", g.GameID())
	}
	s.mu.Unlock()

	s.notifyGameUpdated(userNames)
	return &emptypb.Empty{}, nil
}

func (s *Server) KickUser(ctx context.Context, req *gamerpc.KickUserRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}
	if req.GetTrollUserName() == "" {
		return nil, emptyRequestFieldError("troll_user_name")
	}
	return s.withUserGame(req.GetUserName(), func(g *game.Game) error {
		return g.KickUser(req.GetUserName(), req.GetTrollUserName())
	})
}

func (s *Server) BanUser(ctx context.Context, req *gamerpc.BanUserRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}
	if req.GetTrollUserName() == "" {
		return nil, emptyRequestFieldError("troll_user_name")
	}
	return s.withUserGame(req.GetUserName(), func(g *game.Game) error {
		return g.BanUser(req.GetUserName(), req.GetTrollUserName())
	})
}

func (s *Server) UnbanUser(ctx context.Context, req *gamerpc.UnbanUserRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}
	if req.GetTrollUserName() == "" {
		return nil, emptyRequestFieldError("troll_user_name")
	}
	return s.withUserGame(req.GetUserName(), func(g *game.Game) error {
		return g.UnbanUser(req.GetUserName(), req.GetTrollUserName())
	})
}

func (s *Server) PlayCards(ctx context.Context, req *gamerpc.PlayCardsRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}
	return s.withUserGame(req.GetUserName(), func(g *game.Game) error {
		return g.PlayCards(req.GetUserName(), req.GetCards())
	})
}

func (s *Server) UnplayCards(ctx context.Context, req *gamerpc.UnplayCardsRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}
	return s.withUserGame(req.GetUserName(), func(g *game.Game) error {
		return g.UnplayCards(req.GetUserName())
	})
}

func (s *Server) VoteCard(ctx context.Context, req *gamerpc.VoteCardRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}
	if req.GetChoice() == 0 {
		return nil, emptyRequestFieldError("choice")
	}
	if req.GetChoice() < 0 {
		return nil, negativeRequestFieldError("choice")
	}
	return s.withUserGame(req.GetUserName(), func(g *game.Game) error {
		return g.VoteCard(req.GetUserName(), req.GetChoice())
	})
}

func (s *Server) VoteStartNextRound(ctx context.Context, req *gamerpc.VoteStartNextRoundRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}
	return s.withUserGame(req.GetUserName(), func(g *game.Game) error {
		return g.VoteStartNextRound(req.GetUserName())
	})
}

func (s *Server) AddArtificialPlayer(ctx context.Context, req *gamerpc.AddArtificialPlayerRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}
	return s.withUserGame(req.GetUserName(), func(g *game.Game) error {
		return g.AddArtificialPlayer(req.GetUserName(), req.GetDisplayName())
	})
}

func (s *Server) RemoveArtificialPlayer(ctx context.Context, req *gamerpc.RemoveArtificialPlayerRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}
	return s.withUserGame(req.GetUserName(), func(g *game.Game) error {
		return g.RemoveArtificialPlayer(req.GetUserName(), req.GetArtificialPlayerId())
	})
}

func (s *Server) CreateChatMessage(ctx context.Context, req *gamerpc.CreateChatMessageRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}
	if req.GetChatMessage() == nil {
		return nil, missingRequestFieldError("chat_message")
	}
	if req.GetChatMessage().GetText() == "" {
		return nil, emptyRequestFieldError("chat_message.text")
	}
	return s.withUserGame(req.GetUserName(), func(g *game.Game) error {
		return g.PostMessage(req.GetUserName(), req.GetChatMessage().GetText())
	})
}

func (s *Server) GetGameView(ctx context.Context, req *gamerpc.GetGameViewRequest) (*gamerpc.GameView, error) {
	if req.GetUserName() == "" {
		return nil, emptyRequestFieldError("user_name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.games.GameByPlayerID(game.RealUserID(req.GetUserName()))
	if g == nil {
		return nil, status.Error(codes.InvalidArgument, "User is not in a game.")
	}
	return g.UserView(req.GetUserName()), nil
}

func (s *Server) SearchGames(ctx context.Context, req *gamerpc.SearchGamesRequest) (*gamerpc.SearchGamesResponse, error) {
	stageFilter := req.GetGameStageFilter()
	if stageFilter == gamerpc.GameStageFilter_GAME_STAGE_FILTER_UNSPECIFIED {
		return nil, status.Error(codes.InvalidArgument, "Request is missing GameStageFilter.")
	}
	if _, known := gamerpc.GameStageFilter_name[int32(stageFilter)]; !known {
		return nil, status.Error(codes.InvalidArgument,
			"Request contains invalid value for GameStageFilter.")
	}
	if req.GetMinAvailablePlayerSlots() < 0 {
		return nil, negativeRequestFieldError("min_available_player_slots")
	}

	s.mu.Lock()
	var gameInfoList []*gamerpc.GameInfo
	for _, g := range s.games.GamesByCreateTime() {
		gameInfoList = append(gameInfoList, g.Info())
	}
	s.mu.Unlock()

	matches := make([]*gamerpc.GameInfo, 0, len(gameInfoList))
	for _, info := range gameInfoList {
		config := info.GetConfig()
		if config == nil {
			continue
		}
		if !strings.Contains(config.GetDisplayName(), req.GetQuery()) {
			continue
		}
		openPlayerSlots := config.GetMaxPlayers() - info.GetPlayerCount()
		if openPlayerSlots < req.GetMinAvailablePlayerSlots() {
			continue
		}
		switch stageFilter {
		case gamerpc.GameStageFilter_GAME_STAGE_FILTER_STOPPED:
			if info.GetIsRunning() {
				continue
			}
		case gamerpc.GameStageFilter_GAME_STAGE_FILTER_RUNNING:
			if !info.GetIsRunning() {
				continue
			}
		}
		matches = append(matches, info)
	}
	return &gamerpc.SearchGamesResponse{Games: matches}, nil
}

func (s *Server) ListWhiteCardTexts(ctx context.Context, req *gamerpc.ListWhiteCardTextsRequest) (*gamerpc.ListWhiteCardTextsResponse, error) {
	pageSize, err := boundedPageSize(req.GetPageSize())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.games.GameByGameID(req.GetGameId())
	if g == nil {
		return nil, status.Error(codes.NotFound, "Game does not exist.")
	}
	cardTexts, nextPageToken, totalSize, err := g.SearchWhiteCardTexts(
		req.GetFilter(), pageSize, req.GetPageToken())
	if err != nil {
		return nil, err
	}
	return &gamerpc.ListWhiteCardTextsResponse{
		CardTexts:     cardTexts,
		NextPageToken: nextPageToken,
		TotalSize:     int64(totalSize),
	}, nil
}

package gamerpc

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
)

// GameServiceClient is the client API for GameService.
type GameServiceClient interface {
	CreateGame(ctx context.Context, in *CreateGameRequest, opts ...grpc.CallOption) (*GameView, error)
	StartGame(ctx context.Context, in *StartGameRequest, opts ...grpc.CallOption) (*GameView, error)
	StopGame(ctx context.Context, in *StopGameRequest, opts ...grpc.CallOption) (*GameView, error)
	JoinGame(ctx context.Context, in *JoinGameRequest, opts ...grpc.CallOption) (*GameView, error)
	LeaveGame(ctx context.Context, in *LeaveGameRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	KickUser(ctx context.Context, in *KickUserRequest, opts ...grpc.CallOption) (*GameView, error)
	BanUser(ctx context.Context, in *BanUserRequest, opts ...grpc.CallOption) (*GameView, error)
	UnbanUser(ctx context.Context, in *UnbanUserRequest, opts ...grpc.CallOption) (*GameView, error)
	PlayCards(ctx context.Context, in *PlayCardsRequest, opts ...grpc.CallOption) (*GameView, error)
	UnplayCards(ctx context.Context, in *UnplayCardsRequest, opts ...grpc.CallOption) (*GameView, error)
	VoteCard(ctx context.Context, in *VoteCardRequest, opts ...grpc.CallOption) (*GameView, error)
	VoteStartNextRound(ctx context.Context, in *VoteStartNextRoundRequest, opts ...grpc.CallOption) (*GameView, error)
	AddArtificialPlayer(ctx context.Context, in *AddArtificialPlayerRequest, opts ...grpc.CallOption) (*GameView, error)
	RemoveArtificialPlayer(ctx context.Context, in *RemoveArtificialPlayerRequest, opts ...grpc.CallOption) (*GameView, error)
	CreateChatMessage(ctx context.Context, in *CreateChatMessageRequest, opts ...grpc.CallOption) (*GameView, error)
	GetGameView(ctx context.Context, in *GetGameViewRequest, opts ...grpc.CallOption) (*GameView, error)
	SearchGames(ctx context.Context, in *SearchGamesRequest, opts ...grpc.CallOption) (*SearchGamesResponse, error)
	ListWhiteCardTexts(ctx context.Context, in *ListWhiteCardTextsRequest, opts ...grpc.CallOption) (*ListWhiteCardTextsResponse, error)
}

type gameServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGameServiceClient(cc grpc.ClientConnInterface) GameServiceClient {
	return &gameServiceClient{cc}
}

func (c *gameServiceClient) CreateGame(ctx context.Context, in *CreateGameRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/CreateGame", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) StartGame(ctx context.Context, in *StartGameRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/StartGame", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) StopGame(ctx context.Context, in *StopGameRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/StopGame", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) JoinGame(ctx context.Context, in *JoinGameRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/JoinGame", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) LeaveGame(ctx context.Context, in *LeaveGameRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/LeaveGame", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) KickUser(ctx context.Context, in *KickUserRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/KickUser", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) BanUser(ctx context.Context, in *BanUserRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/BanUser", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) UnbanUser(ctx context.Context, in *UnbanUserRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/UnbanUser", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) PlayCards(ctx context.Context, in *PlayCardsRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/PlayCards", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) UnplayCards(ctx context.Context, in *UnplayCardsRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/UnplayCards", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) VoteCard(ctx context.Context, in *VoteCardRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/VoteCard", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) VoteStartNextRound(ctx context.Context, in *VoteStartNextRoundRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/VoteStartNextRound", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) AddArtificialPlayer(ctx context.Context, in *AddArtificialPlayerRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/AddArtificialPlayer", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) RemoveArtificialPlayer(ctx context.Context, in *RemoveArtificialPlayerRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/RemoveArtificialPlayer", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) CreateChatMessage(ctx context.Context, in *CreateChatMessageRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/CreateChatMessage", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetGameView(ctx context.Context, in *GetGameViewRequest, opts ...grpc.CallOption) (*GameView, error) {
	out := new(GameView)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/GetGameView", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) SearchGames(ctx context.Context, in *SearchGamesRequest, opts ...grpc.CallOption) (*SearchGamesResponse, error) {
	out := new(SearchGamesResponse)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/SearchGames", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) ListWhiteCardTexts(ctx context.Context, in *ListWhiteCardTextsRequest, opts ...grpc.CallOption) (*ListWhiteCardTextsResponse, error) {
	out := new(ListWhiteCardTextsResponse)
	err := c.cc.Invoke(ctx, "/cardczar.game.GameService/ListWhiteCardTexts", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GameServiceServer is the server API for GameService. All implementations
// must embed UnimplementedGameServiceServer for forward compatibility.
type GameServiceServer interface {
	CreateGame(context.Context, *CreateGameRequest) (*GameView, error)
	StartGame(context.Context, *StartGameRequest) (*GameView, error)
	StopGame(context.Context, *StopGameRequest) (*GameView, error)
	JoinGame(context.Context, *JoinGameRequest) (*GameView, error)
	LeaveGame(context.Context, *LeaveGameRequest) (*emptypb.Empty, error)
	KickUser(context.Context, *KickUserRequest) (*GameView, error)
	BanUser(context.Context, *BanUserRequest) (*GameView, error)
	UnbanUser(context.Context, *UnbanUserRequest) (*GameView, error)
	PlayCards(context.Context, *PlayCardsRequest) (*GameView, error)
	UnplayCards(context.Context, *UnplayCardsRequest) (*GameView, error)
	VoteCard(context.Context, *VoteCardRequest) (*GameView, error)
	VoteStartNextRound(context.Context, *VoteStartNextRoundRequest) (*GameView, error)
	AddArtificialPlayer(context.Context, *AddArtificialPlayerRequest) (*GameView, error)
	RemoveArtificialPlayer(context.Context, *RemoveArtificialPlayerRequest) (*GameView, error)
	CreateChatMessage(context.Context, *CreateChatMessageRequest) (*GameView, error)
	GetGameView(context.Context, *GetGameViewRequest) (*GameView, error)
	SearchGames(context.Context, *SearchGamesRequest) (*SearchGamesResponse, error)
	ListWhiteCardTexts(context.Context, *ListWhiteCardTextsRequest) (*ListWhiteCardTextsResponse, error)
	mustEmbedUnimplementedGameServiceServer()
}

// UnimplementedGameServiceServer must be embedded to have forward compatible
// implementations.
type UnimplementedGameServiceServer struct{}

func (UnimplementedGameServiceServer) CreateGame(context.Context, *CreateGameRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateGame not implemented")
}
func (UnimplementedGameServiceServer) StartGame(context.Context, *StartGameRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartGame not implemented")
}
func (UnimplementedGameServiceServer) StopGame(context.Context, *StopGameRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StopGame not implemented")
}
func (UnimplementedGameServiceServer) JoinGame(context.Context, *JoinGameRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method JoinGame not implemented")
}
func (UnimplementedGameServiceServer) LeaveGame(context.Context, *LeaveGameRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LeaveGame not implemented")
}
func (UnimplementedGameServiceServer) KickUser(context.Context, *KickUserRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method KickUser not implemented")
}
func (UnimplementedGameServiceServer) BanUser(context.Context, *BanUserRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BanUser not implemented")
}
func (UnimplementedGameServiceServer) UnbanUser(context.Context, *UnbanUserRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UnbanUser not implemented")
}
func (UnimplementedGameServiceServer) PlayCards(context.Context, *PlayCardsRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PlayCards not implemented")
}
func (UnimplementedGameServiceServer) UnplayCards(context.Context, *UnplayCardsRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UnplayCards not implemented")
}
func (UnimplementedGameServiceServer) VoteCard(context.Context, *VoteCardRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VoteCard not implemented")
}
func (UnimplementedGameServiceServer) VoteStartNextRound(context.Context, *VoteStartNextRoundRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VoteStartNextRound not implemented")
}
func (UnimplementedGameServiceServer) AddArtificialPlayer(context.Context, *AddArtificialPlayerRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddArtificialPlayer not implemented")
}
func (UnimplementedGameServiceServer) RemoveArtificialPlayer(context.Context, *RemoveArtificialPlayerRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveArtificialPlayer not implemented")
}
func (UnimplementedGameServiceServer) CreateChatMessage(context.Context, *CreateChatMessageRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateChatMessage not implemented")
}
func (UnimplementedGameServiceServer) GetGameView(context.Context, *GetGameViewRequest) (*GameView, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetGameView not implemented")
}
func (UnimplementedGameServiceServer) SearchGames(context.Context, *SearchGamesRequest) (*SearchGamesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchGames not implemented")
}
func (UnimplementedGameServiceServer) ListWhiteCardTexts(context.Context, *ListWhiteCardTextsRequest) (*ListWhiteCardTextsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListWhiteCardTexts not implemented")
}
func (UnimplementedGameServiceServer) mustEmbedUnimplementedGameServiceServer() {}

func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameService_ServiceDesc, srv)
}

func _GameService_CreateGame_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateGameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).CreateGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/CreateGame",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).CreateGame(ctx, req.(*CreateGameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_StartGame_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartGameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).StartGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/StartGame",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).StartGame(ctx, req.(*StartGameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_StopGame_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StopGameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).StopGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/StopGame",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).StopGame(ctx, req.(*StopGameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_JoinGame_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(JoinGameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).JoinGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/JoinGame",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).JoinGame(ctx, req.(*JoinGameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_LeaveGame_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LeaveGameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).LeaveGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/LeaveGame",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).LeaveGame(ctx, req.(*LeaveGameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_KickUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(KickUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).KickUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/KickUser",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).KickUser(ctx, req.(*KickUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_BanUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BanUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).BanUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/BanUser",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).BanUser(ctx, req.(*BanUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_UnbanUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UnbanUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).UnbanUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/UnbanUser",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).UnbanUser(ctx, req.(*UnbanUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_PlayCards_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlayCardsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).PlayCards(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/PlayCards",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).PlayCards(ctx, req.(*PlayCardsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_UnplayCards_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UnplayCardsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).UnplayCards(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/UnplayCards",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).UnplayCards(ctx, req.(*UnplayCardsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_VoteCard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VoteCardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).VoteCard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/VoteCard",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).VoteCard(ctx, req.(*VoteCardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_VoteStartNextRound_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VoteStartNextRoundRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).VoteStartNextRound(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/VoteStartNextRound",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).VoteStartNextRound(ctx, req.(*VoteStartNextRoundRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_AddArtificialPlayer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddArtificialPlayerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).AddArtificialPlayer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/AddArtificialPlayer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).AddArtificialPlayer(ctx, req.(*AddArtificialPlayerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_RemoveArtificialPlayer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveArtificialPlayerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).RemoveArtificialPlayer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/RemoveArtificialPlayer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).RemoveArtificialPlayer(ctx, req.(*RemoveArtificialPlayerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_CreateChatMessage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateChatMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).CreateChatMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/CreateChatMessage",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).CreateChatMessage(ctx, req.(*CreateChatMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_GetGameView_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetGameViewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).GetGameView(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/GetGameView",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).GetGameView(ctx, req.(*GetGameViewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_SearchGames_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchGamesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).SearchGames(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/SearchGames",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).SearchGames(ctx, req.(*SearchGamesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_ListWhiteCardTexts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListWhiteCardTextsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).ListWhiteCardTexts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cardczar.game.GameService/ListWhiteCardTexts",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).ListWhiteCardTexts(ctx, req.(*ListWhiteCardTextsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// GameService_ServiceDesc is the grpc.ServiceDesc for GameService.
var GameService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "cardczar.game.GameService",
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateGame", Handler: _GameService_CreateGame_Handler},
		{MethodName: "StartGame", Handler: _GameService_StartGame_Handler},
		{MethodName: "StopGame", Handler: _GameService_StopGame_Handler},
		{MethodName: "JoinGame", Handler: _GameService_JoinGame_Handler},
		{MethodName: "LeaveGame", Handler: _GameService_LeaveGame_Handler},
		{MethodName: "KickUser", Handler: _GameService_KickUser_Handler},
		{MethodName: "BanUser", Handler: _GameService_BanUser_Handler},
		{MethodName: "UnbanUser", Handler: _GameService_UnbanUser_Handler},
		{MethodName: "PlayCards", Handler: _GameService_PlayCards_Handler},
		{MethodName: "UnplayCards", Handler: _GameService_UnplayCards_Handler},
		{MethodName: "VoteCard", Handler: _GameService_VoteCard_Handler},
		{MethodName: "VoteStartNextRound", Handler: _GameService_VoteStartNextRound_Handler},
		{MethodName: "AddArtificialPlayer", Handler: _GameService_AddArtificialPlayer_Handler},
		{MethodName: "RemoveArtificialPlayer", Handler: _GameService_RemoveArtificialPlayer_Handler},
		{MethodName: "CreateChatMessage", Handler: _GameService_CreateChatMessage_Handler},
		{MethodName: "GetGameView", Handler: _GameService_GetGameView_Handler},
		{MethodName: "SearchGames", Handler: _GameService_SearchGames_Handler},
		{MethodName: "ListWhiteCardTexts", Handler: _GameService_ListWhiteCardTexts_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "game.proto",
}

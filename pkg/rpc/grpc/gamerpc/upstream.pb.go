package gamerpc

import (
	context "context"

	grpc "google.golang.org/grpc"
)

type GetUserRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *GetUserRequest) Reset()         { *m = GetUserRequest{} }
func (m *GetUserRequest) String() string { return messageString(m) }
func (*GetUserRequest) ProtoMessage()    {}

func (m *GetUserRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

type ListCustomBlackCardsRequest struct {
	Parent    string `protobuf:"bytes,1,opt,name=parent,proto3" json:"parent,omitempty"`
	PageSize  int32  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken string `protobuf:"bytes,3,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
}

func (m *ListCustomBlackCardsRequest) Reset()         { *m = ListCustomBlackCardsRequest{} }
func (m *ListCustomBlackCardsRequest) String() string { return messageString(m) }
func (*ListCustomBlackCardsRequest) ProtoMessage()    {}

type ListCustomBlackCardsResponse struct {
	CustomBlackCards []*CustomBlackCard `protobuf:"bytes,1,rep,name=custom_black_cards,json=customBlackCards,proto3" json:"custom_black_cards,omitempty"`
	NextPageToken    string             `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
}

func (m *ListCustomBlackCardsResponse) Reset()         { *m = ListCustomBlackCardsResponse{} }
func (m *ListCustomBlackCardsResponse) String() string { return messageString(m) }
func (*ListCustomBlackCardsResponse) ProtoMessage()    {}

func (m *ListCustomBlackCardsResponse) GetCustomBlackCards() []*CustomBlackCard {
	if m != nil {
		return m.CustomBlackCards
	}
	return nil
}

func (m *ListCustomBlackCardsResponse) GetNextPageToken() string {
	if m != nil {
		return m.NextPageToken
	}
	return ""
}

type ListCustomWhiteCardsRequest struct {
	Parent    string `protobuf:"bytes,1,opt,name=parent,proto3" json:"parent,omitempty"`
	PageSize  int32  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken string `protobuf:"bytes,3,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
}

func (m *ListCustomWhiteCardsRequest) Reset()         { *m = ListCustomWhiteCardsRequest{} }
func (m *ListCustomWhiteCardsRequest) String() string { return messageString(m) }
func (*ListCustomWhiteCardsRequest) ProtoMessage()    {}

type ListCustomWhiteCardsResponse struct {
	CustomWhiteCards []*CustomWhiteCard `protobuf:"bytes,1,rep,name=custom_white_cards,json=customWhiteCards,proto3" json:"custom_white_cards,omitempty"`
	NextPageToken    string             `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
}

func (m *ListCustomWhiteCardsResponse) Reset()         { *m = ListCustomWhiteCardsResponse{} }
func (m *ListCustomWhiteCardsResponse) String() string { return messageString(m) }
func (*ListCustomWhiteCardsResponse) ProtoMessage()    {}

func (m *ListCustomWhiteCardsResponse) GetCustomWhiteCards() []*CustomWhiteCard {
	if m != nil {
		return m.CustomWhiteCards
	}
	return nil
}

func (m *ListCustomWhiteCardsResponse) GetNextPageToken() string {
	if m != nil {
		return m.NextPageToken
	}
	return ""
}

type ListDefaultBlackCardsRequest struct {
	Parent    string `protobuf:"bytes,1,opt,name=parent,proto3" json:"parent,omitempty"`
	PageSize  int32  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken string `protobuf:"bytes,3,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
}

func (m *ListDefaultBlackCardsRequest) Reset()         { *m = ListDefaultBlackCardsRequest{} }
func (m *ListDefaultBlackCardsRequest) String() string { return messageString(m) }
func (*ListDefaultBlackCardsRequest) ProtoMessage()    {}

type ListDefaultBlackCardsResponse struct {
	DefaultBlackCards []*DefaultBlackCard `protobuf:"bytes,1,rep,name=default_black_cards,json=defaultBlackCards,proto3" json:"default_black_cards,omitempty"`
	NextPageToken     string              `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
}

func (m *ListDefaultBlackCardsResponse) Reset()         { *m = ListDefaultBlackCardsResponse{} }
func (m *ListDefaultBlackCardsResponse) String() string { return messageString(m) }
func (*ListDefaultBlackCardsResponse) ProtoMessage()    {}

func (m *ListDefaultBlackCardsResponse) GetDefaultBlackCards() []*DefaultBlackCard {
	if m != nil {
		return m.DefaultBlackCards
	}
	return nil
}

func (m *ListDefaultBlackCardsResponse) GetNextPageToken() string {
	if m != nil {
		return m.NextPageToken
	}
	return ""
}

type ListDefaultWhiteCardsRequest struct {
	Parent    string `protobuf:"bytes,1,opt,name=parent,proto3" json:"parent,omitempty"`
	PageSize  int32  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken string `protobuf:"bytes,3,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
}

func (m *ListDefaultWhiteCardsRequest) Reset()         { *m = ListDefaultWhiteCardsRequest{} }
func (m *ListDefaultWhiteCardsRequest) String() string { return messageString(m) }
func (*ListDefaultWhiteCardsRequest) ProtoMessage()    {}

type ListDefaultWhiteCardsResponse struct {
	DefaultWhiteCards []*DefaultWhiteCard `protobuf:"bytes,1,rep,name=default_white_cards,json=defaultWhiteCards,proto3" json:"default_white_cards,omitempty"`
	NextPageToken     string              `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
}

func (m *ListDefaultWhiteCardsResponse) Reset()         { *m = ListDefaultWhiteCardsResponse{} }
func (m *ListDefaultWhiteCardsResponse) String() string { return messageString(m) }
func (*ListDefaultWhiteCardsResponse) ProtoMessage()    {}

func (m *ListDefaultWhiteCardsResponse) GetDefaultWhiteCards() []*DefaultWhiteCard {
	if m != nil {
		return m.DefaultWhiteCards
	}
	return nil
}

func (m *ListDefaultWhiteCardsResponse) GetNextPageToken() string {
	if m != nil {
		return m.NextPageToken
	}
	return ""
}

// UserServiceClient is the client API for UserService. The server side lives
// in the API service; only the client is maintained here.
type UserServiceClient interface {
	GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*User, error)
}

type userServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUserServiceClient(cc grpc.ClientConnInterface) UserServiceClient {
	return &userServiceClient{cc}
}

func (c *userServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*User, error) {
	out := new(User)
	err := c.cc.Invoke(ctx, "/cardczar.game.UserService/GetUser", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CardpackServiceClient is the client API for CardpackService.
type CardpackServiceClient interface {
	ListCustomBlackCards(ctx context.Context, in *ListCustomBlackCardsRequest, opts ...grpc.CallOption) (*ListCustomBlackCardsResponse, error)
	ListCustomWhiteCards(ctx context.Context, in *ListCustomWhiteCardsRequest, opts ...grpc.CallOption) (*ListCustomWhiteCardsResponse, error)
	ListDefaultBlackCards(ctx context.Context, in *ListDefaultBlackCardsRequest, opts ...grpc.CallOption) (*ListDefaultBlackCardsResponse, error)
	ListDefaultWhiteCards(ctx context.Context, in *ListDefaultWhiteCardsRequest, opts ...grpc.CallOption) (*ListDefaultWhiteCardsResponse, error)
}

type cardpackServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCardpackServiceClient(cc grpc.ClientConnInterface) CardpackServiceClient {
	return &cardpackServiceClient{cc}
}

func (c *cardpackServiceClient) ListCustomBlackCards(ctx context.Context, in *ListCustomBlackCardsRequest, opts ...grpc.CallOption) (*ListCustomBlackCardsResponse, error) {
	out := new(ListCustomBlackCardsResponse)
	err := c.cc.Invoke(ctx, "/cardczar.game.CardpackService/ListCustomBlackCards", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cardpackServiceClient) ListCustomWhiteCards(ctx context.Context, in *ListCustomWhiteCardsRequest, opts ...grpc.CallOption) (*ListCustomWhiteCardsResponse, error) {
	out := new(ListCustomWhiteCardsResponse)
	err := c.cc.Invoke(ctx, "/cardczar.game.CardpackService/ListCustomWhiteCards", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cardpackServiceClient) ListDefaultBlackCards(ctx context.Context, in *ListDefaultBlackCardsRequest, opts ...grpc.CallOption) (*ListDefaultBlackCardsResponse, error) {
	out := new(ListDefaultBlackCardsResponse)
	err := c.cc.Invoke(ctx, "/cardczar.game.CardpackService/ListDefaultBlackCards", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cardpackServiceClient) ListDefaultWhiteCards(ctx context.Context, in *ListDefaultWhiteCardsRequest, opts ...grpc.CallOption) (*ListDefaultWhiteCardsResponse, error) {
	out := new(ListDefaultWhiteCardsResponse)
	err := c.cc.Invoke(ctx, "/cardczar.game.CardpackService/ListDefaultWhiteCards", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Package gamerpc holds the wire types for the game service and its upstream
// collaborators. The package is maintained by hand in the pre-apiv2
// protoc-gen-go style so that no codegen step is needed; game.proto beside it
// is the source of truth for the schema.
package gamerpc

import (
	"fmt"
	"reflect"

	"github.com/golang/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// messageString renders a message for logs and test output. The proto text
// marshaler derives descriptors from struct tags for hand-maintained types,
// and that derivation produces inconsistent field descriptors for oneof
// fields, so messages format themselves with the fmt package instead.
func messageString(m interface{}) string {
	rv := reflect.ValueOf(m)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("%+v", rv.Elem().Interface())
}

type GameStageFilter int32

const (
	GameStageFilter_GAME_STAGE_FILTER_UNSPECIFIED GameStageFilter = 0
	GameStageFilter_GAME_STAGE_FILTER_NONE        GameStageFilter = 1
	GameStageFilter_GAME_STAGE_FILTER_STOPPED     GameStageFilter = 2
	GameStageFilter_GAME_STAGE_FILTER_RUNNING     GameStageFilter = 3
)

var GameStageFilter_name = map[int32]string{
	0: "GAME_STAGE_FILTER_UNSPECIFIED",
	1: "GAME_STAGE_FILTER_NONE",
	2: "GAME_STAGE_FILTER_STOPPED",
	3: "GAME_STAGE_FILTER_RUNNING",
}

func (x GameStageFilter) String() string {
	return proto.EnumName(GameStageFilter_name, int32(x))
}

type BlankWhiteCardConfig_Behavior int32

const (
	BlankWhiteCardConfig_BEHAVIOR_UNSPECIFIED BlankWhiteCardConfig_Behavior = 0
	BlankWhiteCardConfig_DISABLED             BlankWhiteCardConfig_Behavior = 1
	BlankWhiteCardConfig_OPEN_TEXT            BlankWhiteCardConfig_Behavior = 2
)

var BlankWhiteCardConfig_Behavior_name = map[int32]string{
	0: "BEHAVIOR_UNSPECIFIED",
	1: "DISABLED",
	2: "OPEN_TEXT",
}

func (x BlankWhiteCardConfig_Behavior) String() string {
	return proto.EnumName(BlankWhiteCardConfig_Behavior_name, int32(x))
}

type GameView_Stage int32

const (
	GameView_STAGE_UNSPECIFIED GameView_Stage = 0
	GameView_NOT_RUNNING       GameView_Stage = 1
	GameView_PLAY_PHASE        GameView_Stage = 2
	GameView_JUDGE_PHASE       GameView_Stage = 3
	GameView_ROUND_END_PHASE   GameView_Stage = 4
)

var GameView_Stage_name = map[int32]string{
	0: "STAGE_UNSPECIFIED",
	1: "NOT_RUNNING",
	2: "PLAY_PHASE",
	3: "JUDGE_PHASE",
	4: "ROUND_END_PHASE",
}

func (x GameView_Stage) String() string {
	return proto.EnumName(GameView_Stage_name, int32(x))
}

type User struct {
	Name        string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	DisplayName string `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
}

func (m *User) Reset()         { *m = User{} }
func (m *User) String() string { return messageString(m) }
func (*User) ProtoMessage()    {}

func (m *User) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *User) GetDisplayName() string {
	if m != nil {
		return m.DisplayName
	}
	return ""
}

type ArtificialUser struct {
	Id          string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DisplayName string `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
}

func (m *ArtificialUser) Reset()         { *m = ArtificialUser{} }
func (m *ArtificialUser) String() string { return messageString(m) }
func (*ArtificialUser) ProtoMessage()    {}

func (m *ArtificialUser) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *ArtificialUser) GetDisplayName() string {
	if m != nil {
		return m.DisplayName
	}
	return ""
}

type Player struct {
	// Types that are valid to be assigned to Identifier:
	//	*Player_User
	//	*Player_ArtificialUser
	Identifier isPlayer_Identifier    `protobuf_oneof:"identifier"`
	JoinTime   *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=join_time,json=joinTime,proto3" json:"join_time,omitempty"`
	Score      int32                  `protobuf:"varint,4,opt,name=score,proto3" json:"score,omitempty"`
}

func (m *Player) Reset()         { *m = Player{} }
func (m *Player) String() string { return messageString(m) }
func (*Player) ProtoMessage()    {}

type isPlayer_Identifier interface {
	isPlayer_Identifier()
}

type Player_User struct {
	User *User `protobuf:"bytes,1,opt,name=user,proto3,oneof"`
}

type Player_ArtificialUser struct {
	ArtificialUser *ArtificialUser `protobuf:"bytes,2,opt,name=artificial_user,json=artificialUser,proto3,oneof"`
}

func (*Player_User) isPlayer_Identifier()           {}
func (*Player_ArtificialUser) isPlayer_Identifier() {}

func (m *Player) GetIdentifier() isPlayer_Identifier {
	if m != nil {
		return m.Identifier
	}
	return nil
}

func (m *Player) GetUser() *User {
	if x, ok := m.GetIdentifier().(*Player_User); ok {
		return x.User
	}
	return nil
}

func (m *Player) GetArtificialUser() *ArtificialUser {
	if x, ok := m.GetIdentifier().(*Player_ArtificialUser); ok {
		return x.ArtificialUser
	}
	return nil
}

func (m *Player) GetJoinTime() *timestamppb.Timestamp {
	if m != nil {
		return m.JoinTime
	}
	return nil
}

func (m *Player) GetScore() int32 {
	if m != nil {
		return m.Score
	}
	return 0
}

func (*Player) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*Player_User)(nil),
		(*Player_ArtificialUser)(nil),
	}
}

type CustomBlackCard struct {
	Name         string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Text         string `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	AnswerFields int32  `protobuf:"varint,3,opt,name=answer_fields,json=answerFields,proto3" json:"answer_fields,omitempty"`
}

func (m *CustomBlackCard) Reset()         { *m = CustomBlackCard{} }
func (m *CustomBlackCard) String() string { return messageString(m) }
func (*CustomBlackCard) ProtoMessage()    {}

func (m *CustomBlackCard) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *CustomBlackCard) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

func (m *CustomBlackCard) GetAnswerFields() int32 {
	if m != nil {
		return m.AnswerFields
	}
	return 0
}

type CustomWhiteCard struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Text string `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
}

func (m *CustomWhiteCard) Reset()         { *m = CustomWhiteCard{} }
func (m *CustomWhiteCard) String() string { return messageString(m) }
func (*CustomWhiteCard) ProtoMessage()    {}

func (m *CustomWhiteCard) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *CustomWhiteCard) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

type DefaultBlackCard struct {
	Name         string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Text         string `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	AnswerFields int32  `protobuf:"varint,3,opt,name=answer_fields,json=answerFields,proto3" json:"answer_fields,omitempty"`
}

func (m *DefaultBlackCard) Reset()         { *m = DefaultBlackCard{} }
func (m *DefaultBlackCard) String() string { return messageString(m) }
func (*DefaultBlackCard) ProtoMessage()    {}

func (m *DefaultBlackCard) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *DefaultBlackCard) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

func (m *DefaultBlackCard) GetAnswerFields() int32 {
	if m != nil {
		return m.AnswerFields
	}
	return 0
}

type DefaultWhiteCard struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Text string `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
}

func (m *DefaultWhiteCard) Reset()         { *m = DefaultWhiteCard{} }
func (m *DefaultWhiteCard) String() string { return messageString(m) }
func (*DefaultWhiteCard) ProtoMessage()    {}

func (m *DefaultWhiteCard) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *DefaultWhiteCard) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

type BlankWhiteCard struct {
	Id       string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OpenText string `protobuf:"bytes,2,opt,name=open_text,json=openText,proto3" json:"open_text,omitempty"`
}

func (m *BlankWhiteCard) Reset()         { *m = BlankWhiteCard{} }
func (m *BlankWhiteCard) String() string { return messageString(m) }
func (*BlankWhiteCard) ProtoMessage()    {}

func (m *BlankWhiteCard) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *BlankWhiteCard) GetOpenText() string {
	if m != nil {
		return m.OpenText
	}
	return ""
}

type PlayableWhiteCard struct {
	// Types that are valid to be assigned to Card:
	//	*PlayableWhiteCard_CustomWhiteCard
	//	*PlayableWhiteCard_BlankWhiteCard
	//	*PlayableWhiteCard_DefaultWhiteCard
	Card isPlayableWhiteCard_Card `protobuf_oneof:"card"`
}

func (m *PlayableWhiteCard) Reset()         { *m = PlayableWhiteCard{} }
func (m *PlayableWhiteCard) String() string { return messageString(m) }
func (*PlayableWhiteCard) ProtoMessage()    {}

type isPlayableWhiteCard_Card interface {
	isPlayableWhiteCard_Card()
}

type PlayableWhiteCard_CustomWhiteCard struct {
	CustomWhiteCard *CustomWhiteCard `protobuf:"bytes,1,opt,name=custom_white_card,json=customWhiteCard,proto3,oneof"`
}

type PlayableWhiteCard_BlankWhiteCard struct {
	BlankWhiteCard *BlankWhiteCard `protobuf:"bytes,2,opt,name=blank_white_card,json=blankWhiteCard,proto3,oneof"`
}

type PlayableWhiteCard_DefaultWhiteCard struct {
	DefaultWhiteCard *DefaultWhiteCard `protobuf:"bytes,3,opt,name=default_white_card,json=defaultWhiteCard,proto3,oneof"`
}

func (*PlayableWhiteCard_CustomWhiteCard) isPlayableWhiteCard_Card()  {}
func (*PlayableWhiteCard_BlankWhiteCard) isPlayableWhiteCard_Card()   {}
func (*PlayableWhiteCard_DefaultWhiteCard) isPlayableWhiteCard_Card() {}

func (m *PlayableWhiteCard) GetCard() isPlayableWhiteCard_Card {
	if m != nil {
		return m.Card
	}
	return nil
}

func (m *PlayableWhiteCard) GetCustomWhiteCard() *CustomWhiteCard {
	if x, ok := m.GetCard().(*PlayableWhiteCard_CustomWhiteCard); ok {
		return x.CustomWhiteCard
	}
	return nil
}

func (m *PlayableWhiteCard) GetBlankWhiteCard() *BlankWhiteCard {
	if x, ok := m.GetCard().(*PlayableWhiteCard_BlankWhiteCard); ok {
		return x.BlankWhiteCard
	}
	return nil
}

func (m *PlayableWhiteCard) GetDefaultWhiteCard() *DefaultWhiteCard {
	if x, ok := m.GetCard().(*PlayableWhiteCard_DefaultWhiteCard); ok {
		return x.DefaultWhiteCard
	}
	return nil
}

func (*PlayableWhiteCard) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*PlayableWhiteCard_CustomWhiteCard)(nil),
		(*PlayableWhiteCard_BlankWhiteCard)(nil),
		(*PlayableWhiteCard_DefaultWhiteCard)(nil),
	}
}

type BlackCardInRound struct {
	// Types that are valid to be assigned to Card:
	//	*BlackCardInRound_CustomBlackCard
	//	*BlackCardInRound_DefaultBlackCard
	Card isBlackCardInRound_Card `protobuf_oneof:"card"`
}

func (m *BlackCardInRound) Reset()         { *m = BlackCardInRound{} }
func (m *BlackCardInRound) String() string { return messageString(m) }
func (*BlackCardInRound) ProtoMessage()    {}

type isBlackCardInRound_Card interface {
	isBlackCardInRound_Card()
}

type BlackCardInRound_CustomBlackCard struct {
	CustomBlackCard *CustomBlackCard `protobuf:"bytes,1,opt,name=custom_black_card,json=customBlackCard,proto3,oneof"`
}

type BlackCardInRound_DefaultBlackCard struct {
	DefaultBlackCard *DefaultBlackCard `protobuf:"bytes,2,opt,name=default_black_card,json=defaultBlackCard,proto3,oneof"`
}

func (*BlackCardInRound_CustomBlackCard) isBlackCardInRound_Card()  {}
func (*BlackCardInRound_DefaultBlackCard) isBlackCardInRound_Card() {}

func (m *BlackCardInRound) GetCard() isBlackCardInRound_Card {
	if m != nil {
		return m.Card
	}
	return nil
}

func (m *BlackCardInRound) GetCustomBlackCard() *CustomBlackCard {
	if x, ok := m.GetCard().(*BlackCardInRound_CustomBlackCard); ok {
		return x.CustomBlackCard
	}
	return nil
}

func (m *BlackCardInRound) GetDefaultBlackCard() *DefaultBlackCard {
	if x, ok := m.GetCard().(*BlackCardInRound_DefaultBlackCard); ok {
		return x.DefaultBlackCard
	}
	return nil
}

func (*BlackCardInRound) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*BlackCardInRound_CustomBlackCard)(nil),
		(*BlackCardInRound_DefaultBlackCard)(nil),
	}
}

type BlankWhiteCardConfig struct {
	Behavior BlankWhiteCardConfig_Behavior `protobuf:"varint,1,opt,name=behavior,proto3,enum=cardczar.game.BlankWhiteCardConfig_Behavior" json:"behavior,omitempty"`
	// Types that are valid to be assigned to BlankWhiteCardsAdded:
	//	*BlankWhiteCardConfig_CardCount
	//	*BlankWhiteCardConfig_Percentage
	BlankWhiteCardsAdded isBlankWhiteCardConfig_BlankWhiteCardsAdded `protobuf_oneof:"blank_white_cards_added"`
}

func (m *BlankWhiteCardConfig) Reset()         { *m = BlankWhiteCardConfig{} }
func (m *BlankWhiteCardConfig) String() string { return messageString(m) }
func (*BlankWhiteCardConfig) ProtoMessage()    {}

type isBlankWhiteCardConfig_BlankWhiteCardsAdded interface {
	isBlankWhiteCardConfig_BlankWhiteCardsAdded()
}

type BlankWhiteCardConfig_CardCount struct {
	CardCount int32 `protobuf:"varint,2,opt,name=card_count,json=cardCount,proto3,oneof"`
}

type BlankWhiteCardConfig_Percentage struct {
	Percentage float64 `protobuf:"fixed64,3,opt,name=percentage,proto3,oneof"`
}

func (*BlankWhiteCardConfig_CardCount) isBlankWhiteCardConfig_BlankWhiteCardsAdded()  {}
func (*BlankWhiteCardConfig_Percentage) isBlankWhiteCardConfig_BlankWhiteCardsAdded() {}

func (m *BlankWhiteCardConfig) GetBehavior() BlankWhiteCardConfig_Behavior {
	if m != nil {
		return m.Behavior
	}
	return BlankWhiteCardConfig_BEHAVIOR_UNSPECIFIED
}

func (m *BlankWhiteCardConfig) GetBlankWhiteCardsAdded() isBlankWhiteCardConfig_BlankWhiteCardsAdded {
	if m != nil {
		return m.BlankWhiteCardsAdded
	}
	return nil
}

func (m *BlankWhiteCardConfig) GetCardCount() int32 {
	if x, ok := m.GetBlankWhiteCardsAdded().(*BlankWhiteCardConfig_CardCount); ok {
		return x.CardCount
	}
	return 0
}

func (m *BlankWhiteCardConfig) GetPercentage() float64 {
	if x, ok := m.GetBlankWhiteCardsAdded().(*BlankWhiteCardConfig_Percentage); ok {
		return x.Percentage
	}
	return 0
}

func (*BlankWhiteCardConfig) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*BlankWhiteCardConfig_CardCount)(nil),
		(*BlankWhiteCardConfig_Percentage)(nil),
	}
}

type GameConfig struct {
	DisplayName string `protobuf:"bytes,1,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	MaxPlayers  int32  `protobuf:"varint,2,opt,name=max_players,json=maxPlayers,proto3" json:"max_players,omitempty"`
	// Types that are valid to be assigned to EndCondition:
	//	*GameConfig_MaxScore
	//	*GameConfig_EndlessMode
	EndCondition         isGameConfig_EndCondition `protobuf_oneof:"end_condition"`
	CustomCardpackNames  []string                  `protobuf:"bytes,5,rep,name=custom_cardpack_names,json=customCardpackNames,proto3" json:"custom_cardpack_names,omitempty"`
	DefaultCardpackNames []string                  `protobuf:"bytes,6,rep,name=default_cardpack_names,json=defaultCardpackNames,proto3" json:"default_cardpack_names,omitempty"`
	BlankWhiteCardConfig *BlankWhiteCardConfig     `protobuf:"bytes,7,opt,name=blank_white_card_config,json=blankWhiteCardConfig,proto3" json:"blank_white_card_config,omitempty"`
	HandSize             int32                     `protobuf:"varint,8,opt,name=hand_size,json=handSize,proto3" json:"hand_size,omitempty"`
}

func (m *GameConfig) Reset()         { *m = GameConfig{} }
func (m *GameConfig) String() string { return messageString(m) }
func (*GameConfig) ProtoMessage()    {}

type isGameConfig_EndCondition interface {
	isGameConfig_EndCondition()
}

type GameConfig_MaxScore struct {
	MaxScore int32 `protobuf:"varint,3,opt,name=max_score,json=maxScore,proto3,oneof"`
}

type GameConfig_EndlessMode struct {
	EndlessMode bool `protobuf:"varint,4,opt,name=endless_mode,json=endlessMode,proto3,oneof"`
}

func (*GameConfig_MaxScore) isGameConfig_EndCondition()    {}
func (*GameConfig_EndlessMode) isGameConfig_EndCondition() {}

func (m *GameConfig) GetDisplayName() string {
	if m != nil {
		return m.DisplayName
	}
	return ""
}

func (m *GameConfig) GetMaxPlayers() int32 {
	if m != nil {
		return m.MaxPlayers
	}
	return 0
}

func (m *GameConfig) GetEndCondition() isGameConfig_EndCondition {
	if m != nil {
		return m.EndCondition
	}
	return nil
}

func (m *GameConfig) GetMaxScore() int32 {
	if x, ok := m.GetEndCondition().(*GameConfig_MaxScore); ok {
		return x.MaxScore
	}
	return 0
}

func (m *GameConfig) GetEndlessMode() bool {
	if x, ok := m.GetEndCondition().(*GameConfig_EndlessMode); ok {
		return x.EndlessMode
	}
	return false
}

func (m *GameConfig) GetCustomCardpackNames() []string {
	if m != nil {
		return m.CustomCardpackNames
	}
	return nil
}

func (m *GameConfig) GetDefaultCardpackNames() []string {
	if m != nil {
		return m.DefaultCardpackNames
	}
	return nil
}

func (m *GameConfig) GetBlankWhiteCardConfig() *BlankWhiteCardConfig {
	if m != nil {
		return m.BlankWhiteCardConfig
	}
	return nil
}

func (m *GameConfig) GetHandSize() int32 {
	if m != nil {
		return m.HandSize
	}
	return 0
}

func (*GameConfig) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*GameConfig_MaxScore)(nil),
		(*GameConfig_EndlessMode)(nil),
	}
}

type ChatMessage struct {
	User       *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	Text       string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	CreateTime *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=create_time,json=createTime,proto3" json:"create_time,omitempty"`
}

func (m *ChatMessage) Reset()         { *m = ChatMessage{} }
func (m *ChatMessage) String() string { return messageString(m) }
func (*ChatMessage) ProtoMessage()    {}

func (m *ChatMessage) GetUser() *User {
	if m != nil {
		return m.User
	}
	return nil
}

func (m *ChatMessage) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

func (m *ChatMessage) GetCreateTime() *timestamppb.Timestamp {
	if m != nil {
		return m.CreateTime
	}
	return nil
}

type WhiteCardsPlayed struct {
	Player    *Player  `protobuf:"bytes,1,opt,name=player,proto3" json:"player,omitempty"`
	CardTexts []string `protobuf:"bytes,2,rep,name=card_texts,json=cardTexts,proto3" json:"card_texts,omitempty"`
}

func (m *WhiteCardsPlayed) Reset()         { *m = WhiteCardsPlayed{} }
func (m *WhiteCardsPlayed) String() string { return messageString(m) }
func (*WhiteCardsPlayed) ProtoMessage()    {}

func (m *WhiteCardsPlayed) GetPlayer() *Player {
	if m != nil {
		return m.Player
	}
	return nil
}

func (m *WhiteCardsPlayed) GetCardTexts() []string {
	if m != nil {
		return m.CardTexts
	}
	return nil
}

type PastRound struct {
	BlackCard   *BlackCardInRound   `protobuf:"bytes,1,opt,name=black_card,json=blackCard,proto3" json:"black_card,omitempty"`
	WhitePlayed []*WhiteCardsPlayed `protobuf:"bytes,2,rep,name=white_played,json=whitePlayed,proto3" json:"white_played,omitempty"`
	Judge       *User               `protobuf:"bytes,3,opt,name=judge,proto3" json:"judge,omitempty"`
	Winner      *Player             `protobuf:"bytes,4,opt,name=winner,proto3" json:"winner,omitempty"`
}

func (m *PastRound) Reset()         { *m = PastRound{} }
func (m *PastRound) String() string { return messageString(m) }
func (*PastRound) ProtoMessage()    {}

func (m *PastRound) GetBlackCard() *BlackCardInRound {
	if m != nil {
		return m.BlackCard
	}
	return nil
}

func (m *PastRound) GetWhitePlayed() []*WhiteCardsPlayed {
	if m != nil {
		return m.WhitePlayed
	}
	return nil
}

func (m *PastRound) GetJudge() *User {
	if m != nil {
		return m.Judge
	}
	return nil
}

func (m *PastRound) GetWinner() *Player {
	if m != nil {
		return m.Winner
	}
	return nil
}

type GameView struct {
	GameId               string                 `protobuf:"bytes,1,opt,name=game_id,json=gameId,proto3" json:"game_id,omitempty"`
	Config               *GameConfig            `protobuf:"bytes,2,opt,name=config,proto3" json:"config,omitempty"`
	Stage                GameView_Stage         `protobuf:"varint,3,opt,name=stage,proto3,enum=cardczar.game.GameView_Stage" json:"stage,omitempty"`
	Hand                 []*PlayableWhiteCard   `protobuf:"bytes,4,rep,name=hand,proto3" json:"hand,omitempty"`
	Players              []*Player              `protobuf:"bytes,5,rep,name=players,proto3" json:"players,omitempty"`
	QueuedPlayers        []*Player              `protobuf:"bytes,6,rep,name=queued_players,json=queuedPlayers,proto3" json:"queued_players,omitempty"`
	BannedUserNames      []string               `protobuf:"bytes,7,rep,name=banned_user_names,json=bannedUserNames,proto3" json:"banned_user_names,omitempty"`
	Judge                *User                  `protobuf:"bytes,8,opt,name=judge,proto3" json:"judge,omitempty"`
	Owner                *User                  `protobuf:"bytes,9,opt,name=owner,proto3" json:"owner,omitempty"`
	WhitePlayed          []*WhiteCardsPlayed    `protobuf:"bytes,10,rep,name=white_played,json=whitePlayed,proto3" json:"white_played,omitempty"`
	CurrentBlackCard     *BlackCardInRound      `protobuf:"bytes,11,opt,name=current_black_card,json=currentBlackCard,proto3" json:"current_black_card,omitempty"`
	WinnerOfCurrentRound *Player                `protobuf:"bytes,12,opt,name=winner_of_current_round,json=winnerOfCurrentRound,proto3" json:"winner_of_current_round,omitempty"`
	ChatMessages         []*ChatMessage         `protobuf:"bytes,13,rep,name=chat_messages,json=chatMessages,proto3" json:"chat_messages,omitempty"`
	PastRounds           []*PastRound           `protobuf:"bytes,14,rep,name=past_rounds,json=pastRounds,proto3" json:"past_rounds,omitempty"`
	CreateTime           *timestamppb.Timestamp `protobuf:"bytes,15,opt,name=create_time,json=createTime,proto3" json:"create_time,omitempty"`
	LastActivityTime     *timestamppb.Timestamp `protobuf:"bytes,16,opt,name=last_activity_time,json=lastActivityTime,proto3" json:"last_activity_time,omitempty"`
}

func (m *GameView) Reset()         { *m = GameView{} }
func (m *GameView) String() string { return messageString(m) }
func (*GameView) ProtoMessage()    {}

func (m *GameView) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

func (m *GameView) GetConfig() *GameConfig {
	if m != nil {
		return m.Config
	}
	return nil
}

func (m *GameView) GetStage() GameView_Stage {
	if m != nil {
		return m.Stage
	}
	return GameView_STAGE_UNSPECIFIED
}

func (m *GameView) GetHand() []*PlayableWhiteCard {
	if m != nil {
		return m.Hand
	}
	return nil
}

func (m *GameView) GetPlayers() []*Player {
	if m != nil {
		return m.Players
	}
	return nil
}

func (m *GameView) GetQueuedPlayers() []*Player {
	if m != nil {
		return m.QueuedPlayers
	}
	return nil
}

func (m *GameView) GetBannedUserNames() []string {
	if m != nil {
		return m.BannedUserNames
	}
	return nil
}

func (m *GameView) GetJudge() *User {
	if m != nil {
		return m.Judge
	}
	return nil
}

func (m *GameView) GetOwner() *User {
	if m != nil {
		return m.Owner
	}
	return nil
}

func (m *GameView) GetWhitePlayed() []*WhiteCardsPlayed {
	if m != nil {
		return m.WhitePlayed
	}
	return nil
}

func (m *GameView) GetCurrentBlackCard() *BlackCardInRound {
	if m != nil {
		return m.CurrentBlackCard
	}
	return nil
}

func (m *GameView) GetWinnerOfCurrentRound() *Player {
	if m != nil {
		return m.WinnerOfCurrentRound
	}
	return nil
}

func (m *GameView) GetChatMessages() []*ChatMessage {
	if m != nil {
		return m.ChatMessages
	}
	return nil
}

func (m *GameView) GetPastRounds() []*PastRound {
	if m != nil {
		return m.PastRounds
	}
	return nil
}

func (m *GameView) GetCreateTime() *timestamppb.Timestamp {
	if m != nil {
		return m.CreateTime
	}
	return nil
}

func (m *GameView) GetLastActivityTime() *timestamppb.Timestamp {
	if m != nil {
		return m.LastActivityTime
	}
	return nil
}

type GameInfo struct {
	GameId      string                 `protobuf:"bytes,1,opt,name=game_id,json=gameId,proto3" json:"game_id,omitempty"`
	Config      *GameConfig            `protobuf:"bytes,2,opt,name=config,proto3" json:"config,omitempty"`
	PlayerCount int32                  `protobuf:"varint,3,opt,name=player_count,json=playerCount,proto3" json:"player_count,omitempty"`
	IsRunning   bool                   `protobuf:"varint,4,opt,name=is_running,json=isRunning,proto3" json:"is_running,omitempty"`
	CreateTime  *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=create_time,json=createTime,proto3" json:"create_time,omitempty"`
}

func (m *GameInfo) Reset()         { *m = GameInfo{} }
func (m *GameInfo) String() string { return messageString(m) }
func (*GameInfo) ProtoMessage()    {}

func (m *GameInfo) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

func (m *GameInfo) GetConfig() *GameConfig {
	if m != nil {
		return m.Config
	}
	return nil
}

func (m *GameInfo) GetPlayerCount() int32 {
	if m != nil {
		return m.PlayerCount
	}
	return 0
}

func (m *GameInfo) GetIsRunning() bool {
	if m != nil {
		return m.IsRunning
	}
	return false
}

func (m *GameInfo) GetCreateTime() *timestamppb.Timestamp {
	if m != nil {
		return m.CreateTime
	}
	return nil
}

type CreateGameRequest struct {
	UserName   string      `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
	GameConfig *GameConfig `protobuf:"bytes,2,opt,name=game_config,json=gameConfig,proto3" json:"game_config,omitempty"`
}

func (m *CreateGameRequest) Reset()         { *m = CreateGameRequest{} }
func (m *CreateGameRequest) String() string { return messageString(m) }
func (*CreateGameRequest) ProtoMessage()    {}

func (m *CreateGameRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

func (m *CreateGameRequest) GetGameConfig() *GameConfig {
	if m != nil {
		return m.GameConfig
	}
	return nil
}

type StartGameRequest struct {
	UserName string `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
}

func (m *StartGameRequest) Reset()         { *m = StartGameRequest{} }
func (m *StartGameRequest) String() string { return messageString(m) }
func (*StartGameRequest) ProtoMessage()    {}

func (m *StartGameRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

type StopGameRequest struct {
	UserName string `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
}

func (m *StopGameRequest) Reset()         { *m = StopGameRequest{} }
func (m *StopGameRequest) String() string { return messageString(m) }
func (*StopGameRequest) ProtoMessage()    {}

func (m *StopGameRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

type JoinGameRequest struct {
	GameId   string `protobuf:"bytes,1,opt,name=game_id,json=gameId,proto3" json:"game_id,omitempty"`
	UserName string `protobuf:"bytes,2,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
}

func (m *JoinGameRequest) Reset()         { *m = JoinGameRequest{} }
func (m *JoinGameRequest) String() string { return messageString(m) }
func (*JoinGameRequest) ProtoMessage()    {}

func (m *JoinGameRequest) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

func (m *JoinGameRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

type LeaveGameRequest struct {
	UserName string `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
}

func (m *LeaveGameRequest) Reset()         { *m = LeaveGameRequest{} }
func (m *LeaveGameRequest) String() string { return messageString(m) }
func (*LeaveGameRequest) ProtoMessage()    {}

func (m *LeaveGameRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

type KickUserRequest struct {
	UserName      string `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
	TrollUserName string `protobuf:"bytes,2,opt,name=troll_user_name,json=trollUserName,proto3" json:"troll_user_name,omitempty"`
}

func (m *KickUserRequest) Reset()         { *m = KickUserRequest{} }
func (m *KickUserRequest) String() string { return messageString(m) }
func (*KickUserRequest) ProtoMessage()    {}

func (m *KickUserRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

func (m *KickUserRequest) GetTrollUserName() string {
	if m != nil {
		return m.TrollUserName
	}
	return ""
}

type BanUserRequest struct {
	UserName      string `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
	TrollUserName string `protobuf:"bytes,2,opt,name=troll_user_name,json=trollUserName,proto3" json:"troll_user_name,omitempty"`
}

func (m *BanUserRequest) Reset()         { *m = BanUserRequest{} }
func (m *BanUserRequest) String() string { return messageString(m) }
func (*BanUserRequest) ProtoMessage()    {}

func (m *BanUserRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

func (m *BanUserRequest) GetTrollUserName() string {
	if m != nil {
		return m.TrollUserName
	}
	return ""
}

type UnbanUserRequest struct {
	UserName      string `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
	TrollUserName string `protobuf:"bytes,2,opt,name=troll_user_name,json=trollUserName,proto3" json:"troll_user_name,omitempty"`
}

func (m *UnbanUserRequest) Reset()         { *m = UnbanUserRequest{} }
func (m *UnbanUserRequest) String() string { return messageString(m) }
func (*UnbanUserRequest) ProtoMessage()    {}

func (m *UnbanUserRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

func (m *UnbanUserRequest) GetTrollUserName() string {
	if m != nil {
		return m.TrollUserName
	}
	return ""
}

type PlayCardsRequest struct {
	UserName string               `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
	Cards    []*PlayableWhiteCard `protobuf:"bytes,2,rep,name=cards,proto3" json:"cards,omitempty"`
}

func (m *PlayCardsRequest) Reset()         { *m = PlayCardsRequest{} }
func (m *PlayCardsRequest) String() string { return messageString(m) }
func (*PlayCardsRequest) ProtoMessage()    {}

func (m *PlayCardsRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

func (m *PlayCardsRequest) GetCards() []*PlayableWhiteCard {
	if m != nil {
		return m.Cards
	}
	return nil
}

type UnplayCardsRequest struct {
	UserName string `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
}

func (m *UnplayCardsRequest) Reset()         { *m = UnplayCardsRequest{} }
func (m *UnplayCardsRequest) String() string { return messageString(m) }
func (*UnplayCardsRequest) ProtoMessage()    {}

func (m *UnplayCardsRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

type VoteCardRequest struct {
	UserName string `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
	Choice   int32  `protobuf:"varint,2,opt,name=choice,proto3" json:"choice,omitempty"`
}

func (m *VoteCardRequest) Reset()         { *m = VoteCardRequest{} }
func (m *VoteCardRequest) String() string { return messageString(m) }
func (*VoteCardRequest) ProtoMessage()    {}

func (m *VoteCardRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

func (m *VoteCardRequest) GetChoice() int32 {
	if m != nil {
		return m.Choice
	}
	return 0
}

type VoteStartNextRoundRequest struct {
	UserName string `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
}

func (m *VoteStartNextRoundRequest) Reset()         { *m = VoteStartNextRoundRequest{} }
func (m *VoteStartNextRoundRequest) String() string { return messageString(m) }
func (*VoteStartNextRoundRequest) ProtoMessage()    {}

func (m *VoteStartNextRoundRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

type AddArtificialPlayerRequest struct {
	UserName    string `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
	DisplayName string `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
}

func (m *AddArtificialPlayerRequest) Reset()         { *m = AddArtificialPlayerRequest{} }
func (m *AddArtificialPlayerRequest) String() string { return messageString(m) }
func (*AddArtificialPlayerRequest) ProtoMessage()    {}

func (m *AddArtificialPlayerRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

func (m *AddArtificialPlayerRequest) GetDisplayName() string {
	if m != nil {
		return m.DisplayName
	}
	return ""
}

type RemoveArtificialPlayerRequest struct {
	UserName           string `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
	ArtificialPlayerId string `protobuf:"bytes,2,opt,name=artificial_player_id,json=artificialPlayerId,proto3" json:"artificial_player_id,omitempty"`
}

func (m *RemoveArtificialPlayerRequest) Reset()         { *m = RemoveArtificialPlayerRequest{} }
func (m *RemoveArtificialPlayerRequest) String() string { return messageString(m) }
func (*RemoveArtificialPlayerRequest) ProtoMessage()    {}

func (m *RemoveArtificialPlayerRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

func (m *RemoveArtificialPlayerRequest) GetArtificialPlayerId() string {
	if m != nil {
		return m.ArtificialPlayerId
	}
	return ""
}

type CreateChatMessageRequest struct {
	UserName    string       `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
	ChatMessage *ChatMessage `protobuf:"bytes,2,opt,name=chat_message,json=chatMessage,proto3" json:"chat_message,omitempty"`
}

func (m *CreateChatMessageRequest) Reset()         { *m = CreateChatMessageRequest{} }
func (m *CreateChatMessageRequest) String() string { return messageString(m) }
func (*CreateChatMessageRequest) ProtoMessage()    {}

func (m *CreateChatMessageRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

func (m *CreateChatMessageRequest) GetChatMessage() *ChatMessage {
	if m != nil {
		return m.ChatMessage
	}
	return nil
}

type GetGameViewRequest struct {
	UserName string `protobuf:"bytes,1,opt,name=user_name,json=userName,proto3" json:"user_name,omitempty"`
}

func (m *GetGameViewRequest) Reset()         { *m = GetGameViewRequest{} }
func (m *GetGameViewRequest) String() string { return messageString(m) }
func (*GetGameViewRequest) ProtoMessage()    {}

func (m *GetGameViewRequest) GetUserName() string {
	if m != nil {
		return m.UserName
	}
	return ""
}

type SearchGamesRequest struct {
	Query                   string          `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	MinAvailablePlayerSlots int32           `protobuf:"varint,2,opt,name=min_available_player_slots,json=minAvailablePlayerSlots,proto3" json:"min_available_player_slots,omitempty"`
	GameStageFilter         GameStageFilter `protobuf:"varint,3,opt,name=game_stage_filter,json=gameStageFilter,proto3,enum=cardczar.game.GameStageFilter" json:"game_stage_filter,omitempty"`
}

func (m *SearchGamesRequest) Reset()         { *m = SearchGamesRequest{} }
func (m *SearchGamesRequest) String() string { return messageString(m) }
func (*SearchGamesRequest) ProtoMessage()    {}

func (m *SearchGamesRequest) GetQuery() string {
	if m != nil {
		return m.Query
	}
	return ""
}

func (m *SearchGamesRequest) GetMinAvailablePlayerSlots() int32 {
	if m != nil {
		return m.MinAvailablePlayerSlots
	}
	return 0
}

func (m *SearchGamesRequest) GetGameStageFilter() GameStageFilter {
	if m != nil {
		return m.GameStageFilter
	}
	return GameStageFilter_GAME_STAGE_FILTER_UNSPECIFIED
}

type SearchGamesResponse struct {
	Games []*GameInfo `protobuf:"bytes,1,rep,name=games,proto3" json:"games,omitempty"`
}

func (m *SearchGamesResponse) Reset()         { *m = SearchGamesResponse{} }
func (m *SearchGamesResponse) String() string { return messageString(m) }
func (*SearchGamesResponse) ProtoMessage()    {}

func (m *SearchGamesResponse) GetGames() []*GameInfo {
	if m != nil {
		return m.Games
	}
	return nil
}

type ListWhiteCardTextsRequest struct {
	GameId    string `protobuf:"bytes,1,opt,name=game_id,json=gameId,proto3" json:"game_id,omitempty"`
	Filter    string `protobuf:"bytes,2,opt,name=filter,proto3" json:"filter,omitempty"`
	PageSize  int32  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken string `protobuf:"bytes,4,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
}

func (m *ListWhiteCardTextsRequest) Reset()         { *m = ListWhiteCardTextsRequest{} }
func (m *ListWhiteCardTextsRequest) String() string { return messageString(m) }
func (*ListWhiteCardTextsRequest) ProtoMessage()    {}

func (m *ListWhiteCardTextsRequest) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

func (m *ListWhiteCardTextsRequest) GetFilter() string {
	if m != nil {
		return m.Filter
	}
	return ""
}

func (m *ListWhiteCardTextsRequest) GetPageSize() int32 {
	if m != nil {
		return m.PageSize
	}
	return 0
}

func (m *ListWhiteCardTextsRequest) GetPageToken() string {
	if m != nil {
		return m.PageToken
	}
	return ""
}

type ListWhiteCardTextsResponse struct {
	CardTexts     []string `protobuf:"bytes,1,rep,name=card_texts,json=cardTexts,proto3" json:"card_texts,omitempty"`
	NextPageToken string   `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	TotalSize     int64    `protobuf:"varint,3,opt,name=total_size,json=totalSize,proto3" json:"total_size,omitempty"`
}

func (m *ListWhiteCardTextsResponse) Reset()         { *m = ListWhiteCardTextsResponse{} }
func (m *ListWhiteCardTextsResponse) String() string { return messageString(m) }
func (*ListWhiteCardTextsResponse) ProtoMessage()    {}

func (m *ListWhiteCardTextsResponse) GetCardTexts() []string {
	if m != nil {
		return m.CardTexts
	}
	return nil
}

func (m *ListWhiteCardTextsResponse) GetNextPageToken() string {
	if m != nil {
		return m.NextPageToken
	}
	return ""
}

func (m *ListWhiteCardTextsResponse) GetTotalSize() int64 {
	if m != nil {
		return m.TotalSize
	}
	return 0
}

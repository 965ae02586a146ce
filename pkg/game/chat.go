package game

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

// ChatMessageLog is a fixed-capacity ring of the most recent chat messages
// in a game. Once full, each new message overwrites the oldest one.
type ChatMessageLog struct {
	messages         []*gamerpc.ChatMessage
	maxLength        int
	lastMessageIndex int
}

func NewChatMessageLog(maxLength int) *ChatMessageLog {
	return &ChatMessageLog{
		messages:         make([]*gamerpc.ChatMessage, 0, maxLength),
		maxLength:        maxLength,
		lastMessageIndex: -1,
	}
}

func (l *ChatMessageLog) Add(user *gamerpc.User, text string, createTime *timestamppb.Timestamp) {
	if l.maxLength == 0 {
		return
	}
	message := &gamerpc.ChatMessage{
		User:       cloneUser(user),
		Text:       text,
		CreateTime: createTime,
	}
	l.lastMessageIndex++
	if l.lastMessageIndex == l.maxLength {
		l.lastMessageIndex = 0
	}
	if len(l.messages) < l.maxLength {
		l.messages = append(l.messages, message)
	} else {
		l.messages[l.lastMessageIndex] = message
	}
}

// Messages returns the log oldest-first.
func (l *ChatMessageLog) Messages() []*gamerpc.ChatMessage {
	if len(l.messages) == 0 {
		return nil
	}
	ordered := make([]*gamerpc.ChatMessage, 0, len(l.messages))
	start := l.lastMessageIndex + 1
	if start >= len(l.messages) {
		start = 0
	}
	for i := 0; i < len(l.messages); i++ {
		ordered = append(ordered, l.messages[(start+i)%len(l.messages)])
	}
	return ordered
}

package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestChatLogReturnsMessagesOldestFirst(t *testing.T) {
	log := NewChatMessageLog(10)
	require.Nil(t, log.Messages())

	now := timestamppb.New(time.Now())
	for i := 0; i < 3; i++ {
		log.Add(testUser("users/0"), fmt.Sprintf("message %d", i), now)
	}

	messages := log.Messages()
	require.Len(t, messages, 3)
	for i, message := range messages {
		assert.Equal(t, fmt.Sprintf("message %d", i), message.GetText())
		assert.Equal(t, "users/0", message.GetUser().GetName())
	}
}

func TestChatLogOverwritesOldestPastCapacity(t *testing.T) {
	log := NewChatMessageLog(3)
	now := timestamppb.New(time.Now())
	for i := 0; i < 7; i++ {
		log.Add(testUser("users/0"), fmt.Sprintf("message %d", i), now)
	}

	messages := log.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, "message 4", messages[0].GetText())
	assert.Equal(t, "message 5", messages[1].GetText())
	assert.Equal(t, "message 6", messages[2].GetText())
}

func TestChatLogClonesUsers(t *testing.T) {
	log := NewChatMessageLog(10)
	user := testUser("users/0")
	log.Add(user, "hello", timestamppb.New(time.Now()))
	user.DisplayName = "mutated"
	assert.Equal(t, "User users/0", log.Messages()[0].GetUser().GetDisplayName())
}

func TestChatLogWithZeroCapacityDropsEverything(t *testing.T) {
	log := NewChatMessageLog(0)
	log.Add(testUser("users/0"), "hello", timestamppb.New(time.Now()))
	assert.Nil(t, log.Messages())
}

package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/decred/slog"
	amqp "github.com/rabbitmq/amqp091-go"
)

const gameQueueName = "GAME"

// Notifier pushes game-update events for the web layer to fan out to
// connected clients. Delivery is best effort.
type Notifier interface {
	GameUpdatedForUsers(userNames []string) error
}

// AmqpNotifier publishes game-update messages to a RabbitMQ queue consumed
// by the API gateway.
type AmqpNotifier struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	log     slog.Logger
}

func NewAmqpNotifier(amqpURI string, log slog.Logger) (*AmqpNotifier, error) {
	conn, err := amqp.Dial(amqpURI)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if _, err := channel.QueueDeclare(gameQueueName, false, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %q: %w", gameQueueName, err)
	}
	return &AmqpNotifier{conn: conn, channel: channel, log: log}, nil
}

// constructGameUpdateMessage renders the update payload. The format is part
// of the contract with the gateway, so it is assembled by hand rather than
// with a JSON encoder.
func constructGameUpdateMessage(userNames []string) string {
	quoted := make([]string, 0, len(userNames))
	for _, name := range userNames {
		quoted = append(quoted, fmt.Sprintf("%q", name))
	}
	return fmt.Sprintf(`{"type": "GAME_UPDATED", "payload": [%s]}`, strings.Join(quoted, ", "))
}

func (n *AmqpNotifier) GameUpdatedForUsers(userNames []string) error {
	err := n.channel.PublishWithContext(context.Background(), "", gameQueueName, false, false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        []byte(constructGameUpdateMessage(userNames)),
		})
	if err != nil {
		return fmt.Errorf("publish to %q: %w", gameQueueName, err)
	}
	n.log.Debugf("Published game update for %d users", len(userNames))
	return nil
}

func (n *AmqpNotifier) Close() error {
	n.channel.Close()
	return n.conn.Close()
}

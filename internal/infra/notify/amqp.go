package notify

import (
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ex.notifications"
	QueueName    = "q.notifications"
	RoutingKey   = "k.notification"
)

// AMQPNotifier publishes every notification event to RabbitMQ so external
// consumers (the dashboard, ops tooling) can subscribe to the feed. Publish
// errors are logged and swallowed: the sink is one-way and must never fail
// the operation that produced the event.
type AMQPNotifier struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewAMQPNotifier(url string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel failed: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &AMQPNotifier{Conn: conn, Ch: ch}, nil
}

func setupTopology(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(QueueName, true, false, false, false, nil)
	if err != nil {
		return err
	}

	return ch.QueueBind(QueueName, RoutingKey, ExchangeName, false, nil)
}

func (a *AMQPNotifier) Notify(n Notification) {
	body, err := json.Marshal(n)
	if err != nil {
		log.Printf("❌ [NOTIFY] marshal failed: %v", err)
		return
	}

	err = a.Ch.Publish(
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		log.Printf("❌ [NOTIFY] publish failed: %v", err)
	}
}

func (a *AMQPNotifier) Close() {
	if a.Ch != nil {
		a.Ch.Close()
	}
	if a.Conn != nil {
		a.Conn.Close()
	}
}

package messaging

import (
	"log"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Topic names one browse event stream.
type Topic string

func topicName(prefix string, topic Topic) string {
	return prefix + "_" + string(topic)
}

// DefineTopic declares the durable exchange and queue for a topic.
func DefineTopic(ch *amqp.Channel, prefix string, topic Topic) error {
	name := topicName(prefix, topic)
	if err := ch.ExchangeDeclare(
		name,    // name
		"topic", // type
		true,    // durable
		false,   // auto-delete
		false,   // internal
		false,   // noWait
		nil,     // arguments
	); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(
		name,  // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // noWait
		nil,   // arguments
	); err != nil {
		return err
	}
	return ch.QueueBind(name, name, name, false, nil)
}

// Publish sends one event on a topic, JSON encoded.
func Publish[V any](c *amqp.Connection, prefix string, topic Topic, data V) error {
	body, err := sonic.Marshal(data)
	if err != nil {
		return err
	}
	ch, err := c.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	name := topicName(prefix, topic)
	return ch.Publish(
		name,
		name,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// Listen consumes a topic, acking each delivery the handler accepts.
// The consumer goroutine exits on the first handler error.
func Listen(ch *amqp.Channel, prefix string, topic Topic, handle func(amqp.Delivery) error) error {
	name := topicName(prefix, topic)
	msgs, err := ch.Consume(
		name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}
	go func() {
		defer ch.Close()
		for d := range msgs {
			if err := handle(d); err != nil {
				log.Printf("Error processing message: %v", err)
				return
			}
			d.Ack(false)
		}
	}()
	return nil
}

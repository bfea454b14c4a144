package utils

import (
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

func DeclareQueue(name string, ch *amqp.Channel) (queue amqp.Queue, err error) {
	queue, err = ch.QueueDeclare(
		name,  // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return
	}
	if err = ch.Qos(1, 0, false); err != nil {
		return
	}
	return
}

// FailOnNack rejects a delivery that could not be handled. Undecodable
// messages are dropped, anything else goes back to the queue.
func FailOnNack(d amqp.Delivery, err error, requeue bool) {
	WarnLog("queue", "Could not handle message %s: %v", d.MessageId, err)
	if err = d.Nack(false, requeue); err != nil {
		log.Fatalf("Could not NACK to message queue: %v", err)
	}
}

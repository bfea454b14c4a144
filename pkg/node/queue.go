package node

import (
	"context"
	"time"

	"github.com/lioia/birank/pkg/utils"
	amqp "github.com/rabbitmq/amqp091-go"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Enqueue publishes job on the work queue.
func (n *Node) Enqueue(ctx context.Context, job Job) error {
	return publish(ctx, n.Queue.Channel, n.Queue.Work, job.ID, job)
}

func publish(ctx context.Context, ch publisher, queue, id string, v any) error {
	s, err := toStruct(v)
	if err != nil {
		return err
	}
	data, err := proto.Marshal(s)
	if err != nil {
		return err
	}
	return ch.PublishWithContext(ctx,
		"",
		queue, // routing key
		false, // mandatory
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/x-protobuf",
			MessageId:    id,
			Body:         data,
		})
}

func decodeStruct(body []byte) (*structpb.Struct, error) {
	s := new(structpb.Struct)
	if err := proto.Unmarshal(body, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (n *Node) masterUpdate() {
	if n.Queue == nil {
		// Single node: every job is computed by the API handlers
		select {}
	}
	msgs, err := n.Queue.Channel.Consume(
		n.Queue.Result, // queue
		"",             // consumer
		false,          // auto-ack
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,            // args
	)
	utils.FailOnError("Could not register a consumer for %s queue", err, n.Queue.Result)
	utils.NodeLog("master", "Registered consumer for queue %s", n.Queue.Result)
	for msg := range msgs {
		if err := n.storeResult(msg.Body); err != nil {
			utils.FailOnNack(msg, err, false)
			continue
		}
		if err := msg.Ack(false); err != nil {
			utils.WarnLog("master", "Could not ack result %s: %v", msg.MessageId, err)
		}
	}
}

func (n *Node) storeResult(body []byte) error {
	s, err := decodeStruct(body)
	if err != nil {
		return err
	}
	var res Result
	if err := fromStruct(s, &res); err != nil {
		return err
	}
	n.Results.Put(res.ID, res)
	utils.NodeLog("master", "Stored result of job %s", res.ID)
	return nil
}

func (n *Node) workerUpdate() {
	// Register consumer
	msgs, err := n.Queue.Channel.Consume(
		n.Queue.Work, // queue
		"",           // consumer
		false,        // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	utils.FailOnError("Could not register a consumer", err)
	utils.NodeLog("worker", "Waiting for jobs on %s", n.Queue.Work)
	for d := range msgs {
		res, err := n.processJob(d.Body)
		if err != nil {
			// Message cannot be decoded: requeueing would loop forever
			utils.FailOnNack(d, err, false)
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = publish(ctx, n.Queue.Channel, n.Queue.Result, res.ID, res)
		cancel()
		if err != nil {
			utils.FailOnNack(d, err, true)
			continue
		}
		if err := d.Ack(false); err != nil {
			utils.WarnLog("worker", "Could not ack job %s: %v", res.ID, err)
		}
	}
}

// processJob decodes and runs one queued job. Computation errors are
// reported inside the Result; only undecodable messages return an error.
func (n *Node) processJob(body []byte) (Result, error) {
	s, err := decodeStruct(body)
	if err != nil {
		return Result{}, err
	}
	job, err := jobFromStruct(s, n.Options)
	if err != nil {
		return Result{}, err
	}
	utils.NodeLog("worker", "Computing %s job %s", job.Kind, job.ID)
	res, err := Run(job)
	if err != nil {
		res.Error = err.Error()
	}
	return res, nil
}
